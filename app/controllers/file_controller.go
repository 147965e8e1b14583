package controllers

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/inkwell-cms/InkWell/app/services"
)

// maxUploadSize caps article image uploads at 10 MB.
const maxUploadSize = 10 * 1024 * 1024

// HandleArticleImageUpload stores or replaces the image attached to an
// article.
func HandleArticleImageUpload(c *fiber.Ctx) error {
	articleID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	articleURL := "/articles/" + strconv.FormatUint(uint64(articleID), 10)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "No image selected",
		}
		return flash.WithError(c, fm).Redirect(articleURL)
	}
	if fileHeader.Size > maxUploadSize {
		fm := fiber.Map{
			"type":    "error",
			"message": "Image exceeds the 10 MB upload limit",
		}
		return flash.WithError(c, fm).Redirect(articleURL)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return handleServiceError(c, err, articleURL)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return handleServiceError(c, err, articleURL)
	}

	_, err = services.GetServices().File.UploadForArticle(currentActor(c), articleID, fileHeader.Filename, data)
	if err != nil {
		return handleServiceError(c, err, articleURL)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Image uploaded",
	}
	return flash.WithSuccess(c, fm).Redirect(articleURL)
}
