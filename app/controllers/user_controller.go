package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/inkwell-cms/InkWell/app/models"
	"github.com/inkwell-cms/InkWell/app/services"
	"github.com/inkwell-cms/InkWell/internal/pkg/utils"
)

// HandleUserIndex renders the admin user list in registration order.
func HandleUserIndex(c *fiber.Ctx) error {
	page, err := services.GetServices().User.GetPaginatedList(pageParam(c), currentActor(c))
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	data := baseViewData(c, "Users")
	data["Users"] = page.Items
	data["Page"] = page.Page
	data["TotalPages"] = page.TotalPages()
	data["HasPrev"] = page.HasPrev()
	data["HasNext"] = page.HasNext()

	return c.Render("user/index", data)
}

// HandleUserShow renders a user profile. Visible to the user themselves and
// to admins.
func HandleUserShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	user, err := services.GetServices().User.Get(id, currentActor(c))
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	data := baseViewData(c, user.Nickname)
	data["User"] = user
	data["Roles"] = user.GetRoles()
	data["AvatarURL"] = utils.GravatarURL(user.Email, 80)

	return c.Render("user/show", data)
}

// HandleUserEdit renders the profile form and processes its submission.
func HandleUserEdit(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	svc := services.GetServices()
	profileURL := "/users/" + c.Params("id")

	if c.Method() == fiber.MethodPost {
		_, err := svc.User.UpdateProfile(currentActor(c), id, c.FormValue("email"), c.FormValue("nickname"))
		if err != nil {
			return handleServiceError(c, err, profileURL+"/edit")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Profile updated",
		}
		return flash.WithSuccess(c, fm).Redirect(profileURL)
	}

	user, err := svc.User.Get(id, currentActor(c))
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	data := baseViewData(c, "Edit Profile")
	data["User"] = user

	return c.Render("user/edit", data)
}

// HandleUserChangePassword sets a new password for the user.
func HandleUserChangePassword(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	profileURL := "/users/" + c.Params("id")

	password := c.FormValue("password")
	if password != c.FormValue("password_confirm") {
		fm := fiber.Map{
			"type":    "error",
			"message": "Passwords do not match",
		}
		return flash.WithError(c, fm).Redirect(profileURL + "/edit")
	}

	if err := services.GetServices().User.ChangePassword(currentActor(c), id, password); err != nil {
		return handleServiceError(c, err, profileURL+"/edit")
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Password changed",
	}
	return flash.WithSuccess(c, fm).Redirect(profileURL)
}

// HandleUserEditRoles renders the role form and processes its submission.
// The base user role always stays, and the newest admin keeps admin.
func HandleUserEditRoles(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	svc := services.GetServices()

	if c.Method() == fiber.MethodPost {
		var roles []string
		for _, raw := range c.Context().PostArgs().PeekMulti("roles") {
			roles = append(roles, string(raw))
		}

		if _, err := svc.User.EditRoles(currentActor(c), id, roles); err != nil {
			return handleServiceError(c, err, "/admin/users/"+c.Params("id")+"/roles")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Roles updated",
		}
		return flash.WithSuccess(c, fm).Redirect("/admin/users")
	}

	user, err := svc.User.Get(id, currentActor(c))
	if err != nil {
		return handleServiceError(c, err, "/admin/users")
	}

	data := baseViewData(c, "Edit Roles")
	data["User"] = user
	data["UserRoles"] = user.GetRoles()
	data["AllRoles"] = []string{models.ROLE_USER, models.ROLE_ADMIN}

	return c.Render("user/roles", data)
}
