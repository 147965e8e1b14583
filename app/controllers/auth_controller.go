package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/inkwell-cms/InkWell/app/services"
	"github.com/inkwell-cms/InkWell/internal/pkg/session"
	"github.com/inkwell-cms/InkWell/internal/pkg/usercontext"
)

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{
			"type": "error",
		}

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		user, err := services.GetServices().User.Authenticate(c.FormValue("email"), c.FormValue("password"))
		if err != nil {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect("/login")
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		sess.Set(usercontext.AuthKey, true)
		sess.Set(usercontext.KeyUserID, user.ID)
		sess.Set(usercontext.KeyNickname, user.Nickname)
		sess.Set(usercontext.KeyRoles, strings.Join(user.GetRoles(), ","))
		sess.Set(usercontext.KeyIsAdmin, user.IsAdmin())

		if err = sess.Save(); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		fm = fiber.Map{
			"type":    "success",
			"message": "Welcome back, " + user.Nickname + "!",
		}

		return flash.WithSuccess(c, fm).Redirect("/")
	}

	return c.Render("auth/login", baseViewData(c, "Login"))
}

func HandleAuthRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		user, err := services.GetServices().User.Register(
			c.FormValue("nickname"),
			c.FormValue("email"),
			c.FormValue("password"),
		)
		if err != nil {
			return handleServiceError(c, err, "/register")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Registration successful. You can log in now, " + user.Nickname + "!",
		}

		return flash.WithSuccess(c, fm).Redirect("/login")
	}

	return c.Render("auth/register", baseViewData(c, "Register"))
}

func HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect("/login")
	}

	if err = sess.Destroy(); err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "You have been logged out. See you soon!",
	}

	c.Locals(usercontext.KeyFromProtected, false)

	return flash.WithSuccess(c, fm).Redirect("/login")
}
