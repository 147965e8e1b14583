package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkwell-cms/InkWell/internal/pkg/security"
)

// UserContext represents the complete user context for a request
type UserContext struct {
	UserID     uint     `json:"user_id"`
	Nickname   string   `json:"nickname"`
	IsLoggedIn bool     `json:"is_logged_in"`
	IsAdmin    bool     `json:"is_admin"`
	Roles      []string `json:"roles"`
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(KeyUserContext); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false, IsAdmin: false}
}

// Actor converts the request context into the permission engine's actor.
func (u UserContext) Actor() security.Actor {
	if !u.IsLoggedIn {
		return security.Anonymous
	}
	return security.Actor{ID: u.UserID, Roles: u.Roles}
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// IsAdmin checks if the current user is an admin
func IsAdmin(c *fiber.Ctx) bool {
	return GetUserContext(c).IsAdmin
}

// GetUserID returns the current user's ID, or 0 if not logged in
func GetUserID(c *fiber.Ctx) uint {
	return GetUserContext(c).UserID
}
