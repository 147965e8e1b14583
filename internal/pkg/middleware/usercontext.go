package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/inkwell-cms/InkWell/internal/pkg/session"
	"github.com/inkwell-cms/InkWell/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session into a UserContext for every
// request, so handlers and services receive the actor explicitly instead of
// reading ambient state.
func UserContextMiddleware(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		// On error: treat as anonymous
		setAnonymous(c)
		return c.Next()
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		setAnonymous(c)
		return c.Next()
	}

	nickname := session.GetSessionValue(c, usercontext.KeyNickname)
	roles := splitRoles(session.GetSessionValue(c, usercontext.KeyRoles))
	isAdmin := sess.Get(usercontext.KeyIsAdmin)

	userCtx := usercontext.UserContext{
		UserID:     userID.(uint),
		Nickname:   nickname,
		IsLoggedIn: true,
		IsAdmin:    isAdmin != nil && isAdmin.(bool),
		Roles:      roles,
	}
	c.Locals(usercontext.KeyUserContext, userCtx)

	c.Locals(usercontext.KeyFromProtected, true)
	c.Locals(usercontext.KeyNickname, nickname)
	c.Locals(usercontext.KeyUserID, userID.(uint))
	c.Locals(usercontext.KeyIsAdmin, userCtx.IsAdmin)

	return c.Next()
}

func setAnonymous(c *fiber.Ctx) {
	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
		IsLoggedIn: false,
		IsAdmin:    false,
	})
	c.Locals(usercontext.KeyFromProtected, false)
	c.Locals(usercontext.KeyIsAdmin, false)
}

func splitRoles(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
