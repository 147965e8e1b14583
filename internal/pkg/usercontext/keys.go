package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey          = "authenticated"
	KeyUserID        = "user_id"
	KeyNickname      = "nickname"
	KeyRoles         = "roles"
	KeyIsAdmin       = "isAdmin"
	KeyFromProtected = "from_protected"
	KeyUserContext   = "USER_CONTEXT"
)
