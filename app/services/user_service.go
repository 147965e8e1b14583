package services

import (
	"github.com/inkwell-cms/InkWell/app/models"
	"github.com/inkwell-cms/InkWell/app/repository"
	"github.com/inkwell-cms/InkWell/internal/pkg/apperr"
	"github.com/inkwell-cms/InkWell/internal/pkg/pagination"
	"github.com/inkwell-cms/InkWell/internal/pkg/security"
)

// UserService orchestrates registration, profile edits, and role management.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a new account holding only the base user role.
func (s *UserService) Register(nickname, email, password string) (*models.User, error) {
	user, err := models.CreateUser(nickname, email, password)
	if err != nil {
		return nil, apperr.Validation("invalid registration", err)
	}
	if err := s.users.Create(user); err != nil {
		return nil, apperr.FromDB(err)
	}
	return user, nil
}

// Authenticate resolves email/password credentials to a user. The same
// rejection is returned for an unknown email and a wrong password.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, apperr.Validation("invalid credentials", nil)
	}
	if !user.CheckPassword(password) {
		return nil, apperr.Validation("invalid credentials", nil)
	}
	return user, nil
}

// GetPaginatedList returns one page of users in registration order. The list
// itself is admin-only; single-item visibility is the voter's concern.
func (s *UserService) GetPaginatedList(page int, actor security.Actor) (pagination.Page[models.User], error) {
	if !actor.IsAdmin() {
		return pagination.Page[models.User]{}, apperr.Denied()
	}
	page = pagination.NormalizePage(page)

	items, err := s.users.List(pagination.Offset(page, pagination.DefaultPerPage), pagination.DefaultPerPage)
	if err != nil {
		return pagination.Page[models.User]{}, apperr.FromDB(err)
	}
	total, err := s.users.Count()
	if err != nil {
		return pagination.Page[models.User]{}, apperr.FromDB(err)
	}

	return pagination.New(items, page, pagination.DefaultPerPage, total), nil
}

// Get loads a user profile after a VIEW grant (admin or self).
func (s *UserService) Get(id uint, actor security.Actor) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionView, user) {
		return nil, apperr.Denied()
	}
	return user, nil
}

// UpdateProfile changes email and nickname after an EDIT grant (admin or self).
func (s *UserService) UpdateProfile(actor security.Actor, id uint, email, nickname string) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionEdit, user) {
		return nil, apperr.Denied()
	}

	user.Email = email
	user.Nickname = nickname
	if err := user.Validate(); err != nil {
		return nil, apperr.Validation("invalid profile", err)
	}
	if err := s.users.Update(user); err != nil {
		return nil, apperr.FromDB(err)
	}
	return user, nil
}

// ChangePassword sets a new password after an EDIT grant (admin or self).
func (s *UserService) ChangePassword(actor security.Actor, id uint, password string) error {
	user, err := s.users.GetByID(id)
	if err != nil {
		return apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionEdit, user) {
		return apperr.Denied()
	}

	if err := user.SetPassword(password); err != nil {
		return apperr.Validation("invalid password", err)
	}
	if err := user.Validate(); err != nil {
		return apperr.Validation("invalid password", err)
	}
	if err := s.users.Update(user); err != nil {
		return apperr.FromDB(err)
	}
	return nil
}

// EditRoles replaces a user's role set after a MANAGE grant. The base user
// role can never be removed, and the most-recently-registered admin keeps the
// admin role. The latter is deliberately a latest-admin identity check, not an
// admin-count check; with several admins only the newest one is protected.
func (s *UserService) EditRoles(actor security.Actor, id uint, roles []string) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	if !security.Can(actor, security.ActionManage, user) {
		return nil, apperr.Denied()
	}

	if !containsRole(roles, models.ROLE_USER) {
		return nil, apperr.BusinessRule("the base user role cannot be removed")
	}

	if !containsRole(roles, models.ROLE_ADMIN) {
		latestAdmin, err := s.users.GetLatestAdmin()
		if err != nil {
			return nil, apperr.FromDB(err)
		}
		if latestAdmin != nil && latestAdmin.ID == user.ID {
			return nil, apperr.BusinessRule("the admin role cannot be removed from the latest admin user")
		}
	}

	user.Roles = roles
	if err := s.users.Update(user); err != nil {
		return nil, apperr.FromDB(err)
	}
	return user, nil
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
