package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	ROLE_USER  = "ROLE_USER"
	ROLE_ADMIN = "ROLE_ADMIN"

	MinPasswordLength = 6
)

var ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;type:varchar(180)" json:"email" validate:"required,email,max=180"`
	Nickname  string    `gorm:"uniqueIndex;type:varchar(255)" json:"nickname" validate:"required,min=3,max=255"`
	Password  string    `gorm:"type:text" json:"-" validate:"required"`
	Roles     []string  `gorm:"serializer:json;type:json" json:"roles"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// CreateUser builds a new registered user with a hashed password and the base role.
func CreateUser(nickname string, email string, password string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Nickname: nickname,
		Email:    email,
		Password: pw,
		Roles:    []string{ROLE_USER},
	}

	err = u.Validate()
	if err != nil {
		return nil, err
	}

	return u, nil
}

// HashPassword checks the plain password against the length policy and hashes
// it. The length check has to happen here, before hashing, because the stored
// hash always comes out at bcrypt's fixed length.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// GetRoles returns the stored role set with ROLE_USER guaranteed to be present.
func (u *User) GetRoles() []string {
	roles := make([]string, 0, len(u.Roles)+1)
	seen := make(map[string]struct{}, len(u.Roles)+1)
	for _, role := range u.Roles {
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}
	if _, ok := seen[ROLE_USER]; !ok {
		roles = append(roles, ROLE_USER)
	}
	return roles
}

// IsAdmin reports whether the user holds ROLE_ADMIN.
func (u *User) IsAdmin() bool {
	for _, role := range u.Roles {
		if role == ROLE_ADMIN {
			return true
		}
	}
	return false
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashedPassword
	return nil
}
