package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	user, err := CreateUser("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Nickname)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, []string{ROLE_USER}, user.Roles)

	// password must be stored hashed
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCreateUserValidation(t *testing.T) {
	_, err := CreateUser("al", "alice@example.com", "secret123")
	assert.Error(t, err, "nickname below minimum length")

	_, err = CreateUser("alice", "not-an-email", "secret123")
	assert.Error(t, err, "invalid email")
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	// the length policy applies to the plain password, not the stored hash
	_, err := CreateUser("alice", "alice@example.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestGetRolesAlwaysContainsBaseRole(t *testing.T) {
	tests := []struct {
		name   string
		stored []string
		want   []string
	}{
		{"empty set", nil, []string{ROLE_USER}},
		{"base role only", []string{ROLE_USER}, []string{ROLE_USER}},
		{"admin without base role", []string{ROLE_ADMIN}, []string{ROLE_ADMIN, ROLE_USER}},
		{"duplicates collapse", []string{ROLE_USER, ROLE_USER, ROLE_ADMIN}, []string{ROLE_USER, ROLE_ADMIN}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Roles: tt.stored}
			assert.Equal(t, tt.want, u.GetRoles())
		})
	}
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, (&User{Roles: []string{ROLE_USER}}).IsAdmin())
	assert.True(t, (&User{Roles: []string{ROLE_USER, ROLE_ADMIN}}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}

func TestSetPassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("newsecret"))
	assert.True(t, u.CheckPassword("newsecret"))

	err := u.SetPassword("tiny")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.True(t, u.CheckPassword("newsecret"), "stored password unchanged after a rejected change")
}
