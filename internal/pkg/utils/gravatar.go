package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL builds the avatar URL for an email address. Falls back to the
// "mystery person" placeholder for addresses without a Gravatar account.
func GravatarURL(email string, size int) string {
	if size <= 0 {
		size = 200
	}

	email = strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(email))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=mp", hash, size)
}
