package slug

import (
	"fmt"
	"strings"
	"unicode"
)

// Make builds the stable human-readable identifier for a category from its
// name and assigned id, e.g. ("Travel Tips", 7) -> "travel-tips-7". The id
// suffix keeps slugs unique across renames of other categories.
func Make(name string, id uint) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	base := strings.Trim(b.String(), "-")
	if base == "" {
		return fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("%s-%d", base, id)
}
