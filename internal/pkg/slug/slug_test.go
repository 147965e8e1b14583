package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		id   uint
		want string
	}{
		{"Travel Tips", 7, "travel-tips-7"},
		{"Go", 1, "go-1"},
		{"  Spaced   Out  ", 2, "spaced-out-2"},
		{"Already-dashed", 3, "already-dashed-3"},
		{"C++ & Friends!", 4, "c-friends-4"},
		{"MiXeD CaSe", 5, "mixed-case-5"},
		{"***", 6, "6"},
		{"", 8, "8"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Make(tt.name, tt.id), "Make(%q, %d)", tt.name, tt.id)
	}
}
