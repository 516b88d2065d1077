package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		p := generatePassword()
		assert.Regexp(t, `^[0-9a-f]{32}$`, p)
		assert.False(t, seen[p])
		seen[p] = true
	}
}
