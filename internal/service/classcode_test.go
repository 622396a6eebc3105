package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateClassCode(t *testing.T) {
	codePattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)

	seen := make(map[byte]bool)
	for i := 0; i < 500; i++ {
		code, err := generateClassCode()
		require.NoError(t, err)
		assert.Regexp(t, codePattern, code)
		for j := 0; j < len(code); j++ {
			seen[code[j]] = true
		}
	}

	// 3000 uniform draws cover a 36-character alphabet; a missing character
	// means the draw is skewed or truncated.
	assert.Len(t, seen, len(classCodeAlphabet))
}
