package service

import (
	"crypto/rand"
	"fmt"
)

const (
	classCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	classCodeLength   = 6

	// maxCodeAttempts bounds the generate-and-insert loop. Collisions are
	// decided by the unique constraint on classes.code, not by a pre-check.
	maxCodeAttempts = 5

	// Largest multiple of len(classCodeAlphabet) that fits in a byte. Bytes
	// at or above it are redrawn to keep the draw uniform.
	maxUnbiasedByte = 252
)

func generateClassCode() (string, error) {
	code := make([]byte, 0, classCodeLength)
	buf := make([]byte, classCodeLength)
	for len(code) < classCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate class code: %w", err)
		}
		for _, b := range buf {
			if b >= maxUnbiasedByte {
				continue
			}
			code = append(code, classCodeAlphabet[int(b)%len(classCodeAlphabet)])
			if len(code) == classCodeLength {
				break
			}
		}
	}
	return string(code), nil
}
