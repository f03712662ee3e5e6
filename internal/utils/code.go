package utils

import "math/rand"

const codeCharset = "0123456789"

// GenerateCode returns a random numeric verification code of the given length.
func GenerateCode(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}
