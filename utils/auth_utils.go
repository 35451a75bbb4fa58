package utils

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"unicode"
)

// GenerateSessionID returns an opaque, URL-safe session identifier carrying
// 192 bits of entropy.
func GenerateSessionID() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}

// SplitDisplayName splits a display name into first and last name at the
// first whitespace. A single-word name becomes the first name only.
func SplitDisplayName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	if i := strings.IndexFunc(name, unicode.IsSpace); i >= 0 {
		return name[:i], strings.TrimSpace(name[i+1:])
	}
	return name, ""
}
