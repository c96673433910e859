package logging

import "strings"

// MaskChar is the character used for masking.
const MaskChar = "*"

// MaskValue masks a sensitive value completely. Used for credentials in
// debug output, where the attempt itself is worth logging but never the
// secret.
func MaskValue(value string) string {
	if value == "" {
		return ""
	}
	return strings.Repeat(MaskChar, min(len(value), 8))
}

// MaskEmail keeps the domain but masks the local part past the first
// character.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return MaskValue(email)
	}
	return email[:1] + strings.Repeat(MaskChar, min(at-1, 8)) + email[at:]
}
