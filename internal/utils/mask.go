package utils

// MaskSecret formats a sensitive value for display, revealing only the last
// keepLast characters behind a fixed "****" prefix. Values at or under
// keepLast characters are fully masked. Every read path that surfaces
// account details goes through this; raw values are never returned.
func MaskSecret(value string, keepLast int) string {
	if keepLast <= 0 || len(value) <= keepLast {
		return "****"
	}
	return "****" + value[len(value)-keepLast:]
}
