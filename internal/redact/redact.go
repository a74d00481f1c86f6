// Package redact scrubs sensitive material from strings before they reach
// the logs. Database and driver errors can embed connection strings, SQL
// text, addresses, or credentials; every logged error passes through here
// so none of that survives into log output.
package redact

import "regexp"

// Placeholders substituted for matched sensitive fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	KeyPlaceholder        = "[REDACTED_KEY]"
	PathPlaceholder       = "[REDACTED_PATH]"
)

// rules are applied in order; earlier rules see the raw input, later ones
// see the partially redacted result. Broad patterns (host names, paths)
// come last so the specific ones match first.
var rules = []struct {
	re          *regexp.Regexp
	placeholder string
}{
	// Connection strings with inline credentials
	{regexp.MustCompile(`(?i)(postgres|postgresql|mysql|mongodb)://[^@\s]+@`), CredentialPlaceholder},

	// password=... / pwd: ... key-value fragments
	{regexp.MustCompile(`(?i)(password|passwd|pwd)[=:\s]['"]?[^'"&\s]+`), CredentialPlaceholder},

	// JWTs (three base64url segments, first two starting with eyJ)
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), "[REDACTED_JWT]"},

	// secret=..., token: ..., api_key=... assignments
	{regexp.MustCompile(`(?i)(secret|token|api[_-]?key)\s*[:=]\s*['"]?[A-Za-z0-9_\-.~+/]{8,}`), KeyPlaceholder},

	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[REDACTED_EMAIL]"},

	// SQL statements echoed back by the driver
	{regexp.MustCompile(`(?i)\b(select|insert|update|delete)\b.*?\b(from|into|set|where)\b[^;]*`), "[REDACTED_SQL]"},

	// Filesystem paths (two or more segments)
	{regexp.MustCompile(`(/[\w.-]+){2,}`), PathPlaceholder},

	// host.name:port fragments
	{regexp.MustCompile(`\b(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}(?::\d{1,5})?\b`), "[REDACTED_HOST]"},
}

// String returns input with every sensitive fragment replaced by its
// placeholder.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, rule := range rules {
		result = rule.re.ReplaceAllString(result, rule.placeholder)
	}
	return result
}

// Error redacts an error's message. A nil error yields the empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
