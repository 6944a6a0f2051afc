// Package redact scrubs secrets and personal data from strings before they
// are written to logs. Errors coming back from the database driver or the
// token library can embed connection strings, tokens, password hashes and
// contact emails; none of those may reach a log line verbatim.
package redact

import "regexp"

// Placeholders substituted for matched content.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	TokenPlaceholder      = "[REDACTED_JWT]"
	HashPlaceholder       = "[REDACTED_HASH]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	SQLPlaceholder        = "[REDACTED_SQL]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order. Tokens and hashes go first so that the
// broader credential patterns do not partially consume them.
var rules = []rule{
	{
		// JWT: three base64url segments, header and payload start with "eyJ".
		pattern:     regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`),
		placeholder: TokenPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`),
		placeholder: HashPlaceholder,
	},
	{
		// user:password@ segment of a connection URL.
		pattern:     regexp.MustCompile(`(?i)(postgres(?:ql)?|mysql|mongodb(?:\+srv)?)://[^@\s]+@`),
		placeholder: CredentialPlaceholder + "@",
	},
	{
		pattern:     regexp.MustCompile(`(?i)(password|passwd|pwd|secret)([=:\s]+['"]?)[^'"&\s]{3,}`),
		placeholder: "${1}${2}" + CredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}=*`),
		placeholder: "Bearer " + CredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		placeholder: EmailPlaceholder,
	},
	{
		pattern: regexp.MustCompile(
			`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b[\s\S]*?\b(FROM|INTO|SET)\b[^;\n]*`,
		),
		placeholder: SQLPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
