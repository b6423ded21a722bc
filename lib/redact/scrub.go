package redact

import (
	"regexp"
)

const redacted = "[REDACTED]"

type scrubRule struct {
	pattern     *regexp.Regexp
	replacement string
}

const secretKeys = `password|secret|secretaccesskey|secret_access_key|sessiontoken|session_token|token|private_key|private_key_id|x-amz-signature|x-amz-credential|x-amz-security-token|signature|credential`

var scrubRules = []scrubRule{
	{
		// "private_key": "..." as found in service account files.
		pattern:     regexp.MustCompile(`(?i)("(?:` + secretKeys + `)")\s*:\s*"([^"]+)"`),
		replacement: `${1}: "` + redacted + `"`,
	},
	{
		// key=value or key: value, this also covers presigned URL query parameters.
		pattern:     regexp.MustCompile(`(?i)((?:` + secretKeys + `)\s*[:=]\s*)([^\s,;&}"]+)`),
		replacement: `${1}` + redacted,
	},
	{
		// AWS access key IDs, long term and temporary.
		pattern:     regexp.MustCompile(`\b(?:AKIA|ASIA)[0-9A-Z]{16}\b`),
		replacement: redacted,
	},
	{
		pattern:     regexp.MustCompile(`(?s)-{5}BEGIN[A-Z\s]*PRIVATE\s+KEY-{5}.+?-{5}END[A-Z\s]*PRIVATE\s+KEY-{5}`),
		replacement: redacted,
	},
	{
		pattern:     regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
		replacement: redacted,
	},
}

// Scrub redacts credentials and email addresses from a message before it leaves the process.
func Scrub(msg string) string {
	for _, rule := range scrubRules {
		msg = rule.pattern.ReplaceAllString(msg, rule.replacement)
	}
	return msg
}

type scrubbedError struct {
	err error
}

func (s scrubbedError) Error() string {
	return Scrub(s.err.Error())
}

func (s scrubbedError) Unwrap() error {
	return s.err
}

// Error scrubs the message of [err], errors.Is and errors.As still match the original.
func Error(err error) error {
	if err == nil {
		return nil
	}
	return scrubbedError{err: err}
}
