package respond

import "regexp"

// masks run in order; the Anthropic key rule precedes the shorter OpenAI prefix.
var masks = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`sk-ant-[a-zA-Z0-9_-]+`), "sk-ant-****"},
	{regexp.MustCompile(`sk-(?:proj-)?[a-zA-Z0-9_]{10,}`), "sk-****"},
	{regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._~+/=-]+`), "Bearer ****"},
	{regexp.MustCompile(`(?i)(x-api-key:\s*)\S+`), "${1}****"},
	{regexp.MustCompile(`(?i)([?&](?:api_key|key|token)=)[^&\s"]+`), "${1}****"},
	{regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`), "://$1:****@"},
}

// SanitizeError returns the error message with provider API keys, bearer
// tokens, key query parameters and DSN passwords masked. nil yields "".
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return Sanitize(err.Error())
}

// Sanitize masks secrets in msg.
func Sanitize(msg string) string {
	for _, m := range masks {
		msg = m.pattern.ReplaceAllString(msg, m.repl)
	}
	return msg
}
