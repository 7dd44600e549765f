package complete

import "strings"

// leakedTokens are protocol control tokens that must never appear in the
// inserted text, even when the model echoes them back.
var leakedTokens = []string{
	fimPrefixToken,
	fimSuffixToken,
	fimMiddleToken,
	fimPadToken,
	endOfTextToken,
}

// Sanitize cleans raw model output into the exact text to insert at the
// cursor. The steps are order-sensitive: escape sequences are resolved
// first, then markdown fences are stripped, then leaked control tokens are
// removed, and finally trailing whitespace is trimmed. Leading whitespace
// is preserved so indentation continues from the cursor position. An empty
// result means "no completion".
func Sanitize(raw string) string {
	s := strings.ReplaceAll(raw, `\n`, "\n")
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\r`, "")

	s = stripFences(s)

	for _, tok := range leakedTokens {
		s = strings.ReplaceAll(s, tok, "")
	}

	return strings.TrimRight(s, " \t\n\r")
}

// stripFences removes a leading fenced code-block opener (with optional
// language tag) and a trailing closing fence, when present.
func stripFences(s string) string {
	if strings.HasPrefix(s, "```") {
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			// The whole output is a bare fence line.
			return ""
		}
	}

	t := strings.TrimRight(s, " \t\n")
	if strings.HasSuffix(t, "```") {
		s = t[:len(t)-len("```")]
	}

	return s
}
