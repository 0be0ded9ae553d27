package lyrics

import (
	"strings"

	"github.com/reusee/ngl/phrases"
)

// Normalize drops carriage returns, lowercases, and collapses every whitespace
// run to a single space.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ToLower(text)
	return strings.Join(strings.Fields(text), " ")
}

// Encode translates lyrics to a symbol program. Text that matches no phrase is
// skipped up to the next space and never reported.
func Encode(text string) string {
	text = Normalize(text)
	entries := phrases.ByLength()

	var b strings.Builder
	i := 0
scan:
	for i < len(text) {
		for _, entry := range entries {
			if strings.HasPrefix(text[i:], entry.Phrase) {
				b.WriteByte(entry.Symbol)
				i += len(entry.Phrase)
				if i < len(text) && text[i] == ' ' {
					i++
				}
				continue scan
			}
		}
		next := strings.IndexByte(text[i:], ' ')
		if next < 0 {
			break
		}
		i += next + 1
	}

	return b.String()
}

// Decode renders a symbol program as space-joined phrases. Bytes outside the
// alphabet are dropped.
func Decode(program string) string {
	parts := make([]string, 0, len(program))
	for i := 0; i < len(program); i++ {
		if phrase, ok := phrases.PhraseOf(program[i]); ok {
			parts = append(parts, phrase)
		}
	}
	return strings.Join(parts, " ")
}
