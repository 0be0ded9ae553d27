package plaintexts

import (
	"strings"

	"github.com/reusee/ngl/phrases"
)

// Encode returns a symbol program that prints text when run with empty input.
// It uses a single cell and steps it to each character in whichever direction
// is shorter.
//
// Only the low 8 bits of each code point are kept, so characters above U+00FF
// do not survive the round trip.
func Encode(text string) string {
	var b strings.Builder
	var current byte
	for _, r := range text {
		target := byte(r & 0xff)
		delta := int(target-current) // wraps mod 256
		if delta <= 128 {
			writeRepeat(&b, phrases.SymInc, delta)
		} else {
			writeRepeat(&b, phrases.SymDec, 256-delta)
		}
		b.WriteByte(phrases.SymOutput)
		current = target
	}
	return b.String()
}

func writeRepeat(b *strings.Builder, c byte, n int) {
	for range n {
		b.WriteByte(c)
	}
}
