package lyrics

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/reusee/ngl/phrases"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"  \t\n ", ""},
		{"Never  Gonna\r\nGive\tYou UP ", "never gonna give you up"},
		{"a\r\rb", "ab"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEncodeEachPhrase(t *testing.T) {
	for _, entry := range phrases.Entries() {
		got := Encode(entry.Phrase)
		if got != string(entry.Symbol) {
			t.Fatalf("Encode(%q): got %q", entry.Phrase, got)
		}
		got = Encode("  " + strings.ToUpper(entry.Phrase) + "\r\n")
		if got != string(entry.Symbol) {
			t.Fatalf("Encode upper %q: got %q", entry.Phrase, got)
		}
		if got := Decode(string(entry.Symbol)); got != entry.Phrase {
			t.Fatalf("Decode(%q): got %q", entry.Symbol, got)
		}
	}
}

func TestEncodeRepeated(t *testing.T) {
	text := strings.Repeat("never gonna give you up ", 3)
	if got := Encode(text); got != "+++" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeSkipsUnmatched(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"hello world", ""},
		{"hello never gonna give you up", "+"},
		{"never gonna give you up hello never gonna let you down", "+-"},
		{"never gonna give you up trailing", "+"},
		// an unmatched token consumes up to the next space only
		{"xnever gonna give you up", ""},
		{"never gonna give you upnever gonna let you down", "+-"},
		{"never gonna", ""},
		{"we are no strangers to love\nyou know the rules and so do i (do i)", "[]"},
	}
	for _, c := range cases {
		if got := Encode(c.in); got != c.want {
			t.Fatalf("Encode(%q): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDecodeDropsUnknown(t *testing.T) {
	got := Decode("+x-")
	want := "never gonna give you up never gonna let you down"
	if got != want {
		t.Fatalf("got %q", got)
	}
	if got := Decode(""); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Decode("abc"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	alphabet := "+-><.,[]"
	for range 200 {
		n := rand.IntN(64)
		var b strings.Builder
		for range n {
			b.WriteByte(alphabet[rand.IntN(len(alphabet))])
		}
		program := b.String()
		if got := Encode(Decode(program)); got != program {
			t.Fatalf("round trip %q: got %q", program, got)
		}
	}
}
