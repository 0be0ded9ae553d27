package phrases

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	entries := Entries()
	if len(entries) != 8 {
		t.Fatalf("got %d entries", len(entries))
	}
	seen := make(map[byte]bool)
	for _, entry := range entries {
		if seen[entry.Symbol] {
			t.Fatalf("duplicated symbol %q", entry.Symbol)
		}
		seen[entry.Symbol] = true
		if entry.Phrase != strings.ToLower(entry.Phrase) {
			t.Fatalf("not lowercase: %q", entry.Phrase)
		}
		if strings.Join(strings.Fields(entry.Phrase), " ") != entry.Phrase {
			t.Fatalf("not single spaced: %q", entry.Phrase)
		}
	}
	for _, b := range []byte("+-><.,[]") {
		if !seen[b] {
			t.Fatalf("missing symbol %q", b)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, entry := range Entries() {
		phrase, ok := PhraseOf(entry.Symbol)
		if !ok || phrase != entry.Phrase {
			t.Fatalf("got %q for %q", phrase, entry.Symbol)
		}
		symbol, ok := SymbolOf(entry.Phrase)
		if !ok || symbol != entry.Symbol {
			t.Fatalf("got %q for %q", symbol, entry.Phrase)
		}
		if !IsSymbol(entry.Symbol) {
			t.Fatalf("%q should be a symbol", entry.Symbol)
		}
	}
	if _, ok := PhraseOf('x'); ok {
		t.Fatal("x should not map")
	}
	if _, ok := SymbolOf("never gonna"); ok {
		t.Fatal("partial phrase should not map")
	}
	if IsSymbol(0) {
		t.Fatal()
	}
}

func TestByLength(t *testing.T) {
	entries := ByLength()
	for i := 1; i < len(entries); i++ {
		if len(entries[i-1].Phrase) < len(entries[i].Phrase) {
			t.Fatalf("not descending at %d", i)
		}
	}
	// equal lengths keep table order
	if entries[0].Symbol != SymRight {
		t.Fatalf("got %q", entries[0].Symbol)
	}
	if entries[1].Symbol != SymClose {
		t.Fatalf("got %q", entries[1].Symbol)
	}

	entries[0].Phrase = "mutated"
	if ByLength()[0].Phrase == "mutated" {
		t.Fatal("table should not be mutable")
	}
}
