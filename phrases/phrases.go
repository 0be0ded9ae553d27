package phrases

import (
	"cmp"
	"slices"
)

const (
	SymInc    byte = '+'
	SymDec    byte = '-'
	SymRight  byte = '>'
	SymLeft   byte = '<'
	SymOutput byte = '.'
	SymInput  byte = ','
	SymOpen   byte = '['
	SymClose  byte = ']'
)

type Entry struct {
	Phrase string
	Symbol byte
}

var table = [...]Entry{
	{"never gonna give you up", SymInc},
	{"never gonna let you down", SymDec},
	{"never gonna run around and desert you", SymRight},
	{"never gonna make you cry", SymLeft},
	{"never gonna say goodbye", SymOutput},
	{"never gonna tell a lie and hurt you", SymInput},
	{"we are no strangers to love", SymOpen},
	{"you know the rules and so do i (do i)", SymClose},
}

var (
	bySymbol [256]string
	byPhrase = make(map[string]byte, len(table))
	byLength []Entry
)

func init() {
	for _, entry := range table {
		bySymbol[entry.Symbol] = entry.Phrase
		byPhrase[entry.Phrase] = entry.Symbol
	}
	byLength = slices.Clone(table[:])
	// stable so that equal lengths keep table order
	slices.SortStableFunc(byLength, func(a, b Entry) int {
		return cmp.Compare(len(b.Phrase), len(a.Phrase))
	})
}

// Entries returns the table in its fixed order.
func Entries() []Entry {
	return slices.Clone(table[:])
}

// ByLength returns the entries ordered by descending phrase length, the order
// in which the lyrics encoder tries them.
func ByLength() []Entry {
	return slices.Clone(byLength)
}

func PhraseOf(symbol byte) (string, bool) {
	phrase := bySymbol[symbol]
	return phrase, phrase != ""
}

func SymbolOf(phrase string) (byte, bool) {
	symbol, ok := byPhrase[phrase]
	return symbol, ok
}

func IsSymbol(b byte) bool {
	return bySymbol[b] != ""
}
