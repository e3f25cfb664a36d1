package seqcmp

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MismatchError describes two sequences that differ.
// Same holds the common leading elements, First and Second hold what
// remains of each sequence after that prefix.
type MismatchError struct {
	Same   []string
	First  []string
	Second []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("sequence not as expected:\n\nsame:\n%s\n\nfirst:\n%s\n\nsecond:\n%s",
		Tuple(e.Same), Tuple(e.First), Tuple(e.Second))
}

// Compare returns nil when first and second are element-wise equal and a
// *MismatchError otherwise.
func Compare(first, second []string) error {
	n := 0
	for n < len(first) && n < len(second) && first[n] == second[n] {
		n++
	}
	if n == len(first) && n == len(second) {
		return nil
	}
	return &MismatchError{
		Same:   clone(first[:n]),
		First:  clone(first[n:]),
		Second: clone(second[n:]),
	}
}

// Tuple renders items as a tuple literal: (), ('a',) or ('a', 'b').
func Tuple(items []string) string {
	switch len(items) {
	case 0:
		return "()"
	case 1:
		return "(" + Quote(items[0]) + ",)"
	}
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = Quote(s)
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}

// Quote renders s as a string literal. Single quotes are preferred; double
// quotes are used when s contains a single quote and no double quote.
func Quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteString(escape(rune(s[i])))
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case !unicode.IsPrint(r):
			b.WriteString(escape(r))
		default:
			b.WriteRune(r)
		}
		i += size
	}
	b.WriteByte(q)
	return b.String()
}

func escape(r rune) string {
	hex := strconv.FormatInt(int64(r), 16)
	switch {
	case r < 0x100:
		return `\x` + strings.Repeat("0", 2-len(hex)) + hex
	case r < 0x10000:
		return `\u` + strings.Repeat("0", 4-len(hex)) + hex
	default:
		return `\U` + strings.Repeat("0", 8-len(hex)) + hex
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
