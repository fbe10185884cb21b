// Package order generates the fractional keys that position applications
// within a board column. Keys are base62 strings compared bytewise; the
// alphabet is arranged so lexicographic comparison of keys matches numeric
// comparison of the fractions they encode. Inserting between two existing
// keys never requires touching any other record.
package order

import "strings"

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const base = len(alphabet)

// digitAt returns the alphabet index of s[i], or def past the end of s.
func digitAt(s string, i, def int) int {
	if i < len(s) {
		return strings.IndexByte(alphabet, s[i])
	}
	return def
}

// Between returns a key that sorts strictly between before and after. An
// empty before means the slot is open at the start of the keyspace, an empty
// after means it is open at the end; both empty yields the default initial
// key. Callers must ensure before < after when both are non-empty.
//
// Generated keys never end in the lowest digit, which keeps a midpoint
// available between any two of them.
func Between(before, after string) string {
	p, n := 0, 0
	pos := 0
	for p == n {
		p = digitAt(before, pos, -1)
		n = digitAt(after, pos, base)
		pos++
	}

	var b strings.Builder
	b.WriteString(before[:pos-1])

	if p == -1 {
		// before ran out; skip past any leading low digits in after.
		for n == 0 {
			n = digitAt(after, pos, base)
			pos++
			b.WriteByte(alphabet[0])
		}
		if n == 1 {
			b.WriteByte(alphabet[0])
			n = base
		}
	} else if p+1 == n {
		// Adjacent digits leave no gap at this position. Extend along
		// before until a digit below the maximum opens one.
		b.WriteByte(alphabet[p])
		n = base
		for {
			p = digitAt(before, pos, -1)
			pos++
			if p != base-1 {
				break
			}
			b.WriteByte(alphabet[base-1])
		}
	}

	b.WriteByte(alphabet[(p+n+1)/2])
	return b.String()
}

// AtStart returns a key that sorts before first. Passing an empty string
// yields the default initial key for an empty column.
func AtStart(first string) string {
	return Between("", first)
}

// AtEnd returns a key that sorts after last. Passing an empty string yields
// the default initial key for an empty column.
func AtEnd(last string) string {
	return Between(last, "")
}
