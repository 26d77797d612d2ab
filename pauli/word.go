// SPDX-License-Identifier: MIT

// Package pauli: Word parsing, formatting, and structural predicates.
package pauli

import (
	"fmt"
	"strings"
)

// ParseWord parses a textual Pauli string such as "XIZY" into a Word.
// Lowercase letters are accepted; any other rune yields ErrBadAxis and the
// empty string yields ErrEmptyWord.
//
// Complexity: O(n) time, O(n) space for n qubit positions.
func ParseWord(s string) (Word, error) {
	if len(s) == 0 {
		return nil, ErrEmptyWord
	}

	w := make(Word, 0, len(s))
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'I':
			w = append(w, I)
		case 'X':
			w = append(w, X)
		case 'Y':
			w = append(w, Y)
		case 'Z':
			w = append(w, Z)
		default:
			return nil, fmt.Errorf("ParseWord(%q): rune %q: %w", s, r, ErrBadAxis)
		}
	}

	return w, nil
}

// MustWord is ParseWord that panics on error; intended for fixtures and
// compile-time-known literals where a malformed word is programmer error.
func MustWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}

	return w
}

// Identity returns the all-identity word of the given width.
func Identity(width int) Word {
	if width <= 0 {
		return nil
	}

	return make(Word, width)
}

// String renders w in its canonical letter form, e.g. "XIZY".
func (w Word) String() string {
	var b strings.Builder
	b.Grow(len(w))
	for _, a := range w {
		b.WriteString(a.String())
	}

	return b.String()
}

// IsIdentity reports whether every position of w is the identity axis.
func (w Word) IsIdentity() bool {
	for _, a := range w {
		if a != I {
			return false
		}
	}

	return true
}

// Support returns the number of non-identity positions of w.
func (w Word) Support() int {
	n := 0
	for _, a := range w {
		if a != I {
			n++
		}
	}

	return n
}

// Equal reports whether w and v are the same word (same length, same axes).
func (w Word) Equal(v Word) bool {
	if len(w) != len(v) {
		return false
	}
	for i := range w {
		if w[i] != v[i] {
			return false
		}
	}

	return true
}

// Less orders words lexicographically by axis value (I < X < Y < Z), with
// shorter words first on a common prefix. Used for canonical term order.
func (w Word) Less(v Word) bool {
	n := len(w)
	if len(v) < n {
		n = len(v)
	}
	for i := 0; i < n; i++ {
		if w[i] != v[i] {
			return w[i] < v[i]
		}
	}

	return len(w) < len(v)
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	if w == nil {
		return nil
	}
	out := make(Word, len(w))
	copy(out, w)

	return out
}

// validateWord checks w against an expected width.
func validateWord(w Word, width int) error {
	if len(w) == 0 {
		return ErrEmptyWord
	}
	if len(w) != width {
		return fmt.Errorf("word %q has length %d, want %d: %w", w.String(), len(w), width, ErrWidthMismatch)
	}
	for _, a := range w {
		if a > Z {
			return ErrBadAxis
		}
	}

	return nil
}
