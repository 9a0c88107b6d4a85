// Package palindrome holds the per-window tests the scanner applies at every
// offset. Everything here is pure and allocation-free.
package palindrome

import (
	"fmt"
	"strings"

	"palscan/core/nucleotide"
)

// Window is a read-only view into a sequence. It never owns its bytes.
type Window []byte

func (w Window) String() string { return string(w) }

// Policy selects how self-complementarity is decided.
type Policy int

const (
	// Bisect requires an even length; the first half must equal the reverse
	// complement of the second half.
	Bisect Policy = iota
	// Pairwise pairs position k with L-1-k for every k. Odd windows pass
	// only when the centre symbol is its own complement (N).
	Pairwise
)

func (p Policy) String() string {
	switch p {
	case Bisect:
		return "bisect"
	case Pairwise:
		return "pairwise"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool { return p == Bisect || p == Pairwise }

// ParsePolicy maps a CLI name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bisect":
		return Bisect, nil
	case "pairwise":
		return Pairwise, nil
	}
	return Bisect, fmt.Errorf("unknown palindrome policy %q (want bisect | pairwise)", s)
}

// Match applies the policy to w.
func (p Policy) Match(w Window) bool {
	if p == Pairwise {
		return IsPalindromePairwise(w)
	}
	return IsPalindrome(w)
}

// IsPalindrome reports whether w is a reverse-complement palindrome under the
// Bisect policy. Odd-length windows are never palindromes.
func IsPalindrome(w Window) bool {
	n := len(w)
	if n%2 != 0 {
		return false
	}
	// first[k] == revcomp(second)[k] == complement(w[n-1-k])
	for i, j := 0, n-1; i < n/2; i, j = i+1, j-1 {
		if w[i] != nucleotide.Complement(w[j]) {
			return false
		}
	}
	return true
}

// IsPalindromePairwise reports whether w[k] == complement(w[L-1-k]) for all k,
// including the centre self-pair of an odd window.
func IsPalindromePairwise(w Window) bool {
	n := len(w)
	for i, j := 0, n-1; i <= j; i, j = i+1, j-1 {
		// Both directions: a non-N wildcard never equals complement(N).
		if w[i] != nucleotide.Complement(w[j]) || w[j] != nucleotide.Complement(w[i]) {
			return false
		}
	}
	return true
}

// IsUninformative reports whether every symbol of w is a wildcard.
// An empty window is uninformative.
func IsUninformative(w Window) bool {
	for _, b := range w {
		if !nucleotide.IsWildcard(b) {
			return false
		}
	}
	return true
}
