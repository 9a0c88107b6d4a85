package engine

import "palscan/core/palindrome"

// Hit is one qualifying offset. Window aliases the scanned sequence.
type Hit struct {
	Offset int
	Window palindrome.Window
}
