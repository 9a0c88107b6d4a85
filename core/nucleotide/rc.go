// core/nucleotide/rc.go
package nucleotide

// Wildcard is the sentinel every unrecognized symbol maps to.
const Wildcard byte = 'N'

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = Wildcard
	}
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// Complement returns the Watson-Crick partner of b.
// Anything outside A/C/G/T (including N) maps to N.
func Complement(b byte) byte { return complement[b] }

// IsWildcard reports whether b carries no base information.
func IsWildcard(b byte) bool { return complement[b] == Wildcard }

// RevComp returns the reverse complement of seq as a new slice.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}
