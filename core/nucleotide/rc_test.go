// core/nucleotide/rc_test.go
package nucleotide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplementPairs(t *testing.T) {
	cases := map[byte]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'N': 'N', '?': 'N'}
	for in, want := range cases {
		assert.Equalf(t, want, Complement(in), "Complement(%q)", in)
	}
}

func TestComplementInvolution(t *testing.T) {
	for _, b := range []byte("ACGT") {
		require.Equal(t, b, Complement(Complement(b)))
	}
	assert.Equal(t, Wildcard, Complement(Wildcard))
}

func TestComplementUnknownIsWildcard(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch b {
		case 'A', 'C', 'G', 'T':
			assert.False(t, IsWildcard(b))
		default:
			assert.Equalf(t, Wildcard, Complement(b), "byte %d", i)
			assert.True(t, IsWildcard(b))
		}
	}
}

func TestRevCompSimple(t *testing.T) {
	assert.Equal(t, "CTAT", string(RevComp([]byte("ATAG"))))
	assert.Equal(t, "GACT", string(RevComp([]byte("AGTC"))))
}

func TestRevCompEmpty(t *testing.T) {
	assert.Nil(t, RevComp(nil))
	assert.Empty(t, RevComp([]byte("")))
}
