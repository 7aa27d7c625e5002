package circuit

import (
	"strconv"
	"strings"

	"github.com/kegliz/qplay/qc/qerr"
)

// key packs a shot's classical register into a uint64, classical bit 0
// occupying the most-significant of the nrCbits used bits, matching
// original_source/src/circuit.rs's histogram key convention.
func key(row []bool) uint64 {
	var k uint64
	for _, b := range row {
		k <<= 1
		if b {
			k |= 1
		}
	}
	return k
}

// Histogram tallies how many shots produced each distinct classical
// register value, keyed by the packed uint64 from key(). Returns
// qerr.ErrNotExecuted if Execute has not been called.
func (c *Circuit) Histogram() (map[uint64]int, error) {
	if !c.executed {
		return nil, qerr.ErrNotExecuted
	}
	h := make(map[uint64]int)
	for _, row := range c.creg {
		h[key(row)]++
	}
	return h, nil
}

// HistogramVec returns the same counts as Histogram but as a dense slice
// of length 2^nrCbits indexed by the packed register value, convenient
// for callers that want every bucket (including zero-count ones)
// without a map.
func (c *Circuit) HistogramVec() ([]int, error) {
	h, err := c.Histogram()
	if err != nil {
		return nil, err
	}
	vec := make([]int, 1<<uint(c.nrCbits))
	for k, n := range h {
		vec[k] = n
	}
	return vec, nil
}

// HistogramString renders Histogram with string keys instead of packed
// integers: each key is nrCbits characters long, '0'/'1', with the
// first character holding classical bit 0.
func (c *Circuit) HistogramString() (map[string]int, error) {
	h, err := c.Histogram()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(h))
	for k, n := range h {
		out[keyToString(k, c.nrCbits)] = n
	}
	return out, nil
}

// keyToString renders a packed Histogram key as the same nrCbits-wide
// binary string HistogramString uses, for callers that obtained a key
// from Histogram and want the matching textual form.
func keyToString(k uint64, nrCbits int) string {
	s := strconv.FormatUint(k, 2)
	if len(s) < nrCbits {
		s = strings.Repeat("0", nrCbits-len(s)) + s
	}
	return s
}
