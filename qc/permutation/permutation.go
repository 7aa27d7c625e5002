// Package permutation implements the bit-permutation mapping (spec §4.3)
// used to reshape a 2^N-dimensional state so that a set of "affected"
// qubits occupies the most significant index bits, in the order given.
package permutation

import "sort"

// Permutation maps index i (in the natural ordering) to P[i], the index
// it is moved to in the permuted ordering.
type Permutation struct {
	// forward[i] gives the destination slot for source index i.
	forward []int
	// inverse[i] gives the source index that ends up at slot i.
	inverse []int
}

// sortKey extracts the bits of idx at the positions listed in affected
// (most significant bit of affected first), producing the integer that
// orders basis states by their values on the affected qubits first.
func sortKey(idx, nrBits int, affected []int) int {
	res := 0
	for _, b := range affected {
		shift := nrBits - b - 1
		res = (res << 1) | ((idx >> shift) & 1)
	}
	return res
}

// New builds the permutation of [0, 2^nrBits) that places the qubits in
// affected (in the given order) into the high-order bits of the result
// index, followed by the remaining qubits in ascending order.
//
// The construction computes a stable sort key per index from the
// affected-bit pattern, stable-sorts indices by that key, and inverts
// the resulting order: idxs[k] is the original index whose affected bits
// equal the k-th pattern (in ascending order), so slot k in the permuted
// layout holds what used to be at idxs[k].
func New(nrBits int, affected []int) *Permutation {
	n := 1 << uint(nrBits)
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	keys := make([]int, n)
	for i, idx := range idxs {
		keys[i] = sortKey(idx, nrBits, affected)
	}
	sort.SliceStable(idxs, func(a, b int) bool { return keys[idxs[a]] < keys[idxs[b]] })

	inverse := make([]int, n)
	copy(inverse, idxs)
	forward := make([]int, n)
	for slot, src := range inverse {
		forward[src] = slot
	}
	return &Permutation{forward: forward, inverse: inverse}
}

// Len returns the size of the permuted domain, 2^nrBits.
func (p *Permutation) Len() int { return len(p.forward) }

// At returns the destination slot that source index i is moved to.
func (p *Permutation) At(i int) int { return p.forward[i] }

// InverseAt returns the source index that ends up at destination slot i.
func (p *Permutation) InverseAt(i int) int { return p.inverse[i] }

// PermuteVec returns a new slice with dst[p.At(i)] = src[i] for all i.
func PermuteVec(p *Permutation, src []complex128) []complex128 {
	dst := make([]complex128, len(src))
	for i, x := range src {
		dst[p.At(i)] = x
	}
	return dst
}

// UnpermuteVec returns a new slice with dst[i] = src[p.At(i)] for all i,
// i.e. the inverse of PermuteVec.
func UnpermuteVec(p *Permutation, src []complex128) []complex128 {
	dst := make([]complex128, len(src))
	for i := range dst {
		dst[i] = src[p.At(i)]
	}
	return dst
}

// TransformMat conjugates matrix m (size n x n, n = p.Len()) by this
// permutation: result[p.At(i)][p.At(j)] = m[i][j], moving a natural-layout
// matrix into the permuted layout.
func TransformMat(p *Permutation, m [][]complex128) [][]complex128 {
	n := p.Len()
	res := make([][]complex128, n)
	for i := range res {
		res[i] = make([]complex128, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res[p.At(i)][p.At(j)] = m[i][j]
		}
	}
	return res
}
