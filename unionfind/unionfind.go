package unionfind

import "fmt"

// New returns a UF over the universe [0, n) with every element in its own
// singleton component.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n) time and memory.
func New(n int) (*UF, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	uf := &UF{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Size reports the number of elements in the universe.
func (uf *UF) Size() int {
	return len(uf.parent)
}

// Count reports the number of disjoint components.
// It starts at Size() and drops by one on every Union that merges.
func (uf *UF) Count() int {
	return uf.count
}

// Find returns the root of p's component.
// Returns ErrElementOutOfRange if p is not in [0, Size()).
// Complexity: O(α(n)) amortized.
func (uf *UF) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.root(p), nil
}

// Connected reports whether p and q belong to the same component.
// Complexity: O(α(n)) amortized.
func (uf *UF) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// Union merges the components containing p and q. Merging two elements that
// are already connected is a no-op.
// Complexity: O(α(n)) amortized.
func (uf *UF) Union(p, q int) error {
	if err := uf.validate(p); err != nil {
		return err
	}
	if err := uf.validate(q); err != nil {
		return err
	}

	rootP, rootQ := uf.root(p), uf.root(q)
	if rootP == rootQ {
		return nil
	}
	// Attach the smaller tree under the larger root.
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return nil
}

// root walks to p's root, halving the path as it goes.
// p must already be validated.
func (uf *UF) root(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

func (uf *UF) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrElementOutOfRange, p, len(uf.parent))
	}

	return nil
}
