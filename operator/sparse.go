package operator

import (
	"math"
	"sort"
)

// Sparse is an explicit sparse matrix operator. Entries are staged in a
// dictionary-of-keys map via Set/Add and compiled lazily into CSR form on
// the first Apply after a mutation, so construction order does not matter
// and Apply runs in O(nnz).
//
// Sparse is not safe for concurrent mutation. Compilation happens inside
// the first Apply after a mutation, so complete one Apply before sharing
// the operator across goroutines; after that, concurrent Apply calls are
// safe.
type Sparse struct {
	rows, cols int

	entries map[[2]int]float64

	// compiled CSR form; rebuilt when dirty.
	rowPtr []int
	colIdx []int
	val    []float64
	dirty  bool
}

// NewSparse returns an empty rows×cols sparse operator.
// Returns ErrBadShape when either dimension is non-positive.
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Sparse{
		rows:    rows,
		cols:    cols,
		entries: make(map[[2]int]float64),
		dirty:   true,
	}, nil
}

// InDim returns the column count.
func (s *Sparse) InDim() int { return s.cols }

// OutDim returns the row count.
func (s *Sparse) OutDim() int { return s.rows }

// NonZeros reports the number of stored entries.
func (s *Sparse) NonZeros() int { return len(s.entries) }

// Set stores v at (i, j), replacing any previous entry; v == 0 removes it.
// Returns ErrOutOfRange for a bad index and ErrNotFinite for NaN/±Inf.
func (s *Sparse) Set(i, j int, v float64) error {
	if err := s.checkIndex(i, j); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNotFinite
	}
	if v == 0 {
		delete(s.entries, [2]int{i, j})
	} else {
		s.entries[[2]int{i, j}] = v
	}
	s.dirty = true

	return nil
}

// Add accumulates v onto the entry at (i, j).
func (s *Sparse) Add(i, j int, v float64) error {
	if err := s.checkIndex(i, j); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNotFinite
	}

	return s.Set(i, j, s.entries[[2]int{i, j}]+v)
}

// At returns the entry at (i, j), zero when absent.
func (s *Sparse) At(i, j int) (float64, error) {
	if err := s.checkIndex(i, j); err != nil {
		return 0, err
	}

	return s.entries[[2]int{i, j}], nil
}

// Apply computes dst = A·src over the compiled CSR form.
func (s *Sparse) Apply(dst, src []float64) error {
	if err := checkApply(dst, src, s.cols, s.rows); err != nil {
		return err
	}
	if s.dirty {
		s.compile()
	}

	for i := 0; i < s.rows; i++ {
		sum := 0.0
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			sum += s.val[k] * src[s.colIdx[k]]
		}
		dst[i] = sum
	}

	return nil
}

func (s *Sparse) checkIndex(i, j int) error {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return ErrOutOfRange
	}

	return nil
}

// compile flattens the DOK map into CSR with deterministic (row, col) order.
func (s *Sparse) compile() {
	keys := make([][2]int, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}

		return keys[a][1] < keys[b][1]
	})

	s.rowPtr = make([]int, s.rows+1)
	s.colIdx = make([]int, len(keys))
	s.val = make([]float64, len(keys))
	for n, k := range keys {
		s.rowPtr[k[0]+1]++
		s.colIdx[n] = k[1]
		s.val[n] = s.entries[k]
	}
	for i := 1; i <= s.rows; i++ {
		s.rowPtr[i] += s.rowPtr[i-1]
	}
	s.dirty = false
}
