package valence

import (
	"math"
	"sort"
	"sync"

	"github.com/viterin/vek"
)

// DefaultWorkers is the apply-time worker pool size when WithWorkers is not
// supplied: purely sequential.
const DefaultWorkers = 1

const panicWorkersInvalid = "valence: WithWorkers: worker count must be at least 1"

// Option configures a MultipartiteMatrix at construction.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*MultipartiteMatrix)

// WithWorkers sets the fixed worker-pool size used to parallelize Apply
// across element rows. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(m *MultipartiteMatrix) { m.workers = n }
}

// MultipartiteMatrix represents a weighted multipartite graph as an
// implicit linear operator. Elements are addressed by (group, index) and
// flattened to 0..Elements()-1 in group order; edges may only connect
// elements in different groups. See the package documentation for the
// operator semantics.
//
// Lifecycle: build (AddRelationship / SetElementScore) → Init (exactly
// once) → Apply. Mutations after Init fail with ErrAlreadyInitialized.
type MultipartiteMatrix struct {
	sizes   []int
	offsets []int
	total   int
	power   int
	workers int

	edges map[[2]int]float64
	trust []float64
	seed  []float64

	// frozen CSR adjacency, built by Init.
	rowPtr []int
	colIdx []int
	weight []float64
	degree []float64
	maxRow int

	initialized bool
}

// NewMultipartiteMatrix constructs a matrix over the declared partition.
// groupSizes lists the ordered group sizes; power is the spreading
// exponent (ErrBadPower when ≤ 0).
func NewMultipartiteMatrix(groupSizes []int, power int, opts ...Option) (*MultipartiteMatrix, error) {
	if power <= 0 {
		return nil, ErrBadPower
	}
	if len(groupSizes) == 0 {
		return nil, ErrBadGroupSizes
	}

	offsets := make([]int, len(groupSizes))
	total := 0
	for g, size := range groupSizes {
		if size <= 0 {
			return nil, ErrBadGroupSizes
		}
		offsets[g] = total
		total += size
	}

	m := &MultipartiteMatrix{
		sizes:   append([]int(nil), groupSizes...),
		offsets: offsets,
		total:   total,
		power:   power,
		workers: DefaultWorkers,
		edges:   make(map[[2]int]float64),
		trust:   make([]float64, total),
		seed:    make([]float64, total),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Elements reports the total element count across all groups.
func (m *MultipartiteMatrix) Elements() int { return m.total }

// Groups reports the number of groups in the partition.
func (m *MultipartiteMatrix) Groups() int { return len(m.sizes) }

// Power reports the configured spreading power.
func (m *MultipartiteMatrix) Power() int { return m.power }

// InDim returns the total element count; the operator is square.
func (m *MultipartiteMatrix) InDim() int { return m.total }

// OutDim returns the total element count; the operator is square.
func (m *MultipartiteMatrix) OutDim() int { return m.total }

// AddRelationship records a symmetric weighted edge between element indexA
// of groupA and element indexB of groupB. Repeated edges accumulate.
//
// Errors: ErrAlreadyInitialized after Init, ErrNotFinite for NaN/±Inf
// weight, ErrOutOfRange for bad indices, ErrSameGroup when groupA == groupB.
func (m *MultipartiteMatrix) AddRelationship(groupA, indexA, groupB, indexB int, weight float64) error {
	if m.initialized {
		return ErrAlreadyInitialized
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrNotFinite
	}
	a, err := m.flatten(groupA, indexA)
	if err != nil {
		return err
	}
	b, err := m.flatten(groupB, indexB)
	if err != nil {
		return err
	}
	if groupA == groupB {
		return ErrSameGroup
	}

	if a > b {
		a, b = b, a
	}
	m.edges[[2]int{a, b}] += weight

	return nil
}

// SetElementScore seeds the element at (group, index) with a score and a
// trust weight. Re-seeding an element replaces both values.
//
// Errors: ErrAlreadyInitialized after Init, ErrBadTrust when trust ≤ 0,
// ErrNotFinite for NaN/±Inf, ErrOutOfRange for bad indices.
func (m *MultipartiteMatrix) SetElementScore(group, index int, trust, score float64) error {
	if m.initialized {
		return ErrAlreadyInitialized
	}
	if math.IsNaN(trust) || math.IsInf(trust, 0) || math.IsNaN(score) || math.IsInf(score, 0) {
		return ErrNotFinite
	}
	if trust <= 0 {
		return ErrBadTrust
	}
	i, err := m.flatten(group, index)
	if err != nil {
		return err
	}

	m.trust[i] = trust
	m.seed[i] = score

	return nil
}

// Init freezes the graph, compiles the adjacency into CSR form and returns
// the right-hand side vector b[i] = trust[i]·seed[i]. It must be called
// exactly once; pass the returned vector to the solver as both initial
// guess and target. Returns ErrAlreadyInitialized on a second call.
func (m *MultipartiteMatrix) Init() ([]float64, error) {
	if m.initialized {
		return nil, ErrAlreadyInitialized
	}
	m.compile()
	m.initialized = true

	rhs := make([]float64, m.total)
	for i := range rhs {
		rhs[i] = m.trust[i] * m.seed[i]
	}

	return rhs, nil
}

// Apply evaluates the implicit system matrix against src, partitioning the
// rows across the worker pool. Results are independent of the pool size.
func (m *MultipartiteMatrix) Apply(dst, src []float64) error {
	if !m.initialized {
		return ErrNotInitialized
	}
	if len(src) != m.total || len(dst) != m.total {
		return ErrDimensionMismatch
	}

	if m.workers == 1 {
		m.applyRows(dst, src, 0, m.total)

		return nil
	}

	var wg sync.WaitGroup
	chunk := (m.total + m.workers - 1) / m.workers
	for lo := 0; lo < m.total; lo += chunk {
		hi := lo + chunk
		if hi > m.total {
			hi = m.total
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			m.applyRows(dst, src, lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return nil
}

// applyRows evaluates rows [lo, hi). Each call owns a disjoint span of dst
// and a private gather scratch, so concurrent calls never race.
func (m *MultipartiteMatrix) applyRows(dst, src []float64, lo, hi int) {
	p := float64(m.power)
	scratch := make([]float64, m.maxRow)
	for i := lo; i < hi; i++ {
		start, end := m.rowPtr[i], m.rowPtr[i+1]
		sum := 0.0
		if nnz := end - start; nnz > 0 {
			s := scratch[:nnz]
			for k := 0; k < nnz; k++ {
				s[k] = src[m.colIdx[start+k]]
			}
			sum = vek.Dot(m.weight[start:end], s)
		}
		dst[i] = (m.trust[i]+m.degree[i]/p)*src[i] - sum/p
	}
}

func (m *MultipartiteMatrix) flatten(group, index int) (int, error) {
	if group < 0 || group >= len(m.sizes) || index < 0 || index >= m.sizes[group] {
		return 0, ErrOutOfRange
	}

	return m.offsets[group] + index, nil
}

// compile flattens the symmetric edge map into CSR with deterministic
// (row, col) ordering and accumulates the absolute weighted degrees.
func (m *MultipartiteMatrix) compile() {
	type entry struct {
		row, col int
		w        float64
	}
	entries := make([]entry, 0, 2*len(m.edges))
	for key, w := range m.edges {
		entries = append(entries, entry{key[0], key[1], w}, entry{key[1], key[0], w})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].row != entries[b].row {
			return entries[a].row < entries[b].row
		}

		return entries[a].col < entries[b].col
	})

	// Degrees sum in sorted (row, col) order so identical graphs compile
	// to bitwise-identical operators regardless of insertion order.
	m.degree = make([]float64, m.total)
	m.rowPtr = make([]int, m.total+1)
	m.colIdx = make([]int, len(entries))
	m.weight = make([]float64, len(entries))
	for n, e := range entries {
		m.rowPtr[e.row+1]++
		m.colIdx[n] = e.col
		m.weight[n] = e.w
		m.degree[e.row] += math.Abs(e.w)
	}
	m.maxRow = 0
	for i := 1; i <= m.total; i++ {
		if m.rowPtr[i] > m.maxRow {
			m.maxRow = m.rowPtr[i]
		}
		m.rowPtr[i] += m.rowPtr[i-1]
	}
}
