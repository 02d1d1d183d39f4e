package valence

import (
	"sort"

	"github.com/katalvlaran/krylov/solve"
)

// Spreading defaults.
const (
	// DefaultPower is the spreading power used by Spread.
	DefaultPower = 10
	// DefaultTrust is the seed trust used by the trust-less Add methods.
	DefaultTrust = 1.0
)

type seedEntry struct {
	score float64
	trust float64
}

// Spreader is the domain-level façade over MultipartiteMatrix: it maps term
// and document identifiers to matrix indices, builds and solves the
// two-group (terms, documents) diffusion problem, and reports the spread
// scores keyed back by identifier.
//
// The identifier-to-index mapping is rebuilt from scratch on every
// SpreadValence call — the builder methods may be interleaved with spreads.
// Index assignment is deterministic: terms and documents are sorted.
type Spreader struct {
	termSeeds map[string]seedEntry
	docSeeds  map[string]seedEntry
	content   map[string]map[string]float64 // document → term → weight
}

// NewSpreader returns an empty spreader.
func NewSpreader() *Spreader {
	return &Spreader{
		termSeeds: make(map[string]seedEntry),
		docSeeds:  make(map[string]seedEntry),
		content:   make(map[string]map[string]float64),
	}
}

// AddWeightedTerm seeds term with score at DefaultTrust.
func (s *Spreader) AddWeightedTerm(term string, score float64) {
	s.termSeeds[term] = seedEntry{score: score, trust: DefaultTrust}
}

// AddWeightedTermTrust seeds term with score at an explicit trust.
// Returns ErrBadTrust when trust ≤ 0; the prior seed (if any) is retained.
func (s *Spreader) AddWeightedTermTrust(term string, score, trust float64) error {
	if trust <= 0 {
		return ErrBadTrust
	}
	s.termSeeds[term] = seedEntry{score: score, trust: trust}

	return nil
}

// AddWeightedDocument seeds doc with score at DefaultTrust.
func (s *Spreader) AddWeightedDocument(doc string, score float64) {
	s.docSeeds[doc] = seedEntry{score: score, trust: DefaultTrust}
}

// AddWeightedDocumentTrust seeds doc with score at an explicit trust.
// Returns ErrBadTrust when trust ≤ 0; the prior seed (if any) is retained.
func (s *Spreader) AddWeightedDocumentTrust(doc string, score, trust float64) error {
	if trust <= 0 {
		return ErrBadTrust
	}
	s.docSeeds[doc] = seedEntry{score: score, trust: trust}

	return nil
}

// AddDocumentTermOccurrences registers doc's content as raw term
// occurrences: each listed term adds edge weight 1, and repeated mentions
// (in one call or across calls) accumulate.
func (s *Spreader) AddDocumentTermOccurrences(doc string, terms ...string) {
	row := s.contentRow(doc)
	for _, term := range terms {
		row[term]++
	}
}

// AddDocumentTermWeights registers doc's content as explicit term weights,
// accumulating onto any previously registered weights.
func (s *Spreader) AddDocumentTermWeights(doc string, weights map[string]float64) {
	row := s.contentRow(doc)
	for term, w := range weights {
		row[term] += w
	}
}

// TermSeeds returns a copy of the current term seed scores.
func (s *Spreader) TermSeeds() map[string]float64 { return seedScores(s.termSeeds) }

// DocumentSeeds returns a copy of the current document seed scores.
func (s *Spreader) DocumentSeeds() map[string]float64 { return seedScores(s.docSeeds) }

// CenterWeightsRange independently rescales the term-seed scores and the
// document-seed scores so each set spans linearly from -1 (its minimum) to
// +1 (its maximum). An empty set is a no-op; a set whose scores are all
// equal (including a single seed) maps to 0 rather than dividing by a zero
// range.
func (s *Spreader) CenterWeightsRange() {
	centerSeeds(s.termSeeds)
	centerSeeds(s.docSeeds)
}

// Spread diffuses with DefaultPower.
func (s *Spreader) Spread() (*Result, error) {
	return s.SpreadValence(DefaultPower)
}

// SpreadValence assigns sorted deterministic indices to all terms and
// documents, builds the two-group MultipartiteMatrix, seeds it, solves the
// diffusion system with conjugate gradient and returns the spread scores.
//
// Errors: ErrBadPower when power ≤ 0; ErrEmptyModel when no terms or no
// documents are registered; construction errors from the matrix and solver
// propagate unchanged.
func (s *Spreader) SpreadValence(power int) (*Result, error) {
	if power <= 0 {
		return nil, ErrBadPower
	}

	terms, docs := s.collect()
	if len(terms) == 0 || len(docs) == 0 {
		return nil, ErrEmptyModel
	}
	termIdx := indexOf(terms)
	docIdx := indexOf(docs)

	m, err := NewMultipartiteMatrix([]int{len(terms), len(docs)}, power)
	if err != nil {
		return nil, err
	}
	for doc, row := range s.content {
		for term, w := range row {
			if err = m.AddRelationship(0, termIdx[term], 1, docIdx[doc], w); err != nil {
				return nil, err
			}
		}
	}
	for term, sd := range s.termSeeds {
		if err = m.SetElementScore(0, termIdx[term], sd.trust, sd.score); err != nil {
			return nil, err
		}
	}
	for doc, sd := range s.docSeeds {
		if err = m.SetElementScore(1, docIdx[doc], sd.trust, sd.score); err != nil {
			return nil, err
		}
	}

	rhs, err := m.Init()
	if err != nil {
		return nil, err
	}
	cg, err := solve.NewConjugateGradient(rhs, rhs)
	if err != nil {
		return nil, err
	}
	solved, err := cg.Learn(m)
	if err != nil {
		return nil, err
	}

	res := &Result{
		terms:      make(map[string]float64, len(terms)),
		documents:  make(map[string]float64, len(docs)),
		converged:  cg.ResultValid(),
		iterations: cg.Iteration(),
	}
	for i, term := range terms {
		res.terms[term] = solved.Output[i]
	}
	for j, doc := range docs {
		res.documents[doc] = solved.Output[len(terms)+j]
	}

	return res, nil
}

// contentRow returns the (lazily created) weight row for doc.
func (s *Spreader) contentRow(doc string) map[string]float64 {
	row, ok := s.content[doc]
	if !ok {
		row = make(map[string]float64)
		s.content[doc] = row
	}

	return row
}

// collect gathers the sorted term and document identifier universes:
// seeded identifiers plus every identifier mentioned in content.
func (s *Spreader) collect() (terms, docs []string) {
	termSet := make(map[string]struct{})
	docSet := make(map[string]struct{})
	for term := range s.termSeeds {
		termSet[term] = struct{}{}
	}
	for doc := range s.docSeeds {
		docSet[doc] = struct{}{}
	}
	for doc, row := range s.content {
		docSet[doc] = struct{}{}
		for term := range row {
			termSet[term] = struct{}{}
		}
	}

	terms = make([]string, 0, len(termSet))
	for term := range termSet {
		terms = append(terms, term)
	}
	docs = make([]string, 0, len(docSet))
	for doc := range docSet {
		docs = append(docs, doc)
	}
	sort.Strings(terms)
	sort.Strings(docs)

	return terms, docs
}

func indexOf(ids []string) map[string]int {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	return idx
}

func seedScores(seeds map[string]seedEntry) map[string]float64 {
	scores := make(map[string]float64, len(seeds))
	for id, sd := range seeds {
		scores[id] = sd.score
	}

	return scores
}

func centerSeeds(seeds map[string]seedEntry) {
	if len(seeds) == 0 {
		return
	}

	first := true
	var lo, hi float64
	for _, sd := range seeds {
		if first {
			lo, hi = sd.score, sd.score
			first = false

			continue
		}
		if sd.score < lo {
			lo = sd.score
		}
		if sd.score > hi {
			hi = sd.score
		}
	}

	for id, sd := range seeds {
		if hi == lo {
			sd.score = 0
		} else {
			sd.score = -1 + 2*(sd.score-lo)/(hi-lo)
		}
		seeds[id] = sd
	}
}

// Result maps diffused scores back to the caller's identifiers. The maps
// returned by Terms and Documents are owned by the Result; callers must
// not mutate them while reading scores.
type Result struct {
	terms      map[string]float64
	documents  map[string]float64
	converged  bool
	iterations int
}

// TermScore returns the diffused score for term and whether it was known.
func (r *Result) TermScore(term string) (float64, bool) {
	v, ok := r.terms[term]

	return v, ok
}

// DocumentScore returns the diffused score for doc and whether it was known.
func (r *Result) DocumentScore(doc string) (float64, bool) {
	v, ok := r.documents[doc]

	return v, ok
}

// Terms returns every term score.
func (r *Result) Terms() map[string]float64 { return r.terms }

// Documents returns every document score.
func (r *Result) Documents() map[string]float64 { return r.documents }

// Converged reports whether the underlying solve converged within its
// iteration budget (solver result validity).
func (r *Result) Converged() bool { return r.converged }

// Iterations reports how many solver iterations the spread used.
func (r *Result) Iterations() int { return r.iterations }
