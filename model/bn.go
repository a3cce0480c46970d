// Package model composes the graph and estimation layers into the two
// user-facing model types, BN and CTBN. It is the one package allowed to
// import both graph and estimate, and is what supplies estimate's
// graph-agnostic VertexSpec from a concrete graph.DAG.
package model

import (
	"sort"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/data"
	"github.com/johnpierman/pgmgo/dist"
	"github.com/johnpierman/pgmgo/estimate"
	"github.com/johnpierman/pgmgo/graph"
)

// BN is a Bayesian Network: a DAG plus one CPD per vertex, each CPD's
// conditioning set required to equal the vertex's parents exactly.
type BN struct {
	dag  *graph.DAG
	cpds map[string]*dist.CPD

	name        string
	description string
}

// NewBN validates that cpds has exactly one entry per DAG vertex and
// that each CPD's Z labels equal that vertex's parent set, then builds
// the BN.
func NewBN(dag *graph.DAG, cpds map[string]*dist.CPD) (*BN, error) {
	vertices := dag.Vertices()
	if len(cpds) != len(vertices) {
		return nil, containers.ErrInvalidArgument("expected %d CPDs, got %d", len(vertices), len(cpds))
	}

	for _, v := range vertices {
		cpd, ok := cpds[v]
		if !ok {
			return nil, containers.ErrInvalidArgument("missing CPD for vertex %q", v)
		}
		if err := checkParentsMatch(dag.Parents(v), cpd.Z().Labels().Names(), v); err != nil {
			return nil, err
		}
	}

	return &BN{dag: dag, cpds: cpds}, nil
}

// FitBN fits every vertex's CPD from table via estimator and assembles a
// BN, deriving each vertex's parent set from dag.
func FitBN(table *data.CatTable, dag *graph.DAG, estimator estimate.CategoricalEstimator) (*BN, error) {
	cpds, err := estimate.FitBN(table, vertexSpecs(dag), estimator)
	if err != nil {
		return nil, err
	}
	return NewBN(dag, cpds)
}

// ParFitBN is the parallel counterpart of FitBN.
func ParFitBN(table *data.CatTable, dag *graph.DAG, estimator estimate.CategoricalEstimator) (*BN, error) {
	cpds, err := estimate.ParFitBN(table, vertexSpecs(dag), estimator)
	if err != nil {
		return nil, err
	}
	return NewBN(dag, cpds)
}

// Graph returns the network's DAG.
func (bn *BN) Graph() *graph.DAG { return bn.dag }

// CPD returns the CPD for name, if present.
func (bn *BN) CPD(name string) (*dist.CPD, bool) {
	cpd, ok := bn.cpds[name]
	return cpd, ok
}

// Vertices returns the sorted vertex names.
func (bn *BN) Vertices() []string { return bn.dag.Vertices() }

// ParameterSize returns the total number of parameter entries across
// every CPD (rows times columns of each CPD's parameter matrix).
func (bn *BN) ParameterSize() int {
	total := 0
	for _, cpd := range bn.cpds {
		r, c := cpd.Params().Dims()
		total += r * c
	}
	return total
}

// TopologicalOrder delegates to the underlying DAG.
func (bn *BN) TopologicalOrder() ([]string, bool) { return bn.dag.TopologicalOrder() }

// Name and Description return the model's optional metadata.
func (bn *BN) Name() string        { return bn.name }
func (bn *BN) Description() string { return bn.description }

// WithOptionals attaches display metadata, returning the receiver for
// chaining.
func (bn *BN) WithOptionals(name, description string) *BN {
	bn.name = name
	bn.description = description
	return bn
}

func vertexSpecs(dag *graph.DAG) []estimate.VertexSpec {
	vertices := dag.Vertices()
	out := make([]estimate.VertexSpec, len(vertices))
	for i, v := range vertices {
		out[i] = estimate.VertexSpec{Name: v, Parents: dag.Parents(v)}
	}
	return out
}

func checkParentsMatch(parents, evidence []string, vertex string) error {
	a := append([]string(nil), parents...)
	b := append([]string(nil), evidence...)
	sort.Strings(a)
	sort.Strings(b)
	if len(a) != len(b) {
		return containers.ErrInvalidArgument("CPD/CIM evidence does not match parents for %q", vertex)
	}
	for i := range a {
		if a[i] != b[i] {
			return containers.ErrInvalidArgument("CPD/CIM evidence does not match parents for %q", vertex)
		}
	}
	return nil
}
