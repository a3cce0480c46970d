package model

import (
	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/data"
	"github.com/johnpierman/pgmgo/dist"
	"github.com/johnpierman/pgmgo/estimate"
	"github.com/johnpierman/pgmgo/graph"
)

// CTBN is a Continuous-Time Bayesian Network: a DAG plus one CIM per
// vertex, each CIM's conditioning set required to equal the vertex's
// parents exactly.
type CTBN struct {
	dag  *graph.DAG
	cims map[string]*dist.CIM

	name        string
	description string
}

// NewCTBN validates that cims has exactly one entry per DAG vertex and
// that each CIM's Z labels equal that vertex's parent set.
func NewCTBN(dag *graph.DAG, cims map[string]*dist.CIM) (*CTBN, error) {
	vertices := dag.Vertices()
	if len(cims) != len(vertices) {
		return nil, containers.ErrInvalidArgument("expected %d CIMs, got %d", len(vertices), len(cims))
	}

	for _, v := range vertices {
		cim, ok := cims[v]
		if !ok {
			return nil, containers.ErrInvalidArgument("missing CIM for vertex %q", v)
		}
		if err := checkParentsMatch(dag.Parents(v), cim.Z().Labels().Names(), v); err != nil {
			return nil, err
		}
	}

	return &CTBN{dag: dag, cims: cims}, nil
}

// FitCTBN fits every vertex's CIM from coll via estimator and assembles a
// CTBN, deriving each vertex's parent set from dag.
func FitCTBN(coll *data.TrajectoryCollection, dag *graph.DAG, estimator estimate.CIMEstimator) (*CTBN, error) {
	cims, err := estimate.FitCTBN(coll, vertexSpecs(dag), estimator)
	if err != nil {
		return nil, err
	}
	return NewCTBN(dag, cims)
}

// ParFitCTBN is the parallel counterpart of FitCTBN.
func ParFitCTBN(coll *data.TrajectoryCollection, dag *graph.DAG, estimator estimate.CIMEstimator) (*CTBN, error) {
	cims, err := estimate.ParFitCTBN(coll, vertexSpecs(dag), estimator)
	if err != nil {
		return nil, err
	}
	return NewCTBN(dag, cims)
}

// Graph returns the network's DAG.
func (c *CTBN) Graph() *graph.DAG { return c.dag }

// CIM returns the CIM for name, if present.
func (c *CTBN) CIM(name string) (*dist.CIM, bool) {
	cim, ok := c.cims[name]
	return cim, ok
}

// Vertices returns the sorted vertex names.
func (c *CTBN) Vertices() []string { return c.dag.Vertices() }

// ParameterSize returns the total number of generator entries across
// every vertex's CIM, summed over its flat Z configurations.
func (c *CTBN) ParameterSize() int {
	total := 0
	for _, cim := range c.cims {
		zConfigs := 1
		for _, card := range cim.Z().Shape() {
			zConfigs *= card
		}
		for zi := 0; zi < zConfigs; zi++ {
			r, cc := cim.Slice(zi).Dims()
			total += r * cc
		}
	}
	return total
}

// TopologicalOrder delegates to the underlying DAG.
func (c *CTBN) TopologicalOrder() ([]string, bool) { return c.dag.TopologicalOrder() }

// Name and Description return the model's optional metadata.
func (c *CTBN) Name() string        { return c.name }
func (c *CTBN) Description() string { return c.description }

// WithOptionals attaches display metadata, returning the receiver for
// chaining.
func (c *CTBN) WithOptionals(name, description string) *CTBN {
	c.name = name
	c.description = description
	return c
}
