package estimate

import (
	"sync"

	"github.com/johnpierman/pgmgo/containers"
	"github.com/johnpierman/pgmgo/data"
	"github.com/johnpierman/pgmgo/dist"
	"github.com/johnpierman/pgmgo/suffstat"
)

// VertexSpec names one vertex and its parent set, the minimal input the
// blanket composer needs — it is deliberately graph-agnostic so this
// package never imports the graph package.
type VertexSpec struct {
	Name    string
	Parents []string
}

// CategoricalEstimator fits one vertex's CPD from its sufficient
// statistics; MLECategorical and a BayesianCategorical closure both
// satisfy it.
type CategoricalEstimator func(stats *suffstat.CategoricalStats) (*dist.CPD, error)

// FitBN fits every vertex's CPD serially, in the given vertex order.
func FitBN(table *data.CatTable, vertices []VertexSpec, estimator CategoricalEstimator) (map[string]*dist.CPD, error) {
	out := make(map[string]*dist.CPD, len(vertices))
	for _, v := range vertices {
		cpd, err := fitOneCategorical(table, v, estimator)
		if err != nil {
			return nil, err
		}
		out[v.Name] = cpd
	}
	return out, nil
}

// ParFitBN fits every vertex's CPD concurrently; each goroutine writes
// only its own slot of pre-sized slices, and the output map is built
// serially after all of them finish, so the result is independent of
// completion order and identical to FitBN's.
func ParFitBN(table *data.CatTable, vertices []VertexSpec, estimator CategoricalEstimator) (map[string]*dist.CPD, error) {
	out := make(map[string]*dist.CPD, len(vertices))
	errs := make([]error, len(vertices))
	cpds := make([]*dist.CPD, len(vertices))

	var wg sync.WaitGroup
	for i, v := range vertices {
		wg.Add(1)
		go func(i int, v VertexSpec) {
			defer wg.Done()
			cpd, err := fitOneCategorical(table, v, estimator)
			cpds[i] = cpd
			errs[i] = err
		}(i, v)
	}
	wg.Wait()

	for i, v := range vertices {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out[v.Name] = cpds[i]
	}
	return out, nil
}

func fitOneCategorical(table *data.CatTable, v VertexSpec, estimator CategoricalEstimator) (*dist.CPD, error) {
	x, err := containers.NewLabels([]string{v.Name})
	if err != nil {
		return nil, err
	}
	z, err := containers.NewLabels(v.Parents)
	if err != nil {
		return nil, err
	}
	stats, err := FitCategoricalStats(table, x, z)
	if err != nil {
		return nil, err
	}
	return estimator(stats)
}

// FitCategoricalStats is the sufficient-statistics step used by
// FitBN/ParFitBN: complete-table counts from suffstat.FitCategorical. It
// takes no missing-data method or other SSE configuration.
func FitCategoricalStats(table *data.CatTable, x, z containers.Labels) (*suffstat.CategoricalStats, error) {
	return suffstat.FitCategorical(table, x, z)
}

// CIMEstimator fits one vertex's CIM from its sufficient statistics.
type CIMEstimator func(stats *suffstat.TrajectoryStats) (*dist.CIM, error)

// FitCTBN fits every vertex's CIM serially over a trajectory collection.
func FitCTBN(coll *data.TrajectoryCollection, vertices []VertexSpec, estimator CIMEstimator) (map[string]*dist.CIM, error) {
	out := make(map[string]*dist.CIM, len(vertices))
	for _, v := range vertices {
		cim, err := fitOneCIM(coll, v, estimator)
		if err != nil {
			return nil, err
		}
		out[v.Name] = cim
	}
	return out, nil
}

// ParFitCTBN is the parallel counterpart of FitCTBN.
func ParFitCTBN(coll *data.TrajectoryCollection, vertices []VertexSpec, estimator CIMEstimator) (map[string]*dist.CIM, error) {
	out := make(map[string]*dist.CIM, len(vertices))
	errs := make([]error, len(vertices))
	cims := make([]*dist.CIM, len(vertices))

	var wg sync.WaitGroup
	for i, v := range vertices {
		wg.Add(1)
		go func(i int, v VertexSpec) {
			defer wg.Done()
			cim, err := fitOneCIM(coll, v, estimator)
			cims[i] = cim
			errs[i] = err
		}(i, v)
	}
	wg.Wait()

	for i, v := range vertices {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out[v.Name] = cims[i]
	}
	return out, nil
}

func fitOneCIM(coll *data.TrajectoryCollection, v VertexSpec, estimator CIMEstimator) (*dist.CIM, error) {
	x, err := containers.NewLabels([]string{v.Name})
	if err != nil {
		return nil, err
	}
	z, err := containers.NewLabels(v.Parents)
	if err != nil {
		return nil, err
	}
	stats, err := suffstat.FitTrajectoryCollection(coll, x, z)
	if err != nil {
		return nil, err
	}
	return estimator(stats)
}
