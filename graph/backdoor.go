package graph

// IsBackdoorSet reports whether z is a valid backdoor adjustment set for
// (x, y): z must contain no vertex of the proper causal path PCP(x, y)
// and no descendant of one, and must d-separate x from y in the proper
// backdoor graph.
func (d *DAG) IsBackdoorSet(x, y, z []string) bool {
	pcp := d.properCausalPath(x, y)
	pde := d.descendantsOf(pcp)

	for _, name := range z {
		if pde[name] {
			return false
		}
	}

	pdb := d.properBackdoorGraph(x, pcp)
	return pdb.DSeparated(x, y, z)
}

// MinimalBackdoorSet reduces a known-valid backdoor set z to a minimal
// one by repeatedly dropping a vertex whenever the remainder is still a
// backdoor set, restricted to candidates outside pDe(PCP(x,y)).
func (d *DAG) MinimalBackdoorSet(x, y, z []string) []string {
	remaining := append([]string(nil), z...)
	for changed := true; changed; {
		changed = false
		for i := range remaining {
			trial := dropAt(remaining, i)
			if d.IsBackdoorSet(x, y, trial) {
				remaining = trial
				changed = true
				break
			}
		}
	}
	return remaining
}

// IsMinimalBackdoorSet reports whether z is a backdoor set for (x, y) with
// no proper subset that is also a backdoor set: a minimality check on a
// candidate adjustment set, rather than a search for one.
func (d *DAG) IsMinimalBackdoorSet(x, y, z []string) bool {
	if !d.IsBackdoorSet(x, y, z) {
		return false
	}
	for i := range z {
		if d.IsBackdoorSet(x, y, dropAt(z, i)) {
			return false
		}
	}
	return true
}

func dropAt(s []string, i int) []string {
	out := make([]string, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

// properCausalPath returns PCP(X,Y): vertices on a directed path from X
// to Y that passes through no vertex of X itself.
func (d *DAG) properCausalPath(x, y []string) []string {
	xSet := d.indexSet(x)
	toY := d.ancestralSet(d.indexSet(y))
	reach := make(map[int]bool)

	for xi := range xSet {
		stack := []int{xi}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range d.childIndices(v) {
				if xSet[w] || reach[w] {
					continue
				}
				reach[w] = true
				stack = append(stack, w)
			}
		}
	}

	names := d.labels.Names()
	var out []string
	for i := range reach {
		if toY[i] {
			out = append(out, names[i])
		}
	}
	return out
}

// descendantsOf returns every vertex in names together with all of its
// descendants, as a membership set.
func (d *DAG) descendantsOf(names []string) map[string]bool {
	out := make(map[string]bool)
	for _, name := range names {
		out[name] = true
		for _, desc := range d.Descendants(name) {
			out[desc] = true
		}
	}
	return out
}

// properBackdoorGraph returns a copy of d with every edge from x into pcp
// removed.
func (d *DAG) properBackdoorGraph(x, pcp []string) *DAG {
	out := &DAG{labels: d.labels, adj: d.ToAdjacencyMatrix()}
	for _, from := range x {
		i := out.labels.IndexOf(from)
		if i < 0 {
			continue
		}
		for _, to := range pcp {
			j := out.labels.IndexOf(to)
			if j < 0 {
				continue
			}
			out.adj[i][j] = false
		}
	}
	return out
}
