package graph

// InternNode returns the dense integer ID for name, assigning a new one
// (equal to the current Size) the first time name is seen. Repeated calls
// with the same name are idempotent and return the same ID.
//
// Complexity: O(1) amortized.
func (g *Graph) InternNode(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.namesIndex[name]; ok {
		return id, nil
	}

	id := len(g.names)
	g.names = append(g.names, name)
	g.namesIndex[name] = id
	g.inc = append(g.inc, nil)

	return id, nil
}

// Name returns the external name originally interned for id.
func (g *Graph) Name(id int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.names) {
		return "", ErrNodeNotFound
	}

	return g.names[id], nil
}

// AddEdge interns u and v if necessary, appends a new Edge(u, v, p, q) to
// the edge list, and registers it in both endpoints' incidence lists. The
// returned edge ID is the edge's index in the insertion-ordered edge list,
// as accepted by Edge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(uName, vName string, p, q int) (int, error) {
	uID, err := g.InternNode(uName)
	if err != nil {
		return 0, err
	}
	vID, err := g.InternNode(vName)
	if err != nil {
		return 0, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	eid := len(g.edges)
	g.edges = append(g.edges, Edge{U: uID, V: vID, P: p, Q: q})
	g.inc[uID] = append(g.inc[uID], eid)
	if vID != uID {
		g.inc[vID] = append(g.inc[vID], eid)
	}

	return eid, nil
}

// Size returns the number of interned nodes.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.names)
}

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edge returns the eid-th edge, in insertion order.
func (g *Graph) Edge(eid int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if eid < 0 || eid >= len(g.edges) {
		return Edge{}, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Incident returns the edge IDs incident to node v, in the order they were
// added. The returned slice is owned by the caller (a fresh copy).
func (g *Graph) Incident(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.inc) {
		return nil
	}

	out := make([]int, len(g.inc[v]))
	copy(out, g.inc[v])

	return out
}

// Solid reports whether edge eid is a main-strand edge (Q == 1).
func (g *Graph) Solid(eid int) bool {
	e, err := g.Edge(eid)
	if err != nil {
		return false
	}

	return e.Solid()
}
