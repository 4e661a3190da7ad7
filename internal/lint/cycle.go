package lint

import (
	"strings"

	"github.com/roach88/afmkit/afm"
)

// measureGraph maps a measure local identifier to the measures it is derived from.
type measureGraph map[string][]string

// derivedFrom lists the measures d is computed from.
func derivedFrom(d afm.MeasureDefinition) []string {
	if am, ok := as[afm.ArithmeticMeasure](d); ok {
		return am.MeasureIdentifiers
	}
	if pm, ok := as[afm.PopMeasure](d); ok {
		return []string{pm.MeasureIdentifier}
	}
	if pp, ok := as[afm.PreviousPeriodMeasure](d); ok {
		return []string{pp.MeasureIdentifier}
	}
	return nil
}

// checkCycles reports every group of derived measures that reference each
// other, including a measure derived from itself.
func (l *linter) checkCycles(measures []afm.Measure) {
	graph := make(measureGraph)
	var order []string
	for _, m := range measures {
		if m.LocalIdentifier == "" {
			continue
		}
		if _, seen := graph[m.LocalIdentifier]; seen {
			continue
		}
		order = append(order, m.LocalIdentifier)
		var edges []string
		for _, id := range derivedFrom(m.Definition) {
			if l.measures[id] {
				edges = append(edges, id)
			}
		}
		graph[m.LocalIdentifier] = edges
	}

	for _, scc := range stronglyConnected(graph, order) {
		if len(scc) == 1 && !graph.selfLoop(scc[0]) {
			continue
		}
		path := append(append([]string{}, scc...), scc[0])
		l.add(ErrCyclicReference, "afm.measures", "derived measures form a cycle: %s", strings.Join(path, " -> "))
	}
}

func (g measureGraph) selfLoop(id string) bool {
	for _, next := range g[id] {
		if next == id {
			return true
		}
	}
	return false
}

// stronglyConnected runs Tarjan's algorithm, visiting roots in order so the
// result is deterministic. Components come out in reverse topological order
// and each lists its members in visiting order.
func stronglyConnected(g measureGraph, order []string) [][]string {
	var (
		counter int
		stack   []string
		index   = make(map[string]int)
		low     = make(map[string]int)
		onStack = make(map[string]bool)
		out     [][]string
	)

	var visit func(v string)
	visit = func(v string) {
		index[v] = counter
		low[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g[v] {
			if _, seen := index[w]; !seen {
				visit(w)
				low[v] = min(low[v], low[w])
			} else if onStack[w] {
				low[v] = min(low[v], index[w])
			}
		}

		if low[v] != index[v] {
			return
		}
		var scc []string
		for {
			w := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		// popped in reverse visiting order
		for i, j := 0, len(scc)-1; i < j; i, j = i+1, j-1 {
			scc[i], scc[j] = scc[j], scc[i]
		}
		out = append(out, scc)
	}

	for _, v := range order {
		if _, seen := index[v]; !seen {
			visit(v)
		}
	}
	return out
}

