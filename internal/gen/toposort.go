package gen

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"uml-generator/internal/uml"
)

// errCycle is returned by topoSort when the dependencies contain a cycle.
var errCycle = errors.New("cycle detected")

// topoSort returns indices in dependency order.
//
// Nodes are by index in the input slice.
// depsFn(i) yields indices that must come before i.
//
// The result is deterministic: when multiple nodes are available, we pick the
// smallest index. If a cycle exists, errCycle is returned along with the
// indices that could not be ordered.
func topoSort(n int, depsFn func(i int) []int) ([]int, []int, error) {
	if n <= 0 {
		return nil, nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		var stuck []int

		for i := range n {
			if indeg[i] > 0 {
				stuck = append(stuck, i)
			}
		}

		return nil, stuck, errCycle
	}

	return order, nil, nil
}

// classOrder orders classes so that every class follows its supertypes,
// keeping model order otherwise. Generated package variables may not form an
// initialization cycle, so a generalization cycle is an error here.
func classOrder(classes []*uml.Class) ([]int, error) {
	index := make(map[*uml.Class]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	order, stuck, err := topoSort(len(classes), func(i int) []int {
		var deps []int

		for _, g := range classes[i].Generalization {
			if j, ok := index[g]; ok && j != i {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if errors.Is(err, errCycle) {
		names := make([]string, 0, len(stuck))
		for _, i := range stuck {
			names = append(names, classes[i].Name)
		}

		return nil, fmt.Errorf("generalization cycle among classes %s: %w", strings.Join(names, ", "), err)
	}

	return order, err
}
