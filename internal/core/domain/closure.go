package domain

import "sort"

// ClosureResult is the outcome of one closure expansion: the set of package
// targets transitively required to build the start package, plus counters
// describing how complete the expansion is.
type ClosureResult struct {
	// Visited is the fully expanded set of package targets. No ordering,
	// no duplicates.
	Visited map[PackageTarget]struct{}

	// UnresolvedEdges counts dependency edges whose binary could not be
	// resolved to a source package. Those edges were skipped.
	UnresolvedEdges int

	// Unexpanded lists targets whose build environment could not be
	// fetched in lenient mode. They are part of Visited but contributed no
	// edges.
	Unexpanded []PackageTarget
}

// NewClosureResult creates an empty result.
func NewClosureResult() *ClosureResult {
	return &ClosureResult{Visited: make(map[PackageTarget]struct{})}
}

// Complete reports whether the closure expanded every visited target and
// resolved every edge.
func (r *ClosureResult) Complete() bool {
	return r.UnresolvedEdges == 0 && len(r.Unexpanded) == 0
}

// Sorted returns the visited targets ordered by project, repository and
// package. Only used for stable output; the set itself carries no order.
func (r *ClosureResult) Sorted() []PackageTarget {
	targets := make([]PackageTarget, 0, len(r.Visited))
	for t := range r.Visited {
		targets = append(targets, t)
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].String() < targets[j].String()
	})
	return targets
}
