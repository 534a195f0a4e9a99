package ltl

// MutualExclusion compiles a set of propositions that may not hold together.
//
// It returns the disjunction "p1 | p2 | ... | pn" and the conjunction of
// "!(pi & pj)" over every unordered pair, enumerated with i ascending and j
// running from i+1. Callers assert the disjunction only where "at least one"
// is wanted; the pairs alone encode "at most one".
//
// With fewer than two propositions pairs is empty.
func MutualExclusion(props []string) (either, pairs string) {
	terms := make([]string, 0, len(props)*(len(props)-1)/2+1)
	for i := range props {
		for j := i + 1; j < len(props); j++ {
			terms = append(terms, NotGroup(And(props[i], props[j])))
		}
	}
	return Or(props...), And(terms...)
}

// PairCount is the number of pairwise terms MutualExclusion emits for n propositions.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
