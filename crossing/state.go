// This file declares the packed search state: which agents remain on the
// source side and which side currently holds the enabling resource.
package crossing

// resourceSide locates the enabling resource.
type resourceSide uint8

const (
	// sideSource: the resource sits on the source side; only forward
	// crossings may originate.
	sideSource resourceSide = iota

	// sideDest: the resource sits on the destination side; only return
	// crossings may originate.
	sideDest
)

// state is the immutable identity of a search configuration.
//
// Bit i of src is set iff the agent with sorted index i is still on the
// source side; the destination-side set is always the complement, so it is
// never stored. Two states compare equal iff (src, res) match — the cost
// accumulated to reach a state is deliberately not part of its identity,
// since different paths may reach the same configuration at different
// costs and must be compared against each other.
//
// state is a comparable value type and is used directly as a map key for
// deduplication during the search.
type state struct {
	src uint64       // source-side membership mask
	res resourceSide // side currently holding the resource
}

// goal reports whether every agent has reached the destination side with
// the resource.
func (s state) goal() bool {
	return s.src == 0 && s.res == sideDest
}

// fullMask returns the membership mask with the n lowest bits set.
// n is pre-validated to 1..MaxAgents.
func fullMask(n int) uint64 {
	if n >= MaxAgents {
		return ^uint64(0)
	}

	return (uint64(1) << uint(n)) - 1
}

// bitOf returns the membership bit for sorted agent index i.
func bitOf(i int) uint64 {
	return uint64(1) << uint(i)
}

// maskOf returns the membership mask covering all given agent indices.
func maskOf(members []int) uint64 {
	var m uint64
	for _, i := range members {
		m |= bitOf(i)
	}

	return m
}
