package sim

// RoutingPolicy decides which teller Resource a newly arrived customer
// will queue at. The decision is made once, at dispatch time, and is
// never revisited even if a shorter queue appears later.
type RoutingPolicy interface {
	Pick(tellers []*Resource) *Resource
}

// SharedQueue routes every customer to the single pooled Resource that
// models one line feeding all tellers.
type SharedQueue struct{}

// Pick implements RoutingPolicy for SharedQueue.
func (SharedQueue) Pick(tellers []*Resource) *Resource {
	if len(tellers) == 0 {
		panic("SharedQueue.Pick: empty teller pool")
	}
	return tellers[0]
}

// ShortestQueue routes to the teller whose wait queue currently has the
// fewest pending customers. Ties are broken by first occurrence in pool
// order (lowest index).
type ShortestQueue struct{}

// Pick implements RoutingPolicy for ShortestQueue.
func (ShortestQueue) Pick(tellers []*Resource) *Resource {
	if len(tellers) == 0 {
		panic("ShortestQueue.Pick: empty teller pool")
	}

	target := tellers[0]
	minLen := target.QueueLen()

	for _, r := range tellers[1:] {
		if l := r.QueueLen(); l < minLen {
			minLen = l
			target = r
		}
	}
	return target
}
