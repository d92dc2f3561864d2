package scheduler

// SSTF services the nearest pending request next (greedy nearest neighbor).
// Ties on distance go to the earliest remaining request, matching controller
// behavior rather than a globally optimal tour. O(n^2), fine at tens of
// requests. The caller's slice is never modified; selection works on a copy.
func SSTF(requests []int, head int) (order []int, total int) {
	pending := make([]int, len(requests))
	copy(pending, requests)

	order = make([]int, 0, len(requests)+1)
	order = append(order, head)
	current := head

	for len(pending) > 0 {
		nearest := 0
		for i := 1; i < len(pending); i++ {
			if abs(pending[i]-current) < abs(pending[nearest]-current) {
				nearest = i
			}
		}
		current = pending[nearest]
		order = append(order, current)
		pending = append(pending[:nearest], pending[nearest+1:]...)
	}

	return order, SeekCost(order)
}
