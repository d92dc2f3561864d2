package scheduler

// CSCAN sweeps toward the high end, touches the outer boundary, jumps to
// cylinder 0, then keeps sweeping upward through the low-end requests in the
// same ascending direction. The two boundary hops (diskSize-1, then 0) are
// always inserted, even when no low-end requests remain.
func CSCAN(requests []int, head, diskSize int) (order []int, total int) {
	if len(requests) == 0 {
		return []int{head}, 0
	}
	left, right := partition(requests, head)

	order = make([]int, 0, len(requests)+3)
	order = append(order, head)
	order = append(order, right...)
	order = append(order, diskSize-1, 0)
	order = append(order, left...)

	return order, SeekCost(order)
}
