package scheduler

// FCFS services requests in exact arrival order with no reordering.
// This is the baseline policy: the visit order is the head position followed
// by the requests as given.
func FCFS(requests []int, head int) (order []int, total int) {
	order = make([]int, 0, len(requests)+1)
	order = append(order, head)
	order = append(order, requests...)
	return order, SeekCost(order)
}
