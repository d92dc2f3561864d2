package scheduler

import "sort"

// partition splits requests around the head: left holds cylinders strictly
// below it, right holds the rest. Both come back sorted ascending.
func partition(requests []int, head int) (left, right []int) {
	left = make([]int, 0, len(requests))
	right = make([]int, 0, len(requests))
	for _, r := range requests {
		if r < head {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	sort.Ints(left)
	sort.Ints(right)
	return left, right
}

// SCAN sweeps toward the high end of the disk, touches the outer boundary
// cylinder (diskSize-1) even when no request sits there, then reverses and
// sweeps down through the remaining requests. The boundary visit is
// unconditional, including when right is empty or a request coincides with it.
func SCAN(requests []int, head, diskSize int) (order []int, total int) {
	if len(requests) == 0 {
		return []int{head}, 0
	}
	left, right := partition(requests, head)

	order = make([]int, 0, len(requests)+2)
	order = append(order, head)
	order = append(order, right...)
	order = append(order, diskSize-1)
	for i := len(left) - 1; i >= 0; i-- {
		order = append(order, left[i])
	}

	return order, SeekCost(order)
}
