package scheduler

// SeekCost sums the absolute cylinder distance between consecutive positions
// in a visit order. An order with fewer than two positions costs nothing.
func SeekCost(order []int) int {
	total := 0
	for i := 1; i < len(order); i++ {
		total += abs(order[i] - order[i-1])
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
