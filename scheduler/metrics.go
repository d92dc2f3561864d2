package scheduler

// Metrics holds the derived statistics for a single scheduling run.
// Throughput here is requests serviced per unit of seek distance, not per
// unit of wall time.
type Metrics struct {
	TotalSeekTime   int     `json:"totalSeekTime"`   // Sum of head movement across the visit order
	AverageSeekTime float64 `json:"averageSeekTime"` // TotalSeekTime / request count
	Throughput      float64 `json:"throughput"`      // Request count / TotalSeekTime (0 when cost-free)
}

// ComputeMetrics derives run metrics from a policy's total seek cost and the
// number of requests it serviced.
//
// A zero request count makes average and throughput undefined and returns
// ErrEmptyInput. A zero total with a nonzero request count is a cost-free
// run: throughput is reported as 0 by policy, not as a failure.
func ComputeMetrics(total, requestCount int) (Metrics, error) {
	if requestCount == 0 {
		return Metrics{}, ErrEmptyInput
	}

	m := Metrics{
		TotalSeekTime:   total,
		AverageSeekTime: float64(total) / float64(requestCount),
	}
	if total != 0 {
		m.Throughput = float64(requestCount) / float64(total)
	}
	return m, nil
}
