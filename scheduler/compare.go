package scheduler

import "sync"

// PolicyResult is one policy's outcome over a shared input: the visit order,
// its seek cost, and the derived metrics. Err carries a per-entry failure
// marker (e.g. metrics over an empty request list) without suppressing the
// order itself.
type PolicyResult struct {
	Policy   Policy   `json:"algorithm"`
	Order    []int    `json:"order"`
	SeekCost int      `json:"totalSeekTime"`
	Metrics  *Metrics `json:"metrics,omitempty"`
	Err      string   `json:"error,omitempty"`
}

// ComparisonResult maps policy display names to their results over one
// shared (requests, head, diskSize) input.
type ComparisonResult map[string]PolicyResult

// runPolicy executes a single policy and derives its metrics.
func runPolicy(p Policy, requests []int, head, diskSize int) PolicyResult {
	order, total := Schedule(p, requests, head, diskSize)
	result := PolicyResult{
		Policy:   p,
		Order:    order,
		SeekCost: total,
	}

	metrics, err := ComputeMetrics(total, len(requests))
	if err != nil {
		result.Err = err.Error()
		return result
	}
	result.Metrics = &metrics
	return result
}

// CompareAll runs every policy over the identical input and collects their
// results side by side. The policies share the request slice read-only and
// have no data dependency on one another, so they fan out across goroutines;
// placement is keyed by policy identity, not completion order. A failing
// metrics step in one entry never blocks the other three.
func CompareAll(requests []int, head, diskSize int) ComparisonResult {
	results := make([]PolicyResult, len(AllPolicies))

	var wg sync.WaitGroup
	for i, p := range AllPolicies {
		wg.Add(1)
		go func(i int, p Policy) {
			defer wg.Done()
			results[i] = runPolicy(p, requests, head, diskSize)
		}(i, p)
	}
	wg.Wait()

	comparison := make(ComparisonResult, len(AllPolicies))
	for _, r := range results {
		comparison[r.Policy.String()] = r
	}
	return comparison
}
