package scheduler

import (
	"encoding/json"
	"fmt"
)

// Policy identifies a disk-head scheduling policy
type Policy int

const (
	PolicyFCFS  Policy = iota // First-Come-First-Served (baseline, input order)
	PolicySSTF                // Shortest-Seek-Time-First (greedy nearest neighbor)
	PolicySCAN                // Elevator sweep: up to the boundary, then reverse
	PolicyCSCAN               // Circular sweep: up to the boundary, jump to 0, continue up
)

// AllPolicies lists every policy in fixed reporting order
var AllPolicies = []Policy{PolicyFCFS, PolicySSTF, PolicySCAN, PolicyCSCAN}

// String returns the string representation of Policy
func (p Policy) String() string {
	switch p {
	case PolicyFCFS:
		return "FCFS"
	case PolicySSTF:
		return "SSTF"
	case PolicySCAN:
		return "SCAN"
	case PolicyCSCAN:
		return "C-SCAN"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ParsePolicy parses a string into Policy
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "FCFS":
		return PolicyFCFS, nil
	case "SSTF":
		return PolicySSTF, nil
	case "SCAN":
		return PolicySCAN, nil
	case "C-SCAN", "CSCAN":
		return PolicyCSCAN, nil
	default:
		return PolicyFCFS, fmt.Errorf("invalid policy: %s (must be 'FCFS', 'SSTF', 'SCAN', or 'C-SCAN')", s)
	}
}

// MarshalJSON implements json.Marshaler for Policy
func (p Policy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler for Policy
func (p *Policy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Schedule dispatches to the policy's scheduling function. diskSize is
// accepted uniformly even though FCFS and SSTF ignore it.
func Schedule(p Policy, requests []int, head, diskSize int) (order []int, total int) {
	switch p {
	case PolicySSTF:
		return SSTF(requests, head)
	case PolicySCAN:
		return SCAN(requests, head, diskSize)
	case PolicyCSCAN:
		return CSCAN(requests, head, diskSize)
	default:
		return FCFS(requests, head)
	}
}
