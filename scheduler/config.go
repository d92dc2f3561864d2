package scheduler

// RunConfig holds one scheduling scenario: the pending cylinder requests,
// the head's starting cylinder, and the disk size (exclusive upper bound on
// addressable cylinders, used by SCAN and C-SCAN for the traversal boundary).
type RunConfig struct {
	Requests []int `json:"requests" yaml:"requests"`
	Head     int   `json:"head" yaml:"head"`
	DiskSize int   `json:"diskSize" yaml:"diskSize"`
}

// DefaultConfig returns the classic textbook workload: seven requests,
// head at 50, a 200-cylinder disk.
func DefaultConfig() RunConfig {
	return RunConfig{
		Requests: []int{82, 170, 43, 140, 24, 16, 190},
		Head:     50,
		DiskSize: 200,
	}
}

// Validate checks if configuration values are reasonable. The engine itself
// never bounds-checks its arguments; this is the boundary check callers run
// on parsed input. A head beyond diskSize is deliberately allowed (the
// boundary math still executes), negatives are not.
func (c *RunConfig) Validate() error {
	if c.DiskSize < 1 {
		return ErrInvalidConfig("diskSize must be >= 1")
	}
	if c.Head < 0 {
		return ErrInvalidConfig("head must be >= 0")
	}
	for _, r := range c.Requests {
		if r < 0 {
			return ErrInvalidConfig("requests must be >= 0")
		}
	}
	return nil
}
