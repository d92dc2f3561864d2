package scheduler

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
)

// DistributionType selects how synthetic request cylinders are spread across
// the disk
type DistributionType int

const (
	DistUniform     DistributionType = iota // Even spread over the whole disk
	DistExponential                         // Skewed toward the low cylinders
	DistGeometric                           // Heavily skewed toward the low cylinders
)

// String returns the string representation of DistributionType
func (dt DistributionType) String() string {
	switch dt {
	case DistUniform:
		return "uniform"
	case DistExponential:
		return "exponential"
	case DistGeometric:
		return "geometric"
	default:
		return fmt.Sprintf("unknown(%d)", int(dt))
	}
}

// ParseDistributionType parses a string into a DistributionType
func ParseDistributionType(s string) (DistributionType, error) {
	switch s {
	case "uniform":
		return DistUniform, nil
	case "exponential":
		return DistExponential, nil
	case "geometric":
		return DistGeometric, nil
	default:
		return DistUniform, fmt.Errorf("invalid DistributionType: %s (must be 'uniform', 'exponential', or 'geometric')", s)
	}
}

// MarshalJSON implements json.Marshaler for DistributionType
func (dt DistributionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(dt.String())
}

// UnmarshalJSON implements json.Unmarshaler for DistributionType
func (dt *DistributionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDistributionType(s)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// Distribution interface for sampling cylinder numbers
type Distribution interface {
	Sample(rng *rand.Rand, min, max int) int
}

// UniformDistribution samples uniformly between min and max
type UniformDistribution struct{}

func (d *UniformDistribution) Sample(rng *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// ExponentialDistribution samples with exponential bias toward min
type ExponentialDistribution struct {
	Lambda float64 // Rate parameter (higher = more skewed toward min)
}

func (d *ExponentialDistribution) Sample(rng *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}

	// Inverse transform sampling: X = -ln(U) / lambda
	u := rng.Float64()
	if u == 0 {
		u = 1e-10 // Avoid log(0)
	}
	x := -math.Log(u) / d.Lambda

	// Clamp at the ~95th percentile so the tail still maps into range
	maxVal := 6.0 / d.Lambda
	normalized := x / maxVal
	if normalized > 1.0 {
		normalized = 1.0
	}

	return min + int(normalized*float64(max-min))
}

// GeometricDistribution samples with geometric distribution
type GeometricDistribution struct {
	P float64 // Success probability (higher = more skewed toward min)
}

func (d *GeometricDistribution) Sample(rng *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}

	u := rng.Float64()
	if u == 0 {
		u = 1e-10 // Avoid log(0)
	}
	if u >= 1.0 {
		u = 0.999999 // Avoid log(1-u) = log(0)
	}

	// Failures before first success: floor(log(1-u) / log(1-p))
	trials := 0
	if d.P > 0 && d.P < 1 {
		trials = int(math.Log(1-u) / math.Log(1-d.P))
		if trials < 0 {
			trials = 0
		}
	}

	if trials > max-min {
		trials = max - min
	}
	return min + trials
}

// NewDistribution creates a distribution based on type
func NewDistribution(distType DistributionType) Distribution {
	switch distType {
	case DistExponential:
		return &ExponentialDistribution{Lambda: 0.5}
	case DistGeometric:
		return &GeometricDistribution{P: 0.3}
	default:
		return &UniformDistribution{}
	}
}

// WorkloadConfig describes a synthetic request workload: how many cylinders
// to draw, from what size disk, under which spread. Seed 0 means a random
// source (non-reproducible).
type WorkloadConfig struct {
	Count        int              `json:"count" yaml:"count"`
	DiskSize     int              `json:"diskSize" yaml:"diskSize"`
	Distribution DistributionType `json:"distribution" yaml:"distribution"`
	Seed         int64            `json:"seed" yaml:"seed"`
}

// GenerateRequests draws a synthetic request list over [0, diskSize).
// The uniform case draws distinct cylinders (a shuffled prefix); the skewed
// cases sample independently and may repeat, which the engine preserves.
func GenerateRequests(cfg WorkloadConfig) ([]int, error) {
	if cfg.Count < 1 {
		return nil, ErrInvalidConfig("workload count must be >= 1")
	}
	if cfg.DiskSize < 1 {
		return nil, ErrInvalidConfig("workload diskSize must be >= 1")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	if cfg.Distribution == DistUniform && cfg.Count <= cfg.DiskSize {
		perm := rng.Perm(cfg.DiskSize)
		return perm[:cfg.Count], nil
	}

	dist := NewDistribution(cfg.Distribution)
	requests := make([]int, cfg.Count)
	for i := range requests {
		requests[i] = dist.Sample(rng, 0, cfg.DiskSize-1)
	}
	return requests, nil
}
