package workload

import (
	"math"
	"math/rand"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// Transaction length distributions accepted by DistSpec.Type.
const (
	DistConstant    = "constant"
	DistExponential = "exponential"
	DistGaussian    = "gaussian"
	DistEmpirical   = "empirical"
)

// LengthSampler draws transaction lengths in ticks.
type LengthSampler interface {
	// Sample returns a length >= 1.
	Sample(rng *rand.Rand) int64
}

// ConstantSampler always returns the same length.
type ConstantSampler struct {
	value int64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) int64 {
	return atLeastOne(float64(s.value))
}

// ExponentialSampler draws exponential lengths around mean.
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int64 {
	return atLeastOne(rng.ExpFloat64() * s.mean)
}

// GaussianSampler draws normal lengths clamped to [min, max].
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return atLeastOne(float64(s.min))
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	return atLeastOne(math.Min(float64(s.max), math.Max(float64(s.min), val)))
}

// EmpiricalSampler draws from a discrete PDF by inverse CDF.
type EmpiricalSampler struct {
	values []int64   // ascending
	cdf    []float64 // same length as values, last entry 1.0
}

// NewEmpiricalSampler builds a sampler from length → weight. Weights are
// normalized; non-positive weights are skipped.
func NewEmpiricalSampler(pdf map[int64]float64) *EmpiricalSampler {
	keys := make([]int64, 0, len(pdf))
	total := 0.0
	for k, w := range pdf {
		if w <= 0 {
			continue
		}
		keys = append(keys, k)
		total += w
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	s := &EmpiricalSampler{
		values: make([]int64, 0, len(keys)),
		cdf:    make([]float64, 0, len(keys)),
	}
	cumulative := 0.0
	for _, k := range keys {
		cumulative += pdf[k] / total
		s.values = append(s.values, k)
		s.cdf = append(s.cdf, cumulative)
	}
	if n := len(s.cdf); n > 0 {
		s.cdf[n-1] = 1.0
	}
	return s
}

func (s *EmpiricalSampler) Sample(rng *rand.Rand) int64 {
	switch len(s.values) {
	case 0:
		return 1
	case 1:
		return atLeastOne(float64(s.values[0]))
	}
	idx := sort.SearchFloat64s(s.cdf, rng.Float64())
	if idx >= len(s.values) {
		idx = len(s.values) - 1
	}
	return atLeastOne(float64(s.values[idx]))
}

func atLeastOne(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	r := int64(math.Round(v))
	if r < 1 {
		return 1
	}
	return r
}

func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return errors.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// NewLengthSampler creates a LengthSampler from spec.
func NewLengthSampler(spec DistSpec) (LengthSampler, error) {
	switch spec.Type {
	case DistConstant:
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		return &ConstantSampler{value: int64(spec.Params["value"])}, nil

	case DistExponential:
		if err := requireParam(spec.Params, "mean"); err != nil {
			return nil, err
		}
		return &ExponentialSampler{mean: spec.Params["mean"]}, nil

	case DistGaussian:
		if err := requireParam(spec.Params, "mean", "std_dev", "min", "max"); err != nil {
			return nil, err
		}
		min, max := int64(spec.Params["min"]), int64(spec.Params["max"])
		if min > max {
			return nil, errors.Errorf("gaussian min %d exceeds max %d", min, max)
		}
		return &GaussianSampler{
			mean:   spec.Params["mean"],
			stdDev: spec.Params["std_dev"],
			min:    min,
			max:    max,
		}, nil

	case DistEmpirical:
		// params keys are lengths, values are weights
		pdf := make(map[int64]float64, len(spec.Params))
		for k, w := range spec.Params {
			length, err := strconv.ParseInt(k, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "empirical key %q is not an integer", k)
			}
			pdf[length] = w
		}
		sampler := NewEmpiricalSampler(pdf)
		if len(sampler.values) == 0 {
			return nil, errors.New("empirical distribution has no positive weights")
		}
		return sampler, nil

	default:
		return nil, errors.Errorf("unknown distribution type %q", spec.Type)
	}
}
