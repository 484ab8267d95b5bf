package workload

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Arrival processes accepted by ArrivalSpec.Process.
const (
	ProcessPoisson = "poisson"
	ProcessGamma   = "gamma"
	ProcessWeibull = "weibull"
)

// InterarrivalSampler draws the gap in ticks between consecutive customers.
type InterarrivalSampler interface {
	// SampleGap returns a gap >= 0. Zero means two customers walk in on the same tick.
	SampleGap(rng *rand.Rand) int64
}

// PoissonSampler draws exponential gaps (CV = 1).
type PoissonSampler struct {
	mean float64 // mean gap in ticks
}

func (s *PoissonSampler) SampleGap(rng *rand.Rand) int64 {
	return int64(rng.ExpFloat64() * s.mean)
}

// GammaSampler draws Gamma gaps. CV > 1 gives bursts of customers.
type GammaSampler struct {
	shape float64 // 1/CV²
	scale float64 // mean * CV²
}

func (s *GammaSampler) SampleGap(rng *rand.Rand) int64 {
	return int64(gammaRand(rng, s.shape, s.scale))
}

// gammaRand samples Gamma(shape, scale) with Marsaglia-Tsang. Shapes below 1
// use Gamma(a) = Gamma(a+1) * U^(1/a).
func gammaRand(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1.0 {
		u := rng.Float64()
		return gammaRand(rng, shape+1.0, scale) * math.Pow(u, 1.0/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// WeibullSampler draws Weibull gaps by inverse CDF.
type WeibullSampler struct {
	shape float64 // k
	scale float64 // λ in ticks
}

func (s *WeibullSampler) SampleGap(rng *rand.Rand) int64 {
	u := rng.Float64()
	if u == 0 {
		u = math.SmallestNonzeroFloat64 // -ln(0) = +Inf
	}
	return int64(s.scale * math.Pow(-math.Log(u), 1.0/s.shape))
}

// NewInterarrivalSampler builds the sampler for spec. spec must have passed Validate.
func NewInterarrivalSampler(spec ArrivalSpec) InterarrivalSampler {
	mean := spec.MeanGap
	cv := 1.0
	if spec.CV != nil && *spec.CV > 0 {
		cv = *spec.CV
	}
	switch spec.Process {
	case ProcessGamma:
		shape := 1.0 / (cv * cv)
		if shape < 0.01 {
			logrus.Warnf("Gamma shape %.4f (CV=%.1f) is very small; falling back to Poisson", shape, cv)
			return &PoissonSampler{mean: mean}
		}
		return &GammaSampler{shape: shape, scale: mean * cv * cv}
	case ProcessWeibull:
		k := weibullShapeFromCV(cv)
		return &WeibullSampler{shape: k, scale: mean / math.Gamma(1.0+1.0/k)}
	default:
		return &PoissonSampler{mean: mean}
	}
}

// weibullShapeFromCV bisects k ∈ [0.1, 100] until the Weibull CV is within
// 0.001 of target.
func weibullShapeFromCV(target float64) float64 {
	lo, hi := 0.1, 100.0
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2.0
		cv := weibullCV(mid)
		if math.Abs(cv-target) < 0.001 {
			return mid
		}
		// CV decreases as k grows
		if cv > target {
			lo = mid
		} else {
			hi = mid
		}
	}
	logrus.Warnf("weibullShapeFromCV: no convergence for CV=%.3f; using k=%.3f", target, (lo+hi)/2.0)
	return (lo + hi) / 2.0
}

func weibullCV(k float64) float64 {
	g1 := math.Gamma(1.0 + 1.0/k)
	g2 := math.Gamma(1.0 + 2.0/k)
	return math.Sqrt(g2/(g1*g1) - 1.0)
}
