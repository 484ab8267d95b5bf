package workload

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// GeneratorSpec describes a synthetic customer stream.
// Generation is deterministic for a given spec.
type GeneratorSpec struct {
	Seed int64 `yaml:"seed"`
	// Customers caps how many arrivals are produced.
	Customers int `yaml:"customers" validate:"gt=0"`
	// Horizon, when > 0, stops generation at the first arrival at or past it.
	Horizon int64       `yaml:"horizon,omitempty" validate:"gte=0"`
	Arrival ArrivalSpec `yaml:"arrival"`
	Length  DistSpec    `yaml:"length"`
}

// ArrivalSpec parameterizes the gaps between customers.
type ArrivalSpec struct {
	Process string   `yaml:"process" validate:"oneof=poisson gamma weibull"`
	MeanGap float64  `yaml:"mean_gap" validate:"gt=0"` // ticks
	CV      *float64 `yaml:"cv,omitempty" validate:"omitempty,gt=0"`
}

// DistSpec parameterizes the transaction length distribution.
type DistSpec struct {
	Type   string             `yaml:"type" validate:"oneof=constant exponential gaussian empirical"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadGeneratorSpec strictly parses a YAML generator spec.
func LoadGeneratorSpec(path string) (*GeneratorSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading generator spec %s", path)
	}
	var spec GeneratorSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, errors.Wrapf(err, "parsing generator spec %s", path)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks field ranges and that the length distribution can be built.
func (s *GeneratorSpec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(err, "generator spec")
	}
	if _, err := NewLengthSampler(s.Length); err != nil {
		return errors.Wrap(err, "length distribution")
	}
	return nil
}

// Generate produces arrivals in non-decreasing time order, the first at
// tick 0 plus one sampled gap.
func Generate(spec *GeneratorSpec) ([]Arrival, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}
	rng := NewPartitionedRNG(spec.Seed)
	gapRNG := rng.ForSubsystem(SubsystemArrivals)
	lengthRNG := rng.ForSubsystem(SubsystemLengths)

	gaps := NewInterarrivalSampler(spec.Arrival)
	lengths, err := NewLengthSampler(spec.Length)
	if err != nil {
		return nil, err
	}

	arrivals := make([]Arrival, 0, spec.Customers)
	now := int64(0)
	for len(arrivals) < spec.Customers {
		now += gaps.SampleGap(gapRNG)
		if spec.Horizon > 0 && now >= spec.Horizon {
			break
		}
		arrivals = append(arrivals, Arrival{Time: now, Length: lengths.Sample(lengthRNG)})
	}
	logrus.Debugf("Generated %d arrivals (seed=%d, process=%s, length=%s)",
		len(arrivals), spec.Seed, spec.Arrival.Process, spec.Length.Type)
	return arrivals, nil
}

// WriteArrivals writes one "time length" pair per line, the format ReadArrivals accepts.
func WriteArrivals(w io.Writer, arrivals []Arrival) error {
	bw := bufio.NewWriter(w)
	for _, a := range arrivals {
		if _, err := fmt.Fprintf(bw, "%d %d\n", a.Time, a.Length); err != nil {
			return errors.Wrap(err, "writing arrivals")
		}
	}
	return errors.Wrap(bw.Flush(), "writing arrivals")
}

// ProcessNames lists the accepted arrival processes for help text.
func ProcessNames() string {
	return strings.Join([]string{ProcessPoisson, ProcessGamma, ProcessWeibull}, ", ")
}
