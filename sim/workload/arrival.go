// Package workload reads bank customer arrivals from text input and
// generates synthetic ones.
//
// Input is a stream of whitespace-separated integers taken two at a time as
// (arrival time, transaction length). Line breaks carry no meaning.
// Generated streams are written in the same format.
package workload

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Arrival is one customer record from the input.
type Arrival struct {
	Time   int64 // tick the customer walks in
	Length int64 // ticks of service the customer needs
}

// ReadArrivals parses (arrival time, transaction length) pairs from r until EOF.
// A malformed or negative integer is an error. A final unpaired value is
// dropped with a warning.
func ReadArrivals(r io.Reader) ([]Arrival, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var arrivals []Arrival
	var pending []int64
	tokenIdx := 0
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "token %d: invalid integer %q", tokenIdx, tok)
		}
		if v < 0 {
			return nil, errors.Errorf("token %d: value %d must be non-negative", tokenIdx, v)
		}
		tokenIdx++

		pending = append(pending, v)
		if len(pending) == 2 {
			arrivals = append(arrivals, Arrival{Time: pending[0], Length: pending[1]})
			pending = pending[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading arrivals")
	}
	if len(pending) > 0 {
		logrus.Warnf("Ignoring unpaired trailing value %d (token %d)", pending[0], tokenIdx-1)
	}
	logrus.Debugf("Parsed %d arrivals from %d tokens", len(arrivals), tokenIdx)
	return arrivals, nil
}

// LoadArrivals reads arrivals from the file at path.
func LoadArrivals(path string) ([]Arrival, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening arrivals file %s", path)
	}
	defer file.Close() //nolint:errcheck // read-only file

	arrivals, err := ReadArrivals(file)
	if err != nil {
		return nil, errors.Wrapf(err, "arrivals file %s", path)
	}
	return arrivals, nil
}
