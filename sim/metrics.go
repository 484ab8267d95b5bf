// Tracks simulation-wide statistics such as cumulative wait time and the
// number of customers processed, and renders the final report.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	Processed           int   // customers read from the input
	TimeWaited          int64 // sum of per-customer waits charged on arrival
	ArrivalsProcessed   int
	DeparturesProcessed int
	MaxWaitLineLen      int
	SimEndedTime        int64

	Waits []int64 // wait charged to each customer that had to queue, in arrival order
}

// NewMetrics returns zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{Waits: make([]int64, 0)}
}

// AverageWait returns TimeWaited / Processed truncated to two decimals:
// the integer quotient of TimeWaited*100 and Processed, divided by 100.
// Returns 0 when nobody was processed.
func (m *Metrics) AverageWait() float64 {
	if m.Processed == 0 {
		return 0
	}
	return float64((m.TimeWaited*100)/int64(m.Processed)) / 100.0
}

// FormatAverage renders v the way the report prints it: at most six
// significant digits, no trailing zeros ("4", "4.5", "3.33").
func FormatAverage(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Print writes the final statistics block.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Final Statistics:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "   Total number of people processed: %d\n", m.Processed)
	fmt.Fprintf(w, "   Average amount of time spent waiting: %s\n", FormatAverage(m.AverageWait()))
}

// MetricsOutput is the JSON document written by SaveResults.
type MetricsOutput struct {
	RunID               string  `json:"run_id"`
	Processed           int     `json:"processed"`
	TimeWaited          int64   `json:"time_waited"`
	AverageWait         float64 `json:"average_wait"`
	ArrivalsProcessed   int     `json:"arrivals_processed"`
	DeparturesProcessed int     `json:"departures_processed"`
	MaxWaitLineLen      int     `json:"max_wait_line_len"`
	SimEndedTime        int64   `json:"sim_ended_time"`
	QueuedCustomers     int     `json:"queued_customers"`
	QueuedWaitMean      float64 `json:"queued_wait_mean"`
	QueuedWaitP50       float64 `json:"queued_wait_p50"`
	QueuedWaitP90       float64 `json:"queued_wait_p90"`
	QueuedWaitP99       float64 `json:"queued_wait_p99"`
	QueuedWaitMax       float64 `json:"queued_wait_max"`
}

// Output builds the JSON view of the metrics.
// Wait distribution fields cover only customers that had to queue.
func (m *Metrics) Output(runID string) MetricsOutput {
	out := MetricsOutput{
		RunID:               runID,
		Processed:           m.Processed,
		TimeWaited:          m.TimeWaited,
		AverageWait:         m.AverageWait(),
		ArrivalsProcessed:   m.ArrivalsProcessed,
		DeparturesProcessed: m.DeparturesProcessed,
		MaxWaitLineLen:      m.MaxWaitLineLen,
		SimEndedTime:        m.SimEndedTime,
		QueuedCustomers:     len(m.Waits),
	}
	if len(m.Waits) == 0 {
		return out
	}

	sorted := make([]float64, len(m.Waits))
	for i, w := range m.Waits {
		sorted[i] = float64(w)
	}
	slices.Sort(sorted)

	out.QueuedWaitMean = stat.Mean(sorted, nil)
	out.QueuedWaitP50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	out.QueuedWaitP90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	out.QueuedWaitP99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)
	out.QueuedWaitMax = sorted[len(sorted)-1]
	return out
}

// SaveResults writes the metrics as indented JSON to outputFilePath.
func (m *Metrics) SaveResults(runID string, outputFilePath string) error {
	data, err := json.MarshalIndent(m.Output(runID), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	if err := os.WriteFile(outputFilePath, data, 0644); err != nil {
		return fmt.Errorf("write metrics to %s: %w", outputFilePath, err)
	}
	logrus.Infof("Metrics written to: %s", outputFilePath)
	return nil
}
