package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/bank-sim/bank-sim/sim"
	"github.com/bank-sim/bank-sim/sim/workload"
)

func TestRunSimulation_TwoCustomers_FullReport(t *testing.T) {
	// GIVEN arrivals (0,10) and (1,5)
	arrivals := []workload.Arrival{{Time: 0, Length: 10}, {Time: 1, Length: 5}}
	var out bytes.Buffer

	// WHEN the simulation runs with default configuration
	err := runSimulation(sim.DefaultConfig(), arrivals, &out)

	// THEN stdout carries the complete report
	require.NoError(t, err)
	want := "Simulation Begins\n" +
		"Processing an arrival event at time:   0\n" +
		"Processing an arrival event at time:   1\n" +
		"Processing a departure event at time:  10\n" +
		"Processing a departure event at time:  15\n" +
		"Simulation Ends\n" +
		"\n" +
		"Final Statistics:\n" +
		"\n" +
		"   Total number of people processed: 2\n" +
		"   Average amount of time spent waiting: 4.5\n"
	assert.Equal(t, want, out.String())
}

func TestRunSimulation_TraceEvents_AppendsSummary(t *testing.T) {
	arrivals := []workload.Arrival{{Time: 0, Length: 10}, {Time: 1, Length: 5}}
	var out bytes.Buffer

	err := runSimulation(sim.Config{TraceLevel: "events"}, arrivals, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "=== Event Trace Summary ===")
	assert.Contains(t, out.String(), "Served from line     : 1")
	assert.Contains(t, out.String(), "Max time in line     : 9 ticks")
}

func TestRunSimulation_ResultsPath_WritesJSONWithRunID(t *testing.T) {
	// GIVEN a results path
	path := filepath.Join(t.TempDir(), "results.json")
	cfg := sim.Config{ResultsPath: path}
	arrivals := []workload.Arrival{{Time: 0, Length: 10}, {Time: 1, Length: 5}}

	// WHEN the simulation runs
	require.NoError(t, runSimulation(cfg, arrivals, &bytes.Buffer{}))

	// THEN the results file holds the metrics and a valid run ID
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var output sim.MetricsOutput
	require.NoError(t, json.Unmarshal(data, &output))
	assert.Equal(t, 2, output.Processed)
	assert.Equal(t, int64(9), output.TimeWaited)
	assert.Equal(t, 4.5, output.AverageWait)
	_, err = uuid.Parse(output.RunID)
	assert.NoError(t, err, "run_id must be a UUID")
}

func TestRunSimulation_BoundedCapacity_TooManyArrivals(t *testing.T) {
	arrivals := []workload.Arrival{{Time: 0, Length: 1}, {Time: 1, Length: 1}, {Time: 2, Length: 1}}

	err := runSimulation(sim.Config{Capacity: 2}, arrivals, &bytes.Buffer{})

	assert.ErrorIs(t, err, sim.ErrCapacityExhausted)
}

func TestReadInput_DashReadsStdin(t *testing.T) {
	got, err := readInput("-", strings.NewReader("3 4"))
	require.NoError(t, err)
	assert.Equal(t, []workload.Arrival{{Time: 3, Length: 4}}, got)
}

func TestReadInput_FileFromTestdata(t *testing.T) {
	got, err := readInput(filepath.Join("..", "testdata", "two_customers.txt"), strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, []workload.Arrival{{Time: 0, Length: 10}, {Time: 1, Length: 5}}, got)
}

func TestApplyFlagOverrides_OnlyChangedFlags(t *testing.T) {
	// GIVEN a config loaded from file and a flag set where only --capacity was given
	cfg := sim.Config{Capacity: 4, TraceLevel: "events", ResultsPath: "from-file.json"}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.IntVar(&capacity, "capacity", 0, "")
	flags.StringVar(&traceLevel, "trace-level", "none", "")
	flags.StringVar(&resultsPath, "results-path", "", "")
	require.NoError(t, flags.Parse([]string{"--capacity", "16"}))

	// WHEN overrides are applied
	applyFlagOverrides(flags, &cfg)

	// THEN only the explicit flag replaced the file value
	assert.Equal(t, sim.Config{Capacity: 16, TraceLevel: "events", ResultsPath: "from-file.json"}, cfg)
}

func TestConfigureLogging(t *testing.T) {
	old := logrus.GetLevel()
	oldOut := logrus.StandardLogger().Out
	t.Cleanup(func() {
		logrus.SetLevel(old)
		logrus.SetOutput(oldOut)
	})

	require.NoError(t, configureLogging("debug", ""))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Error(t, configureLogging("loud", ""))

	logPath := filepath.Join(t.TempDir(), "bank-sim.log")
	require.NoError(t, configureLogging("info", logPath))
	logrus.Info("hello from test")
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}
