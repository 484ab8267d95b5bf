package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents       int
	Arrivals          int
	Departures        int
	ImmediateServices int
	QueuedServices    int
	MaxWaitLineLen    int
	MeanWait          float64
	MaxWait           int64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	for _, e := range st.Events {
		switch e.Kind {
		case "arrival":
			summary.Arrivals++
		case "departure":
			summary.Departures++
		}
		if e.WaitLineLen > summary.MaxWaitLineLen {
			summary.MaxWaitLineLen = e.WaitLineLen
		}
	}

	if len(st.Services) > 0 {
		var totalWait int64
		for _, s := range st.Services {
			if s.Immediate {
				summary.ImmediateServices++
			} else {
				summary.QueuedServices++
			}
			totalWait += s.Wait
			if s.Wait > summary.MaxWait {
				summary.MaxWait = s.Wait
			}
		}
		summary.MeanWait = float64(totalWait) / float64(len(st.Services))
	}

	return summary
}
