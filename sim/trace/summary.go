package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions int
	Admissions     int
	Starts         int
	Continues      int
	Preemptions    int
	Idles          int
	Completions    int
	PreemptedBy    map[int]int // preempting PID → number of processes it displaced
	Displaced      map[int]int // PID → number of times it lost the CPU
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		PreemptedBy: make(map[int]int),
		Displaced:   make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.Admissions = len(st.Admissions)
	summary.TotalDecisions = len(st.Dispatches)
	for _, d := range st.Dispatches {
		switch d.Kind {
		case DecisionStart:
			summary.Starts++
		case DecisionContinue:
			summary.Continues++
		case DecisionPreempt:
			summary.Preemptions++
			summary.PreemptedBy[d.PID]++
			summary.Displaced[d.PreemptedPID]++
		case DecisionIdle:
			summary.Idles++
		}
		if d.Completed {
			summary.Completions++
		}
	}
	return summary
}
