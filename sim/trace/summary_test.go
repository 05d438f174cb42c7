package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalDecisions != 0 || summary.Preemptions != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.PreemptedBy == nil || summary.Displaced == nil {
		t.Error("maps must be non-nil")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalDecisions != 0 || summary.Admissions != 0 {
		t.Errorf("expected 0 decisions, got %+v", summary)
	}
	if len(summary.PreemptedBy) != 0 {
		t.Error("expected empty preemption distribution")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with every decision kind
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})
	st.RecordAdmission(AdmissionRecord{PID: 1})
	st.RecordAdmission(AdmissionRecord{PID: 2})
	st.RecordDispatch(DispatchRecord{Clock: 0, Kind: DecisionStart, PID: 1})
	st.RecordDispatch(DispatchRecord{Clock: 1, Kind: DecisionPreempt, PID: 2, PreemptedPID: 1})
	st.RecordDispatch(DispatchRecord{Clock: 2, Kind: DecisionContinue, PID: 2, Completed: true})
	st.RecordDispatch(DispatchRecord{Clock: 3, Kind: DecisionStart, PID: 1, Completed: true})
	st.RecordDispatch(DispatchRecord{Clock: 4, Kind: DecisionIdle})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalDecisions != 5 {
		t.Errorf("TotalDecisions = %d, want 5", summary.TotalDecisions)
	}
	if summary.Admissions != 2 {
		t.Errorf("Admissions = %d, want 2", summary.Admissions)
	}
	if summary.Starts != 2 || summary.Continues != 1 || summary.Preemptions != 1 || summary.Idles != 1 {
		t.Errorf("unexpected kind counts %+v", summary)
	}
	if summary.Completions != 2 {
		t.Errorf("Completions = %d, want 2", summary.Completions)
	}
	if summary.PreemptedBy[2] != 1 || summary.Displaced[1] != 1 {
		t.Errorf("unexpected preemption maps %v %v", summary.PreemptedBy, summary.Displaced)
	}
}
