package analysis

import "github.com/erwanM974/hibou-passing/pkg/trace"

// SliceMultiTrace extracts the consumed sub-multi-trace a Slice or
// MultiPref leaf verdict actually matched: each channel's trace,
// truncated at its AnalysisFlags.Consumed boundary. Supplemented from
// original_source/src/trace_manip/slice (the Rust source's exhaustive
// prefix/suffix/slice file generator); this driver exposes the single
// slice a given run's flags describe rather than enumerating every
// possible one.
func SliceMultiTrace(multiTrace trace.MultiTrace, flags trace.MultiTraceAnalysisFlags) trace.MultiTrace {
	out := make(trace.MultiTrace, len(multiTrace))
	for i, tr := range multiTrace {
		consumed := flags.Channels[i].Consumed
		if consumed > len(tr) {
			consumed = len(tr)
		}
		sliced := make(trace.Trace, consumed)
		copy(sliced, tr[:consumed])
		out[i] = sliced
	}
	return out
}
