package analysis

import (
	"context"

	"github.com/erwanM974/hibou-passing/internal/procmgr"
	"github.com/erwanM974/hibou-passing/pkg/interaction"
	"github.com/erwanM974/hibou-passing/pkg/obsmetrics"
	"github.com/erwanM974/hibou-passing/pkg/symtab"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

// Result bundles the process-manager run result with the richer
// leaf-verdict lookup the generic Verdict rank alone cannot carry.
type Result struct {
	Run     *procmgr.RunResult[ProcessState]
	handler *handler
}

// GlobalVerdict is the user-facing lattice-meet answer (spec.md §4.9).
func (r *Result) GlobalVerdict() procmgr.Verdict {
	return r.Run.GlobalVerdict
}

// LeafVerdict returns the richer LocalVerdict recorded for node, if it
// was a leaf or was proven by static analysis.
func (r *Result) LeafVerdict(node procmgr.Node[ProcessState]) (LocalVerdict, bool) {
	return r.handler.LocalVerdictFor(node.State.fingerprint())
}

func buildConfig(p Parameterization) procmgr.Config {
	cfg := procmgr.Config{
		Strategy:             p.Strategy,
		MaxDepth:             p.MaxDepth,
		MaxLoopInstantiation: p.MaxLoopInstantiation,
		MaxNodeCount:         p.MaxNodeCount,
		Memoize:              p.Memoize,
	}
	if p.Mode == ModeAnalyze {
		cfg.HasGoal = true
		cfg.GoalVerdict = procmgr.Fail
	}
	return cfg
}

// Run drives the trace-matching analysis of i against multiTrace under
// coloc, returning the global verdict and per-node detail (spec.md
// §4.8–§4.9).
func Run(ctx context.Context, i *interaction.Interaction, ctxTab *symtab.GeneralContext, multiTrace trace.MultiTrace, coloc trace.Colocalization, params Parameterization, logger *procmgr.Logger) (*Result, error) {
	params.Mode = ModeAnalyze
	flags := trace.NewInitialMultiTraceAnalysisFlags(len(multiTrace), params.Simulation.InitialRemLoopInSim, params.Simulation.InitialRemActInSim)

	root := ProcessState{
		Interaction: i,
		Flags:       flags,
		MultiTrace:  multiTrace,
		Coloc:       coloc,
		Ctx:         ctxTab,
		Params:      params,
	}

	h := newHandler()
	mgr := procmgr.NewManager[ProcessState](h, buildConfig(params), logger)
	run, err := mgr.Run(ctx, root)
	if err != nil {
		return nil, err
	}
	recordRunMetrics("analyze", run, h)
	return &Result{Run: run, handler: h}, nil
}

// Explore drives the unconstrained exploration of i, bounded only by
// the process manager's filters (supplemented feature; no multi-trace
// is matched).
func Explore(ctx context.Context, i *interaction.Interaction, ctxTab *symtab.GeneralContext, params Parameterization, logger *procmgr.Logger) (*Result, error) {
	params.Mode = ModeExplore

	root := ProcessState{
		Interaction: i,
		Flags:       trace.MultiTraceAnalysisFlags{},
		MultiTrace:  nil,
		Coloc:       nil,
		Ctx:         ctxTab,
		Params:      params,
	}

	h := newHandler()
	mgr := procmgr.NewManager[ProcessState](h, buildConfig(params), logger)
	run, err := mgr.Run(ctx, root)
	if err != nil {
		return nil, err
	}
	recordRunMetrics("explore", run, h)
	return &Result{Run: run, handler: h}, nil
}

// recordRunMetrics reports a completed run's node/filter/memoization/
// verdict counts to obsmetrics.
func recordRunMetrics(mode string, run *procmgr.RunResult[ProcessState], h *handler) {
	for range run.Nodes {
		obsmetrics.RecordNodeVisit(mode)
	}
	for _, hit := range run.FilterHits {
		obsmetrics.RecordNodeFiltered(string(hit.Reason))
	}
	for i := 0; i < run.MemoizationHits; i++ {
		obsmetrics.RecordMemoizationHit()
	}
	for _, node := range run.Nodes {
		if v, ok := h.LocalVerdictFor(node.State.fingerprint()); ok {
			obsmetrics.RecordVerdict(v.Kind.String())
		}
	}
}
