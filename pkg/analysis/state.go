package analysis

import (
	"github.com/erwanM974/hibou-passing/pkg/interaction"
	"github.com/erwanM974/hibou-passing/pkg/semantics"
	"github.com/erwanM974/hibou-passing/pkg/symtab"
	"github.com/erwanM974/hibou-passing/pkg/trace"
)

// ProcessState is the process-manager state type this package drives
// internal/procmgr.Manager over: the residual interaction, the
// multi-trace bookkeeping, and the shared read-only context.
type ProcessState struct {
	Interaction *interaction.Interaction
	Flags       trace.MultiTraceAnalysisFlags
	MultiTrace  trace.MultiTrace
	Coloc       trace.Colocalization
	Ctx         *symtab.GeneralContext
	Params      Parameterization
}

// candidateStep is the domain-specific payload behind a procmgr.Step:
// which frontier element it fires, and whether it was a real match or
// a simulated fabrication.
type candidateStep struct {
	element semantics.FrontierElement
	simKind trace.SimulationStepKind
	chanID  int
}
