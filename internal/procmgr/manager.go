package procmgr

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/erwanM974/hibou-passing/internal/procmgr")

// Manager drives a bounded traversal of Handler's process tree.
type Manager[S any] struct {
	handler Handler[S]
	config  Config
	logger  *Logger
}

// NewManager builds a Manager for handler under config. logger may be
// nil.
func NewManager[S any](handler Handler[S], config Config, logger *Logger) *Manager[S] {
	return &Manager[S]{handler: handler, config: config, logger: logger}
}

type pendingItem[S any] struct {
	node Node[S]
}

// Run traverses the tree rooted at root until every branch is a leaf,
// filtered, or statically proven, or until the configured goal verdict
// is reached (if any). The returned global verdict is the lattice-meet
// of every leaf, statically proven and memoized node's verdict; filtered
// nodes are recorded in FilterHits and do not affect it.
func (m *Manager[S]) Run(ctx context.Context, root S) (*RunResult[S], error) {
	result := newRunResult[S]()

	ctx, span := tracer.Start(ctx, "procmgr.Run",
		trace.WithAttributes(
			attribute.String("procmgr.run_id", result.RunID),
			attribute.String("procmgr.strategy", m.config.Strategy.String()),
		))
	defer span.End()

	memo := make(map[string]Verdict)

	rootNode := Node[S]{ID: uuid.NewString(), State: root, Depth: 0, LoopInstantiation: 0}
	pending := []pendingItem[S]{{node: rootNode}}

	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		idx := m.pickNext(pending)
		item := pending[idx]
		pending = append(pending[:idx], pending[idx+1:]...)

		node := item.node
		m.logger.logVisit(node.ID, node.Depth)

		if m.config.MaxNodeCount > 0 && len(result.Nodes) >= m.config.MaxNodeCount {
			hit := FilterHit{NodeID: node.ID, Reason: MaxNodeCount, Detail: "node budget exhausted"}
			result.FilterHits = append(result.FilterHits, hit)
			m.logger.logFilter(hit)
			continue
		}

		if hit := m.applyBoundFilters(node); hit != nil {
			result.FilterHits = append(result.FilterHits, *hit)
			m.logger.logFilter(*hit)
			continue
		}
		if hit := m.handler.Filter(node.State, node.Depth, node.LoopInstantiation); hit != nil {
			hit.NodeID = node.ID
			result.FilterHits = append(result.FilterHits, *hit)
			m.logger.logFilter(*hit)
			continue
		}

		result.Nodes = append(result.Nodes, node)

		if m.config.Memoize {
			if fp := m.handler.Fingerprint(node.State); fp != "" {
				if v, ok := memo[fp]; ok {
					result.MemoizationHits++
					result.GlobalVerdict = result.GlobalVerdict.Meet(v)
					continue
				}
			}
		}

		if verdict, ok := m.handler.GetLocalVerdictFromStaticAnalysis(node.State); ok {
			node.StaticProof = true
			node.Verdict = verdict
			result.Nodes[len(result.Nodes)-1] = node
			m.memoize(memo, node)
			result.GlobalVerdict = result.GlobalVerdict.Meet(verdict)
			m.logger.logLeaf(node.ID, verdict)
			if m.reachedGoal(result.GlobalVerdict) {
				result.TerminatedOnGoal = true
				return result, nil
			}
			if !m.handler.PursueProcessAfterStaticVerdict(node.State, verdict) {
				continue
			}
		}

		steps := m.handler.CollectNextSteps(node.State)
		if len(steps) == 0 {
			verdict := m.handler.GetLocalVerdictWhenNoChild(node.State)
			node.Verdict = verdict
			result.Nodes[len(result.Nodes)-1] = node
			m.memoize(memo, node)
			result.GlobalVerdict = result.GlobalVerdict.Meet(verdict)
			m.logger.logLeaf(node.ID, verdict)
			if m.reachedGoal(result.GlobalVerdict) {
				result.TerminatedOnGoal = true
				return result, nil
			}
			continue
		}

		sortSteps(steps, m.config.Strategy)
		for _, step := range steps {
			child, err := m.handler.ProcessNewStep(node.State, step)
			if err != nil {
				return result, err
			}
			childNode := Node[S]{
				ID:                uuid.NewString(),
				ParentID:          node.ID,
				State:             child,
				Depth:             node.Depth + 1,
				LoopInstantiation: node.LoopInstantiation + step.LoopDepthCost,
			}
			pending = append(pending, pendingItem[S]{node: childNode})
		}
	}

	return result, nil
}

func (m *Manager[S]) memoize(memo map[string]Verdict, node Node[S]) {
	if !m.config.Memoize {
		return
	}
	if fp := m.handler.Fingerprint(node.State); fp != "" {
		memo[fp] = node.Verdict
	}
}

// reachedGoal reports whether global has already dropped to or below
// the configured goal verdict. Meet only ever lowers the running global
// verdict as more leaves are folded in, so once it reaches the goal
// threshold no further exploration can raise it back above — the
// traversal has its answer.
func (m *Manager[S]) reachedGoal(global Verdict) bool {
	return m.config.HasGoal && global <= m.config.GoalVerdict
}

func (m *Manager[S]) applyBoundFilters(node Node[S]) *FilterHit {
	if m.config.MaxDepth > 0 && node.Depth > m.config.MaxDepth {
		return &FilterHit{NodeID: node.ID, Reason: MaxDepth, Detail: "process depth exceeds bound"}
	}
	if m.config.MaxLoopInstantiation > 0 && node.LoopInstantiation > m.config.MaxLoopInstantiation {
		return &FilterHit{NodeID: node.ID, Reason: MaxLoopInstantiation, Detail: "loop instantiation exceeds bound"}
	}
	return nil
}

// pickNext returns the index, within pending, of the next node to
// visit under the configured strategy: BFS takes the oldest-enqueued
// item, DFS and HeuristicCost both take from the tail (LIFO). Under
// HeuristicCost, sortSteps has already ordered each expanded node's
// children so that the lowest Priority ends up on the tail.
func (m *Manager[S]) pickNext(pending []pendingItem[S]) int {
	switch m.config.Strategy {
	case BFS:
		return 0
	default:
		return len(pending) - 1
	}
}

// sortSteps orders a node's children under HeuristicCost in descending
// Priority, so that once they are appended to the LIFO pending list the
// lowest Priority is visited first. Other strategies keep the handler's
// order.
func sortSteps(steps []Step, strategy Strategy) {
	if strategy != HeuristicCost {
		return
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Priority > steps[j].Priority })
}
