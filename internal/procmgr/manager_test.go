package procmgr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countdownHandler drives a tree that counts down from its state value
// to zero, branching in two whenever the value is even and above zero.
// It exercises CollectNextSteps/ProcessNewStep/GetLocalVerdictWhenNoChild
// and memoization (the leaf countdown(0) is reached by more than one
// path, and leaf verdicts are memoized).
type countdownHandler struct {
	expanded int
}

func (h *countdownHandler) CollectNextSteps(state int) []Step {
	if state <= 0 {
		return nil
	}
	steps := []Step{{ID: 0, Label: "dec1"}}
	if state%2 == 0 {
		steps = append(steps, Step{ID: 1, Label: "dec2"})
	}
	return steps
}

func (h *countdownHandler) ProcessNewStep(parent int, step Step) (int, error) {
	h.expanded++
	if step.ID == 1 {
		return parent - 2, nil
	}
	return parent - 1, nil
}

func (h *countdownHandler) GetLocalVerdictWhenNoChild(state int) Verdict {
	if state == 0 {
		return Pass
	}
	return Fail
}

func (h *countdownHandler) GetLocalVerdictFromStaticAnalysis(int) (Verdict, bool) { return 0, false }
func (h *countdownHandler) PursueProcessAfterStaticVerdict(int, Verdict) bool     { return true }
func (h *countdownHandler) Fingerprint(state int) string {
	return string(rune('a' + state))
}
func (h *countdownHandler) Filter(int, int, int) *FilterHit { return nil }

func TestManagerRunReachesPassAndMemoizes(t *testing.T) {
	h := &countdownHandler{}
	mgr := NewManager[int](h, Config{Strategy: DFS, Memoize: true}, nil)

	result, err := mgr.Run(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, Pass, result.GlobalVerdict, "every branch from 4 eventually reaches 0")
	assert.Greater(t, result.MemoizationHits, 0, "the leaf countdown(0) is reached by more than one path")
	assert.Greater(t, h.expanded, 0)
}

func TestManagerRunGoalTerminatesEarly(t *testing.T) {
	failMgr := NewManager[int](alwaysFailHandler{}, Config{Strategy: DFS, HasGoal: true, GoalVerdict: Fail}, nil)
	result, err := failMgr.Run(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, result.TerminatedOnGoal)
	assert.Equal(t, Fail, result.GlobalVerdict)
}

type alwaysFailHandler struct{}

func (alwaysFailHandler) CollectNextSteps(int) []Step                           { return nil }
func (alwaysFailHandler) ProcessNewStep(parent int, _ Step) (int, error)        { return parent, nil }
func (alwaysFailHandler) GetLocalVerdictWhenNoChild(int) Verdict                { return Fail }
func (alwaysFailHandler) GetLocalVerdictFromStaticAnalysis(int) (Verdict, bool) { return 0, false }
func (alwaysFailHandler) PursueProcessAfterStaticVerdict(int, Verdict) bool     { return true }
func (alwaysFailHandler) Fingerprint(int) string                               { return "" }
func (alwaysFailHandler) Filter(int, int, int) *FilterHit                      { return nil }

func TestManagerRunRespectsMaxDepthFilter(t *testing.T) {
	h := &countdownHandler{}
	mgr := NewManager[int](h, Config{Strategy: DFS, MaxDepth: 1}, nil)

	result, err := mgr.Run(context.Background(), 4)
	require.NoError(t, err)
	require.NotEmpty(t, result.FilterHits)
	assert.Equal(t, MaxDepth, result.FilterHits[0].Reason)
}

func TestVerdictMeetPicksLowerRank(t *testing.T) {
	assert.Equal(t, Fail, Pass.Meet(Fail))
	assert.Equal(t, Inconclusive, Pass.Meet(Inconclusive))
	assert.Equal(t, WeakPass, Pass.Meet(WeakPass))
	assert.Equal(t, Pass, Pass.Meet(Pass))
}
