// Package config loads the on-disk analysis options that parameterize
// a run: search strategy, simulation budgets, and filter thresholds.
// There is no goal verdict option: pkg/analysis sets the goal itself
// (an analysis stops at the first Fail; an exploration has no goal). It
// stands in for the out-of-scope HCF ("hibou configuration format")
// on-disk format.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/erwanM974/hibou-passing/internal/procmgr"
	"github.com/erwanM974/hibou-passing/pkg/analysis"
)

// Strategy names the search strategy by its YAML spelling.
type Strategy string

const (
	StrategyDFS           Strategy = "dfs"
	StrategyBFS           Strategy = "bfs"
	StrategyHeuristicCost Strategy = "heuristic_cost"
)

func (s Strategy) toProcmgr() procmgr.Strategy {
	switch s {
	case StrategyBFS:
		return procmgr.BFS
	case StrategyHeuristicCost:
		return procmgr.HeuristicCost
	default:
		return procmgr.DFS
	}
}

// Simulation mirrors analysis.SimulationConfiguration for YAML decoding.
type Simulation struct {
	Enabled            bool   `yaml:"enabled"`
	SimBefore          []bool `yaml:"sim_before"`
	ResetCritAfterExec bool   `yaml:"reset_crit_after_exec"`
	InitialRemLoopInSim uint32 `yaml:"initial_rem_loop_in_sim"`
	InitialRemActInSim  uint32 `yaml:"initial_rem_act_in_sim"`
}

// Filters bounds the traversal the way original_source's
// process/ana/filter/filter.rs does.
type Filters struct {
	MaxDepth             int `yaml:"max_depth"`
	MaxLoopInstantiation int `yaml:"max_loop_instantiation"`
	MaxNodeCount         int `yaml:"max_node_count"`
}

// Options is the full set of analysis options a run is configured
// with.
type Options struct {
	Strategy      Strategy   `yaml:"strategy"`
	Memoize       bool       `yaml:"memoize"`
	LocalAnalysis bool       `yaml:"local_analysis"`
	Simulation    Simulation `yaml:"simulation"`
	Filters       Filters    `yaml:"filters"`
}

// ValidationError reports a malformed Options value, mirroring the
// teacher's struct-error idiom for configuration problems.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return "config validation error: " + e.Message
}

// Default returns the options a run starts with absent an on-disk
// override, mirroring the teacher's DefaultStrategyConfig.
func Default() Options {
	return Options{
		Strategy:      StrategyDFS,
		Memoize:       true,
		LocalAnalysis: true,
		Simulation: Simulation{
			Enabled:             false,
			ResetCritAfterExec:  true,
			InitialRemLoopInSim: 0,
			InitialRemActInSim:  0,
		},
		Filters: Filters{
			MaxDepth:             0,
			MaxLoopInstantiation: 0,
			MaxNodeCount:         0,
		},
	}
}

// Load reads and parses an Options document from path.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opts := Default()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, opts.Validate()
}

// Validate checks that Options describes a runnable configuration.
func (o Options) Validate() error {
	switch o.Strategy {
	case StrategyDFS, StrategyBFS, StrategyHeuristicCost:
	default:
		return ValidationError{Message: "unknown strategy: " + string(o.Strategy)}
	}
	return nil
}

// ToParameterization builds the analysis.Parameterization a driver run
// needs from these options. channelCount sizes SimBefore when the
// options did not specify one per channel.
func (o Options) ToParameterization(channelCount int) analysis.Parameterization {
	simBefore := o.Simulation.SimBefore
	if len(simBefore) < channelCount {
		padded := make([]bool, channelCount)
		copy(padded, simBefore)
		simBefore = padded
	}

	return analysis.Parameterization{
		Simulation: analysis.SimulationConfiguration{
			Enabled:             o.Simulation.Enabled,
			SimBefore:           simBefore,
			ResetCritAfterExec:  o.Simulation.ResetCritAfterExec,
			InitialRemLoopInSim: o.Simulation.InitialRemLoopInSim,
			InitialRemActInSim:  o.Simulation.InitialRemActInSim,
		},
		LocalAnalysis:        o.LocalAnalysis,
		Priority:             analysis.DefaultStepPriority(),
		Strategy:             o.Strategy.toProcmgr(),
		Memoize:              o.Memoize,
		MaxDepth:             o.Filters.MaxDepth,
		MaxLoopInstantiation: o.Filters.MaxLoopInstantiation,
		MaxNodeCount:         o.Filters.MaxNodeCount,
	}
}
