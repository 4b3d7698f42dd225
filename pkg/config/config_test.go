package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	opts := Default()
	assert.NoError(t, opts.Validate())
	assert.Equal(t, StrategyDFS, opts.Strategy)
	assert.True(t, opts.Memoize)
}

func TestValidateRejectsUnknownStrategy(t *testing.T) {
	opts := Default()
	opts.Strategy = Strategy("bogus")

	err := opts.Validate()
	require.Error(t, err)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "bogus")
}

func TestLoadAppliesDefaultsThenOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: bfs\nmemoize: false\n"), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StrategyBFS, opts.Strategy)
	assert.False(t, opts.Memoize)
	assert.True(t, opts.LocalAnalysis, "unspecified fields keep Default()'s value")
}

func TestLoadRejectsInvalidStrategy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: quantum\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestToParameterizationPadsSimBefore(t *testing.T) {
	opts := Default()
	opts.Simulation.SimBefore = []bool{true}

	params := opts.ToParameterization(3)
	require.Len(t, params.Simulation.SimBefore, 3)
	assert.True(t, params.Simulation.SimBefore[0])
	assert.False(t, params.Simulation.SimBefore[1])
}
