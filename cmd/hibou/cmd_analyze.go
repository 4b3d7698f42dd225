package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erwanM974/hibou-passing/pkg/analysis"
	"github.com/erwanM974/hibou-passing/pkg/config"
)

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "match the fixture's multi-trace against its interaction term",
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := loadFixture(fixtureName)
			if err != nil {
				return err
			}
			opts, err := loadOptions()
			if err != nil {
				return err
			}
			params := opts.ToParameterization(len(fx.multiTrace))

			result, err := analysis.Run(context.Background(), fx.term, fx.ctx, fx.multiTrace, fx.coloc, params, nil)
			if err != nil {
				return err
			}

			fmt.Printf("global verdict: %s\n", result.GlobalVerdict())
			fmt.Printf("nodes visited: %d, filtered: %d, memoization hits: %d\n",
				len(result.Run.Nodes), len(result.Run.FilterHits), result.Run.MemoizationHits)
			return nil
		},
	}
}

func loadOptions() (config.Options, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}
