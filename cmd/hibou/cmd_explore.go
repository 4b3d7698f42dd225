package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erwanM974/hibou-passing/internal/parallel"
	"github.com/erwanM974/hibou-passing/pkg/analysis"
)

func newExploreCommand() *cobra.Command {
	var batch []string
	var batchConcurrency int

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "enumerate every state reachable from the fixture's interaction term",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions()
			if err != nil {
				return err
			}

			names := batch
			if len(names) == 0 {
				names = []string{fixtureName}
			}

			jobs := make([]parallel.Job[*analysis.Result], len(names))
			for i, name := range names {
				name := name
				jobs[i] = func(ctx context.Context) (*analysis.Result, error) {
					fx, err := loadFixture(name)
					if err != nil {
						return nil, err
					}
					params := opts.ToParameterization(0)
					return analysis.Explore(ctx, fx.term, fx.ctx, params, nil)
				}
			}

			results, err := parallel.RunBatch(context.Background(), batchConcurrency, jobs)
			if err != nil {
				return err
			}

			for i, result := range results {
				fmt.Printf("fixture %q: global verdict %s, %d states reached, %d filtered\n",
					names[i], result.GlobalVerdict(), len(result.Run.Nodes), len(result.Run.FilterHits))
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&batch, "batch", nil, "explore several fixtures concurrently instead of --fixture")
	cmd.Flags().IntVar(&batchConcurrency, "batch-concurrency", 0, "max concurrent explorations (0 = number of CPUs)")
	return cmd
}
