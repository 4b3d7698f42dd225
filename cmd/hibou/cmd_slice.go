package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erwanM974/hibou-passing/pkg/analysis"
)

func newSliceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "slice",
		Short: "print, for every leaf verdict reached, the consumed sub-multi-trace it matched",
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
			params.Simulation.Enabled = true

			result, err := analysis.Run(context.Background(), fx.term, fx.ctx, fx.multiTrace, fx.coloc, params, nil)
			if err != nil {
				return err
			}

			var leaf *analysis.LocalVerdict
			for _, node := range result.Run.Nodes {
				if v, ok := result.LeafVerdict(node); ok {
					sliced := analysis.SliceMultiTrace(node.State.MultiTrace, node.State.Flags)
					fmt.Printf("node %s: verdict %s\n", node.ID, v)
					for i, tr := range sliced {
						fmt.Printf("  channel %d:", i)
						for _, a := range tr {
							fmt.Printf(" %s", a)
						}
						fmt.Println()
					}
					leaf = &v
				}
			}
			if leaf == nil {
				fmt.Println("no leaf verdict recorded")
			}
			return nil
		},
	}
}
