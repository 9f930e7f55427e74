package cli

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	nestwalk "github.com/reoring/nestwalk"
)

func newLeavesCmd(a *app) *cobra.Command {
	var selectExpr string
	cmd := &cobra.Command{
		Use:   "leaves [file]",
		Short: "Print every leaf value with its JSON Pointer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.openSource(cmd, args)
			if err != nil {
				return err
			}
			var leaves []nestwalk.Leaf
			if selectExpr == "" {
				leaves, err = nestwalk.LeavesFrom(cmd.Context(), src, a.walkOpt())
				if err != nil {
					return err
				}
			} else {
				doc, err := nestwalk.Decode(cmd.Context(), src, a.walkOpt())
				if err != nil {
					return err
				}
				picked, err := jsonpath.Get(selectExpr, nestwalk.ToPlain(doc))
				if err != nil {
					return fmt.Errorf("select %q: %w", selectExpr, err)
				}
				for path, v := range nestwalk.LeafPaths(picked) {
					leaves = append(leaves, nestwalk.Leaf{Path: path, Value: v})
				}
			}
			a.log.Debug("leaves.done", zap.Int("count", len(leaves)), zap.String("select", selectExpr))
			return writeLeaves(cmd.OutOrStdout(), a.cfg.Format, leaves)
		},
	}
	cmd.Flags().StringVar(&selectExpr, "select", "", "JSONPath expression selecting the subtree to walk")
	return cmd
}
