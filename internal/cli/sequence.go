package cli

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	nestwalk "github.com/reoring/nestwalk"
)

// flattened decodes the input document and flattens it.
func (a *app) flattened(cmd *cobra.Command, args []string) ([]any, error) {
	src, err := a.openSource(cmd, args)
	if err != nil {
		return nil, err
	}
	doc, err := nestwalk.Decode(cmd.Context(), src, a.walkOpt())
	if err != nil {
		return nil, err
	}
	flat := nestwalk.Flatten(doc)
	a.log.Debug("flatten.done", zap.Int("count", len(flat)))
	return flat, nil
}

func newFlattenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten [file]",
		Short: "Flatten nested arrays into a single array",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flat, err := a.flattened(cmd, args)
			if err != nil {
				return err
			}
			return writeValues(cmd.OutOrStdout(), a.cfg.Format, flat)
		},
	}
}

func newDedupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dedup [file]",
		Short: "Flatten, then collapse adjacent duplicate elements",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flat, err := a.flattened(cmd, args)
			if err != nil {
				return err
			}
			return writeValues(cmd.OutOrStdout(), a.cfg.Format, nestwalk.CompactFunc(flat, sameJSON))
		},
	}
}

func newRunsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "runs [file]",
		Short: "Flatten, then print the run-length encoding",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flat, err := a.flattened(cmd, args)
			if err != nil {
				return err
			}
			return writeRuns(cmd.OutOrStdout(), a.cfg.Format, nestwalk.RunsFunc(flat, sameJSON))
		},
	}
}

// sameJSON compares decoded values by their JSON encoding; decoded objects
// are pointers and never compare equal with ==.
func sameJSON(x, y any) bool {
	xb, err := json.Marshal(x)
	if err != nil {
		return false
	}
	yb, err := json.Marshal(y)
	if err != nil {
		return false
	}
	return bytes.Equal(xb, yb)
}
