package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	nestwalk "github.com/reoring/nestwalk"
	"github.com/reoring/nestwalk/internal/config"
	"github.com/reoring/nestwalk/internal/logging"
	"github.com/reoring/nestwalk/source/gojson"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries settings resolved by the root command for its subcommands.
type app struct {
	cfg    config.Config
	log    *zap.Logger
	asYAML bool
}

type rootFlags struct {
	configPath string
	debug      bool
	logJSON    bool
	driver     string
	maxDepth   int
	maxBytes   int64
	duplicates string
	format     string
	yaml       bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	a := &app{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "nestwalk",
		Short:        "Walk, flatten and compact nested JSON/YAML documents",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			fl := cmd.Flags()
			if fl.Changed("driver") {
				cfg.Driver = f.driver
			}
			if fl.Changed("max-depth") {
				cfg.MaxDepth = f.maxDepth
			}
			if fl.Changed("max-bytes") {
				cfg.MaxBytes = f.maxBytes
			}
			if fl.Changed("duplicates") {
				cfg.Duplicates = f.duplicates
			}
			if fl.Changed("format") {
				cfg.Format = f.format
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.asYAML = f.yaml
			a.log = logging.New(logging.Config{Debug: f.debug, JSON: f.logJSON}, cmd.ErrOrStderr())

			if cfg.Driver == config.DriverGoJSON {
				nestwalk.SetJSONDriver(gojson.Driver())
			} else {
				nestwalk.UseDefaultJSONDriver()
			}
			a.log.Debug("config.resolved",
				zap.String("config", f.configPath),
				zap.String("driver", nestwalk.CurrentJSONDriver().Name()),
				zap.Int("max_depth", cfg.MaxDepth),
				zap.Int64("max_bytes", cfg.MaxBytes),
				zap.String("duplicates", cfg.Duplicates),
				zap.String("format", cfg.Format),
			)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to a nestwalk.toml file")
	pf.BoolVar(&f.debug, "debug", false, "enable debug logging on stderr")
	pf.BoolVar(&f.logJSON, "log-json", false, "write stderr logs as JSON lines")
	pf.StringVar(&f.driver, "driver", config.DriverJSON, "JSON tokenizer: json or gojson")
	pf.IntVar(&f.maxDepth, "max-depth", 0, "maximum nesting depth (0 disables)")
	pf.Int64Var(&f.maxBytes, "max-bytes", 0, "maximum input bytes (0 disables)")
	pf.StringVar(&f.duplicates, "duplicates", "ignore", "duplicate keys: ignore, warn or error")
	pf.StringVar(&f.format, "format", config.FormatText, "output format: text or json")
	pf.BoolVar(&f.yaml, "yaml", false, "treat input as YAML regardless of file extension")

	cmd.AddCommand(
		newLeavesCmd(a),
		newFlattenCmd(a),
		newDedupCmd(a),
		newRunsCmd(a),
	)
	return cmd
}

// walkOpt returns the enforcement options with duplicate warnings routed to
// the logger.
func (a *app) walkOpt() nestwalk.WalkOpt {
	opt := a.cfg.WalkOpt()
	opt.OnIssue = func(is nestwalk.Issue) {
		a.log.Warn("input.issue", zap.String("code", is.Code), zap.String("path", is.Path), zap.String("message", is.Message))
	}
	return opt
}
