package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	nestwalk "github.com/reoring/nestwalk"
	"github.com/reoring/nestwalk/internal/config"
)

// openSource reads the single optional file argument ("-" or none means
// stdin) and picks the YAML or JSON tokenizer.
func (a *app) openSource(cmd *cobra.Command, args []string) (nestwalk.Source, error) {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", name, err)
	}

	ext := strings.ToLower(filepath.Ext(name))
	isYAML := a.asYAML || ext == ".yaml" || ext == ".yml"
	a.log.Debug("input.read", zap.String("name", name), zap.Int("bytes", len(data)), zap.Bool("yaml", isYAML))
	if a.cfg.MaxBytes > 0 && (isYAML || a.cfg.Driver == config.DriverGoJSON) {
		// Only the encoding/json tokenizer reports byte offsets.
		a.log.Warn("max_bytes.unenforced",
			zap.String("name", name),
			zap.Int64("max_bytes", a.cfg.MaxBytes),
			zap.Bool("yaml", isYAML),
			zap.String("driver", a.cfg.Driver),
		)
	}
	if isYAML {
		return nestwalk.YAMLReader(bytes.NewReader(data)), nil
	}
	return nestwalk.JSONBytes(data), nil
}
