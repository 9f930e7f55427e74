package cli

import (
	"bufio"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	nestwalk "github.com/reoring/nestwalk"
	"github.com/reoring/nestwalk/internal/config"
)

type leafLine struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

type runLine struct {
	Value any `json:"value"`
	Count int `json:"count"`
}

func writeLeaves(w io.Writer, format string, leaves []nestwalk.Leaf) error {
	bw := bufio.NewWriter(w)
	for _, l := range leaves {
		path := l.Path
		if path == "" {
			path = "/"
		}
		if format == config.FormatJSON {
			b, err := json.Marshal(leafLine{Path: path, Value: l.Value})
			if err != nil {
				return err
			}
			bw.Write(b)
			bw.WriteByte('\n')
			continue
		}
		text, err := textValue(l.Value)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%s\t%s\n", path, text)
	}
	return bw.Flush()
}

func writeValues(w io.Writer, format string, vals []any) error {
	bw := bufio.NewWriter(w)
	if format == config.FormatJSON {
		b, err := json.Marshal(vals)
		if err != nil {
			return err
		}
		bw.Write(b)
		bw.WriteByte('\n')
		return bw.Flush()
	}
	for _, v := range vals {
		text, err := textValue(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(bw, text)
	}
	return bw.Flush()
}

func writeRuns(w io.Writer, format string, runs []nestwalk.Run[any]) error {
	bw := bufio.NewWriter(w)
	if format == config.FormatJSON {
		lines := make([]runLine, len(runs))
		for i, r := range runs {
			lines[i] = runLine{Value: r.Value, Count: r.Count}
		}
		b, err := json.Marshal(lines)
		if err != nil {
			return err
		}
		bw.Write(b)
		bw.WriteByte('\n')
		return bw.Flush()
	}
	for _, r := range runs {
		text, err := textValue(r.Value)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%d\t%s\n", r.Count, text)
	}
	return bw.Flush()
}

// textValue prints strings raw, null as "null" and containers as JSON.
func textValue(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "null", nil
	case string:
		return t, nil
	case *nestwalk.OrderedMap, []any, map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return fmt.Sprint(v), nil
}
