package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	nestwalk "github.com/reoring/nestwalk"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(nestwalk.UseDefaultJSONDriver)
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const sample = `{"user":10,"time":"t","metadata":[{"foo":"bar"},"some_string"]}`

func TestLeaves_Text(t *testing.T) {
	out, _, err := run(t, sample, "leaves")
	require.NoError(t, err)
	require.Equal(t, "/user\t10\n/time\tt\n/metadata/0/foo\tbar\n/metadata/1\tsome_string\n", out)
}

func TestLeaves_JSONFormat(t *testing.T) {
	out, _, err := run(t, `{"a":[null,true]}`, "leaves", "--format", "json")
	require.NoError(t, err)
	require.Equal(t, "{\"path\":\"/a/0\",\"value\":null}\n{\"path\":\"/a/1\",\"value\":true}\n", out)
}

func TestLeaves_Select(t *testing.T) {
	out, _, err := run(t, sample, "leaves", "--select", "$.metadata")
	require.NoError(t, err)
	require.Equal(t, "/0/foo\tbar\n/1\tsome_string\n", out)
}

func TestLeaves_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user: 10\nmetadata:\n  - foo: bar\n"), 0o600))
	out, _, err := run(t, "", "leaves", path)
	require.NoError(t, err)
	require.Equal(t, "/user\t10\n/metadata/0/foo\tbar\n", out)
}

func TestLeaves_YAMLFlagOnStdin(t *testing.T) {
	out, _, err := run(t, "- a\n- [b, c]\n", "leaves", "--yaml", "-")
	require.NoError(t, err)
	require.Equal(t, "/0\ta\n/1/0\tb\n/1/1\tc\n", out)
}

func TestFlatten(t *testing.T) {
	out, _, err := run(t, `[1,[2,[3,"ab"]],{"k":[4]}]`, "flatten", "--format", "json")
	require.NoError(t, err)
	require.Equal(t, "[1,2,3,\"ab\",{\"k\":[4]}]\n", out)
}

func TestFlatten_TextScalarDocument(t *testing.T) {
	out, _, err := run(t, `"abc"`, "flatten")
	require.NoError(t, err)
	require.Equal(t, "abc\n", out)
}

func TestDedup(t *testing.T) {
	out, _, err := run(t, `[1,1,[2,2],1,{"a":1},{"a":1}]`, "dedup")
	require.NoError(t, err)
	require.Equal(t, "1\n2\n1\n{\"a\":1}\n", out)
}

func TestRuns(t *testing.T) {
	out, _, err := run(t, `[1,1,2]`, "runs", "--format", "json")
	require.NoError(t, err)
	require.Equal(t, "[{\"value\":1,\"count\":2},{\"value\":2,\"count\":1}]\n", out)

	out, _, err = run(t, `["x","x","y"]`, "runs")
	require.NoError(t, err)
	require.Equal(t, "2\tx\n1\ty\n", out)
}

func TestDuplicates(t *testing.T) {
	_, _, err := run(t, `{"a":1,"a":2}`, "leaves", "--duplicates", "error")
	iss, ok := nestwalk.AsIssues(err)
	require.True(t, ok, "expected Issues, got %v", err)
	require.Equal(t, nestwalk.CodeDuplicateKey, iss[0].Code)

	out, errOut, err := run(t, `{"a":1,"a":2}`, "leaves", "--duplicates", "warn")
	require.NoError(t, err)
	require.Equal(t, "/a\t1\n/a\t2\n", out)
	require.Contains(t, errOut, "input.issue")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nestwalk.toml")
	require.NoError(t, os.WriteFile(path, []byte("driver = \"gojson\"\nformat = \"json\"\nmax_depth = 1\n"), 0o600))

	out, _, err := run(t, `[1,[2]]`, "flatten", "--config", path, "--max-depth", "3")
	require.NoError(t, err)
	require.Equal(t, "[1,2]\n", out)
	require.Equal(t, "go-json", nestwalk.CurrentJSONDriver().Name())

	_, _, err = run(t, `[1,[2]]`, "flatten", "--config", path)
	iss, ok := nestwalk.AsIssues(err)
	require.True(t, ok, "expected Issues, got %v", err)
	require.Equal(t, nestwalk.CodeMaxDepth, iss[0].Code)
}

func TestInvalidFlags(t *testing.T) {
	_, _, err := run(t, `[]`, "flatten", "--format", "xml")
	require.Error(t, err)

	_, _, err = run(t, "", "leaves", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read input")
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := run(t, `[1]`, "flatten", "--debug")
	require.NoError(t, err)
	require.Contains(t, errOut, "config.resolved")
	require.Contains(t, errOut, "flatten.done")
}

func TestLogJSON(t *testing.T) {
	_, errOut, err := run(t, `[1]`, "flatten", "--debug", "--log-json")
	require.NoError(t, err)
	require.Contains(t, errOut, `"msg":"flatten.done"`)
}

func TestMaxBytes_WarnsWhenUnenforced(t *testing.T) {
	_, errOut, err := run(t, `[1,2]`, "flatten", "--max-bytes", "1024", "--driver", "gojson")
	require.NoError(t, err)
	require.Contains(t, errOut, "max_bytes.unenforced")

	_, errOut, err = run(t, "- a\n", "flatten", "--max-bytes", "1024", "--yaml")
	require.NoError(t, err)
	require.Contains(t, errOut, "max_bytes.unenforced")

	_, errOut, err = run(t, `[1,2]`, "flatten", "--max-bytes", "1024")
	require.NoError(t, err)
	require.NotContains(t, errOut, "max_bytes.unenforced")
}
