package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	readability "github.com/baditaflorin/go_readability"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const prose = "However, clear writing helps every reader. Short sentences are easy to scan. " +
	"For example, a busy reader can skim a page quickly. The draft was reviewed by the editor."

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append(args, "-no-color"), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_JSON(t *testing.T) {
	code, out, _ := runCLI(t, "", "-text", prose, "-output", "json", "-audience", "academic", "-keywords", "reader, page")
	require.Equal(t, 0, code)

	var report readability.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, readability.AudienceAcademic, report.Audience)
	require.Equal(t, 4, report.SentenceCount)
	require.Equal(t, []string{"reader", "page"}, report.KeywordDensity.Keywords)
	require.Equal(t, 1, report.PassiveVoice.Count)
}

func TestRun_YAML(t *testing.T) {
	code, out, _ := runCLI(t, "", "-text", prose, "-output", "yaml")
	require.Equal(t, 0, code)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Contains(t, decoded, "fleschScore")
	require.Equal(t, "general", decoded["audience"])
}

func TestRun_TextFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.txt")
	require.NoError(t, os.WriteFile(path, []byte(prose), 0o600))

	code, out, _ := runCLI(t, "", "-file", path, "-verbose")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Readability Report")
	require.Contains(t, out, "METRIC")
	require.Contains(t, out, "Flesch Reading Ease")
	require.Contains(t, out, "Paragraph heatmap")
}

func TestRun_HTMLFromStdin(t *testing.T) {
	page := "<html><body><nav>Menu</nav><p>" + prose + "</p></body></html>"
	code, out, _ := runCLI(t, page, "-file", "-", "-html", "-output", "json")
	require.Equal(t, 0, code)

	var report readability.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, 4, report.SentenceCount)
	require.NotContains(t, report.Heatmap[0].Snippet, "Menu")
}

func TestRun_InsufficientContent(t *testing.T) {
	code, out, _ := runCLI(t, "", "-text", "hi")
	require.Equal(t, 1, code)
	require.Contains(t, out, "insufficient content")
}

func TestRun_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no input", nil},
		{"both inputs", []string{"-text", "a", "-file", "b"}},
		{"bad audience", []string{"-text", "a", "-audience", "kids"}},
		{"bad output", []string{"-text", "a", "-output", "xml"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tc.args...)
			require.Equal(t, 2, code)
			require.Contains(t, stderr, "Error:")
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	code, _, stderr := runCLI(t, "", "-file", filepath.Join(t.TempDir(), "missing.txt"))
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "Error loading input")
}

func TestSplitKeywords(t *testing.T) {
	require.Nil(t, splitKeywords("  "))
	require.Equal(t, []string{"a", " b"}, splitKeywords("a, b"))
}
