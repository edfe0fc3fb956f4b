package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args in an isolated working
// directory and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY", "MATHDASH_LLM_PROVIDER"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores flag defaults, since commands are package globals.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestStats(t *testing.T) {
	out, err := run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Students:          1")
	assert.Contains(t, out, "On track:          0 (0%)")
	assert.Contains(t, out, "Average progress:  67.5%")
	assert.Contains(t, out, "B     1  100%")
	assert.Contains(t, out, "Statistics")
}

func TestStats_NoSeed(t *testing.T) {
	out, err := run(t, "stats", "--no-seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Average progress:  No data")
	assert.Contains(t, out, "On track:          0 (No data)")
}

func TestStats_UnknownChapter(t *testing.T) {
	_, err := run(t, "stats", "--chapter", "Calculus")
	assert.ErrorContains(t, err, `unknown chapter "Calculus"`)
}

func TestChapterList(t *testing.T) {
	out, err := run(t, "chapter", "list", "--subtopics")
	require.NoError(t, err)
	assert.Contains(t, out, "Algebra")
	assert.Contains(t, out, "- Quadratic Equations")
}

func TestStudentList(t *testing.T) {
	out, err := run(t, "student", "list", "--chapter", "Geometry")
	require.NoError(t, err)
	assert.Contains(t, out, "JoAnn Lu")
	assert.Contains(t, out, "67.5%")
}

func TestStudentShow(t *testing.T) {
	out, err := run(t, "student", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Grades:    B → A* (2 below target)")
	assert.Contains(t, out, "Strengths:  Number (85%)")
	assert.Contains(t, out, "Weaknesses: Statistics (45%)")
	assert.Contains(t, out, "2024-01-15")
}

func TestStudentShow_NotFound(t *testing.T) {
	_, err := run(t, "student", "show", "9")
	assert.ErrorContains(t, err, "student not found")
}

func TestConfigFileRoster(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "class.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{
		"students": [{
			"id": 3, "name": "Lena Park", "email": "lena.park@school.edu", "year_group": "Year 8",
			"current_grade": "C", "target_grade": "C",
			"chapters": [
				{"id": 1, "name": "Number", "progress": 60, "mastery": "Intermediate"},
				{"id": 2, "name": "Algebra", "progress": 60, "mastery": "Intermediate"},
				{"id": 3, "name": "Geometry", "progress": 60, "mastery": "Intermediate"},
				{"id": 4, "name": "Statistics", "progress": 60, "mastery": "Intermediate"}
			],
			"assessments": []
		}]
	}`), 0o600))

	out, err := run(t, "student", "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Lena Park")
	assert.NotContains(t, out, "JoAnn Lu")
}

func TestInsight_NoProvider(t *testing.T) {
	_, err := run(t, "insight", "1")
	assert.ErrorContains(t, err, "AI insights unavailable")
}

func TestInsight_NeedsTarget(t *testing.T) {
	_, err := run(t, "insight")
	assert.ErrorContains(t, err, "pass a student ID or --class")
}

func TestLLMStatus(t *testing.T) {
	out, err := run(t, "llm", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM provider configured")
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "(not set)", maskKey(""))
	assert.Equal(t, "****", maskKey("abc"))
	assert.Equal(t, "****cdef", maskKey("sk-abcdef"))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mathdash (devel)\n", out)
}
