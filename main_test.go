package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/launchdarkly/synonym-registry/framework"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSuite(testing.TB) func(testing.TB) {
	noColor := color.NoColor
	color.NoColor = true
	return func(testing.TB) {
		color.NoColor = noColor
	}
}

func TestRunTestsPasses(t *testing.T) {
	teardownSuite := setupSuite(t)
	defer teardownSuite(t)

	var out, errOut bytes.Buffer
	var codes []int
	code := runTests(commandParams{}, "synonym-tests", &out, &errOut, func(c int) { codes = append(codes, c) })

	assert.Equal(t, 0, code)
	assert.Equal(t, []int{0}, codes)
	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), "AddSynonyms/to empty registry OK\n")
	assert.Contains(t, out.String(), "GetSynonymsCount OK\n")
	assert.Contains(t, out.String(), "All tests passed (14)\n")
}

func TestRunTestsWithFilter(t *testing.T) {
	teardownSuite := setupSuite(t)
	defer teardownSuite(t)

	config := Config{Skip: []string{"^AddSynonyms"}}
	params, err := config.params()
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	code := runTests(params, "synonym-tests", &out, &errOut, nil)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "skip any matching \"^AddSynonyms\"")
	assert.Contains(t, out.String(), "AddSynonyms SKIPPED (excluded by filter parameters)\n")
	assert.NotContains(t, out.String(), "AddSynonyms/to empty registry")
}

func TestConsoleTestLogger(t *testing.T) {
	teardownSuite := setupSuite(t)
	defer teardownSuite(t)

	var out bytes.Buffer
	logger := &ConsoleTestLogger{Out: &out}
	results := framework.Run(nil, logger, func(c *framework.Context) {
		c.Run("group", func(c *framework.Context) {
			c.Run("passes", func(c *framework.Context) {})
			c.Run("fails", func(c *framework.Context) {
				c.AssertEqual(1, 2, "x")
			})
		})
	})

	assert.Equal(t, 1, results.FailureCount())
	assert.Equal(t, "group/passes OK\n"+
		"group/fails fail: 1 != 2 hint: x\n"+
		"group fail: subtests failed\n", out.String())
}

func TestConsoleTestLoggerDumpsDebugOutputOnFailure(t *testing.T) {
	teardownSuite := setupSuite(t)
	defer teardownSuite(t)

	var out bytes.Buffer
	logger := &ConsoleTestLogger{Out: &out, DebugOutputOnFailure: true}
	framework.Run(nil, logger, func(c *framework.Context) {
		c.Run("quiet", func(c *framework.Context) {
			c.Debug("hidden")
		})
		c.Run("loud", func(c *framework.Context) {
			c.Debug("shown")
			c.Assert(false, "")
		})
	})

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "] shown\n")
}

func TestPrintResultsWithFailures(t *testing.T) {
	var out bytes.Buffer
	results := framework.Results{
		Failures: []framework.TestResult{
			{TestID: framework.TestID{Path: []string{"AddSynonyms", "is idempotent"}}},
			{TestID: framework.TestID{Path: []string{"AddSynonyms", "to empty registry"}}},
		},
	}
	printResults(&out, "synonym-tests", results)

	assert.Equal(t, "FAILED TESTS:\n"+
		"  - AddSynonyms/is idempotent\n"+
		"  - AddSynonyms/to empty registry\n"+
		"\n"+
		"To run only the failed tests:\n"+
		"  synonym-tests --run '^(AddSynonyms|AddSynonyms/is idempotent|AddSynonyms/to empty registry)$'\n",
		out.String())
}

func TestRerunCommandSelectsOnlyFailedTests(t *testing.T) {
	ids := []framework.TestID{{Path: []string{"AreSynonyms", "is symmetric"}}}
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^(AreSynonyms|AreSynonyms/is symmetric)$"))

	assert.Equal(t, "prog --run '^(AreSynonyms|AreSynonyms/is symmetric)$'", rerunCommand("prog", ids))
	assert.True(t, filters.AsFilter(ids[0]))
	assert.True(t, filters.AsFilter(framework.TestID{Path: []string{"AreSynonyms"}}))
	assert.False(t, filters.AsFilter(framework.TestID{Path: []string{"AreSynonyms", "empty registry"}}))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("run: [\"^AddSynonyms\"]\ndebug: true\nno_color: true\n"), 0o644))

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Run: []string{"^AddSynonyms"}, Debug: true, NoColor: true}, config)

	params, err := config.params()
	require.NoError(t, err)
	assert.True(t, params.debug)
	assert.True(t, params.filters.AsFilter(framework.TestID{Path: []string{"AddSynonyms"}}))
	assert.False(t, params.filters.AsFilter(framework.TestID{Path: []string{"AreSynonyms"}}))
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("runs: []\n"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestConfigWithInvalidPattern(t *testing.T) {
	_, err := Config{Skip: []string{"("}}.params()
	assert.Error(t, err)
}
