package synonymtests

import (
	"testing"

	"github.com/launchdarkly/synonym-registry/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitePasses(t *testing.T) {
	results := RunTestSuite(nil, nil)

	for _, f := range results.Failures {
		t.Errorf("%s: %v", f.TestID, f.Errors)
	}
	assert.True(t, results.OK())
	assert.Len(t, results.Tests, 14)
}

func TestSuiteRunsGroupsInOrder(t *testing.T) {
	results := RunTestSuite(nil, nil)

	var groups []string
	for _, r := range results.Tests {
		if len(r.TestID.Path) == 1 {
			groups = append(groups, r.TestID.String())
		}
	}
	assert.Equal(t, []string{"GetSynonymsCount", "AreSynonyms", "AddSynonyms"}, groups)
}

func TestSuiteWithFilter(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^AreSynonyms"))

	results := RunTestSuite(filters.AsFilter, nil)

	require.Len(t, results.Tests, 4)
	for _, r := range results.Tests {
		assert.Equal(t, "AreSynonyms", r.TestID.Path[0])
	}
}
