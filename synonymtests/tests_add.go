package synonymtests

import (
	"github.com/launchdarkly/synonym-registry/framework"
	"github.com/launchdarkly/synonym-registry/synonyms"

	"github.com/stretchr/testify/assert"
)

func DoAddSynonymsTests(t *framework.Context) {
	t.Run("to empty registry", func(t *framework.Context) {
		r := synonyms.NewRegistry()
		r.AddSynonyms("a", "b")

		expected := synonyms.FromPairs(synonyms.Pair{First: "b", Second: "a"})
		t.Assert(r.Equal(expected), "a and b should be synonyms of each other only")
		assert.Equal(t, map[string][]string{"a": {"b"}, "b": {"a"}}, r.Snapshot())
	})

	t.Run("to populated registry", func(t *framework.Context) {
		r := synonyms.FromPairs(
			synonyms.Pair{First: "a", Second: "b"},
			synonyms.Pair{First: "b", Second: "c"},
		)
		r.AddSynonyms("a", "c")

		expected := map[string][]string{
			"a": {"b", "c"},
			"b": {"a", "c"},
			"c": {"a", "b"},
		}
		t.AssertEqual(r.Snapshot(), expected, "registry after adding a-c")
	})

	t.Run("is idempotent", func(t *framework.Context) {
		once := synonyms.FromPairs(synonyms.Pair{First: "a", Second: "b"})
		twice := synonyms.FromPairs(synonyms.Pair{First: "a", Second: "b"})
		twice.AddSynonyms("a", "b")
		twice.AddSynonyms("b", "a")

		t.Assert(once.Equal(twice), "adding a pair again should change nothing")
		t.AssertEqual(twice.GetSynonymsCount("a"), 1, "count of a")
	})

	t.Run("word as its own synonym", func(t *framework.Context) {
		r := synonyms.NewRegistry()
		r.AddSynonyms("a", "a")

		t.Assert(r.AreSynonyms("a", "a"), "a is its own synonym")
		t.AssertEqual(r.GetSynonymsCount("a"), 1, "count of a")
	})
}
