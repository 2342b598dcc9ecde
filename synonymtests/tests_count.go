package synonymtests

import (
	"github.com/launchdarkly/synonym-registry/framework"
	"github.com/launchdarkly/synonym-registry/synonyms"
)

func DoCountTests(t *framework.Context) {
	t.Run("empty registry", func(t *framework.Context) {
		r := synonyms.NewRegistry()
		t.AssertEqual(r.GetSynonymsCount("a"), 0, "count for empty registry")
	})

	t.Run("populated registry", func(t *framework.Context) {
		r := populated()
		t.AssertEqual(r.GetSynonymsCount("a"), 2, "count for a")
		t.AssertEqual(r.GetSynonymsCount("b"), 1, "count for b")
		t.AssertEqual(r.GetSynonymsCount("z"), 0, "count for z")
	})

	t.Run("lookup does not add word", func(t *framework.Context) {
		r := populated()
		r.GetSynonymsCount("z")
		t.AssertEqual(r.Words(), []string{"a", "b", "c"}, "words after lookup")
	})

	t.Run("matches AreSynonyms", func(t *framework.Context) {
		r := populated()
		words := append(r.Words(), "z")
		for _, x := range words {
			n := 0
			for _, y := range words {
				if r.AreSynonyms(x, y) {
					n++
				}
			}
			t.Debug("%s has %d synonyms", x, n)
			t.AssertEqual(r.GetSynonymsCount(x), n, "count for "+x)
		}
	})
}

// populated is a-b and a-c.
func populated() *synonyms.Registry {
	return synonyms.FromPairs(
		synonyms.Pair{First: "a", Second: "b"},
		synonyms.Pair{First: "a", Second: "c"},
	)
}
