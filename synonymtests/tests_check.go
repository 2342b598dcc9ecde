package synonymtests

import (
	"github.com/launchdarkly/synonym-registry/framework"
	"github.com/launchdarkly/synonym-registry/synonyms"

	"github.com/stretchr/testify/require"
)

func DoAreSynonymsTests(t *framework.Context) {
	t.Run("empty registry", func(t *framework.Context) {
		r := synonyms.NewRegistry()
		t.Assert(!r.AreSynonyms("a", "b"), "a-b in empty registry")
		t.Assert(!r.AreSynonyms("b", "a"), "b-a in empty registry")
	})

	t.Run("populated registry", func(t *framework.Context) {
		r := populated()
		t.Assert(r.AreSynonyms("a", "b"), "a-b")
		t.Assert(r.AreSynonyms("b", "a"), "b-a")
		t.Assert(r.AreSynonyms("a", "c"), "a-c")
		t.Assert(r.AreSynonyms("c", "a"), "c-a")
		t.Assert(!r.AreSynonyms("b", "c"), "b-c")
		t.Assert(!r.AreSynonyms("c", "b"), "c-b")
	})

	t.Run("is symmetric", func(t *framework.Context) {
		r := synonyms.NewRegistry()
		r.AddSynonyms("big", "large")
		r.AddSynonyms("large", "huge")
		require.True(t, r.AreSynonyms("huge", "large"))

		for _, x := range r.Words() {
			for _, y := range r.Words() {
				t.AssertEqual(r.AreSynonyms(x, y), r.AreSynonyms(y, x), x+"-"+y)
			}
		}
	})
}
