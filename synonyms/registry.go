// Package synonyms contains an in-memory registry of words declared to be synonyms.
//
// The relation is always symmetric: adding the pair (a, b) makes b a synonym of a and a a
// synonym of b. There is no removal operation.
package synonyms

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Pair is two words declared to be synonyms of each other.
type Pair struct {
	First  string
	Second string
}

// Registry maps each known word to its synonym set. It is not safe for concurrent use.
type Registry struct {
	words map[string]mapset.Set[string]
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{words: make(map[string]mapset.Set[string])}
}

// FromPairs creates a Registry and adds each of the given pairs to it in order.
func FromPairs(pairs ...Pair) *Registry {
	r := NewRegistry()
	for _, p := range pairs {
		r.AddSynonyms(p.First, p.Second)
	}
	return r
}

// AddSynonyms declares first and second to be synonyms. Adding a pair that is already
// present changes nothing. A word may be added as its own synonym; it then counts once.
func (r *Registry) AddSynonyms(first, second string) {
	r.entry(first).Add(second)
	r.entry(second).Add(first)
}

// GetSynonymsCount returns the number of distinct synonyms of word, or 0 if the word has
// never been added.
func (r *Registry) GetSynonymsCount(word string) int {
	if s, ok := r.words[word]; ok {
		return s.Cardinality()
	}
	return 0
}

// AreSynonyms returns true if second is in the synonym set of first.
func (r *Registry) AreSynonyms(first, second string) bool {
	if s, ok := r.words[first]; ok {
		return s.Contains(second)
	}
	return false
}

// Synonyms returns the synonyms of word in sorted order.
func (r *Registry) Synonyms(word string) []string {
	s, ok := r.words[word]
	if !ok {
		return nil
	}
	return sortedSlice(s)
}

// Words returns every word that has at least one synonym, in sorted order.
func (r *Registry) Words() []string {
	ret := make([]string, 0, len(r.words))
	for w := range r.words {
		ret = append(ret, w)
	}
	sort.Strings(ret)
	return ret
}

// Snapshot returns a copy of the whole relation with each synonym list sorted.
func (r *Registry) Snapshot() map[string][]string {
	ret := make(map[string][]string, len(r.words))
	for w, s := range r.words {
		ret[w] = sortedSlice(s)
	}
	return ret
}

// Equal returns true if both registries contain the same words with the same synonym sets.
func (r *Registry) Equal(other *Registry) bool {
	if other == nil || len(r.words) != len(other.words) {
		return false
	}
	for w, s := range r.words {
		o, ok := other.words[w]
		if !ok || !s.Equal(o) {
			return false
		}
	}
	return true
}

func (r *Registry) entry(word string) mapset.Set[string] {
	s, ok := r.words[word]
	if !ok {
		s = mapset.NewThreadUnsafeSet[string]()
		r.words[word] = s
	}
	return s
}

func sortedSlice(s mapset.Set[string]) []string {
	ret := s.ToSlice()
	sort.Strings(ret)
	return ret
}
