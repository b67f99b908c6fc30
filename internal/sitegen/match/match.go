// Package match classifies snippets against fixed vocabularies and scores
// them against free-text queries using substring heuristics.
package match

import (
	"sort"
	"strings"

	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/vocab"
)

// Scoring weights for free-text search. Scores are additive and uncapped.
const (
	phraseBonus = 10 // full query appears as a contiguous substring
	wordBonus   = 2  // per individual query word found anywhere
	nameBonus   = 5  // snippet name contains the query
)

// SearchableText concatenates the snippet's text fields, case-folded.
// Built once per snippet and reused across vocabulary entries.
func SearchableText(s content.Snippet) string {
	parts := []string{s.Purpose, s.Description}
	parts = append(parts, s.Features...)
	parts = append(parts, s.Name, s.DisplayName, s.Output)
	return strings.ToLower(strings.Join(parts, " "))
}

// Score computes the search score of a snippet's searchable text against a
// query. text must already be case-folded; the query is folded here.
// An empty query scores zero.
func Score(text, name, query string) int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return 0
	}

	score := 0
	if strings.Contains(text, query) {
		score += phraseBonus
	}
	for _, word := range strings.Fields(query) {
		if strings.Contains(text, word) {
			score += wordBonus
		}
	}
	if strings.Contains(strings.ToLower(name), query) {
		score += nameBonus
	}
	return score
}

// Result pairs a snippet with its search score.
type Result struct {
	Snippet content.Snippet
	Score   int
}

// Search scores all snippets against the query and returns those with a
// positive score, ordered by descending score with ties kept in input
// order. An empty query returns no results.
func Search(snippets []content.Snippet, query string) []Result {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	var results []Result
	for _, s := range snippets {
		if score := Score(SearchableText(s), s.Name, query); score > 0 {
			results = append(results, Result{Snippet: s, Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// MatchesAny reports whether any keyword is a substring of the text.
// Both sides are expected case-folded; an empty list matches nothing.
func MatchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Tags returns the ids of all tags whose keyword list matches the snippet,
// in vocabulary order. Zero matches yield the single general bucket.
func Tags(s content.Snippet, tags []vocab.Tag) []string {
	text := SearchableText(s)
	var matched []string
	for _, t := range tags {
		if MatchesAny(text, t.Keywords) {
			matched = append(matched, t.ID)
		}
	}
	if len(matched) == 0 {
		return []string{vocab.GeneralBucket}
	}
	return matched
}

// UseCases returns the ids of all matching use cases, in vocabulary order,
// with the same general fallback as Tags.
func UseCases(s content.Snippet, useCases []vocab.UseCase) []string {
	text := SearchableText(s)
	var matched []string
	for _, uc := range useCases {
		if MatchesAny(text, uc.Keywords) {
			matched = append(matched, uc.ID)
		}
	}
	if len(matched) == 0 {
		return []string{vocab.GeneralBucket}
	}
	return matched
}

// Patterns returns the ids of all matching design patterns. Unlike tags
// and use cases there is no fallback: an unmatched snippet is excluded.
func Patterns(s content.Snippet, patterns []vocab.Pattern) []string {
	text := SearchableText(s)
	var matched []string
	for _, p := range patterns {
		if MatchesAny(text, p.Keywords) {
			matched = append(matched, p.ID)
		}
	}
	return matched
}
