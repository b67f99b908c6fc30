package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipforge/snipforge/internal/sitegen/content"
	"github.com/snipforge/snipforge/internal/sitegen/vocab"
)

func snippet(name, description, purpose string) content.Snippet {
	return content.Snippet{ID: name, Name: name, Description: description, Purpose: purpose}
}

func TestScorePhraseAndWordBonuses(t *testing.T) {
	// Exact phrase in the description: +10 phrase, +2 "jwt", +2 "auth".
	s := snippet("token-helper", "issues tokens for jwt auth flows", "")
	score := Score(SearchableText(s), s.Name, "jwt auth")
	assert.GreaterOrEqual(t, score, 14)
}

func TestScoreNameBonus(t *testing.T) {
	s := snippet("elysia-cors", "cross origin helper", "")
	withName := Score(SearchableText(s), s.Name, "cors")

	other := snippet("helper", "cross origin cors helper", "")
	withoutName := Score(SearchableText(other), other.Name, "cors")

	assert.Equal(t, withoutName+5, withName, "name containing the query adds exactly the name bonus")
}

func TestScoreQueryEqualToName(t *testing.T) {
	s := snippet("elysia-rate-limiter", "limits requests", "")
	score := Score(SearchableText(s), s.Name, "elysia-rate-limiter")
	assert.GreaterOrEqual(t, score, 5+10, "full-name query earns name and phrase bonuses")
}

func TestScoreMonotonicity(t *testing.T) {
	query := "rate limiter"
	base := snippet("limiter", "throttles requests", "")
	extended := base
	extended.Description += " sliding window rate limiter"

	assert.GreaterOrEqual(t,
		Score(SearchableText(extended), extended.Name, query),
		Score(SearchableText(base), base.Name, query),
		"adding matching text never decreases the score")
}

func TestScoreEmptyQuery(t *testing.T) {
	s := snippet("anything", "text", "")
	assert.Zero(t, Score(SearchableText(s), s.Name, ""))
	assert.Zero(t, Score(SearchableText(s), s.Name, "   "))
}

func TestSearchOrderingAndStability(t *testing.T) {
	snippets := []content.Snippet{
		snippet("a-weak", "mentions auth once", ""),
		snippet("b-strong", "jwt auth everywhere, jwt auth", ""),
		snippet("c-weak", "mentions auth once", ""),
	}

	results := Search(snippets, "jwt auth")
	require.Len(t, results, 3)
	assert.Equal(t, "b-strong", results[0].Snippet.Name)
	// Equal scores keep input order.
	assert.Equal(t, "a-weak", results[1].Snippet.Name)
	assert.Equal(t, "c-weak", results[2].Snippet.Name)
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	snippets := []content.Snippet{snippet("a", "text", "")}
	assert.Empty(t, Search(snippets, ""))
	assert.Empty(t, Search(snippets, "  "))
}

func TestSearchExcludesNonMatches(t *testing.T) {
	snippets := []content.Snippet{
		snippet("match", "websocket server", ""),
		snippet("no-match", "completely unrelated", ""),
	}
	results := Search(snippets, "websocket")
	require.Len(t, results, 1)
	assert.Equal(t, "match", results[0].Snippet.Name)
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, MatchesAny("uses jwt tokens", []string{"session", "jwt"}))
	assert.False(t, MatchesAny("plain text", []string{"jwt"}))
	assert.False(t, MatchesAny("anything", nil), "empty keyword list matches nothing")
	assert.False(t, MatchesAny("anything", []string{""}))
}

func TestTagsGeneralFallbackExclusive(t *testing.T) {
	tags := []vocab.Tag{
		{ID: "auth", Keywords: []string{"jwt", "token"}},
		{ID: "caching", Keywords: []string{"cache"}},
	}

	matched := Tags(snippet("jwt-helper", "signs jwt tokens and caches keys", ""), tags)
	assert.Equal(t, []string{"auth", "caching"}, matched, "many-to-many, vocabulary order")
	assert.NotContains(t, matched, vocab.GeneralBucket)

	unmatched := Tags(snippet("misc", "nothing relevant", ""), tags)
	assert.Equal(t, []string{vocab.GeneralBucket}, unmatched, "fallback only on zero matches")
}

func TestUseCasesFallback(t *testing.T) {
	useCases := []vocab.UseCase{{ID: "authentication", Keywords: []string{"login"}}}
	assert.Equal(t, []string{vocab.GeneralBucket},
		UseCases(snippet("misc", "nothing", ""), useCases))
	assert.Equal(t, []string{"authentication"},
		UseCases(snippet("login-helper", "handles login", ""), useCases))
}

func TestPatternsNoFallback(t *testing.T) {
	patterns := []vocab.Pattern{{ID: "middleware", Keywords: []string{"middleware"}}}
	assert.Empty(t, Patterns(snippet("misc", "nothing", ""), patterns),
		"patterns exclude unmatched snippets entirely")
}
