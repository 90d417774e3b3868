package sync

import (
	"github.com/embercove/content-sync/app/database"
)

// MediaMatcher decides whether an incoming media caption already exists in
// the stored snapshot. Pluggable so the heuristic can later be replaced by
// an upstream-ID key without touching the adapter's control flow.
type MediaMatcher interface {
	IsDuplicate(existing []string, caption string) bool
}

// CaptionMatcher matches on exact caption text. An empty caption never
// matches; caption-less posts are always treated as new.
type CaptionMatcher struct{}

var _ MediaMatcher = (*CaptionMatcher)(nil)

func (CaptionMatcher) IsDuplicate(existing []string, caption string) bool {
	if caption == "" {
		return false
	}

	for _, description := range existing {
		if description == caption {
			return true
		}
	}

	return false
}

// ReviewMatcher finds the stored review an incoming review corresponds to,
// or nil when it is new.
type ReviewMatcher interface {
	Match(existing []database.Review, authorName, text string) *database.Review
}

// AuthorQuoteMatcher matches on author name plus the first PrefixLength
// characters of the review text. Ratings and later edits past the prefix do
// not break the match.
type AuthorQuoteMatcher struct {
	PrefixLength int
}

var _ ReviewMatcher = (*AuthorQuoteMatcher)(nil)

func NewAuthorQuoteMatcher() *AuthorQuoteMatcher {
	return &AuthorQuoteMatcher{PrefixLength: 50}
}

func (m *AuthorQuoteMatcher) Match(existing []database.Review, authorName, text string) *database.Review {
	incoming := prefix(text, m.PrefixLength)

	for i := range existing {
		review := &existing[i]
		if review.MemberName != authorName {
			continue
		}
		if prefix(review.Quote, m.PrefixLength) == incoming {
			return review
		}
	}

	return nil
}

// prefix returns the first n characters of s, counted in runes so a
// multi-byte character is never split.
func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
