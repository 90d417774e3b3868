package sync

import (
	"strings"
	"testing"

	"github.com/embercove/content-sync/app/database"
)

func TestCaptionMatcher_ExactMatch(t *testing.T) {
	matcher := CaptionMatcher{}
	existing := []string{"Sunset at the pier", "Opening day!"}

	if !matcher.IsDuplicate(existing, "Sunset at the pier") {
		t.Error("Expected exact caption to match")
	}
}

func TestCaptionMatcher_NearMissDoesNotMatch(t *testing.T) {
	matcher := CaptionMatcher{}
	existing := []string{"Sunset at the pier"}

	if matcher.IsDuplicate(existing, "Sunset at the pier!") {
		t.Error("Expected caption differing by one character not to match")
	}
	if matcher.IsDuplicate(existing, "sunset at the pier") {
		t.Error("Expected caption differing by case not to match")
	}
}

func TestCaptionMatcher_EmptyCaptionNeverMatches(t *testing.T) {
	matcher := CaptionMatcher{}
	existing := []string{"", "Sunset at the pier"}

	if matcher.IsDuplicate(existing, "") {
		t.Error("Expected empty caption never to match, even against empty descriptions")
	}
}

func TestAuthorQuoteMatcher_PrefixMatch(t *testing.T) {
	matcher := NewAuthorQuoteMatcher()

	longText := strings.Repeat("a", 50)
	stored := []database.Review{
		{ID: "r1", MemberName: "Dana", Quote: longText + " original tail"},
	}

	// Same author, same first 50 characters, different tail
	match := matcher.Match(stored, "Dana", longText+" edited tail")
	if match == nil {
		t.Fatal("Expected prefix match despite differing tails")
	}
	if match.ID != "r1" {
		t.Errorf("Expected match r1, got %s", match.ID)
	}
}

func TestAuthorQuoteMatcher_DifferentAuthorDoesNotMatch(t *testing.T) {
	matcher := NewAuthorQuoteMatcher()

	stored := []database.Review{
		{ID: "r1", MemberName: "Dana", Quote: "Great service, will come back."},
	}

	if match := matcher.Match(stored, "Tracy", "Great service, will come back."); match != nil {
		t.Error("Expected same text from a different author not to match")
	}
}

func TestAuthorQuoteMatcher_ShortTextExactMatch(t *testing.T) {
	matcher := NewAuthorQuoteMatcher()

	stored := []database.Review{
		{ID: "r1", MemberName: "Dana", Quote: "Lovely."},
	}

	if matcher.Match(stored, "Dana", "Lovely.") == nil {
		t.Error("Expected short text to match exactly")
	}
	if matcher.Match(stored, "Dana", "Lovely") != nil {
		t.Error("Expected short text differing within the prefix not to match")
	}
}

func TestAuthorQuoteMatcher_MultibytePrefix(t *testing.T) {
	matcher := NewAuthorQuoteMatcher()

	text := strings.Repeat("é", 60)
	stored := []database.Review{
		{ID: "r1", MemberName: "Dana", Quote: text},
	}

	// The 50-character prefix is counted in runes, so the multi-byte text
	// must still match itself
	if matcher.Match(stored, "Dana", text) == nil {
		t.Error("Expected multi-byte text to match itself")
	}
}

func TestPrefix(t *testing.T) {
	if got := prefix("hello", 50); got != "hello" {
		t.Errorf("Expected short string unchanged, got %q", got)
	}
	if got := prefix(strings.Repeat("x", 60), 50); len(got) != 50 {
		t.Errorf("Expected 50 characters, got %d", len(got))
	}
	if got := prefix("ééé", 2); got != "éé" {
		t.Errorf("Expected rune-counted prefix, got %q", got)
	}
}
