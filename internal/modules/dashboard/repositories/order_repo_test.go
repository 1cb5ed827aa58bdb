package repositories

import (
	"testing"
	"time"
)

func TestContainsPatternEscapesWildcards(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   string
	}{
		{"plain text", "ada", "%ada%"},
		{"percent", "50%", `%50\%%`},
		{"underscore", "a_b", `%a\_b%`},
		{"backslash", `a\b`, `%a\\b%`},
		{"only wildcards", "%_", `%\%\_%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsPattern(tt.search); got != tt.want {
				t.Errorf("containsPattern(%q) = %q, want %q", tt.search, got, tt.want)
			}
		})
	}
}

func TestInLocationKeepsWallClock(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	stored := time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC)

	got := inLocation(stored, jakarta)

	if got.Location() != jakarta {
		t.Errorf("location = %v, want %v", got.Location(), jakarta)
	}
	if got.Format("2006-01-02 15:04:05") != "2024-06-15 23:30:00" {
		t.Errorf("wall clock = %s, want 2024-06-15 23:30:00", got.Format("2006-01-02 15:04:05"))
	}
	if got.Format(time.RFC3339) != "2024-06-15T23:30:00+07:00" {
		t.Errorf("RFC3339 = %s, want +07:00 offset", got.Format(time.RFC3339))
	}
	if !inLocation(time.Time{}, jakarta).IsZero() {
		t.Error("zero time should stay zero")
	}
}

func TestNewOrderRepoDefaultsToUTC(t *testing.T) {
	repo := NewOrderRepo(nil, nil).(*orderRepo)
	if repo.loc != time.UTC {
		t.Errorf("loc = %v, want UTC", repo.loc)
	}
}
