package service

import (
	"strings"
	"testing"

	"acnescan/internal/domain"
)

func sampleDirectory() []domain.Dermatologist {
	return []domain.Dermatologist{
		{ID: 1, Name: "Dr. Sarah Johnson", Location: "Boston, MA"},
		{ID: 2, Name: "Dr. Michael Chen", Location: "San Francisco, CA"},
		{ID: 3, Name: "Dr. Priya Patel", Location: "Telehealth - Online Consultations"},
		{ID: 4, Name: "Dr. James Wilson", Location: "New York, NY"},
		{ID: 5, Name: "Dr. Laura Bennett", Location: "Denver, CO (online appointments available)"},
		{ID: 6, Name: "Dr. Robert Garcia", Location: ""},
	}
}

func TestMatchesLocation_EmptyQueryMatchesEverything(t *testing.T) {
	for _, d := range sampleDirectory() {
		if !MatchesLocation(d.Location, "") {
			t.Errorf("empty query should match %q", d.Location)
		}
	}
}

func TestMatchesLocation_CaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		location string
		query    string
		want     bool
	}{
		{"Boston, MA", "boston", true},
		{"Boston, MA", "BOSTON", true},
		{"Boston, MA", "ton, m", true},
		{"Boston, MA", "Chicago", false},
		{"San Francisco, CA", "francisco", true},
	}

	for _, tt := range tests {
		if got := MatchesLocation(tt.location, tt.query); got != tt.want {
			t.Errorf("MatchesLocation(%q, %q) = %v, want %v", tt.location, tt.query, got, tt.want)
		}
	}
}

func TestMatchesLocation_StateCodeExpansion(t *testing.T) {
	tests := []struct {
		location string
		query    string
		want     bool
	}{
		{"Boston, MA", "MA", true},
		{"Boston, MA", "ma", true},
		{"Boston, MA", "Massachusetts", true},
		{"Boston, MA", "massachusetts", true},
		{"New York, NY", "new york", true},
		{"San Francisco, CA", "California", true},
		// No comma before the token, so no expansion happens.
		{"Boston MA", "Massachusetts", false},
		// Unknown code leaves the search text unexpanded.
		{"Springfield, ZZ", "Massachusetts", false},
		{"Springfield, ZZ", "zz", true},
	}

	for _, tt := range tests {
		if got := MatchesLocation(tt.location, tt.query); got != tt.want {
			t.Errorf("MatchesLocation(%q, %q) = %v, want %v", tt.location, tt.query, got, tt.want)
		}
	}
}

func TestMatchesLocation_AbsentLocationNeverMatches(t *testing.T) {
	if MatchesLocation("", "boston") {
		t.Error("an empty location should not match a non-empty query")
	}
}

func TestMatchesAvailability_PartitionsDirectory(t *testing.T) {
	directory := sampleDirectory()

	telehealth := 0
	inPerson := 0
	for _, d := range directory {
		isTele := MatchesAvailability(d, domain.AvailabilityTelehealth)
		isInPerson := MatchesAvailability(d, domain.AvailabilityInPerson)

		if isTele && isInPerson {
			t.Errorf("entry %q matched both modes", d.Name)
		}
		if !isTele && !isInPerson {
			t.Errorf("entry %q matched neither mode", d.Name)
		}
		if isTele {
			telehealth++
		} else {
			inPerson++
		}
	}

	if telehealth+inPerson != len(directory) {
		t.Errorf("modes do not partition the directory: %d + %d != %d", telehealth, inPerson, len(directory))
	}
	if telehealth != 2 {
		t.Errorf("expected 2 telehealth entries, got %d", telehealth)
	}
}

func TestMatchesAvailability_EmptyLocationIsInPerson(t *testing.T) {
	d := domain.Dermatologist{Name: "Dr. Robert Garcia", Location: ""}
	if !MatchesAvailability(d, domain.AvailabilityInPerson) {
		t.Error("entry without a location should count as in-person")
	}
	if MatchesAvailability(d, domain.AvailabilityTelehealth) {
		t.Error("entry without a location should not count as telehealth")
	}
}

func TestFilterDirectory_DefaultFilterKeepsEverything(t *testing.T) {
	directory := sampleDirectory()

	got := FilterDirectory(directory, domain.DefaultDirectoryFilter())
	if len(got) != len(directory) {
		t.Fatalf("default filter dropped entries: got %d, want %d", len(got), len(directory))
	}
}

func TestFilterDirectory_SortByNameIsCaseInsensitive(t *testing.T) {
	directory := []domain.Dermatologist{
		{ID: 1, Name: "ben stone", Location: "Austin, TX"},
		{ID: 2, Name: "Amy Reed", Location: "Boston, MA"},
		{ID: 3, Name: "Carl Young", Location: "Denver, CO"},
	}

	got := FilterDirectory(directory, domain.DefaultDirectoryFilter())

	wantOrder := []string{"Amy Reed", "ben stone", "Carl Young"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestFilterDirectory_SortByNameKeepsTiedOrder(t *testing.T) {
	directory := []domain.Dermatologist{
		{ID: 1, Name: "Amy Reed", Location: "Austin, TX"},
		{ID: 2, Name: "Amy Reed", Location: "Boston, MA"},
		{ID: 3, Name: "amy reed", Location: "Denver, CO"},
		{ID: 4, Name: "Ben Stone", Location: "Miami, FL"},
	}

	got := FilterDirectory(directory, domain.DefaultDirectoryFilter())

	wantIDs := []int64{1, 2, 3, 4}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d: got ID %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestFilterDirectory_SortByLocationKeepsTiedOrder(t *testing.T) {
	directory := []domain.Dermatologist{
		{ID: 1, Name: "Carl Young", Location: "Boston, MA"},
		{ID: 2, Name: "Amy Reed", Location: "Boston, MA"},
		{ID: 3, Name: "Ben Stone", Location: "Austin, TX"},
	}

	filter := domain.DefaultDirectoryFilter()
	filter.SortBy = domain.DirectorySortByLocation

	got := FilterDirectory(directory, filter)

	wantIDs := []int64{3, 1, 2}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d: got ID %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestFilterDirectory_SortByLocation(t *testing.T) {
	directory := sampleDirectory()

	filter := domain.DefaultDirectoryFilter()
	filter.SortBy = domain.DirectorySortByLocation

	got := FilterDirectory(directory, filter)
	for i := 1; i < len(got); i++ {
		// Quick ordering sanity check with plain lowercase comparison;
		// the inputs are ASCII.
		if strings.ToLower(got[i-1].Location) > strings.ToLower(got[i].Location) {
			t.Errorf("locations out of order: %q before %q", got[i-1].Location, got[i].Location)
		}
	}
}

func TestFilterDirectory_InvalidSortKeyFallsBackToName(t *testing.T) {
	directory := sampleDirectory()

	filter := domain.DefaultDirectoryFilter()
	filter.SortBy = domain.DirectorySortKey("rating")

	got := FilterDirectory(directory, filter)
	if got[0].Name != "Dr. James Wilson" {
		t.Errorf("expected name-sorted output, got %q first", got[0].Name)
	}
}

func TestFilterDirectory_CombinedLocationAndAvailability(t *testing.T) {
	directory := sampleDirectory()

	filter := domain.DirectoryFilter{
		Location:     "online",
		Availability: domain.AvailabilityTelehealth,
		SortBy:       domain.DirectorySortByName,
	}

	got := FilterDirectory(directory, filter)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Name != "Dr. Laura Bennett" || got[1].Name != "Dr. Priya Patel" {
		t.Errorf("unexpected matches: %q, %q", got[0].Name, got[1].Name)
	}
}

func TestFilterDirectory_TrimsQueryWhitespace(t *testing.T) {
	directory := sampleDirectory()

	filter := domain.DefaultDirectoryFilter()
	filter.Location = "   "

	got := FilterDirectory(directory, filter)
	if len(got) != len(directory) {
		t.Errorf("whitespace-only query should match everything, got %d of %d", len(got), len(directory))
	}
}

func TestFilterDirectory_DoesNotMutateInput(t *testing.T) {
	directory := sampleDirectory()
	original := make([]domain.Dermatologist, len(directory))
	copy(original, directory)

	filter := domain.DefaultDirectoryFilter()
	filter.SortBy = domain.DirectorySortByLocation
	FilterDirectory(directory, filter)

	for i := range directory {
		if directory[i].ID != original[i].ID {
			t.Fatalf("input slice was reordered at index %d", i)
		}
	}
}
