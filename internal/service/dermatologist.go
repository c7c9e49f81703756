package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"acnescan/internal/domain"
	"acnescan/internal/repository"
	"acnescan/pkg/usstates"
)

// stateCodeRegex captures a two-letter token immediately following a comma,
// the usual "City, ST" shape of the free-text location field.
var stateCodeRegex = regexp.MustCompile(`,\s*([A-Za-z]{2})\b`)

type DermatologistServiceImpl struct {
	repo   repository.DermatologistRepository
	logger *zap.Logger
}

func NewDermatologistService(repo repository.DermatologistRepository, logger *zap.Logger) *DermatologistServiceImpl {
	return &DermatologistServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *DermatologistServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Dermatologist, error) {
	dermatologist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get dermatologist", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("dermatologist: %w", domain.ErrNotFound)
	}

	return dermatologist, nil
}

// List fetches the directory snapshot and applies the filter state to it.
// The second return value is the size of the unfiltered snapshot so callers
// can render "showing N of M".
func (s *DermatologistServiceImpl) List(ctx context.Context, filter domain.DirectoryFilter) ([]domain.Dermatologist, int, error) {
	directory, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to load dermatologist directory", zap.Error(err))
		return nil, 0, errors.New("failed to load dermatologist directory")
	}

	return FilterDirectory(directory, filter), len(directory), nil
}

// MatchesLocation reports whether the location field matches the query.
// The match is a case-insensitive substring test against the raw location,
// extended with the full region name when the location ends in a recognized
// ", XX" state code, so that "MA" and "Massachusetts" both match
// "Boston, MA". Unknown codes leave the search text unexpanded. An empty
// query matches everything.
func MatchesLocation(location, query string) bool {
	if query == "" {
		return true
	}

	searchText := strings.ToLower(location)

	if match := stateCodeRegex.FindStringSubmatch(location); match != nil {
		if fullName, ok := usstates.NameByCode(match[1]); ok {
			searchText += " " + strings.ToLower(fullName)
		}
	}

	return strings.Contains(searchText, strings.ToLower(query))
}

// MatchesAvailability applies the availability mode to one entry.
func MatchesAvailability(dermatologist domain.Dermatologist, mode domain.AvailabilityMode) bool {
	switch mode {
	case domain.AvailabilityTelehealth:
		return dermatologist.Telehealth()
	case domain.AvailabilityInPerson:
		return !dermatologist.Telehealth()
	default:
		return true
	}
}

// FilterDirectory is the pure filter/sort pipeline over a directory
// snapshot: location predicate, availability predicate, then a stable
// locale-aware sort by the chosen key. The input slice is never mutated.
func FilterDirectory(directory []domain.Dermatologist, filter domain.DirectoryFilter) []domain.Dermatologist {
	query := strings.TrimSpace(filter.Location)

	filtered := make([]domain.Dermatologist, 0, len(directory))
	for _, dermatologist := range directory {
		if !MatchesLocation(dermatologist.Location, query) {
			continue
		}
		if !MatchesAvailability(dermatologist, filter.Availability) {
			continue
		}
		filtered = append(filtered, dermatologist)
	}

	collator := collate.New(language.AmericanEnglish, collate.IgnoreCase)
	sortBy := filter.SortBy
	if !sortBy.IsValid() {
		sortBy = domain.DirectorySortByName
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if sortBy == domain.DirectorySortByLocation {
			return collator.CompareString(filtered[i].Location, filtered[j].Location) < 0
		}
		return collator.CompareString(filtered[i].Name, filtered[j].Name) < 0
	})

	return filtered
}
