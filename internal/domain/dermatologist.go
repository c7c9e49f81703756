package domain

import (
	"strings"
	"time"
)

const DefaultSpecialty = "Dermatology"

type Dermatologist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Location  string    `json:"location,omitempty"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Telehealth reports whether the entry offers remote-only consultation,
// inferred from keywords in the free-text location field. An empty location
// counts as in-person.
func (d Dermatologist) Telehealth() bool {
	loc := strings.ToLower(d.Location)
	return strings.Contains(loc, "telehealth") || strings.Contains(loc, "online")
}

type AvailabilityMode string

const (
	AvailabilityAll        AvailabilityMode = "all"
	AvailabilityTelehealth AvailabilityMode = "telehealth"
	AvailabilityInPerson   AvailabilityMode = "in-person"
)

func (m AvailabilityMode) IsValid() bool {
	return m == AvailabilityAll || m == AvailabilityTelehealth || m == AvailabilityInPerson
}

type DirectorySortKey string

const (
	DirectorySortByName     DirectorySortKey = "name"
	DirectorySortByLocation DirectorySortKey = "location"
)

func (k DirectorySortKey) IsValid() bool {
	return k == DirectorySortByName || k == DirectorySortByLocation
}

// DirectoryFilter is the filter state applied to a directory snapshot.
// The zero-ish defaults (empty location, "all", sort by name) leave the
// snapshot intact apart from ordering.
type DirectoryFilter struct {
	Location     string           `json:"location"`
	Availability AvailabilityMode `json:"availability"`
	SortBy       DirectorySortKey `json:"sort_by"`
}

func DefaultDirectoryFilter() DirectoryFilter {
	return DirectoryFilter{
		Availability: AvailabilityAll,
		SortBy:       DirectorySortByName,
	}
}
