package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidLatitude  = errors.New("latitude out of range")
	ErrInvalidLongitude = errors.New("longitude out of range")
	ErrEmptyLineName    = errors.New("medication line needs a name")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// Line is one requested medication, in the order the requester listed it.
type Line struct {
	MedicationID uuid.UUID
	Name         string
	Dosage       string
	Description  string
}

func NewLine(medicationID uuid.UUID, name, dosage, description string) (Line, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Line{}, ErrEmptyLineName
	}
	return Line{
		MedicationID: medicationID,
		Name:         name,
		Dosage:       strings.TrimSpace(dosage),
		Description:  strings.TrimSpace(description),
	}, nil
}

type Location struct {
	Latitude  float64
	Longitude float64
}

func NewLocation(lat, lng float64) (Location, error) {
	if lat < -90 || lat > 90 {
		return Location{}, ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return Location{}, ErrInvalidLongitude
	}
	return Location{Latitude: lat, Longitude: lng}, nil
}

// AvailabilityEntry is one pharmacy's answer for one requested line.
// The last write for a (request, pharmacy, medication) key wins.
type AvailabilityEntry struct {
	MedicationID uuid.UUID
	Available    bool
	Price        *int64
	Comment      *string
}

func NewAvailabilityEntry(medicationID uuid.UUID, available bool, price *int64, comment *string) (AvailabilityEntry, error) {
	if price != nil && *price < 0 {
		return AvailabilityEntry{}, ErrNegativePrice
	}
	if comment != nil {
		trimmed := strings.TrimSpace(*comment)
		if trimmed == "" {
			comment = nil
		} else {
			comment = &trimmed
		}
	}
	return AvailabilityEntry{
		MedicationID: medicationID,
		Available:    available,
		Price:        price,
		Comment:      comment,
	}, nil
}

// RestockNote records when a pharmacy expects an unavailable medication back in stock.
type RestockNote struct {
	PharmacyID   uuid.UUID
	MedicationID uuid.UUID
	RestockOn    time.Time
}
