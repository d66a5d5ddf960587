package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	Lines     []RequestLineRequest `json:"lines" binding:"required,min=1,dive"`
	Priority  string               `json:"priority" binding:"required,oneof=low medium high"`
	Latitude  float64              `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64              `json:"longitude" binding:"min=-180,max=180"`
}

type RequestLineRequest struct {
	MedicationID uuid.UUID `json:"medicationId" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Dosage       string    `json:"dosage"`
	Description  string    `json:"description"`
}

type ConfirmAvailabilityRequest struct {
	Lines []AvailabilityLineRequest `json:"lines" binding:"required,min=1,dive"`
}

type AvailabilityLineRequest struct {
	MedicationID uuid.UUID `json:"medicationId" binding:"required"`
	Available    bool      `json:"available"`
	Price        *int64    `json:"price,omitempty"`
	Comment      *string   `json:"comment,omitempty"`
}

type DeclareUnavailableRequest struct {
	MedicationID uuid.UUID `json:"medicationId" binding:"required"`
	RestockOn    time.Time `json:"restockOn" binding:"required"`
}
