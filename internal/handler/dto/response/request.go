package response

import (
	"time"

	"pharmalink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RequestResponse struct {
	ID                  uuid.UUID               `json:"id"`
	RequesterID         uuid.UUID               `json:"requesterId"`
	Status              string                  `json:"status"`
	Priority            string                  `json:"priority"`
	Latitude            float64                 `json:"latitude"`
	Longitude           float64                 `json:"longitude"`
	OrderID             *uuid.UUID              `json:"orderId,omitempty"`
	Lines               []RequestLineResponse   `json:"lines"`
	ConfirmedPharmacies []uuid.UUID             `json:"confirmedPharmacies"`
	Availabilities      []AvailabilityResponse  `json:"availabilities"`
	RestockNotes        []RestockNoteResponse   `json:"restockNotes"`
	Orders              []OrderProgressResponse `json:"orders"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

type RequestLineResponse struct {
	MedicationID uuid.UUID `json:"medicationId"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage,omitempty"`
	Description  string    `json:"description,omitempty"`
}

type AvailabilityResponse struct {
	PharmacyID   uuid.UUID `json:"pharmacyId"`
	MedicationID uuid.UUID `json:"medicationId"`
	Available    bool      `json:"available"`
	Price        *int64    `json:"price,omitempty"`
	Comment      *string   `json:"comment,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type RestockNoteResponse struct {
	PharmacyID   uuid.UUID `json:"pharmacyId"`
	MedicationID uuid.UUID `json:"medicationId"`
	RestockOn    time.Time `json:"restockOn"`
}

type OrderProgressResponse struct {
	OrderID    uuid.UUID `json:"orderId"`
	PharmacyID uuid.UUID `json:"pharmacyId"`
	Status     string    `json:"status"`
}

type RequestListResponse struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	LineCount int       `json:"lineCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type MatchedLineResponse struct {
	MedicationID  uuid.UUID `json:"medicationId"`
	Name          string    `json:"name"`
	Dosage        string    `json:"dosage,omitempty"`
	Price         int64     `json:"price"`
	PharmacyPrice *int64    `json:"pharmacyPrice,omitempty"`
	CatalogPrice  int64     `json:"catalogPrice"`
	Comment       *string   `json:"comment,omitempty"`
}

// MatchResponse groups the availability matrix by pharmacy.
type MatchResponse struct {
	PharmacyID uuid.UUID             `json:"pharmacyId"`
	Lines      []MatchedLineResponse `json:"lines"`
}

func FromRequestView(view *queries.RequestView) (*RequestResponse, error) {
	var resp RequestResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromRequestListItem(item *queries.RequestListItem) *RequestListResponse {
	return &RequestListResponse{
		ID:        item.ID,
		Status:    item.Status,
		Priority:  item.Priority,
		LineCount: item.LineCount,
		CreatedAt: item.CreatedAt,
	}
}

func FromMatchedLines(matrix map[uuid.UUID][]*queries.MatchedLineView) ([]*MatchResponse, error) {
	resp := make([]*MatchResponse, 0, len(matrix))
	for pharmacyID, lines := range matrix {
		entry := &MatchResponse{PharmacyID: pharmacyID}
		if err := copier.Copy(&entry.Lines, lines); err != nil {
			return nil, err
		}
		resp = append(resp, entry)
	}
	return resp, nil
}
