package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RequestView struct {
	ID                  uuid.UUID           `json:"id"`
	RequesterID         uuid.UUID           `json:"requester_id"`
	Status              string              `json:"status"`
	Priority            string              `json:"priority"`
	Latitude            float64             `json:"latitude"`
	Longitude           float64             `json:"longitude"`
	OrderID             *uuid.UUID          `json:"order_id,omitempty"`
	Lines               []RequestLineView   `json:"lines"`
	ConfirmedPharmacies []uuid.UUID         `json:"confirmed_pharmacies"`
	Availabilities      []AvailabilityView  `json:"availabilities"`
	RestockNotes        []RestockNoteView   `json:"restock_notes"`
	Orders              []OrderProgressView `json:"orders"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

type RequestLineView struct {
	MedicationID uuid.UUID `json:"medication_id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage,omitempty"`
	Description  string    `json:"description,omitempty"`
}

type AvailabilityView struct {
	PharmacyID   uuid.UUID `json:"pharmacy_id"`
	MedicationID uuid.UUID `json:"medication_id"`
	Available    bool      `json:"available"`
	Price        *int64    `json:"price,omitempty"`
	Comment      *string   `json:"comment,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RestockNoteView struct {
	PharmacyID   uuid.UUID `json:"pharmacy_id"`
	MedicationID uuid.UUID `json:"medication_id"`
	RestockOn    time.Time `json:"restock_on"`
}

// OrderProgressView tracks one derived order's stage so clients can see
// divergence between pharmacies instead of a single mutated status.
type OrderProgressView struct {
	OrderID    uuid.UUID `json:"order_id"`
	PharmacyID uuid.UUID `json:"pharmacy_id"`
	Status     string    `json:"status"`
}

type RequestListItem struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	LineCount int       `json:"line_count"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchedLineView is one line of the availability matrix: a requested
// medication one pharmacy can deliver, with the effective price.
type MatchedLineView struct {
	MedicationID  uuid.UUID `json:"medication_id"`
	Name          string    `json:"name"`
	Dosage        string    `json:"dosage,omitempty"`
	Price         int64     `json:"price"`
	PharmacyPrice *int64    `json:"pharmacy_price,omitempty"`
	CatalogPrice  int64     `json:"catalog_price"`
	Comment       *string   `json:"comment,omitempty"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	RequestID     uuid.UUID       `json:"request_id"`
	RequesterID   uuid.UUID       `json:"requester_id"`
	PharmacyID    uuid.UUID       `json:"pharmacy_id"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	TotalAmount   int64           `json:"total_amount"`
	Lines         []OrderLineView `json:"lines"`
	CreatedAt     time.Time       `json:"created_at"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	PreparedAt    *time.Time      `json:"prepared_at,omitempty"`
	ReadyAt       *time.Time      `json:"ready_at,omitempty"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

type OrderLineView struct {
	MedicationID uuid.UUID `json:"medication_id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage,omitempty"`
	Price        int64     `json:"price"`
}

type OrderListItem struct {
	ID          uuid.UUID `json:"id"`
	RequestID   uuid.UUID `json:"request_id"`
	PharmacyID  uuid.UUID `json:"pharmacy_id"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

type NotificationView struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Kind      string     `json:"kind"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	RelatedID *uuid.UUID `json:"related_id,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
