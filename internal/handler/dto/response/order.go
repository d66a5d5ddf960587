package response

import (
	"time"

	"pharmalink/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateOrderResponse struct {
	OrderID     uuid.UUID `json:"orderId"`
	TotalAmount int64     `json:"totalAmount"`
}

type PayOrderResponse struct {
	OrderID  uuid.UUID `json:"orderId"`
	Status   string    `json:"status"`
	Replayed bool      `json:"replayed"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	RequestID     uuid.UUID           `json:"requestId"`
	RequesterID   uuid.UUID           `json:"requesterId"`
	PharmacyID    uuid.UUID           `json:"pharmacyId"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	PaymentMethod *string             `json:"paymentMethod,omitempty"`
	TotalAmount   int64               `json:"totalAmount"`
	Lines         []OrderLineResponse `json:"lines"`
	CreatedAt     time.Time           `json:"createdAt"`
	PaidAt        *time.Time          `json:"paidAt,omitempty"`
	PreparedAt    *time.Time          `json:"preparedAt,omitempty"`
	ReadyAt       *time.Time          `json:"readyAt,omitempty"`
	CompletedAt   *time.Time          `json:"completedAt,omitempty"`
}

type OrderLineResponse struct {
	MedicationID uuid.UUID `json:"medicationId"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage,omitempty"`
	Price        int64     `json:"price"`
}

type OrderListResponse struct {
	ID          uuid.UUID `json:"id"`
	RequestID   uuid.UUID `json:"requestId"`
	PharmacyID  uuid.UUID `json:"pharmacyId"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromOrderView(view *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromOrderListItem(item *queries.OrderListItem) *OrderListResponse {
	return &OrderListResponse{
		ID:          item.ID,
		RequestID:   item.RequestID,
		PharmacyID:  item.PharmacyID,
		Status:      item.Status,
		TotalAmount: item.TotalAmount,
		CreatedAt:   item.CreatedAt,
	}
}
