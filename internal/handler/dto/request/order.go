package request

import (
	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	RequestID     uuid.UUID   `json:"requestId" binding:"required"`
	PharmacyID    uuid.UUID   `json:"pharmacyId" binding:"required"`
	MedicationIDs []uuid.UUID `json:"medicationIds" binding:"required,min=1"`
}

type PayOrderRequest struct {
	Method string `json:"method" binding:"required,oneof=card mobile_money cash"`
}

type AdvanceOrderRequest struct {
	Status string `json:"status" binding:"required,oneof=preparing ready completed"`
}
