package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoLines         = errors.New("request needs at least one medication line")
	ErrDuplicateLine   = errors.New("request lists the same medication twice")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid request status")
	ErrStatusRegress   = errors.New("request status cannot move backwards")
)

// Request is a client's broadcast for one or more medications. Pharmacies answer
// independently; availability entries and the confirmed set grow as they do.
type Request struct {
	id          uuid.UUID
	requesterID uuid.UUID
	lines       []Line
	priority    Priority
	status      Status
	location    Location
	orderID     *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRequest(requesterID uuid.UUID, lines []Line, priority Priority, location Location, now time.Time) (*Request, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, l := range lines {
		if _, dup := seen[l.MedicationID]; dup {
			return nil, ErrDuplicateLine
		}
		seen[l.MedicationID] = struct{}{}
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	return &Request{
		id:          uuid.New(),
		requesterID: requesterID,
		lines:       lines,
		priority:    priority,
		status:      StatusPending,
		location:    location,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRequest(
	id, requesterID uuid.UUID,
	lines []Line,
	priority Priority,
	status Status,
	location Location,
	orderID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:          id,
		requesterID: requesterID,
		lines:       lines,
		priority:    priority,
		status:      status,
		location:    location,
		orderID:     orderID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// AdvanceTo moves the status forward. Same-or-earlier targets are rejected,
// keeping the lifecycle monotonic.
func (r *Request) AdvanceTo(target Status) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.Before(target) {
		return ErrStatusRegress
	}
	r.status = target
	return nil
}

// HasLine reports whether the request asked for the given medication.
func (r *Request) HasLine(medicationID uuid.UUID) bool {
	for _, l := range r.lines {
		if l.MedicationID == medicationID {
			return true
		}
	}
	return false
}

func (r *Request) LinkOrder(orderID uuid.UUID) {
	r.orderID = &orderID
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) RequesterID() uuid.UUID { return r.requesterID }
func (r *Request) Lines() []Line          { return r.lines }
func (r *Request) Priority() Priority     { return r.priority }
func (r *Request) Status() Status         { return r.status }
func (r *Request) Location() Location     { return r.location }
func (r *Request) OrderID() *uuid.UUID    { return r.orderID }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
func (r *Request) UpdatedAt() time.Time   { return r.updatedAt }
