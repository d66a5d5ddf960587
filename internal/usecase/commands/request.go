package commands

import (
	"context"
	"fmt"
	"time"

	"pharmalink/internal/domain/request"
	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/notify"
	"pharmalink/internal/pkg/clock"
	"pharmalink/internal/pkg/errs"
	"pharmalink/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRequestParams struct {
	RequesterID uuid.UUID
	Lines       []RequestLineParams
	Priority    request.Priority
	Latitude    float64
	Longitude   float64
}

type RequestLineParams struct {
	MedicationID uuid.UUID
	Name         string
	Dosage       string
	Description  string
}

type AvailabilityLineParams struct {
	MedicationID uuid.UUID
	Available    bool
	Price        *int64
	Comment      *string
}

type ConfirmAvailabilityParams struct {
	RequestID  uuid.UUID
	PharmacyID uuid.UUID
	Lines      []AvailabilityLineParams
}

type DeclareUnavailableParams struct {
	RequestID    uuid.UUID
	PharmacyID   uuid.UUID
	MedicationID uuid.UUID
	RestockOn    time.Time
}

type RequestCommands interface {
	// CreateRequest persists a new pending request and fans out one
	// "new request" notification to every registered pharmacy.
	CreateRequest(ctx context.Context, p CreateRequestParams) (uuid.UUID, error)
	// ConfirmAvailability upserts the pharmacy's answers for the given
	// lines; one available line is enough to confirm the request.
	ConfirmAvailability(ctx context.Context, p ConfirmAvailabilityParams) error
	// DeclareUnavailable records a restock annotation and nothing else.
	DeclareUnavailable(ctx context.Context, p DeclareUnavailableParams) error
}

type requestCommandsImpl struct {
	requestRepo RequestRepository
	notifRepo   NotificationRepository
	pharmacies  PharmacyDirectory
	catalog     CatalogReader
	tx          shared.TxRunner
	clock       clock.Clock
}

func NewRequestCommands(
	requestRepo RequestRepository,
	notifRepo NotificationRepository,
	pharmacies PharmacyDirectory,
	catalog CatalogReader,
	tx shared.TxRunner,
	clock clock.Clock,
) RequestCommands {
	return &requestCommandsImpl{
		requestRepo: requestRepo,
		notifRepo:   notifRepo,
		pharmacies:  pharmacies,
		catalog:     catalog,
		tx:          tx,
		clock:       clock,
	}
}

func (c *requestCommandsImpl) CreateRequest(ctx context.Context, p CreateRequestParams) (uuid.UUID, error) {
	if len(p.Lines) == 0 {
		return uuid.Nil, errs.ErrEmptyLines
	}

	lines := make([]request.Line, 0, len(p.Lines))
	for _, lp := range p.Lines {
		line, err := request.NewLine(lp.MedicationID, lp.Name, lp.Dosage, lp.Description)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		lines = append(lines, line)
	}

	location, err := request.NewLocation(p.Latitude, p.Longitude)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := request.NewRequest(p.RequesterID, lines, p.Priority, location, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var requestID uuid.UUID
	err = c.tx.Within(ctx, func(tx db.DBTX) error {
		for _, line := range lines {
			if _, findErr := c.catalog.MedicationByID(ctx, tx, line.MedicationID); findErr != nil {
				if infra.IsKind(findErr, infra.KindNotFound) {
					return errs.ErrMedicationNotFound
				}
				return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
			}
		}

		id, createErr := c.requestRepo.Create(ctx, tx, entity)
		if createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		requestID = id

		pharmacyIDs, listErr := c.pharmacies.ListPharmacyIDs(ctx, tx)
		if listErr != nil {
			return errs.Mark(listErr, errs.ErrDatabaseOperationFailed)
		}

		title := "New medication request"
		message := fmt.Sprintf("A client is looking for %d medication(s), priority %s", len(lines), entity.Priority())
		for _, pharmacyID := range pharmacyIDs {
			if notifErr := c.notifRepo.Enqueue(ctx, tx, pharmacyID, notify.KindNewRequest, title, message, requestID); notifErr != nil {
				return errs.Mark(notifErr, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return requestID, nil
}

func (c *requestCommandsImpl) ConfirmAvailability(ctx context.Context, p ConfirmAvailabilityParams) error {
	if len(p.Lines) == 0 {
		return errs.ErrEmptyLines
	}

	return c.tx.WithinRetry(ctx, func(tx db.DBTX) error {
		snap, err := c.requestRepo.FindSnapshot(ctx, tx, p.RequestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRequestNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		requested := make(map[uuid.UUID]struct{}, len(snap.Lines))
		for _, l := range snap.Lines {
			requested[l.MedicationID] = struct{}{}
		}

		entries := make([]request.AvailabilityEntry, 0, len(p.Lines))
		anyAvailable := false
		for _, lp := range p.Lines {
			if _, ok := requested[lp.MedicationID]; !ok {
				return errs.ErrUnknownLine
			}
			entry, entryErr := request.NewAvailabilityEntry(lp.MedicationID, lp.Available, lp.Price, lp.Comment)
			if entryErr != nil {
				return errs.Mark(entryErr, errs.ErrDomainValidation)
			}
			entries = append(entries, entry)
			if entry.Available {
				anyAvailable = true
			}
		}

		if err := c.requestRepo.UpsertAvailability(ctx, tx, p.RequestID, p.PharmacyID, entries); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if !anyAvailable {
			return nil
		}

		if err := c.requestRepo.ConfirmPharmacy(ctx, tx, p.RequestID, p.PharmacyID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		pharmacyName, err := c.pharmacies.PharmacyName(ctx, tx, p.PharmacyID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		title := "Pharmacy confirmed availability"
		message := fmt.Sprintf("%s can fulfill part of your request (%d line(s) answered)", pharmacyName, len(entries))
		if err := c.notifRepo.Enqueue(ctx, tx, snap.RequesterID, notify.KindAvailabilityConfirmed, title, message, p.RequestID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *requestCommandsImpl) DeclareUnavailable(ctx context.Context, p DeclareUnavailableParams) error {
	return c.tx.Within(ctx, func(tx db.DBTX) error {
		snap, err := c.requestRepo.FindSnapshot(ctx, tx, p.RequestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRequestNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		known := false
		for _, l := range snap.Lines {
			if l.MedicationID == p.MedicationID {
				known = true
				break
			}
		}
		if !known {
			return errs.ErrUnknownLine
		}

		note := request.RestockNote{
			PharmacyID:   p.PharmacyID,
			MedicationID: p.MedicationID,
			RestockOn:    p.RestockOn,
		}
		if err := c.requestRepo.AddRestockNote(ctx, tx, p.RequestID, note); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
