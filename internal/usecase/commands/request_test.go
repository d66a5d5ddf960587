//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"pharmalink/internal/domain/request"
	"pharmalink/internal/infra"
	"pharmalink/internal/infra/db"
	"pharmalink/internal/notify"
	"pharmalink/internal/pkg/clock"
	"pharmalink/internal/pkg/errs"
	"pharmalink/internal/usecase/commands"
	"pharmalink/tests/common/testutil"
	commandsmock "pharmalink/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockRequestRepo *commandsmock.MockRequestRepository
	mockNotifRepo   *commandsmock.MockNotificationRepository
	mockPharmacies  *commandsmock.MockPharmacyDirectory
	mockCatalog     *commandsmock.MockCatalogReader
	clock           *clock.MockClock
	commands        commands.RequestCommands
}

func (s *RequestCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRequestRepo = commandsmock.NewMockRequestRepository(s.mockCtrl)
	s.mockNotifRepo = commandsmock.NewMockNotificationRepository(s.mockCtrl)
	s.mockPharmacies = commandsmock.NewMockPharmacyDirectory(s.mockCtrl)
	s.mockCatalog = commandsmock.NewMockCatalogReader(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewRequestCommands(
		s.mockRequestRepo, s.mockNotifRepo, s.mockPharmacies, s.mockCatalog,
		testutil.StubTxRunner{}, s.clock)
}

func (s *RequestCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestCommandsSuite(t *testing.T) {
	suite.Run(t, new(RequestCommandsTestSuite))
}

func validCreateParams(requesterID uuid.UUID) commands.CreateRequestParams {
	return commands.CreateRequestParams{
		RequesterID: requesterID,
		Lines: []commands.RequestLineParams{
			{MedicationID: uuid.New(), Name: "Paracetamol", Dosage: "500mg"},
			{MedicationID: uuid.New(), Name: "Amoxicillin", Dosage: "250mg"},
		},
		Priority:  request.PriorityMedium,
		Latitude:  6.1725,
		Longitude: 1.2314,
	}
}

func (s *RequestCommandsTestSuite) TestCreateRequest() {
	requesterID := uuid.New()

	s.Run("success: notifies every registered pharmacy", func() {
		p := validCreateParams(requesterID)
		requestID := uuid.New()
		pharmacyIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

		s.mockCatalog.EXPECT().MedicationByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.MedicationSnapshot{}, nil).Times(2)
		s.mockRequestRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(requestID, nil)
		s.mockPharmacies.EXPECT().ListPharmacyIDs(gomock.Any(), gomock.Any()).
			Return(pharmacyIDs, nil)
		for _, pharmacyID := range pharmacyIDs {
			s.mockNotifRepo.EXPECT().Enqueue(gomock.Any(), gomock.Any(), pharmacyID,
				gomock.Any(), gomock.Any(), gomock.Any(), requestID).Return(nil)
		}

		got, err := s.commands.CreateRequest(context.Background(), p)
		s.NoError(err)
		s.Equal(requestID, got)
	})

	s.Run("success: no pharmacies registered, no notifications", func() {
		p := validCreateParams(requesterID)
		requestID := uuid.New()

		s.mockCatalog.EXPECT().MedicationByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.MedicationSnapshot{}, nil).Times(2)
		s.mockRequestRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(requestID, nil)
		s.mockPharmacies.EXPECT().ListPharmacyIDs(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		got, err := s.commands.CreateRequest(context.Background(), p)
		s.NoError(err)
		s.Equal(requestID, got)
	})

	s.Run("error: empty lines rejected before any persistence", func() {
		p := validCreateParams(requesterID)
		p.Lines = nil

		_, err := s.commands.CreateRequest(context.Background(), p)
		s.ErrorIs(err, errs.ErrEmptyLines)
	})

	s.Run("error: out-of-range coordinates fail domain validation", func() {
		p := validCreateParams(requesterID)
		p.Latitude = 91

		_, err := s.commands.CreateRequest(context.Background(), p)
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("error: line references a medication missing from the catalog", func() {
		p := validCreateParams(requesterID)

		s.mockCatalog.EXPECT().MedicationByID(gomock.Any(), gomock.Any(), p.Lines[0].MedicationID).
			Return(nil, infra.WrapRepoErr("medication not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.commands.CreateRequest(context.Background(), p)
		s.ErrorIs(err, errs.ErrMedicationNotFound)
	})
}

func (s *RequestCommandsTestSuite) TestConfirmAvailability() {
	requestID := uuid.New()
	pharmacyID := uuid.New()
	requesterID := uuid.New()
	medA := uuid.New()
	medB := uuid.New()

	snapshot := func() *commands.RequestSnapshot {
		lineA, _ := request.NewLine(medA, "Paracetamol", "500mg", "")
		lineB, _ := request.NewLine(medB, "Amoxicillin", "250mg", "")
		return &commands.RequestSnapshot{
			ID:          requestID,
			RequesterID: requesterID,
			Status:      request.StatusPending,
			Lines:       []request.Line{lineA, lineB},
		}
	}

	price := int64(1500)

	s.Run("success: one available line confirms the request and notifies the requester", func() {
		p := commands.ConfirmAvailabilityParams{
			RequestID:  requestID,
			PharmacyID: pharmacyID,
			Lines: []commands.AvailabilityLineParams{
				{MedicationID: medA, Available: true, Price: &price},
				{MedicationID: medB, Available: false},
			},
		}

		s.mockRequestRepo.EXPECT().FindSnapshot(gomock.Any(), gomock.Any(), requestID).
			Return(snapshot(), nil)
		s.mockRequestRepo.EXPECT().UpsertAvailability(gomock.Any(), gomock.Any(), requestID, pharmacyID, gomock.Len(2)).
			Return(nil)
		s.mockRequestRepo.EXPECT().ConfirmPharmacy(gomock.Any(), gomock.Any(), requestID, pharmacyID).
			Return(nil)
		s.mockPharmacies.EXPECT().PharmacyName(gomock.Any(), gomock.Any(), pharmacyID).
			Return("Pharmacie du Centre", nil)
		s.mockNotifRepo.EXPECT().Enqueue(gomock.Any(), gomock.Any(), requesterID,
			notify.KindAvailabilityConfirmed, gomock.Any(), gomock.Any(), requestID).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _ uuid.UUID, _ notify.Kind, _, message string, _ uuid.UUID) error {
				s.Contains(message, "Pharmacie du Centre")
				return nil
			})

		s.NoError(s.commands.ConfirmAvailability(context.Background(), p))
	})

	s.Run("success: all lines unavailable, answers stored but request stays pending", func() {
		p := commands.ConfirmAvailabilityParams{
			RequestID:  requestID,
			PharmacyID: pharmacyID,
			Lines: []commands.AvailabilityLineParams{
				{MedicationID: medA, Available: false},
				{MedicationID: medB, Available: false},
			},
		}

		s.mockRequestRepo.EXPECT().FindSnapshot(gomock.Any(), gomock.Any(), requestID).
			Return(snapshot(), nil)
		s.mockRequestRepo.EXPECT().UpsertAvailability(gomock.Any(), gomock.Any(), requestID, pharmacyID, gomock.Len(2)).
			Return(nil)
		// No ConfirmPharmacy, no notification.

		s.NoError(s.commands.ConfirmAvailability(context.Background(), p))
	})

	s.Run("error: line not part of the request", func() {
		p := commands.ConfirmAvailabilityParams{
			RequestID:  requestID,
			PharmacyID: pharmacyID,
			Lines: []commands.AvailabilityLineParams{
				{MedicationID: uuid.New(), Available: true, Price: &price},
			},
		}

		s.mockRequestRepo.EXPECT().FindSnapshot(gomock.Any(), gomock.Any(), requestID).
			Return(snapshot(), nil)

		err := s.commands.ConfirmAvailability(context.Background(), p)
		s.ErrorIs(err, errs.ErrUnknownLine)
	})

	s.Run("error: request not found", func() {
		p := commands.ConfirmAvailabilityParams{
			RequestID:  requestID,
			PharmacyID: pharmacyID,
			Lines: []commands.AvailabilityLineParams{
				{MedicationID: medA, Available: true, Price: &price},
			},
		}

		s.mockRequestRepo.EXPECT().FindSnapshot(gomock.Any(), gomock.Any(), requestID).
			Return(nil, infra.WrapRepoErr("request not found", pgx.ErrNoRows, infra.KindNotFound))

		err := s.commands.ConfirmAvailability(context.Background(), p)
		s.ErrorIs(err, errs.ErrRequestNotFound)
	})

	s.Run("error: empty answer set", func() {
		p := commands.ConfirmAvailabilityParams{RequestID: requestID, PharmacyID: pharmacyID}

		err := s.commands.ConfirmAvailability(context.Background(), p)
		s.ErrorIs(err, errs.ErrEmptyLines)
	})
}

func (s *RequestCommandsTestSuite) TestDeclareUnavailable() {
	requestID := uuid.New()
	pharmacyID := uuid.New()
	medA := uuid.New()

	snapshot := func() *commands.RequestSnapshot {
		lineA, _ := request.NewLine(medA, "Paracetamol", "500mg", "")
		return &commands.RequestSnapshot{
			ID:          requestID,
			RequesterID: uuid.New(),
			Status:      request.StatusPending,
			Lines:       []request.Line{lineA},
		}
	}

	restockOn := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	s.Run("success: restock note recorded, status untouched", func() {
		p := commands.DeclareUnavailableParams{
			RequestID:    requestID,
			PharmacyID:   pharmacyID,
			MedicationID: medA,
			RestockOn:    restockOn,
		}

		s.mockRequestRepo.EXPECT().FindSnapshot(gomock.Any(), gomock.Any(), requestID).
			Return(snapshot(), nil)
		s.mockRequestRepo.EXPECT().AddRestockNote(gomock.Any(), gomock.Any(), requestID,
			request.RestockNote{PharmacyID: pharmacyID, MedicationID: medA, RestockOn: restockOn}).
			Return(nil)

		s.NoError(s.commands.DeclareUnavailable(context.Background(), p))
	})

	s.Run("error: medication not part of the request", func() {
		p := commands.DeclareUnavailableParams{
			RequestID:    requestID,
			PharmacyID:   pharmacyID,
			MedicationID: uuid.New(),
			RestockOn:    restockOn,
		}

		s.mockRequestRepo.EXPECT().FindSnapshot(gomock.Any(), gomock.Any(), requestID).
			Return(snapshot(), nil)

		err := s.commands.DeclareUnavailable(context.Background(), p)
		s.ErrorIs(err, errs.ErrUnknownLine)
	})
}
