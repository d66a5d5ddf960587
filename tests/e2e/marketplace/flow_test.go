//go:build e2e

package marketplace_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"pharmalink/internal/domain/user"
	"pharmalink/tests/common/authtest"
	"pharmalink/tests/common/dbtest"
	"pharmalink/tests/common/helper"
	"pharmalink/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type marketplaceSuite struct {
	e2e.SharedSuite

	clientID      uuid.UUID
	clientToken   string
	pharmacyID    uuid.UUID
	pharmacyToken string
	medA          uuid.UUID
	medB          uuid.UUID
}

func TestMarketplaceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(marketplaceSuite))
}

// seed resets the database and provisions one client, one pharmacy and two
// catalog medications.
func (s *marketplaceSuite) seed() {
	s.Require().NoError(dbtest.ResetDB(s.DB))

	s.clientID, s.clientToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router,
		"client@example.com", string(user.RoleClient), "Ama")
	s.pharmacyID, s.pharmacyToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router,
		"pharmacy@example.com", string(user.RolePharmacy), "Pharmacie du Centre")

	var err error
	s.medA, err = dbtest.CreateMedication(s.DB, s.pharmacyID, "Paracetamol", "500mg", 1500)
	s.Require().NoError(err)
	s.medB, err = dbtest.CreateMedication(s.DB, s.pharmacyID, "Amoxicillin", "250mg", 3200)
	s.Require().NoError(err)
}

func (s *marketplaceSuite) createRequest() uuid.UUID {
	body := map[string]any{
		"lines": []map[string]any{
			{"medicationId": s.medA.String(), "name": "Paracetamol", "dosage": "500mg"},
			{"medicationId": s.medB.String(), "name": "Amoxicillin", "dosage": "250mg"},
		},
		"priority":  "high",
		"latitude":  6.1725,
		"longitude": 1.2314,
	}
	rec := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/requests", body, s.clientToken)

	var created map[string]string
	helper.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
	id, err := uuid.Parse(created["id"])
	s.Require().NoError(err)
	return id
}

func (s *marketplaceSuite) confirmAvailability(requestID uuid.UUID) {
	body := map[string]any{
		"lines": []map[string]any{
			{"medicationId": s.medA.String(), "available": true, "price": 1200},
			{"medicationId": s.medB.String(), "available": false, "comment": "out of stock"},
		},
	}
	rec := helper.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/requests/"+requestID.String()+"/availability", body, s.pharmacyToken)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
}

func (s *marketplaceSuite) requestStatus(requestID uuid.UUID) string {
	rec := helper.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/requests/"+requestID.String(), nil, s.clientToken)

	var view map[string]any
	helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
	status, _ := view["status"].(string)
	return status
}

func (s *marketplaceSuite) createOrder(requestID uuid.UUID, medicationIDs ...uuid.UUID) (uuid.UUID, int64) {
	ids := make([]string, len(medicationIDs))
	for i, id := range medicationIDs {
		ids[i] = id.String()
	}
	body := map[string]any{
		"requestId":     requestID.String(),
		"pharmacyId":    s.pharmacyID.String(),
		"medicationIds": ids,
	}
	rec := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", body, s.clientToken)

	var created map[string]any
	helper.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
	orderID, err := uuid.Parse(created["orderId"].(string))
	s.Require().NoError(err)
	return orderID, int64(created["totalAmount"].(float64))
}

func (s *marketplaceSuite) payOrder(orderID uuid.UUID) map[string]any {
	rec := helper.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/orders/"+orderID.String()+"/pay", map[string]any{"method": "mobile_money"}, s.clientToken)

	var resp map[string]any
	helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	return resp
}

func (s *marketplaceSuite) advanceOrder(orderID uuid.UUID, target string) int {
	rec := helper.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/orders/"+orderID.String()+"/status", map[string]any{"status": target}, s.pharmacyToken)
	return rec.Code
}

func (s *marketplaceSuite) TestFullLifecycle() {
	s.seed()

	requestID := s.createRequest()
	s.Equal("pending", s.requestStatus(requestID))

	// The broadcast fan-out lands in the outbox for the pharmacy.
	jobs, err := dbtest.CountRows(s.DB, "notification_jobs", "user_id = $1", s.pharmacyID)
	s.Require().NoError(err)
	s.Equal(1, jobs)

	s.confirmAvailability(requestID)
	s.Equal("confirmed", s.requestStatus(requestID))

	// The matrix carries only the available line, at the pharmacy's price.
	rec := helper.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/requests/"+requestID.String()+"/matches", nil, s.clientToken)
	var matches []map[string]any
	helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &matches)
	s.Require().Len(matches, 1)
	lines := matches[0]["lines"].([]any)
	s.Require().Len(lines, 1)
	line := lines[0].(map[string]any)
	s.Equal(s.medA.String(), line["medicationId"])
	s.EqualValues(1200, line["price"])

	orderID, total := s.createOrder(requestID, s.medA)
	s.EqualValues(1200, total)

	payment := s.payOrder(orderID)
	s.Equal(false, payment["replayed"])
	s.Equal("preparing", s.requestStatus(requestID))

	// Webhook retry: same call, nothing changes.
	replay := s.payOrder(orderID)
	s.Equal(true, replay["replayed"])

	// Skipping a stage is refused.
	s.Equal(http.StatusConflict, s.advanceOrder(orderID, "ready"))

	s.Equal(http.StatusNoContent, s.advanceOrder(orderID, "preparing"))
	s.Equal(http.StatusNoContent, s.advanceOrder(orderID, "ready"))
	s.Equal(http.StatusNoContent, s.advanceOrder(orderID, "completed"))

	s.Equal("completed", s.requestStatus(requestID))

	// Completed orders cannot move again.
	s.Equal(http.StatusConflict, s.advanceOrder(orderID, "completed"))

	// Order view carries the full stamp trail.
	rec = helper.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/orders/"+orderID.String(), nil, s.clientToken)
	var orderView map[string]any
	helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &orderView)
	s.Equal("completed", orderView["status"])
	s.NotEmpty(orderView["paidAt"])
	s.NotEmpty(orderView["completedAt"])
}

func (s *marketplaceSuite) TestOrderTotalSurvivesCatalogRepricing() {
	s.seed()

	requestID := s.createRequest()
	s.confirmAvailability(requestID)

	orderID, total := s.createOrder(requestID, s.medA)
	s.EqualValues(1200, total)

	// Catalog repricing after the order exists must not touch the snapshot.
	_, err := s.DB.Exec(context.Background(),
		"UPDATE medications SET price = $1 WHERE id = $2", int64(9900), s.medA)
	s.Require().NoError(err)

	rec := helper.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/orders/"+orderID.String(), nil, s.clientToken)
	var view map[string]any
	helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
	s.EqualValues(1200, view["totalAmount"])

	lines := view["lines"].([]any)
	s.Require().Len(lines, 1)
	s.EqualValues(1200, lines[0].(map[string]any)["price"])
}

func (s *marketplaceSuite) TestDuplicateOrderRejected() {
	s.seed()

	requestID := s.createRequest()
	s.confirmAvailability(requestID)
	s.createOrder(requestID, s.medA)

	body := map[string]any{
		"requestId":     requestID.String(),
		"pharmacyId":    s.pharmacyID.String(),
		"medicationIds": []string{s.medA.String()},
	}
	rec := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", body, s.clientToken)
	helper.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
}

func (s *marketplaceSuite) TestAllLinesUnavailableKeepsRequestPending() {
	s.seed()

	requestID := s.createRequest()

	body := map[string]any{
		"lines": []map[string]any{
			{"medicationId": s.medA.String(), "available": false},
			{"medicationId": s.medB.String(), "available": false},
		},
	}
	rec := helper.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/requests/"+requestID.String()+"/availability", body, s.pharmacyToken)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	s.Equal("pending", s.requestStatus(requestID))

	// And no confirmation notification reaches the client.
	jobs, err := dbtest.CountRows(s.DB, "notification_jobs", "user_id = $1", s.clientID)
	s.Require().NoError(err)
	s.Zero(jobs)
}

func (s *marketplaceSuite) TestRestockNoteRecorded() {
	s.seed()

	requestID := s.createRequest()

	body := map[string]any{
		"medicationId": s.medB.String(),
		"restockOn":    "2025-07-01T00:00:00Z",
	}
	rec := helper.PerformRequest(s.T(), s.Router, http.MethodPost,
		"/api/requests/"+requestID.String()+"/unavailable", body, s.pharmacyToken)
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	notes, err := dbtest.CountRows(s.DB, "restock_notes", "request_id = $1", requestID)
	s.Require().NoError(err)
	s.Equal(1, notes)

	s.Equal("pending", s.requestStatus(requestID))
}

func (s *marketplaceSuite) TestOutboxDelivery() {
	s.seed()

	requestID := s.createRequest()
	s.confirmAvailability(requestID)

	// The poller runs every 50ms in the test config; give it a few cycles.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		sent, err := dbtest.CountRows(s.DB, "notification_jobs", "status = 'sent'")
		s.Require().NoError(err)
		if sent >= 2 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	pending, err := dbtest.CountRows(s.DB, "notification_jobs", "status = 'pending'")
	s.Require().NoError(err)
	s.Zero(pending, "outbox should drain fully")

	// The client can read the delivered notification through the API.
	rec := helper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/notifications", nil, s.clientToken)
	var notifications []map[string]any
	helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &notifications)
	s.Require().NotEmpty(notifications)
	s.Equal("availability_confirmed", notifications[0]["kind"])
	// The payload names the confirming pharmacy.
	s.Contains(notifications[0]["message"], "Pharmacie du Centre")
}
