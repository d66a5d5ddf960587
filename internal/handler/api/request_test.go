//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"pharmalink/internal/domain/user"
	"pharmalink/internal/handler/api"
	"pharmalink/internal/pkg/errs"
	"pharmalink/internal/usecase/queries"
	"pharmalink/tests/common/helper"
	commandsmock "pharmalink/tests/mock/commands"
	queriesmock "pharmalink/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockRequestCommands
	mockQueries      *queriesmock.MockRequestQueries
	mockMatchQueries *queriesmock.MockMatchQueries
	handler          *api.RequestHandler
	userID           uuid.UUID
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.mockMatchQueries = queriesmock.NewMockMatchQueries(s.mockCtrl)
	s.handler = api.NewRequestHandler(s.mockCommands, s.mockQueries, s.mockMatchQueries)
	s.userID = uuid.New()
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

// buildRouter registers the request routes behind a stub auth middleware
// carrying the given role.
func (s *RequestHandlerTestSuite) buildRouter(role user.Role) *gin.Engine {
	router := gin.New()
	auth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", role)
		c.Next()
	}

	router.POST("/api/requests", auth, s.handler.CreateRequest)
	router.GET("/api/requests", auth, s.handler.ListRequests)
	router.GET("/api/requests/:id", auth, s.handler.GetRequest)
	router.GET("/api/requests/:id/matches", auth, s.handler.GetMatches)
	router.POST("/api/requests/:id/availability", auth, s.handler.ConfirmAvailability)
	router.POST("/api/requests/:id/unavailable", auth, s.handler.DeclareUnavailable)
	return router
}

func validCreateBody() map[string]any {
	return map[string]any{
		"lines": []map[string]any{
			{"medicationId": uuid.New().String(), "name": "Paracetamol", "dosage": "500mg"},
		},
		"priority":  "high",
		"latitude":  6.1725,
		"longitude": 1.2314,
	}
}

func (s *RequestHandlerTestSuite) TestCreateRequest() {
	router := s.buildRouter(user.RoleClient)
	requestID := uuid.New()

	s.Run("success: 201 with the new request id", func() {
		s.mockCommands.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
			Return(requestID, nil)

		rec := helper.PerformRequest(s.T(), router, http.MethodPost, "/api/requests", validCreateBody(), "token")

		var body map[string]string
		helper.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(requestID.String(), body["id"])
	})

	s.Run("error: 400 on unknown priority", func() {
		body := validCreateBody()
		body["priority"] = "urgent"

		rec := helper.PerformRequest(s.T(), router, http.MethodPost, "/api/requests", body, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on missing lines", func() {
		body := validCreateBody()
		delete(body, "lines")

		rec := helper.PerformRequest(s.T(), router, http.MethodPost, "/api/requests", body, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 when the domain rejects the request", func() {
		// The usecase returns validation failures as marked errors, not the
		// bare sentinel; the handler must still map them to 422.
		s.mockCommands.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("latitude out of range"), errs.ErrDomainValidation))

		rec := helper.PerformRequest(s.T(), router, http.MethodPost, "/api/requests", validCreateBody(), "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 422 when a line names an unknown medication", func() {
		s.mockCommands.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrMedicationNotFound)

		rec := helper.PerformRequest(s.T(), router, http.MethodPost, "/api/requests", validCreateBody(), "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 401 without a token", func() {
		rec := helper.PerformRequest(s.T(), router, http.MethodPost, "/api/requests", validCreateBody(), "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *RequestHandlerTestSuite) TestGetRequest() {
	router := s.buildRouter(user.RoleClient)
	requestID := uuid.New()

	s.Run("success: 200 with the request view", func() {
		view := &queries.RequestView{ID: requestID, RequesterID: s.userID, Status: "pending", Priority: "high"}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), requestID).Return(view, nil)

		rec := helper.PerformRequest(s.T(), router, http.MethodGet, "/api/requests/"+requestID.String(), nil, "token")

		var body map[string]any
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(requestID.String(), body["id"])
	})

	s.Run("error: 404 for an unknown request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), requestID).
			Return(nil, queries.ErrRequestNotFound)

		rec := helper.PerformRequest(s.T(), router, http.MethodGet, "/api/requests/"+requestID.String(), nil, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := helper.PerformRequest(s.T(), router, http.MethodGet, "/api/requests/not-a-uuid", nil, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RequestHandlerTestSuite) TestListRequests() {
	s.Run("client sees own requests", func() {
		router := s.buildRouter(user.RoleClient)
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.userID).
			Return([]*queries.RequestListItem{{ID: uuid.New(), Status: "pending"}}, nil)

		rec := helper.PerformRequest(s.T(), router, http.MethodGet, "/api/requests", nil, "token")

		var body []map[string]any
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("pharmacy sees the open feed", func() {
		router := s.buildRouter(user.RolePharmacy)
		s.mockQueries.EXPECT().ListForPharmacy(gomock.Any(), s.userID).
			Return(nil, nil)

		rec := helper.PerformRequest(s.T(), router, http.MethodGet, "/api/requests", nil, "token")

		var body []map[string]any
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

func (s *RequestHandlerTestSuite) TestGetMatches() {
	router := s.buildRouter(user.RoleClient)
	requestID := uuid.New()
	pharmacyID := uuid.New()

	s.Run("success: 200 with the availability matrix", func() {
		matrix := map[uuid.UUID][]*queries.MatchedLineView{
			pharmacyID: {{MedicationID: uuid.New(), Name: "Paracetamol", Price: 1500, CatalogPrice: 1500}},
		}
		s.mockMatchQueries.EXPECT().MatchedLines(gomock.Any(), requestID).Return(matrix, nil)

		rec := helper.PerformRequest(s.T(), router, http.MethodGet, "/api/requests/"+requestID.String()+"/matches", nil, "token")

		var body []map[string]any
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(pharmacyID.String(), body[0]["pharmacyId"])
	})
}

func (s *RequestHandlerTestSuite) TestConfirmAvailability() {
	router := s.buildRouter(user.RolePharmacy)
	requestID := uuid.New()
	url := "/api/requests/" + requestID.String() + "/availability"

	body := map[string]any{
		"lines": []map[string]any{
			{"medicationId": uuid.New().String(), "available": true, "price": 1500},
		},
	}

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().ConfirmAvailability(gomock.Any(), gomock.Any()).Return(nil)

		rec := helper.PerformRequest(s.T(), router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown request", func() {
		s.mockCommands.EXPECT().ConfirmAvailability(gomock.Any(), gomock.Any()).
			Return(errs.ErrRequestNotFound)

		rec := helper.PerformRequest(s.T(), router, http.MethodPost, url, body, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 422 for a line outside the request", func() {
		s.mockCommands.EXPECT().ConfirmAvailability(gomock.Any(), gomock.Any()).
			Return(errs.ErrUnknownLine)

		rec := helper.PerformRequest(s.T(), router, http.MethodPost, url, body, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 400 for an empty answer set", func() {
		rec := helper.PerformRequest(s.T(), router, http.MethodPost, url, map[string]any{"lines": []any{}}, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RequestHandlerTestSuite) TestDeclareUnavailable() {
	router := s.buildRouter(user.RolePharmacy)
	requestID := uuid.New()
	url := "/api/requests/" + requestID.String() + "/unavailable"

	body := map[string]any{
		"medicationId": uuid.New().String(),
		"restockOn":    "2025-06-10T00:00:00Z",
	}

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DeclareUnavailable(gomock.Any(), gomock.Any()).Return(nil)

		rec := helper.PerformRequest(s.T(), router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 for a medication outside the request", func() {
		s.mockCommands.EXPECT().DeclareUnavailable(gomock.Any(), gomock.Any()).
			Return(errs.ErrUnknownLine)

		rec := helper.PerformRequest(s.T(), router, http.MethodPost, url, body, "token")
		helper.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}
