package api

import (
	"net/http"

	"pharmalink/internal/domain/request"
	reqdto "pharmalink/internal/handler/dto/request"
	resdto "pharmalink/internal/handler/dto/response"
	"pharmalink/internal/handler/middleware"
	"pharmalink/internal/pkg/errs"
	"pharmalink/internal/usecase/commands"
	"pharmalink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	requestCommands commands.RequestCommands
	requestQueries  queries.RequestQueries
	matchQueries    queries.MatchQueries
}

func NewRequestHandler(
	requestCommands commands.RequestCommands,
	requestQueries queries.RequestQueries,
	matchQueries queries.MatchQueries,
) *RequestHandler {
	return &RequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
		matchQueries:    matchQueries,
	}
}

// @Summary Create medication request
// @Description Broadcast a new medication request to all pharmacies
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRequestRequest true "Request payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.CreateRequestParams{
		RequesterID: userID,
		Priority:    request.Priority(req.Priority),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	for _, line := range req.Lines {
		params.Lines = append(params.Lines, commands.RequestLineParams{
			MedicationID: line.MedicationID,
			Name:         line.Name,
			Dosage:       line.Dosage,
			Description:  line.Description,
		})
	}

	requestID, err := h.requestCommands.CreateRequest(c.Request.Context(), params)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrEmptyLines):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "At least one medication line is required",
			})
		case errs.Is(err, errs.ErrMedicationNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Line references an unknown medication",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": requestID.String()})
}

// @Summary Get request
// @Description Get a request with lines, availabilities and order progress
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	view, err := h.requestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromRequestView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List own requests
// @Description List the authenticated client's requests, newest first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestListResponse
// @Failure 401 {object} map[string]string
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	role, _ := middleware.GetUserRole(c)

	var (
		items []*queries.RequestListItem
		err   error
	)
	if role.IsPharmacy() {
		items, err = h.requestQueries.ListForPharmacy(c.Request.Context(), userID)
	} else {
		items, err = h.requestQueries.ListByRequester(c.Request.Context(), userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.RequestListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromRequestListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get availability matrix
// @Description Per confirmed pharmacy, the requested lines it can fulfill with effective prices
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {array} resdto.MatchResponse
// @Failure 400 {object} map[string]string
// @Router /requests/{id}/matches [get]
func (h *RequestHandler) GetMatches(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	matrix, err := h.matchQueries.MatchedLines(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromMatchedLines(matrix)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Confirm availability
// @Description Pharmacy answers a request line by line; one available line confirms the request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.ConfirmAvailabilityRequest true "Availability per line"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests/{id}/availability [post]
func (h *RequestHandler) ConfirmAvailability(c *gin.Context) {
	pharmacyID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	var req reqdto.ConfirmAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.ConfirmAvailabilityParams{
		RequestID:  requestID,
		PharmacyID: pharmacyID,
	}
	for _, line := range req.Lines {
		params.Lines = append(params.Lines, commands.AvailabilityLineParams{
			MedicationID: line.MedicationID,
			Available:    line.Available,
			Price:        line.Price,
			Comment:      line.Comment,
		})
	}

	if err := h.requestCommands.ConfirmAvailability(c.Request.Context(), params); err != nil {
		switch {
		case errs.Is(err, errs.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		case errs.Is(err, errs.ErrEmptyLines):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "At least one line is required",
			})
		case errs.Is(err, errs.ErrUnknownLine):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Line is not part of this request",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Declare a line unavailable
// @Description Record when the pharmacy expects the medication back in stock
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.DeclareUnavailableRequest true "Restock note"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests/{id}/unavailable [post]
func (h *RequestHandler) DeclareUnavailable(c *gin.Context) {
	pharmacyID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	var req reqdto.DeclareUnavailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.DeclareUnavailableParams{
		RequestID:    requestID,
		PharmacyID:   pharmacyID,
		MedicationID: req.MedicationID,
		RestockOn:    req.RestockOn,
	}

	if err := h.requestCommands.DeclareUnavailable(c.Request.Context(), params); err != nil {
		switch {
		case errs.Is(err, errs.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		case errs.Is(err, errs.ErrUnknownLine):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Line is not part of this request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
