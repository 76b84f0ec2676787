//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/errs"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/common/testutil"
	commandsmock "travel-booking/tests/mock/commands"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	clientID     uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.clientID = uuid.New()

	clientIdentity := middleware.NewClientIdentity().Require()
	s.router.PUT("/api/booking/draft", clientIdentity, s.handler.SaveDraft)
	s.router.GET("/api/booking/draft", clientIdentity, s.handler.GetDraft)
	s.router.DELETE("/api/booking/draft", clientIdentity, s.handler.CancelDraft)
	s.router.POST("/api/booking/confirm", clientIdentity, s.handler.ConfirmBooking)
	s.router.GET("/api/booking/confirmation", clientIdentity, s.handler.GetConfirmation)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestSaveDraft
// ================================================================================

func (s *BookingHandlerTestSuite) TestSaveDraft() {
	url := "/api/booking/draft"

	reqBody := builder.NewBookingBuilder().BuildSaveDraftRequestDTO()
	returnView := builder.NewBookingBuilder().BuildDraftView()

	s.Run("success: returns 200 OK with the priced draft", func() {
		s.mockCommands.EXPECT().SaveDraft(gomock.Any(), s.clientID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.clientID.String())

		var response resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("hotel", response.TripType)
		s.Equal(int64(30000), response.Quote.TotalCents)
		s.Equal(3, response.Quote.Nights)
		s.NotNil(response.CheckIn)
		s.Equal("2024-01-01", *response.CheckIn)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing trip_type", mutate: testutil.Field("trip_type", nil)},
			{name: "missing item", mutate: testutil.Field("item", nil)},
			{name: "guests above limit", mutate: testutil.Field("guests", 21)},
			{name: "rooms above limit", mutate: testutil.Field("rooms", 11)},
			{name: "unknown trip type", mutate: testutil.Field("trip_type", "cruise")},
			{name: "malformed check_in", mutate: testutil.Field("check_in", "01/01/2024")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, s.clientID.String())
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request without client id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Client-ID")
	})

	s.Run("error: 400 Bad Request for non-UUID client id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "UUID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid draft",
				commandsError:  errs.ErrInvalidDraft,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking draft",
			},
			{
				name:           "unpriceable item",
				commandsError:  errs.ErrUnpriceableItem,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Item cannot be priced",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("redis down"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SaveDraft(gomock.Any(), s.clientID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.clientID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetDraft
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetDraft() {
	url := "/api/booking/draft"

	returnView := builder.NewBookingBuilder().BuildDraftView()

	s.Run("success: returns 200 OK with DraftResponse", func() {
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), s.clientID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.clientID.String())

		var response resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("h-1", response.ItemID)
		s.Equal("Seaside Inn", response.ItemLabel)
		s.Equal(int64(30000), response.Quote.TotalCents)
	})

	s.Run("error: 404 Not Found when no draft pending", func() {
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), s.clientID).
			Return(nil, errs.ErrNoDraft).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.clientID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No pending booking draft")
	})

	s.Run("error: 422 when the stored item lost its rate", func() {
		s.mockQueries.EXPECT().GetDraft(gomock.Any(), s.clientID).
			Return(nil, errs.ErrUnpriceableItem).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.clientID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Item cannot be priced")
	})
}

// ================================================================================
// TestCancelDraft
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelDraft() {
	url := "/api/booking/draft"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelDraft(gomock.Any(), s.clientID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.clientID.String())
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().CancelDraft(gomock.Any(), s.clientID).
			Return(errs.ErrStoreOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.clientID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestConfirmBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	url := "/api/booking/confirm"

	reqBody := builder.NewBookingBuilder().BuildConfirmRequestDTO()
	idempotencyKey := uuid.New()
	keyHeader := map[string]string{"Idempotency-Key": idempotencyKey.String()}

	s.Run("success: returns 201 Created for a fresh confirmation", func() {
		result := builder.NewBookingBuilder().BuildConfirmResult(false)
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), s.clientID, idempotencyKey, "card").
			Return(result, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.clientID.String(), keyHeader)

		var response resdto.ConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.Confirmation.BookingNumber, response.BookingNumber)
		s.Equal("confirmed", response.Status)
		s.False(response.Replayed)
	})

	s.Run("success: returns 200 OK with replayed flag on idempotent retry", func() {
		result := builder.NewBookingBuilder().BuildConfirmResult(true)
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), s.clientID, idempotencyKey, "card").
			Return(result, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.clientID.String(), keyHeader)

		var response resdto.ConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Replayed)
	})

	s.Run("error: 400 Bad Request without Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.clientID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 Bad Request for malformed Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.clientID.String(),
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: 400 Bad Request for unsupported payment method", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("method", "cheque"))
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, requestMap, s.clientID.String(), keyHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no pending draft",
				commandsError:  errs.ErrNoDraft,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No pending booking draft",
			},
			{
				name:           "unpriceable item",
				commandsError:  errs.ErrUnpriceableItem,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Item cannot be priced",
			},
			{
				name:           "payment declined",
				commandsError:  errs.ErrPaymentDeclined,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Payment declined",
			},
			{
				name:           "key reused with different parameters",
				commandsError:  errs.ErrDuplicateConfirmation,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Idempotency key reused",
			},
			{
				name:           "confirmation in progress",
				commandsError:  errs.ErrIdempotencyInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Confirmation in progress",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("redis down"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), s.clientID, idempotencyKey, "card").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.clientID.String(), keyHeader)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetConfirmation
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetConfirmation() {
	url := "/api/booking/confirmation"

	returnView := builder.NewBookingBuilder().BuildConfirmationView()

	s.Run("success: returns 200 OK with ConfirmationResponse", func() {
		s.mockQueries.EXPECT().GetConfirmation(gomock.Any(), s.clientID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.clientID.String())

		var response resdto.ConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.BookingNumber, response.BookingNumber)
		s.Equal("captured", response.Payment.Status)
		s.False(response.Replayed)
	})

	s.Run("error: 404 Not Found when nothing confirmed", func() {
		s.mockQueries.EXPECT().GetConfirmation(gomock.Any(), s.clientID).
			Return(nil, errs.ErrConfirmationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.clientID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking confirmation not found")
	})
}
