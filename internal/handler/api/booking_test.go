//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"society-booking/internal/domain/booking"
	"society-booking/internal/domain/user"
	"society-booking/internal/handler/api"
	resdto "society-booking/internal/handler/dto/response"
	"society-booking/internal/pkg/errs"
	"society-booking/internal/usecase/commands"
	"society-booking/internal/usecase/queries"
	"society-booking/tests/common/builder"
	"society-booking/tests/common/httptest"
	"society-booking/tests/common/testutil"
	commandsmock "society-booking/tests/mock/commands"
	queriesmock "society-booking/tests/mock/queries"

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

	userID uuid.UUID
	role   user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.role = user.RoleResident

	// Stand-in for the auth middleware.
	injectUser := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
	}

	s.router.POST("/bookings", injectUser, s.handler.Create)
	s.router.GET("/bookings", injectUser, s.handler.ListMine)
	s.router.GET("/bookings/:id", injectUser, s.handler.Get)
	s.router.POST("/bookings/:id/approve", injectUser, s.handler.Approve)
	s.router.POST("/bookings/:id/reject", injectUser, s.handler.Reject)
	s.router.POST("/bookings/:id/cancel", injectUser, s.handler.Cancel)
	s.router.GET("/admin/bookings", injectUser, s.handler.ListByStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildDTO()
	returnView := builder.NewBookingBuilder().BuildReadModel()

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.userID, s.role).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing amenity_id", mutate: testutil.Field("amenity_id", nil)},
			{name: "missing date", mutate: testutil.Field("date", nil)},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
			{name: "malformed amenity_id", mutate: testutil.Field("amenity_id", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "amenity not found",
				commandsError:  commands.ErrAmenityNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Amenity not found",
			},
			{
				name:           "no slot grid for type",
				commandsError:  commands.ErrUnknownAmenityType,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "contact the society office",
			},
			{
				name:           "invalid time slot",
				commandsError:  commands.ErrInvalidTimeSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid date or time slot",
			},
			{
				name:           "slot already booked",
				commandsError:  commands.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot is already booked",
			},
			{
				name:           "domain validation failure",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Booking validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.userID, s.role).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: consecutive parking limit carries streak detail", func() {
		limitErr := errs.Mark(
			&commands.ConsecutiveLimitError{Streak: 3, Limit: 2},
			commands.ErrConsecutiveDayLimitExceeded,
		)
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.userID, s.role).
			Return(nil, limitErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusConflict, rec.Code)

		var body struct {
			Error  string `json:"error"`
			Detail struct {
				Streak int `json:"streak"`
				Limit  int `json:"limit"`
			} `json:"detail"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Contains(body.Error, "2 consecutive days")
		s.Equal(3, body.Detail.Streak)
		s.Equal(2, body.Detail.Limit)
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	returnView := builder.NewBookingBuilder().BuildReadModel()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.New("no rows")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: returns the caller's bookings", func() {
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().WithStatus("confirmed").BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(items[0].ID, response[0].ID)
		s.Equal("confirmed", response[1].Status)
	})

	s.Run("error: 500 when the read side fails", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) TestApprove() {
	returnView := builder.NewBookingBuilder().WithStatus("confirmed").BuildReadModel()

	s.Run("success: confirms a pending booking", func() {
		s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+returnView.ID.String()+"/approve", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 404 when booking is missing", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), id).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/approve", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 when the booking is not pending", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), id).
			Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/approve", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not in a state")
	})
}

func (s *BookingHandlerTestSuite) TestReject() {
	returnView := builder.NewBookingBuilder().WithStatus("rejected").WithReason("maintenance day").BuildReadModel()

	s.Run("success: rejects with a reason", func() {
		s.mockCommands.EXPECT().RejectBooking(gomock.Any(), returnView.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, reason *string) (*queries.BookingView, error) {
				s.Require().NotNil(reason)
				s.Equal("maintenance day", *reason)
				return returnView, nil
			}).Times(1)

		body := map[string]any{"reason": "maintenance day"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+returnView.ID.String()+"/reject", body, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("rejected", response.Status)
	})

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().RejectBooking(gomock.Any(), returnView.ID, nil).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+returnView.ID.String()+"/reject", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	returnView := builder.NewBookingBuilder().WithStatus("cancelled").BuildReadModel()

	s.Run("success: owner cancels their booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), returnView.ID, s.userID, s.role).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+returnView.ID.String()+"/cancel", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 403 when not the owner", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.userID, s.role).
			Return(nil, commands.ErrNotBookingOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "booking owner")
	})

	s.Run("error: 409 when the date has passed", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.userID, s.role).
			Return(nil, commands.ErrBookingDateElapsed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already passed")
	})
}

func (s *BookingHandlerTestSuite) TestListByStatus() {
	s.Run("success: defaults to pending", func() {
		items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), booking.StatusPending).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: filters by an explicit status", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), booking.StatusRejected).
			Return([]*queries.BookingListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=rejected", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=unknown", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking status")
	})
}
