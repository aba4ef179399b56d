//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"society-booking/internal/domain/booking"
	"society-booking/internal/handler/api"
	resdto "society-booking/internal/handler/dto/response"
	"society-booking/internal/infra"
	"society-booking/internal/usecase/queries"
	"society-booking/tests/common/httptest"
	queriesmock "society-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/amenities/:id/availability", s.handler.GetDayAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetDayAvailability() {
	amenityID := uuid.New()
	date, _ := booking.ParseDate("2026-09-15")
	url := "/amenities/" + amenityID.String() + "/availability?date=2026-09-15"

	s.Run("success: returns the day's slots", func() {
		view := &queries.DayAvailabilityView{
			AmenityID: amenityID,
			Date:      "2026-09-15",
			Available: []queries.SlotView{
				{StartTime: "06:00", EndTime: "07:00", Label: "06:00 - 07:00"},
			},
			Booked: []queries.BookedSlotView{
				{StartTime: "07:00", EndTime: "08:00", Label: "07:00 - 08:00", BookedBy: "Asha Rao (B-203)"},
			},
		}
		s.mockQueries.EXPECT().GetDayAvailability(gomock.Any(), amenityID, date).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.DayAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Available, 1)
		s.Require().Len(response.Booked, 1)
		s.Equal("Asha Rao (B-203)", response.Booked[0].BookedBy)
		s.Empty(response.Message)
	})

	s.Run("success: gridless amenity returns the contact message", func() {
		view := &queries.DayAvailabilityView{
			AmenityID: amenityID,
			Date:      "2026-09-15",
			Available: []queries.SlotView{},
			Booked:    []queries.BookedSlotView{},
			Message:   queries.NoSlotsMessage,
		}
		s.mockQueries.EXPECT().GetDayAvailability(gomock.Any(), amenityID, date).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.DayAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(queries.NoSlotsMessage, response.Message)
		s.Empty(response.Available)
	})

	s.Run("error: 400 for a missing or malformed date", func() {
		for _, badURL := range []string{
			"/amenities/" + amenityID.String() + "/availability",
			"/amenities/" + amenityID.String() + "/availability?date=15-09-2026",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, badURL, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
		}
	})

	s.Run("error: 400 for a malformed amenity id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/amenities/not-a-uuid/availability?date=2026-09-15", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 when the amenity does not exist", func() {
		s.mockQueries.EXPECT().GetDayAvailability(gomock.Any(), amenityID, date).
			Return(nil, infra.WrapRepoErr("amenity not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Amenity not found")
	})
}
