//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"society-booking/internal/handler/api"
	resdto "society-booking/internal/handler/dto/response"
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

type AmenityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAmenityCommands
	mockQueries  *queriesmock.MockAmenityQueries
	handler      *api.AmenityHandler
}

func (s *AmenityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAmenityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAmenityQueries(s.mockCtrl)
	s.handler = api.NewAmenityHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/amenities", s.handler.List)
	s.router.GET("/amenities/:id", s.handler.Get)
	s.router.POST("/amenities", s.handler.Create)
	s.router.PATCH("/amenities/:id", s.handler.Update)
	s.router.DELETE("/amenities/:id", s.handler.Delete)
}

func (s *AmenityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAmenityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AmenityHandlerTestSuite))
}

func (s *AmenityHandlerTestSuite) TestList() {
	s.Run("success: returns every amenity", func() {
		views := []*queries.AmenityView{
			builder.NewAmenityBuilder().BuildReadModel(),
			builder.NewAmenityBuilder().WithName("Gym").WithType("gym").BuildReadModel(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/amenities", nil, "")

		var response []*resdto.AmenityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("Gym", response[1].Name)
	})

	s.Run("error: 500 when the read side fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/amenities", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AmenityHandlerTestSuite) TestGet() {
	returnView := builder.NewAmenityBuilder().BuildReadModel()

	s.Run("success: returns the amenity", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/amenities/"+returnView.ID.String(), nil, "")

		var response resdto.AmenityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.Name, response.Name)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/amenities/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errors.New("no rows")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/amenities/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Amenity not found")
	})
}

func (s *AmenityHandlerTestSuite) TestCreate() {
	reqBody := builder.NewAmenityBuilder().BuildDTO()
	returnView := builder.NewAmenityBuilder().BuildReadModel()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateAmenity(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/amenities", reqBody, "")

		var response resdto.AmenityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.Name, response.Name)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "empty name", mutate: testutil.Field("name", "")},
			{name: "missing type", mutate: testutil.Field("type", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/amenities", requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: domain validation maps to 400", func() {
		s.mockCommands.EXPECT().CreateAmenity(gomock.Any(), reqBody).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/amenities", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid amenity data")
	})
}

func (s *AmenityHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().DeleteAmenity(gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/amenities/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when bookings still reference the amenity", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().DeleteAmenity(gomock.Any(), id).
			Return(commands.ErrAmenityHasActiveBookings).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/amenities/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().DeleteAmenity(gomock.Any(), id).
			Return(commands.ErrAmenityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/amenities/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Amenity not found")
	})
}
