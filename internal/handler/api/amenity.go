package api

import (
	"errors"
	"net/http"

	reqdto "society-booking/internal/handler/dto/request"
	resdto "society-booking/internal/handler/dto/response"
	"society-booking/internal/usecase/commands"
	"society-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AmenityHandler struct {
	amenityCommands commands.AmenityCommands
	amenityQueries  queries.AmenityQueries
}

func NewAmenityHandler(amenityCommands commands.AmenityCommands, amenityQueries queries.AmenityQueries) *AmenityHandler {
	return &AmenityHandler{
		amenityCommands: amenityCommands,
		amenityQueries:  amenityQueries,
	}
}

// @Summary List amenities
// @Description List every amenity in the society
// @Tags amenities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AmenityResponse
// @Failure 401 {object} map[string]string
// @Router /amenities [get]
func (h *AmenityHandler) List(c *gin.Context) {
	views, err := h.amenityQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmenityViews(views))
}

// @Summary Get amenity
// @Description Get amenity by ID
// @Tags amenities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /amenities/{id} [get]
func (h *AmenityHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.amenityQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Amenity not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmenityView(view))
}

// @Summary Create amenity
// @Description Register a new amenity (admin only)
// @Tags amenities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAmenityRequest true "Amenity"
// @Success 201 {object} resdto.AmenityResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /amenities [post]
func (h *AmenityHandler) Create(c *gin.Context) {
	var req reqdto.CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.amenityCommands.CreateAmenity(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid amenity data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAmenityView(view))
}

// @Summary Update amenity
// @Description Update amenity fields (admin only)
// @Tags amenities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Param request body reqdto.UpdateAmenityRequest true "Fields to update"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /amenities/{id} [patch]
func (h *AmenityHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.amenityCommands.UpdateAmenity(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAmenityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Amenity not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid amenity data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmenityView(view))
}

// @Summary Delete amenity
// @Description Remove an amenity (admin only)
// @Tags amenities
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /amenities/{id} [delete]
func (h *AmenityHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.amenityCommands.DeleteAmenity(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAmenityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Amenity not found",
			})
		case errors.Is(err, commands.ErrAmenityHasActiveBookings):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Amenity still has bookings",
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

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
