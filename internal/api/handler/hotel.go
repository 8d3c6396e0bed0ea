package handler

import (
	"hotelchat/backend/internal/hotel"
	"hotelchat/backend/internal/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type createHotelRequest struct {
	PlaceID          string          `json:"place_id" binding:"required"`
	Name             string          `json:"name" binding:"required"`
	FormattedAddress string          `json:"formatted_address" binding:"required"`
	Geometry         models.Geometry `json:"geometry"`
	Rating           float64         `json:"rating"`
	UserRatingsTotal int             `json:"user_ratings_total"`
	CompoundCode     *string         `json:"compound_code"`
	Vicinity         *string         `json:"vicinity"`
	Status           string          `json:"status"`
}

// ListHotels GET /hotels
func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.Hotels.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// SearchHotels GET /hotels/search?name=
func (h *Handler) SearchHotels(c *gin.Context) {
	hotels, err := h.Hotels.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetHotel GET /hotels/place/:placeId
func (h *Handler) GetHotel(c *gin.Context) {
	found, err := h.Hotels.GetByPlaceID(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// CreateHotel POST /hotels
func (h *Handler) CreateHotel(c *gin.Context) {
	var req createHotelRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.Hotels.Create(c.Request.Context(), hotel.CreateInput{
		PlaceID:          req.PlaceID,
		Name:             req.Name,
		FormattedAddress: req.FormattedAddress,
		Lat:              req.Geometry.Location.Lat,
		Lng:              req.Geometry.Location.Lng,
		Rating:           req.Rating,
		UserRatingsTotal: req.UserRatingsTotal,
		CompoundCode:     req.CompoundCode,
		Vicinity:         req.Vicinity,
		Status:           req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
