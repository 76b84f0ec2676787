package api

import (
	"errors"
	"net/http"

	"travel-booking/internal/domain/booking"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary Search catalog
// @Description Search the backend catalog for items of one trip type
// @Tags catalog
// @Produce json
// @Param type query string true "Trip type (hotel, flight, train, bus, package)"
// @Param q query string false "Search query"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /catalog [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	tripType := booking.TripType(c.Query("type"))
	if !tripType.IsValid() {
		httperr.AbortWithError(c, http.StatusBadRequest, booking.ErrUnknownTripType, "Unknown trip type", nil)
		return
	}

	views, err := h.q.SearchCatalog(c.Request.Context(), tripType, c.Query("q"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCatalogUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Catalog backend unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	response := make([]*resdto.ItemResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromItemView(view)
	}
	c.JSON(http.StatusOK, response)
}
