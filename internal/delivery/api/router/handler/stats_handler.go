package handler

import (
	"net/http"

	"store/internal/delivery/api/response"
	"store/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatsHandler exposes the request counters
type StatsHandler struct {
	visitCounter usecase.VisitCounterUsecase
}

func NewStatsHandler(visitCounter usecase.VisitCounterUsecase) *StatsHandler {
	return &StatsHandler{visitCounter: visitCounter}
}

// GetRequestCounts returns every counter keyed by name
func (h *StatsHandler) GetRequestCounts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.visitCounter.GetAll())
}
