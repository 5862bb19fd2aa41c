package middleware

import (
	"net/http"

	"store/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "store_api_requests_total",
	Help: "Number of routed API requests by counter key.",
}, []string{"key"})

// VisitCounterMiddleware counts every request it sees, plus GET and POST separately.
type VisitCounterMiddleware struct {
	counter usecase.VisitCounterUsecase
}

func NewVisitCounterMiddleware(counter usecase.VisitCounterUsecase) *VisitCounterMiddleware {
	return &VisitCounterMiddleware{
		counter: counter,
	}
}

func (m *VisitCounterMiddleware) Count(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.increment(usecase.VisitKeyGeneral)

		switch method := c.Request().Method; method {
		case http.MethodGet, http.MethodPost:
			m.increment(method)
		}

		return next(c)
	}
}

func (m *VisitCounterMiddleware) increment(key string) {
	m.counter.Increment(key)
	requestsTotal.WithLabelValues(key).Inc()
}
