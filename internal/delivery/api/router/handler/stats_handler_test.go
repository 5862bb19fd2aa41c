package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"store/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler_GetRequestCounts(t *testing.T) {
	counter := impl.NewVisitCounterService()
	counter.Increment("general")
	counter.Increment("general")
	counter.Increment("GET")

	e := newTestEcho()
	e.GET("/api/number-of-requests", NewStatsHandler(counter).GetRequestCounts)

	rec := serve(e, http.MethodGet, "/api/number-of-requests", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var counts map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	assert.Equal(t, map[string]int64{"general": 2, "GET": 1}, counts)
}
