package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/qplay/internal/config"
	"github.com/kegliz/qplay/internal/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return New(config.Default(), logger.NewLogger(logger.LoggerOptions{}))
}

func bellRequest() CircuitRequest {
	return CircuitRequest{
		Qubits: 2,
		Cbits:  2,
		Shots:  256,
		Ops: []OpSpec{
			{Kind: "gate", Gate: "h", Bits: []int{0}},
			{Kind: "gate", Gate: "cx", Bits: []int{0, 1}},
			{Kind: "measure_all", Cbits: []int{0, 1}},
		},
	}
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSubmitCircuitThenFetchHistogram(t *testing.T) {
	s := newTestServer(t)
	engine := s.Engine()

	submitRec := doJSON(t, engine, http.MethodPost, "/circuits", bellRequest())
	require.Equal(t, http.StatusCreated, submitRec.Code)

	var submitted SubmitResponse
	require.NoError(t, json.Unmarshal(submitRec.Body.Bytes(), &submitted))
	assert.NotEmpty(t, submitted.ID)

	fetchRec := doJSON(t, engine, http.MethodGet, "/circuits/"+submitted.ID, nil)
	require.Equal(t, http.StatusOK, fetchRec.Code)

	var hist HistogramResponse
	require.NoError(t, json.Unmarshal(fetchRec.Body.Bytes(), &hist))
	assert.Equal(t, 256, hist.Shots)
	for state, count := range hist.Histogram {
		assert.True(t, state == "00" || state == "11", "unexpected Bell outcome %q", state)
		assert.Greater(t, count, 0)
	}
}

func TestGetHistogramUnknownIDReturns404(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Engine(), http.MethodGet, "/circuits/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitCircuitRejectsUnknownGate(t *testing.T) {
	s := newTestServer(t)
	req := bellRequest()
	req.Ops[0].Gate = "not-a-gate"

	rec := doJSON(t, s.Engine(), http.MethodPost, "/circuits", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitCircuitDefaultsShotsFromConfig(t *testing.T) {
	s := newTestServer(t)
	req := bellRequest()
	req.Shots = 0

	submitRec := doJSON(t, s.Engine(), http.MethodPost, "/circuits", req)
	require.Equal(t, http.StatusCreated, submitRec.Code)
	var submitted SubmitResponse
	require.NoError(t, json.Unmarshal(submitRec.Body.Bytes(), &submitted))

	fetchRec := doJSON(t, s.Engine(), http.MethodGet, "/circuits/"+submitted.ID, nil)
	var hist HistogramResponse
	require.NoError(t, json.Unmarshal(fetchRec.Body.Bytes(), &hist))
	assert.Equal(t, config.Default().Simulator.DefaultShots, hist.Shots)
}
