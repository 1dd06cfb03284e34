package flooding

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerCalc(t *testing.T) {
	body, _ := json.Marshal(Input{LengthM: 10, WidthM: 8, HeightM: 4, DesignTempC: 20})
	req := httptest.NewRequest(http.MethodPost, "/tools/flooding/calc", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 320.0, res.GrossVolumeM3)
	assert.Equal(t, 2, res.NozzleCount)
}

func TestHandlerCalc_BadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/flooding/calc", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerCalc_InvalidInput(t *testing.T) {
	body, _ := json.Marshal(Input{LengthM: -1, WidthM: 8, HeightM: 4})
	req := httptest.NewRequest(http.MethodPost, "/tools/flooding/calc", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "length_m")
}
