package patient

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidash/clinic-api/internal/repository/kvstore"
	patientService "github.com/medidash/clinic-api/internal/service/patient"
	"github.com/medidash/clinic-api/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	engine := gin.New()
	h := NewHandler(patientService.NewService(kvstore.NewPatientRepository(kv)))
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestListPatientsReturnsSeededCollection(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Len(t, resp.Data, 8)
	assert.Equal(t, "P-1000", resp.Data[0].ID)
}

func TestCreatePatient(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"name":   "Nina",
		"age":    29,
		"gender": "F",
		"email":  "nina@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.ID)
}

func TestCreatePatientMissingNameIsBadRequest(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"gender": "F",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Collection is untouched.
	list := doJSON(t, engine, http.MethodGet, "/api/v1/patients", nil)
	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 8)
}

func TestDeletePatientRequiresConfirmation(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, http.MethodDelete, "/api/v1/patients/P-1000", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/v1/patients/P-1000?confirm=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	list := doJSON(t, engine, http.MethodGet, "/api/v1/patients", nil)
	var resp struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 7)
	for _, p := range resp.Data {
		assert.NotEqual(t, "P-1000", p.ID)
	}
}
