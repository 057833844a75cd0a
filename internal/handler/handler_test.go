package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Leganyst/itinerary-planner/internal/auth"
	"github.com/Leganyst/itinerary-planner/internal/repository"
	"github.com/Leganyst/itinerary-planner/internal/service"
	"github.com/Leganyst/itinerary-planner/internal/testutil"
)

const testSecret = "handler-test-secret"

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
	token  string
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	elements := service.NewElementService(db, service.NewPassengerLookup(repository.NewGormPassengerRepository(db)))
	options := service.NewOptionService(db, elements)
	sections := service.NewSectionService(db, options)
	trips := service.NewTripService(db, sections)
	access := service.NewAccess(repository.NewGormTripRepository(db))

	h := New(trips, sections, options, elements, access, sqlDB)
	router := NewRouter(h, RouterConfig{JWTSecret: testSecret, CORSOrigins: []string{"*"}})

	return &apiClient{t: t, router: router, db: db, token: tokenFor(t, uuid.New())}
}

func tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := auth.IssueToken(testSecret, userID, time.Hour)
	require.NoError(t, err)
	return token
}

func (a *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	return a.doAs(a.token, method, path, body)
}

func (a *apiClient) doAs(token, method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// seedOption creates trip -> section -> option over HTTP and returns the option id.
func (a *apiClient) seedOption() string {
	t := a.t
	w := a.do(http.MethodPost, "/api/v1/trips", map[string]any{"name": "Iceland"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	tripID := decode[map[string]any](t, w)["id"].(string)

	w = a.do(http.MethodPost, "/api/v1/trips/"+tripID+"/sections", map[string]any{"name": "Ring road", "order": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sectionID := decode[map[string]any](t, w)["id"].(string)

	w = a.do(http.MethodPost, "/api/v1/sections/"+sectionID+"/options", map[string]any{"name": "Camper", "order": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[map[string]any](t, w)["id"].(string)
}

func TestAPI_RequiresToken(t *testing.T) {
	api := newAPI(t)
	w := api.doAs("", http.MethodGet, "/api/v1/trips", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_Healthz(t *testing.T) {
	api := newAPI(t)
	w := api.doAs("", http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPI_ElementLifecycle(t *testing.T) {
	api := newAPI(t)
	optionID := api.seedOption()
	base := "/api/v1/options/" + optionID + "/elements"

	w := api.do(http.MethodPost, base+"/transport", map[string]any{
		"elementType":         "TRANSPORT",
		"originPlace":         "KEF",
		"originDateTime":      "2025-06-01T08:00:00Z",
		"destinationPlace":    "AEY",
		"destinationDateTime": "2025-06-01T09:00:00Z",
		"order":               2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	transport := decode[map[string]any](t, w)
	assert.Equal(t, "KEF", transport["originPlace"])
	assert.Nil(t, transport["status"])

	w = api.do(http.MethodPost, base+"/accommodation", map[string]any{
		"elementType": "ACCOMMODATION",
		"place":       "Hotel Akureyri",
		"checkIn":     map[string]any{"dateTime": "2025-06-01T15:00:00Z", "order": 1},
		"checkOut":    map[string]any{"dateTime": "2025-06-03T11:00:00Z", "order": 3},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	pair := decode[[]map[string]any](t, w)
	require.Len(t, pair, 2)
	assert.Equal(t, "CHECK_IN", pair[0]["eventType"])
	assert.Equal(t, pair[0]["baseElementId"], pair[1]["baseElementId"])

	w = api.do(http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]map[string]any](t, w)
	require.Len(t, items, 3)
	assert.Equal(t, "CHECK_IN", items[0]["eventType"])
	assert.Equal(t, "TRANSPORT", items[1]["elementType"])
	assert.Equal(t, "CHECK_OUT", items[2]["eventType"])

	w = api.do(http.MethodPatch, base+"/transport/"+transport["id"].(string), map[string]any{"order": 5, "status": "BOOKED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "BOOKED", decode[map[string]any](t, w)["status"])

	w = api.do(http.MethodDelete, base+"/"+pair[0]["baseElementId"].(string), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodGet, base+"/"+pair[0]["baseElementId"].(string), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_ErrorMapping(t *testing.T) {
	api := newAPI(t)
	optionID := api.seedOption()
	base := "/api/v1/options/" + optionID + "/elements"

	t.Run("declared type mismatch is 400", func(t *testing.T) {
		w := api.do(http.MethodPost, base+"/activity", map[string]any{
			"elementType":  "TRANSPORT",
			"activityName": "Whale watching",
			"startsAt":     "2025-06-02T10:00:00Z",
			"order":        1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", decode[ErrorResponse](t, w).Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		w := api.do(http.MethodPost, base+"/activity", map[string]any{"elementType": "ACTIVITY", "order": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown element is 404", func(t *testing.T) {
		w := api.do(http.MethodGet, base+"/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("foreign owner is 404", func(t *testing.T) {
		w := api.doAs(tokenFor(t, uuid.New()), http.MethodGet, base, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad uuid is 400", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/v1/options/not-a-uuid/elements", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure is 500", func(t *testing.T) {
		require.NoError(t, api.db.Callback().Query().Before("gorm:query").Register("test:fail_base_elements", func(tx *gorm.DB) {
			if tx.Statement.Table == "base_elements" {
				_ = tx.AddError(errors.New("i/o timeout"))
			}
		}))
		t.Cleanup(func() { _ = api.db.Callback().Query().Remove("test:fail_base_elements") })

		w := api.do(http.MethodGet, base, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal_error", decode[ErrorResponse](t, w).Code)
	})
}

func TestAPI_TripTree(t *testing.T) {
	api := newAPI(t)
	optionID := api.seedOption()

	w := api.do(http.MethodPost, "/api/v1/options/"+optionID+"/elements/activity", map[string]any{
		"elementType":  "ACTIVITY",
		"activityName": "Blue Lagoon",
		"startsAt":     "2025-06-04T10:00:00Z",
		"duration":     120,
		"order":        1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/api/v1/trips", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[map[string]any](t, w)
	trips := page["items"].([]any)
	require.Len(t, trips, 1)
	tripID := trips[0].(map[string]any)["id"].(string)

	w = api.do(http.MethodGet, "/api/v1/trips/"+tripID+"/tree", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tree struct {
		Name     string `json:"name"`
		Sections []struct {
			Name    string `json:"name"`
			Options []struct {
				Name     string           `json:"name"`
				Elements []map[string]any `json:"elements"`
			} `json:"options"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tree))
	assert.Equal(t, "Iceland", tree.Name)
	require.Len(t, tree.Sections, 1)
	require.Len(t, tree.Sections[0].Options, 1)
	require.Len(t, tree.Sections[0].Options[0].Elements, 1)
	assert.Equal(t, "Blue Lagoon", tree.Sections[0].Options[0].Elements[0]["activityName"])

	w = api.do(http.MethodDelete, "/api/v1/trips/"+tripID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = api.do(http.MethodGet, "/api/v1/trips/"+tripID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
