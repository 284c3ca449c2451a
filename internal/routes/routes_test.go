package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/config"
	"github.com/BruksfildServices01/barber-agenda/internal/lock"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/testutil"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

const secret = "test-secret"

var brt = time.FixedZone("BRT", -3*60*60)

func newRouter(t *testing.T, gdb *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, Deps{
		DB: gdb,
		Config: &config.Config{
			JWTSecret:            secret,
			SlotStep:             30 * time.Minute,
			DefaultBookingLength: 60 * time.Minute,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:  timezone.FixedClock{At: time.Date(2030, 1, 1, 8, 0, 0, 0, brt), Loc: brt},
		Locker: lock.NewLocalLocker(),
	})
	return r
}

func tenantToken(t *testing.T, shopID uint) string {
	t.Helper()
	return sign(t, jwt.MapClaims{"sub": 1, "barbershopId": shopID, "role": "TENANT"})
}

func professionalToken(t *testing.T, shopID, professionalID uint) string {
	t.Helper()
	return sign(t, jwt.MapClaims{
		"sub":            2,
		"barbershopId":   shopID,
		"role":           "PROFESSIONAL",
		"professionalId": professionalID,
	})
}

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Code string `json:"error_code"`
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var e errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e.Code
}

func TestHealth(t *testing.T) {
	r := newRouter(t, testutil.NewDB(t))

	w := do(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestPublicAvailability(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana")
	testutil.WorkingHours(t, gdb, f.Professionals[0].ID, 1, "09:00", "12:00")
	r := newRouter(t, gdb)

	w := do(r, http.MethodGet,
		fmt.Sprintf("/api/public/alpha/availability?service_id=%d&date=2030-01-07", f.Service.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			ProfessionalID uint      `json:"professional_id"`
			Start          time.Time `json:"start"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 6, body.Total)
	assert.Equal(t, "09:00", body.Data[0].Start.In(brt).Format("15:04"))

	w = do(r, http.MethodGet, "/api/public/nobody/availability?service_id=1&date=2030-01-07", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "barbershop_not_found", errorCode(t, w))

	w = do(r, http.MethodGet, "/api/public/alpha/availability?service_id=1&date=07/01/2030", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", errorCode(t, w))
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	r := newRouter(t, testutil.NewDB(t))

	w := do(r, http.MethodGet, "/api/availability?service_id=1&date=2030-01-07", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/me/blocks?professional_id=1&date=2030-01-07", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	client := sign(t, jwt.MapClaims{"sub": 3, "barbershopId": 1, "role": "CLIENT"})
	w = do(r, http.MethodPut, "/api/me/working-hours", client, map[string]any{
		"professional_id": 1,
		"days":            []map[string]any{{"weekday": 1, "active": false}},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAppointment_CreateConflictAndStatus(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana")
	r := newRouter(t, gdb)
	token := tenantToken(t, f.Shop.ID)

	req := map[string]any{
		"client_id":       f.Client.ID,
		"service_id":      f.Service.ID,
		"professional_id": f.Professionals[0].ID,
		"date":            "2030-01-07",
		"time":            "10:00",
	}

	w := do(r, http.MethodPost, "/api/me/appointments", token, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "PENDENTE", created.Status)

	w = do(r, http.MethodPost, "/api/me/appointments", token, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "booking_conflict", errorCode(t, w))

	w = do(r, http.MethodPatch, fmt.Sprintf("/api/me/appointments/%d/status", created.ID), token,
		map[string]string{"status": "CONFIRMADO"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "CONFIRMADO", updated.Status)

	w = do(r, http.MethodPatch, fmt.Sprintf("/api/me/appointments/%d/status", created.ID), token,
		map[string]string{"status": "ADIADO"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_status", errorCode(t, w))

	w = do(r, http.MethodGet, "/api/me/appointments?date=2030-01-07", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
}

func TestAppointment_OtherTenantIsForbidden(t *testing.T) {
	gdb := testutil.NewDB(t)
	a := testutil.Seed(t, gdb, "alpha", "Ana")
	b := testutil.Seed(t, gdb, "beta", "Bruno")
	r := newRouter(t, gdb)

	w := do(r, http.MethodPost, "/api/me/appointments", tenantToken(t, b.Shop.ID), map[string]any{
		"client_id":       a.Client.ID,
		"service_id":      a.Service.ID,
		"professional_id": a.Professionals[0].ID,
		"date":            "2030-01-07",
		"time":            "10:00",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", errorCode(t, w))
}

func TestBlocks_CreateOverlapAndRemove(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana", "Bia")
	ana, bia := f.Professionals[0], f.Professionals[1]
	r := newRouter(t, gdb)
	tenant := tenantToken(t, f.Shop.ID)

	w := do(r, http.MethodPost, "/api/me/blocks", tenant, map[string]any{
		"professional_id": ana.ID,
		"date":            "2030-01-07",
		"start_time":      "10:00",
		"end_time":        "11:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var block models.Block
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &block))
	assert.Equal(t, "TENANT", block.CreatedBy)

	w = do(r, http.MethodPost, "/api/me/blocks", tenant, map[string]any{
		"professional_id": ana.ID,
		"date":            "2030-01-07",
		"start_time":      "10:30",
		"end_time":        "11:30",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "block_overlap", errorCode(t, w))

	// Ana did not create it.
	w = do(r, http.MethodDelete, fmt.Sprintf("/api/me/blocks/%d", block.ID), professionalToken(t, f.Shop.ID, ana.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "not_creator", errorCode(t, w))

	w = do(r, http.MethodGet, fmt.Sprintf("/api/me/blocks?professional_id=%d&date=2030-01-07", ana.ID),
		professionalToken(t, f.Shop.ID, bia.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodDelete, fmt.Sprintf("/api/me/blocks/%d", block.ID), tenant, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, fmt.Sprintf("/api/me/blocks?professional_id=%d&date=2030-01-07", ana.ID), tenant, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Total)
}

func TestBlocks_FullDayIsTenantOnly(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana")
	ana := f.Professionals[0]
	testutil.WorkingHours(t, gdb, ana.ID, 1, "09:00", "18:00")
	r := newRouter(t, gdb)

	body := map[string]any{"professional_id": ana.ID, "date": "2030-01-07"}

	w := do(r, http.MethodPost, "/api/me/blocks/full-day", professionalToken(t, f.Shop.ID, ana.ID), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPost, "/api/me/blocks/full-day", tenantToken(t, f.Shop.ID), body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var block models.Block
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &block))
	assert.Equal(t, "09:00", block.StartTime)
	assert.Equal(t, "18:00", block.EndTime)

	w = do(r, http.MethodGet,
		fmt.Sprintf("/api/public/alpha/availability?service_id=%d&date=2030-01-07", f.Service.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var slots struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Equal(t, 0, slots.Total)
}

func TestWorkingHours_PutThenGet(t *testing.T) {
	gdb := testutil.NewDB(t)
	f := testutil.Seed(t, gdb, "alpha", "Ana")
	ana := f.Professionals[0]
	r := newRouter(t, gdb)
	token := professionalToken(t, f.Shop.ID, ana.ID)

	w := do(r, http.MethodPut, "/api/me/working-hours", token, map[string]any{
		"days": []map[string]any{
			{"weekday": 1, "active": true, "open_time": "09:00", "close_time": "18:00", "lunch_start": "12:00", "lunch_end": "13:00"},
			{"weekday": 7, "active": false},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data []models.WorkingHours `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, 1, body.Data[0].Weekday)
	assert.Equal(t, "12:00", body.Data[0].LunchStart)

	w = do(r, http.MethodPut, "/api/me/working-hours", token, map[string]any{
		"days": []map[string]any{{"weekday": 8, "active": true, "open_time": "09:00", "close_time": "18:00"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
