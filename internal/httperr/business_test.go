package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf_UnwrapsWrappedErrors(t *testing.T) {
	err := fmt.Errorf("create block: %w", ErrConflict("block_overlap"))

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, kind)
	assert.True(t, IsBusiness(err, "block_overlap"))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindValidation))
}

func TestKindOf_PlainError(t *testing.T) {
	_, ok := KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestErrBusiness_IsValidation(t *testing.T) {
	assert.True(t, IsKind(ErrBusiness("invalid_state"), KindValidation))
}

func TestRespond_MapsKindsToStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrValidation("invalid_time_range", "start must be before end"), http.StatusBadRequest, "invalid_time_range"},
		{ErrNotFound("block_not_found"), http.StatusNotFound, "block_not_found"},
		{ErrConflict("booking_conflict"), http.StatusConflict, "booking_conflict"},
		{ErrAuthorization("forbidden"), http.StatusForbidden, "forbidden"},
		{errors.New("db down"), http.StatusInternalServerError, "fallback"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Respond(c, tc.err, "fallback")

		assert.Equal(t, tc.status, w.Code)
		var body HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.code, body.Code)
	}
}
