package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyilmaz/placehub/internal/app/models/dto"
	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
)

func errorResponseFor(t *testing.T, err error) (int, *dto.ErrorDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp struct {
		Error *dto.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return w.Code, resp.Error
}

func TestHandleAPIErrorStorageFailure(t *testing.T) {
	err := apperrors.NewStorageError(errors.New("database is closed"))

	status, detail := errorResponseFor(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, dto.ErrorCodeStorageError, detail.Code)
}

func TestHandleAPIErrorNoActiveSession(t *testing.T) {
	status, detail := errorResponseFor(t, apperrors.ErrNoActiveSession)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, dto.ErrorCodeUnauthorized, detail.Code)
}

func TestHandleAPIErrorUnknownFallsBackToServerError(t *testing.T) {
	status, detail := errorResponseFor(t, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, dto.ErrorCodeInternalServer, detail.Code)
}
