package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)

	assert.Equal(t, 0, response.NewPaginationMeta(5, 1, 0).TotalPages)
}

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "conflict",
			err:        apperror.Conflict("National ID already registered"),
			wantStatus: http.StatusConflict,
			wantCode:   apperror.CodeConflict,
			wantMsg:    "National ID already registered",
		},
		{
			name:       "internal error hides cause",
			err:        errors.New("dial tcp 10.0.0.1:5432: refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperror.CodeInternalError,
			wantMsg:    apperror.ErrInternal.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			response.WriteError(c, zap.NewNop(), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body struct {
				Ok    bool `json:"ok"`
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Ok)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
		})
	}
}
