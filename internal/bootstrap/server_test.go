package bootstrap_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/bootstrap"
	bootstrapMock "github.com/TheLeeJungYan/EINV-POS-API/internal/bootstrap/mock"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNewHTTPServer(t *testing.T) {
	cfg := config.AppConfig{
		Port:         "8080",
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 3 * time.Second,
		IdleTimeout:  4 * time.Second,
	}

	srv := bootstrap.NewHTTPServer(http.NotFoundHandler(), cfg)

	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, 2*time.Second, srv.ReadTimeout)
	assert.Equal(t, 3*time.Second, srv.WriteTimeout)
	assert.Equal(t, 4*time.Second, srv.IdleTimeout)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := bootstrapMock.NewMockAuditLogger(ctrl)
	audit.EXPECT().Log(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry bootstrap.AuditLog) {
			assert.Equal(t, bootstrap.AuditServerShutdown, entry.Action)
			assert.Equal(t, "127.0.0.1:0", entry.Meta["addr"])
		})

	srv := bootstrap.NewHTTPServer(http.NotFoundHandler(), config.AppConfig{})
	srv.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := bootstrap.Serve(ctx, srv, time.Second, audit, zap.NewNop())
	require.NoError(t, err)
}

func TestServe_ReturnsListenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	audit := bootstrapMock.NewMockAuditLogger(ctrl)

	srv := bootstrap.NewHTTPServer(http.NotFoundHandler(), config.AppConfig{})
	srv.Addr = "127.0.0.1:-1"

	err := bootstrap.Serve(context.Background(), srv, time.Second, audit, zap.NewNop())
	assert.Error(t, err)
}
