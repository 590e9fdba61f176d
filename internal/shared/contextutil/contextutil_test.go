package contextutil_test

import (
	"context"
	"testing"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/domain"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCaller(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		assert.Nil(t, contextutil.GetCaller(context.Background()))
	})

	t.Run("stored caller also sets user id", func(t *testing.T) {
		caller := &domain.Caller{UserID: uuid.New(), Role: domain.RoleAdmin}
		ctx := contextutil.WithCaller(context.Background(), caller)

		assert.Same(t, caller, contextutil.GetCaller(ctx))
		assert.Equal(t, caller.UserID.String(), contextutil.GetUserID(ctx))
	})
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewNop()
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewExample()
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
}

func TestExtractMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithUserID(ctx, "user-1")

	md := contextutil.ExtractMetadata(ctx)
	assert.Equal(t, "rid-1", md.RequestID)
	assert.Equal(t, "user-1", md.UserID)
}
