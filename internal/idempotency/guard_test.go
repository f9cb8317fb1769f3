package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/rental-notifier/internal/mocks/idempotency"
)

func TestGuard_Claim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockredisClient(ctrl)
	g := NewGuard(client, "rental-notifier:")

	client.EXPECT().
		SetNX(gomock.Any(), "rental-notifier:event:1", gomock.Any(), time.Hour).
		Return(redis.NewBoolResult(true, nil))
	client.EXPECT().
		SetNX(gomock.Any(), "rental-notifier:event:1", gomock.Any(), time.Hour).
		Return(redis.NewBoolResult(false, nil))

	ok, err := g.Claim(context.Background(), "event:1", time.Hour)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Claim(context.Background(), "event:1", time.Hour)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestGuard_Claim_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockredisClient(ctrl)
	g := NewGuard(client, "")

	client.EXPECT().
		SetNX(gomock.Any(), "sweep:1", gomock.Any(), time.Minute).
		Return(redis.NewBoolResult(false, errors.New("connection refused")))

	ok, err := g.Claim(context.Background(), "sweep:1", time.Minute)
	assert.Error(t, err)
	assert.False(t, ok)
}
