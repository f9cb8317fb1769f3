package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	mocks "github.com/aliskhannn/rental-notifier/internal/mocks/worker"
)

func TestSweeper_Tick(t *testing.T) {
	at := time.Date(2024, 6, 1, 10, 17, 0, 0, time.UTC)
	slotKey := "sweep:" + "1717236000" // 2024-06-01T10:00:00Z

	tests := []struct {
		name  string
		setup func(s *mocks.MocksweepService, l *mocks.Mocklocker)
	}{
		{
			name: "claimed",
			setup: func(s *mocks.MocksweepService, l *mocks.Mocklocker) {
				l.EXPECT().Claim(gomock.Any(), slotKey, time.Hour).Return(true, nil)
				s.EXPECT().Sweep(gomock.Any()).Return(3, nil)
			},
		},
		{
			name: "claimed by another replica",
			setup: func(s *mocks.MocksweepService, l *mocks.Mocklocker) {
				l.EXPECT().Claim(gomock.Any(), slotKey, time.Hour).Return(false, nil)
				s.EXPECT().Sweep(gomock.Any()).Times(0)
			},
		},
		{
			name: "lock unavailable",
			setup: func(s *mocks.MocksweepService, l *mocks.Mocklocker) {
				l.EXPECT().Claim(gomock.Any(), slotKey, time.Hour).Return(false, errors.New("redis down"))
				s.EXPECT().Sweep(gomock.Any()).Return(0, nil)
			},
		},
		{
			name: "sweep fails",
			setup: func(s *mocks.MocksweepService, l *mocks.Mocklocker) {
				l.EXPECT().Claim(gomock.Any(), slotKey, time.Hour).Return(true, nil)
				s.EXPECT().Sweep(gomock.Any()).Return(0, errors.New("db down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMocksweepService(ctrl)
			l := mocks.NewMocklocker(ctrl)
			tt.setup(svc, l)

			NewSweeper(svc, l, time.Hour).Tick(context.Background(), at)
		})
	}
}

func TestSweeper_Run_TicksUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMocksweepService(ctrl)

	svc.EXPECT().Sweep(gomock.Any()).Return(0, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewSweeper(svc, nil, 10*time.Millisecond).Run(ctx)
		close(done)
	}()

	time.Sleep(55 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
