package goal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"Cofrinho/internal/domain/goal"
	"Cofrinho/internal/domain/goal/goaltest"
	"Cofrinho/internal/domain/goal/mocks"
	"Cofrinho/internal/pkg"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	testingclock "k8s.io/utils/clock/testing"
)

type transition struct {
	from, to goal.GoalStatus
}

type fakeRecorder struct {
	transitions []transition
}

func (f *fakeRecorder) RecordTransition(from, to goal.GoalStatus) {
	f.transitions = append(f.transitions, transition{from: from, to: to})
}

var syncNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestGoal(status goal.GoalStatus, target, saved int64) *goal.Goal {
	return &goal.Goal{
		Id:           pkg.GenerateULIDObject(),
		UserId:       pkg.GenerateULIDObject(),
		Name:         "Viagem",
		TargetAmount: decimal.NewFromInt(target),
		SavedAmount:  decimal.NewFromInt(saved),
		Status:       status,
	}
}

func TestSynchronizerWritesOnlyOnDivergence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		goal       *goal.Goal
		wantStatus goal.GoalStatus
		wantWrite  bool
	}{
		{
			name:       "already consistent",
			goal:       newTestGoal(goal.Active, 100, 10),
			wantStatus: goal.Active,
		},
		{
			name:       "stale active becomes achieved",
			goal:       newTestGoal(goal.Active, 100, 100),
			wantStatus: goal.Achieved,
			wantWrite:  true,
		},
		{
			name:       "stale achieved falls back to active",
			goal:       newTestGoal(goal.Achieved, 200, 100),
			wantStatus: goal.Active,
			wantWrite:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRepository(ctrl)
			if tt.wantWrite {
				repo.EXPECT().
					UpdateStatus(gomock.Any(), tt.goal.Id, tt.goal.UserId, tt.wantStatus).
					Return(nil).
					Times(1)
			}

			recorder := &fakeRecorder{}
			sync := goal.NewSynchronizer(repo, goal.NewStatusResolver(testingclock.NewFakePassiveClock(syncNow)), recorder)

			original := tt.goal.Status
			got, err := sync.Sync(context.Background(), tt.goal)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, original, tt.goal.Status, "a meta de entrada nao deve ser mutada")

			if tt.wantWrite {
				require.Len(t, recorder.transitions, 1)
				assert.Equal(t, transition{from: original, to: tt.wantStatus}, recorder.transitions[0])
			} else {
				assert.Same(t, tt.goal, got)
				assert.Empty(t, recorder.transitions)
			}
		})
	}
}

func TestSynchronizerPropagatesWriteError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	writeErr := errors.New("connection reset")
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), goal.Achieved).Return(writeErr)

	recorder := &fakeRecorder{}
	sync := goal.NewSynchronizer(repo, goal.NewStatusResolver(testingclock.NewFakePassiveClock(syncNow)), recorder)

	got, err := sync.Sync(context.Background(), newTestGoal(goal.Active, 100, 100))
	require.ErrorIs(t, err, writeErr)
	assert.Nil(t, got)
	assert.Empty(t, recorder.transitions)
}

func TestSynchronizerIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := goaltest.NewMemoryRepository()
	g := newTestGoal(goal.Active, 100, 0)
	g.EndDate = date(2020, time.January, 1)
	repo.Seed(g)

	sync := goal.NewSynchronizer(repo, goal.NewStatusResolver(testingclock.NewFakePassiveClock(syncNow)), nil)

	first, err := sync.Sync(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, goal.Expired, first.Status)

	second, err := sync.Sync(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, goal.Expired, second.Status)

	assert.Equal(t, 1, repo.StatusWrites)
	assert.Equal(t, goal.Expired, repo.Stored(g.Id).Status)
}

func TestSynchronizerSyncAllStopsOnError(t *testing.T) {
	t.Parallel()

	repo := goaltest.NewMemoryRepository()
	repo.FailUpdateStatus = errors.New("db down")
	sync := goal.NewSynchronizer(repo, goal.NewStatusResolver(testingclock.NewFakePassiveClock(syncNow)), nil)

	goals := []*goal.Goal{
		newTestGoal(goal.Active, 100, 10),
		newTestGoal(goal.Active, 100, 100),
	}

	got, err := sync.SyncAll(context.Background(), goals)
	require.Error(t, err)
	assert.Nil(t, got)
}
