package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	CreateBatchFunc func(ctx context.Context, ns []domain.Notification) error
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	MarkReadFunc    func(ctx context.Context, userID, notificationID uuid.UUID) (*domain.Notification, error)

	calls struct {
		CreateBatch []struct {
			Ctx context.Context
			Ns  []domain.Notification
		}
	}
	lockCreateBatch sync.RWMutex
}

func (mock *notificationRepoMock) CreateBatch(ctx context.Context, ns []domain.Notification) error {
	if mock.CreateBatchFunc == nil {
		panic("notificationRepoMock.CreateBatchFunc: method is nil but notificationRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ns  []domain.Notification
	}{Ctx: ctx, Ns: ns}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, ns)
}

func (mock *notificationRepoMock) CreateBatchCalls() []struct {
	Ctx context.Context
	Ns  []domain.Notification
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *notificationRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	if mock.ListByUserFunc == nil {
		panic("notificationRepoMock.ListByUserFunc: method is nil but notificationRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*domain.Notification, error) {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
	}
	return mock.MarkReadFunc(ctx, userID, notificationID)
}

var _ followRepo = &followRepoMock{}

type followRepoMock struct {
	ListApprovedFollowerIDsFunc func(ctx context.Context, followingID uuid.UUID) ([]uuid.UUID, error)
}

func (mock *followRepoMock) ListApprovedFollowerIDs(ctx context.Context, followingID uuid.UUID) ([]uuid.UUID, error) {
	if mock.ListApprovedFollowerIDsFunc == nil {
		panic("followRepoMock.ListApprovedFollowerIDsFunc: method is nil but followRepo.ListApprovedFollowerIDs was just called")
	}
	return mock.ListApprovedFollowerIDsFunc(ctx, followingID)
}
