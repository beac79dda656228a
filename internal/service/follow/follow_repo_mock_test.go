package follow

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

var _ followRepo = &followRepoMock{}

type followRepoMock struct {
	CreateFunc              func(ctx context.Context, e *domain.FollowEdge) (*domain.FollowEdge, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.FollowEdge, error)
	ResolvePendingFunc      func(ctx context.Context, id uuid.UUID, status domain.FollowStatus) (*domain.FollowEdge, error)
	DeleteApprovedFunc      func(ctx context.Context, followerID, followingID uuid.UUID) error
	ListPendingReceivedFunc func(ctx context.Context, followingID uuid.UUID) ([]domain.FollowRequest, error)
	ListFollowingFunc       func(ctx context.Context, followerID uuid.UUID) ([]domain.User, error)
	ListFollowersFunc       func(ctx context.Context, followingID uuid.UUID) ([]domain.User, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Edge *domain.FollowEdge
		}
		ResolvePending []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.FollowStatus
		}
		DeleteApproved []struct {
			Ctx         context.Context
			FollowerID  uuid.UUID
			FollowingID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockResolvePending sync.RWMutex
	lockDeleteApproved sync.RWMutex
}

func (mock *followRepoMock) Create(ctx context.Context, e *domain.FollowEdge) (*domain.FollowEdge, error) {
	if mock.CreateFunc == nil {
		panic("followRepoMock.CreateFunc: method is nil but followRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Edge *domain.FollowEdge
	}{Ctx: ctx, Edge: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *followRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Edge *domain.FollowEdge
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *followRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.FollowEdge, error) {
	if mock.GetByIDFunc == nil {
		panic("followRepoMock.GetByIDFunc: method is nil but followRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *followRepoMock) ResolvePending(ctx context.Context, id uuid.UUID, status domain.FollowStatus) (*domain.FollowEdge, error) {
	if mock.ResolvePendingFunc == nil {
		panic("followRepoMock.ResolvePendingFunc: method is nil but followRepo.ResolvePending was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.FollowStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockResolvePending.Lock()
	mock.calls.ResolvePending = append(mock.calls.ResolvePending, callInfo)
	mock.lockResolvePending.Unlock()
	return mock.ResolvePendingFunc(ctx, id, status)
}

func (mock *followRepoMock) ResolvePendingCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.FollowStatus
} {
	mock.lockResolvePending.RLock()
	calls := mock.calls.ResolvePending
	mock.lockResolvePending.RUnlock()
	return calls
}

func (mock *followRepoMock) DeleteApproved(ctx context.Context, followerID, followingID uuid.UUID) error {
	if mock.DeleteApprovedFunc == nil {
		panic("followRepoMock.DeleteApprovedFunc: method is nil but followRepo.DeleteApproved was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		FollowerID  uuid.UUID
		FollowingID uuid.UUID
	}{Ctx: ctx, FollowerID: followerID, FollowingID: followingID}
	mock.lockDeleteApproved.Lock()
	mock.calls.DeleteApproved = append(mock.calls.DeleteApproved, callInfo)
	mock.lockDeleteApproved.Unlock()
	return mock.DeleteApprovedFunc(ctx, followerID, followingID)
}

func (mock *followRepoMock) DeleteApprovedCalls() []struct {
	Ctx         context.Context
	FollowerID  uuid.UUID
	FollowingID uuid.UUID
} {
	mock.lockDeleteApproved.RLock()
	calls := mock.calls.DeleteApproved
	mock.lockDeleteApproved.RUnlock()
	return calls
}

func (mock *followRepoMock) ListPendingReceived(ctx context.Context, followingID uuid.UUID) ([]domain.FollowRequest, error) {
	if mock.ListPendingReceivedFunc == nil {
		panic("followRepoMock.ListPendingReceivedFunc: method is nil but followRepo.ListPendingReceived was just called")
	}
	return mock.ListPendingReceivedFunc(ctx, followingID)
}

func (mock *followRepoMock) ListFollowing(ctx context.Context, followerID uuid.UUID) ([]domain.User, error) {
	if mock.ListFollowingFunc == nil {
		panic("followRepoMock.ListFollowingFunc: method is nil but followRepo.ListFollowing was just called")
	}
	return mock.ListFollowingFunc(ctx, followerID)
}

func (mock *followRepoMock) ListFollowers(ctx context.Context, followingID uuid.UUID) ([]domain.User, error) {
	if mock.ListFollowersFunc == nil {
		panic("followRepoMock.ListFollowersFunc: method is nil but followRepo.ListFollowers was just called")
	}
	return mock.ListFollowersFunc(ctx, followingID)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}
