package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*domain.User, error)
	ListFunc             func(ctx context.Context) ([]domain.User, error)
	SearchByUsernameFunc func(ctx context.Context, query string) ([]domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		List []struct {
			Ctx context.Context
		}
		SearchByUsername []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByUsername    sync.RWMutex
	lockList             sync.RWMutex
	lockSearchByUsername sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) SearchByUsername(ctx context.Context, query string) ([]domain.User, error) {
	if mock.SearchByUsernameFunc == nil {
		panic("userRepoMock.SearchByUsernameFunc: method is nil but userRepo.SearchByUsername was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockSearchByUsername.Lock()
	mock.calls.SearchByUsername = append(mock.calls.SearchByUsername, callInfo)
	mock.lockSearchByUsername.Unlock()
	return mock.SearchByUsernameFunc(ctx, query)
}

func (mock *userRepoMock) SearchByUsernameCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockSearchByUsername.RLock()
	calls := mock.calls.SearchByUsername
	mock.lockSearchByUsername.RUnlock()
	return calls
}
