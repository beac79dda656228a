package idea

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	CreateFunc           func(ctx context.Context, i *domain.Idea) (*domain.Idea, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	UpdateVisibilityFunc func(ctx context.Context, id uuid.UUID, v domain.Visibility) (*domain.Idea, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	ListByAuthorFunc     func(ctx context.Context, authorID uuid.UUID, visibilities ...domain.Visibility) ([]domain.Idea, error)
	ListTimelineFunc     func(ctx context.Context, viewerID uuid.UUID) ([]domain.Idea, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Idea *domain.Idea
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByAuthor []struct {
			Ctx          context.Context
			AuthorID     uuid.UUID
			Visibilities []domain.Visibility
		}
	}
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockListByAuthor sync.RWMutex
}

func (mock *ideaRepoMock) Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error) {
	if mock.CreateFunc == nil {
		panic("ideaRepoMock.CreateFunc: method is nil but ideaRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Idea *domain.Idea
	}{Ctx: ctx, Idea: i}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, i)
}

func (mock *ideaRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Idea *domain.Idea
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ideaRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	if mock.GetByIDFunc == nil {
		panic("ideaRepoMock.GetByIDFunc: method is nil but ideaRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *ideaRepoMock) UpdateVisibility(ctx context.Context, id uuid.UUID, v domain.Visibility) (*domain.Idea, error) {
	if mock.UpdateVisibilityFunc == nil {
		panic("ideaRepoMock.UpdateVisibilityFunc: method is nil but ideaRepo.UpdateVisibility was just called")
	}
	return mock.UpdateVisibilityFunc(ctx, id, v)
}

func (mock *ideaRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("ideaRepoMock.DeleteFunc: method is nil but ideaRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *ideaRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *ideaRepoMock) ListByAuthor(ctx context.Context, authorID uuid.UUID, visibilities ...domain.Visibility) ([]domain.Idea, error) {
	if mock.ListByAuthorFunc == nil {
		panic("ideaRepoMock.ListByAuthorFunc: method is nil but ideaRepo.ListByAuthor was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		AuthorID     uuid.UUID
		Visibilities []domain.Visibility
	}{Ctx: ctx, AuthorID: authorID, Visibilities: visibilities}
	mock.lockListByAuthor.Lock()
	mock.calls.ListByAuthor = append(mock.calls.ListByAuthor, callInfo)
	mock.lockListByAuthor.Unlock()
	return mock.ListByAuthorFunc(ctx, authorID, visibilities...)
}

func (mock *ideaRepoMock) ListByAuthorCalls() []struct {
	Ctx          context.Context
	AuthorID     uuid.UUID
	Visibilities []domain.Visibility
} {
	mock.lockListByAuthor.RLock()
	calls := mock.calls.ListByAuthor
	mock.lockListByAuthor.RUnlock()
	return calls
}

func (mock *ideaRepoMock) ListTimeline(ctx context.Context, viewerID uuid.UUID) ([]domain.Idea, error) {
	if mock.ListTimelineFunc == nil {
		panic("ideaRepoMock.ListTimelineFunc: method is nil but ideaRepo.ListTimeline was just called")
	}
	return mock.ListTimelineFunc(ctx, viewerID)
}

var _ followRepo = &followRepoMock{}

type followRepoMock struct {
	IsApprovedFollowerFunc func(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

func (mock *followRepoMock) IsApprovedFollower(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	if mock.IsApprovedFollowerFunc == nil {
		panic("followRepoMock.IsApprovedFollowerFunc: method is nil but followRepo.IsApprovedFollower was just called")
	}
	return mock.IsApprovedFollowerFunc(ctx, followerID, followingID)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	return mock.GetByUsernameFunc(ctx, username)
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	FanOutFunc func(ctx context.Context, idea *domain.Idea, author *domain.User) error

	calls struct {
		FanOut []struct {
			Ctx    context.Context
			Idea   *domain.Idea
			Author *domain.User
		}
	}
	lockFanOut sync.RWMutex
}

func (mock *notifierMock) FanOut(ctx context.Context, idea *domain.Idea, author *domain.User) error {
	if mock.FanOutFunc == nil {
		panic("notifierMock.FanOutFunc: method is nil but notifier.FanOut was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Idea   *domain.Idea
		Author *domain.User
	}{Ctx: ctx, Idea: idea, Author: author}
	mock.lockFanOut.Lock()
	mock.calls.FanOut = append(mock.calls.FanOut, callInfo)
	mock.lockFanOut.Unlock()
	return mock.FanOutFunc(ctx, idea, author)
}

func (mock *notifierMock) FanOutCalls() []struct {
	Ctx    context.Context
	Idea   *domain.Idea
	Author *domain.User
} {
	mock.lockFanOut.RLock()
	calls := mock.calls.FanOut
	mock.lockFanOut.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
