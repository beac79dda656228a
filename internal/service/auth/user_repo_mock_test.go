package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc        func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetCredentialFunc func(ctx context.Context, userID uuid.UUID) (*domain.Credential, error)
	SetCredentialFunc func(ctx context.Context, userID uuid.UUID, passwordHash string) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		GetCredential []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		SetCredential []struct {
			Ctx          context.Context
			UserID       uuid.UUID
			PasswordHash string
		}
	}
	lockGetByID       sync.RWMutex
	lockGetByEmail    sync.RWMutex
	lockCreate        sync.RWMutex
	lockGetCredential sync.RWMutex
	lockSetCredential sync.RWMutex
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

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetCredential(ctx context.Context, userID uuid.UUID) (*domain.Credential, error) {
	if mock.GetCredentialFunc == nil {
		panic("userRepoMock.GetCredentialFunc: method is nil but userRepo.GetCredential was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetCredential.Lock()
	mock.calls.GetCredential = append(mock.calls.GetCredential, callInfo)
	mock.lockGetCredential.Unlock()
	return mock.GetCredentialFunc(ctx, userID)
}

func (mock *userRepoMock) SetCredential(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	if mock.SetCredentialFunc == nil {
		panic("userRepoMock.SetCredentialFunc: method is nil but userRepo.SetCredential was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       uuid.UUID
		PasswordHash string
	}{Ctx: ctx, UserID: userID, PasswordHash: passwordHash}
	mock.lockSetCredential.Lock()
	mock.calls.SetCredential = append(mock.calls.SetCredential, callInfo)
	mock.lockSetCredential.Unlock()
	return mock.SetCredentialFunc(ctx, userID, passwordHash)
}

func (mock *userRepoMock) SetCredentialCalls() []struct {
	Ctx          context.Context
	UserID       uuid.UUID
	PasswordHash string
} {
	mock.lockSetCredential.RLock()
	calls := mock.calls.SetCredential
	mock.lockSetCredential.RUnlock()
	return calls
}
