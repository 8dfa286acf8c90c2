package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/melaverse-glitch/Mirror-Dashboard/gemini"
	"github.com/melaverse-glitch/Mirror-Dashboard/models"
)

type fakeSessionStore struct {
	mock.Mock
}

func (f *fakeSessionStore) Create(ctx context.Context, session *models.Session) error {
	args := f.Called(ctx, session)
	return args.Error(0)
}

func (f *fakeSessionStore) AppendTryon(ctx context.Context, sessionID string, tryon models.FoundationTryon) error {
	args := f.Called(ctx, sessionID, tryon)
	return args.Error(0)
}

func (f *fakeSessionStore) List(ctx context.Context) ([]models.Session, error) {
	args := f.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

func (f *fakeSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	args := f.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

type fakeBlobStore struct {
	mock.Mock
}

func (f *fakeBlobStore) Upload(ctx context.Context, objectKey string, data []byte, contentType string) (string, error) {
	args := f.Called(ctx, objectKey, data, contentType)
	return args.String(0), args.Error(1)
}

type fakeGenerator struct {
	mock.Mock
}

func (f *fakeGenerator) Derender(ctx context.Context, image []byte, mimeType string) (*gemini.Result, error) {
	args := f.Called(ctx, image, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gemini.Result), args.Error(1)
}

func (f *fakeGenerator) ApplyFoundation(ctx context.Context, image []byte, mimeType string, foundation models.Foundation) (*gemini.Result, error) {
	args := f.Called(ctx, image, mimeType, foundation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gemini.Result), args.Error(1)
}

func (f *fakeGenerator) SuggestFoundations(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	args := f.Called(ctx, image, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
