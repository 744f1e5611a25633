package mocks

import (
	"context"
	"time"

	"github.com/musicmentor/music-mentor-api/internal/app/services/catalog"
	"github.com/stretchr/testify/mock"
)

type MockSearchClient struct {
	mock.Mock
}

func (m *MockSearchClient) Search(ctx context.Context, term string, entity catalog.Entity, limit int) ([]catalog.SearchResult, error) {
	args := m.Called(ctx, term, entity, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SearchResult), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
