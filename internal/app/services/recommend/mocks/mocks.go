package mocks

import (
	"context"

	"github.com/musicmentor/music-mentor-api/internal/app/services/catalog"
	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Candidates(ctx context.Context, prompt string, library []music.LibraryAlbum, exclude []music.Seed, count int) ([]music.Seed, error) {
	args := m.Called(ctx, prompt, library, exclude, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]music.Seed), args.Error(1)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) FindRelease(ctx context.Context, title, artist string) (*music.Release, error) {
	args := m.Called(ctx, title, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*music.Release), args.Error(1)
}

func (m *MockCatalog) SearchAlbums(ctx context.Context, query string, limit int) ([]catalog.SearchHit, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SearchHit), args.Error(1)
}

type MockSeenStore struct {
	mock.Mock
}

func (m *MockSeenStore) SeenKeys(ctx context.Context, identity string) ([]string, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSeenStore) LibraryKeys(ctx context.Context, identity string) ([]string, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSeenStore) MarkSeen(ctx context.Context, identity string, keys []string) error {
	args := m.Called(ctx, identity, keys)
	return args.Error(0)
}
