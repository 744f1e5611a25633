package mocks

import (
	"context"

	"github.com/musicmentor/music-mentor-api/internal/app/services/catalog"
	"github.com/musicmentor/music-mentor-api/internal/app/services/generate"
	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) SearchAlbums(ctx context.Context, query string, limit int) ([]catalog.SearchHit, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SearchHit), args.Error(1)
}

func (m *MockCatalogService) FindRelease(ctx context.Context, title, artist string) (*music.Release, error) {
	args := m.Called(ctx, title, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*music.Release), args.Error(1)
}

func (m *MockCatalogService) CoverURL(ctx context.Context, title, artist string) (string, error) {
	args := m.Called(ctx, title, artist)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogService) PreviewURL(ctx context.Context, title, artist string) (string, error) {
	args := m.Called(ctx, title, artist)
	return args.String(0), args.Error(1)
}

type MockDetailsService struct {
	mock.Mock
}

func (m *MockDetailsService) AlbumDetails(ctx context.Context, seeds []music.Seed) (map[string]generate.AlbumDetail, error) {
	args := m.Called(ctx, seeds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]generate.AlbumDetail), args.Error(1)
}
