package mocks

import (
	"context"

	apprecommend "github.com/musicmentor/music-mentor-api/internal/app/services/recommend"
	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/stretchr/testify/mock"
)

type MockRecommendService struct {
	mock.Mock
}

func (m *MockRecommendService) Recommend(ctx context.Context, req apprecommend.Request) ([]music.Seed, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]music.Seed), args.Error(1)
}
