package recommend

import (
	"context"

	apprecommend "github.com/musicmentor/music-mentor-api/internal/app/services/recommend"
	"github.com/musicmentor/music-mentor-api/internal/music"
)

type RecommendService interface {
	Recommend(ctx context.Context, req apprecommend.Request) ([]music.Seed, error)
}
