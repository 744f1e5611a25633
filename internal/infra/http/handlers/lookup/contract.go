package lookup

import (
	"context"

	"github.com/musicmentor/music-mentor-api/internal/app/services/catalog"
	"github.com/musicmentor/music-mentor-api/internal/app/services/generate"
	"github.com/musicmentor/music-mentor-api/internal/music"
)

type CatalogService interface {
	SearchAlbums(ctx context.Context, query string, limit int) ([]catalog.SearchHit, error)
	FindRelease(ctx context.Context, title, artist string) (*music.Release, error)
	CoverURL(ctx context.Context, title, artist string) (string, error)
	PreviewURL(ctx context.Context, title, artist string) (string, error)
}

type DetailsService interface {
	AlbumDetails(ctx context.Context, seeds []music.Seed) (map[string]generate.AlbumDetail, error)
}
