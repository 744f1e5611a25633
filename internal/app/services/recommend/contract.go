package recommend

import (
	"context"

	"github.com/musicmentor/music-mentor-api/internal/app/services/catalog"
	"github.com/musicmentor/music-mentor-api/internal/music"
)

// Generator produces unverified album candidates for a prompt.
type Generator interface {
	Candidates(ctx context.Context, prompt string, library []music.LibraryAlbum, exclude []music.Seed, count int) ([]music.Seed, error)
}

// Catalog verifies candidates and serves the keyword-search fallback.
type Catalog interface {
	FindRelease(ctx context.Context, title, artist string) (*music.Release, error)
	SearchAlbums(ctx context.Context, query string, limit int) ([]catalog.SearchHit, error)
}

// SeenStore tracks which recommendation keys an identity has already been
// shown, plus the keys of its library. Marking an existing key again is a
// no-op, not an error.
type SeenStore interface {
	SeenKeys(ctx context.Context, identity string) ([]string, error)
	LibraryKeys(ctx context.Context, identity string) ([]string, error)
	MarkSeen(ctx context.Context, identity string, keys []string) error
}
