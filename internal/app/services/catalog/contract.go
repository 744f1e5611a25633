package catalog

import (
	"context"
	"time"
)

// Entity selects which catalog index a search runs against.
type Entity string

const (
	EntityAlbum Entity = "album"
	EntitySong  Entity = "song"
)

// SearchResult is one record returned by the catalog search endpoint.
type SearchResult struct {
	CollectionID      int64
	CollectionName    string
	ArtistName        string
	ArtworkURL100     string
	ArtworkURL600     string
	CollectionViewURL string
	PreviewURL        string
}

type SearchClient interface {
	Search(ctx context.Context, term string, entity Entity, limit int) ([]SearchResult, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
