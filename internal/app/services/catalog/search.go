package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/musicmentor/music-mentor-api/internal/retry"
)

// SearchHit is a catalog result shaped for direct display, bypassing the
// matcher's scoring: hits come straight from the catalog, so they need no
// further existence check.
type SearchHit struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	CoverURL   string `json:"coverUrl"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

// SearchAlbums runs a raw keyword search against the album index. Hits
// collapse by seed key, and hits whose title and artist contain the query
// sort first.
func (s Service) SearchAlbums(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.SearchAlbums")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	var results []SearchResult
	err := retry.Do(ctx, func() error {
		var searchErr error
		results, searchErr = s.client.Search(ctx, query, EntityAlbum, limit)
		return searchErr
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %s", ErrSearchFailed, err.Error())
	}

	seen := make(map[string]struct{}, len(results))
	hits := make([]SearchHit, 0, len(results))
	for _, item := range results {
		title := strings.TrimSpace(item.CollectionName)
		artist := strings.TrimSpace(item.ArtistName)
		if title == "" || artist == "" {
			continue
		}

		key := music.Key(title, artist)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		cover := item.ArtworkURL600
		if cover == "" && item.ArtworkURL100 != "" {
			cover = upscaleArtwork(item.ArtworkURL100, 600)
		}

		hits = append(hits, SearchHit{
			Title:      title,
			Artist:     artist,
			CoverURL:   cover,
			PreviewURL: item.PreviewURL,
		})
	}

	normalizedQuery := music.NormalizeText(query)
	sort.SliceStable(hits, func(i, j int) bool {
		return hitMatchesQuery(hits[i], normalizedQuery) && !hitMatchesQuery(hits[j], normalizedQuery)
	})

	return hits, nil
}

func hitMatchesQuery(hit SearchHit, normalizedQuery string) bool {
	return strings.Contains(music.NormalizeText(hit.Title+" "+hit.Artist), normalizedQuery)
}
