package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/musicmentor/music-mentor-api/internal/retry"
	"github.com/sirupsen/logrus"
)

var artworkSizeSuffix = regexp.MustCompile(`(?i)/[0-9]+x[0-9]+bb\.(jpg|png)$`)

func upscaleArtwork(url string, size int) string {
	return artworkSizeSuffix.ReplaceAllString(url, fmt.Sprintf("/%dx%dbb.$1", size, size))
}

// CoverURL returns the best artwork URL for an album, rewriting the small
// artwork's size suffix when no large variant is available. Empty string
// when the album has no match or no artwork.
func (s Service) CoverURL(ctx context.Context, title, artist string) (string, error) {
	release, err := s.FindRelease(ctx, title, artist)
	if err != nil {
		return "", err
	}
	if release == nil {
		return "", nil
	}

	if release.ArtworkURL600 != "" {
		return release.ArtworkURL600, nil
	}
	if release.ArtworkURL100 != "" {
		return upscaleArtwork(release.ArtworkURL100, 600), nil
	}
	return "", nil
}

// PreviewURL looks up an audio preview for an album via the song index.
// Tracks from the right collection and artist are preferred; failing that,
// any result with a preview counts. Empty previews are cached too, in
// their own namespace so a missing preview never shadows a release match.
func (s Service) PreviewURL(ctx context.Context, title, artist string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.PreviewURL")
	defer span.End()

	title = strings.TrimSpace(title)
	artist = strings.TrimSpace(artist)
	if title == "" || artist == "" {
		return "", nil
	}

	key := "preview:" + music.Key(title, artist)
	if val, err := s.previewCache.Get(ctx, key); err == nil {
		return val, nil
	}

	var results []SearchResult
	err := retry.Do(ctx, func() error {
		var searchErr error
		results, searchErr = s.client.Search(ctx, title+" "+artist, EntitySong, previewResultLimit)
		return searchErr
	})
	if err != nil {
		span.RecordError(err)
		s.cachePreview(ctx, key, "")
		return "", nil
	}

	normalizedTitle := music.NormalizeText(title)
	normalizedArtist := music.NormalizeText(artist)

	for _, item := range results {
		collection := music.NormalizeText(item.CollectionName)
		itemArtist := music.NormalizeText(item.ArtistName)
		if collection != "" &&
			strings.Contains(collection, normalizedTitle) &&
			strings.Contains(itemArtist, normalizedArtist) {
			s.cachePreview(ctx, key, item.PreviewURL)
			return item.PreviewURL, nil
		}
	}

	for _, item := range results {
		if item.PreviewURL != "" {
			s.cachePreview(ctx, key, item.PreviewURL)
			return item.PreviewURL, nil
		}
	}

	s.cachePreview(ctx, key, "")
	return "", nil
}

func (s Service) cachePreview(ctx context.Context, key, previewURL string) {
	if err := s.previewCache.Set(ctx, key, []byte(previewURL), cacheTTL); err != nil {
		logrus.WithError(err).Debug("Failed to cache preview lookup")
	}
}
