package catalog

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/musicmentor/music-mentor-api/internal/retry"
	"github.com/sirupsen/logrus"
)

// FindRelease resolves a (title, artist) pair against the catalog. A nil
// release with a nil error means no match: for the verification loop a
// missing album is data, not a failure. Search errors degrade to the same
// nil result, and the negative outcome is cached like any other.
func (s Service) FindRelease(ctx context.Context, title, artist string) (*music.Release, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.FindRelease")
	defer span.End()

	title = strings.TrimSpace(title)
	artist = strings.TrimSpace(artist)
	if title == "" || artist == "" {
		return nil, nil
	}

	key := "release:" + music.Key(title, artist)
	if val, err := s.releaseCache.Get(ctx, key); err == nil {
		var release *music.Release
		if err := json.Unmarshal([]byte(val), &release); err == nil {
			return release, nil
		}
	}

	var results []SearchResult
	err := retry.Do(ctx, func() error {
		var searchErr error
		results, searchErr = s.client.Search(ctx, title+" "+artist, EntityAlbum, matchResultLimit)
		return searchErr
	})
	if err != nil {
		span.RecordError(err)
		logrus.WithError(err).WithFields(logrus.Fields{
			"title":  title,
			"artist": artist,
		}).Warn("Catalog search failed, treating as no match")
		s.cacheRelease(ctx, key, nil)
		return nil, nil
	}

	match := bestMatch(results, title, artist)
	if match == nil {
		s.cacheRelease(ctx, key, nil)
		return nil, nil
	}

	release := &music.Release{
		CollectionID:      match.CollectionID,
		Title:             match.CollectionName,
		Artist:            match.ArtistName,
		ArtworkURL100:     match.ArtworkURL100,
		ArtworkURL600:     match.ArtworkURL600,
		CollectionViewURL: match.CollectionViewURL,
	}
	s.cacheRelease(ctx, key, release)
	return release, nil
}

// cacheRelease stores the lookup outcome. A nil release marshals to the
// JSON literal null, which doubles as the negative entry.
func (s Service) cacheRelease(ctx context.Context, key string, release *music.Release) {
	encoded, err := json.Marshal(release)
	if err != nil {
		return
	}
	if err := s.releaseCache.Set(ctx, key, encoded, cacheTTL); err != nil {
		logrus.WithError(err).Debug("Failed to cache release lookup")
	}
}

var (
	bracketedSuffix = regexp.MustCompile(`\s*[\[(].*?[\])]`)
	colonSuffix     = regexp.MustCompile(`:\s*.*`)
)

// simplifyTitle strips parenthetical or bracketed suffixes and anything
// after a colon, so "The Magic City (Remastered 2017)" can still match
// "The Magic City".
func simplifyTitle(title string) string {
	simplified := bracketedSuffix.ReplaceAllString(title, "")
	simplified = colonSuffix.ReplaceAllString(simplified, "")
	return strings.TrimSpace(simplified)
}

// bestMatch scores candidates and returns the highest scorer; earlier
// results win ties. A candidate is eliminated outright unless its artist
// contains the query artist or vice versa.
func bestMatch(results []SearchResult, title, artist string) *SearchResult {
	normalizedTitle := music.NormalizeText(title)
	normalizedArtist := music.NormalizeText(artist)
	simplifiedTitle := music.NormalizeText(simplifyTitle(title))

	var best *SearchResult
	bestScore := -1

	for i := range results {
		item := &results[i]
		itemTitle := music.NormalizeText(item.CollectionName)
		itemArtist := music.NormalizeText(item.ArtistName)
		itemSimplified := music.NormalizeText(simplifyTitle(item.CollectionName))

		artistMatch := normalizedArtist != "" &&
			(strings.Contains(itemArtist, normalizedArtist) || strings.Contains(normalizedArtist, itemArtist))
		if !artistMatch {
			continue
		}

		score := 0
		if itemTitle == normalizedTitle {
			score += 4
		}
		if simplifiedTitle != "" &&
			(strings.Contains(itemSimplified, simplifiedTitle) || strings.Contains(simplifiedTitle, itemSimplified)) {
			score += 2
		}
		if strings.Contains(itemTitle, normalizedTitle) || strings.Contains(normalizedTitle, itemTitle) {
			score++
		}
		if itemArtist == normalizedArtist {
			score++
		}

		if score > bestScore {
			bestScore = score
			best = item
		}
	}

	return best
}
