package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/musicmentor/music-mentor-api/internal/app/services/generate"
	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/sirupsen/logrus"
)

// Request carries one recommendation run's inputs. Identity may be empty
// for anonymous callers, in which case the seen store is skipped.
type Request struct {
	Identity     string
	Prompt       string
	Library      []music.LibraryAlbum
	Exclude      []music.Seed
	DesiredCount int
}

// Recommend runs up to three generation rounds, verifying every candidate
// against the catalog before it counts. Verified entries carry the
// catalog's spelling of title and artist, so later artwork and preview
// lookups resolve to the same record the verification did. The result may
// be shorter than requested; it is empty only alongside an error.
func (s Service) Recommend(ctx context.Context, req Request) ([]music.Seed, error) {
	ctx, span := s.tracer.Start(ctx, "RecommendService.Recommend")
	defer span.End()

	target := req.DesiredCount
	if target <= 0 {
		target = defaultCount
	}

	excluded := make(map[string]struct{}, len(req.Exclude))
	for _, seed := range req.Exclude {
		excluded[seed.Key()] = struct{}{}
	}
	if req.Identity != "" {
		s.loadIdentityKeys(ctx, req.Identity, excluded)
	}

	var (
		verified   []music.Seed
		rejected   []music.Seed
		lastGenErr error
	)

	for attempt := 0; attempt < maxRounds && len(verified) < target; attempt++ {
		exclude := make([]music.Seed, 0, len(req.Exclude)+len(rejected)+len(verified))
		exclude = append(exclude, req.Exclude...)
		exclude = append(exclude, rejected...)
		exclude = append(exclude, verified...)

		candidates, err := s.generator.Candidates(ctx, req.Prompt, req.Library, exclude, target)
		if err != nil {
			if errors.Is(err, generate.ErrInvalidResponse) {
				return nil, err
			}
			lastGenErr = err
			logrus.WithError(err).WithField("attempt", attempt+1).Warn("Generation round failed")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"attempt":    attempt + 1,
			"candidates": len(candidates),
		}).Debug("Verifying generated candidates")

		for _, candidate := range music.Dedupe(candidates) {
			if len(verified) >= target {
				break
			}
			if _, ok := excluded[candidate.Key()]; ok {
				continue
			}

			release, err := s.catalog.FindRelease(ctx, candidate.Title, candidate.Artist)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"title":  candidate.Title,
					"artist": candidate.Artist,
				}).Warn("Release lookup failed, rejecting candidate")
				rejected = append(rejected, candidate)
				continue
			}
			if release == nil {
				rejected = append(rejected, candidate)
				continue
			}

			// Keep the catalog's spelling as the record of truth.
			normalized := music.Seed{Title: release.Title, Artist: release.Artist}
			key := normalized.Key()
			if _, ok := excluded[key]; ok {
				continue
			}
			verified = append(verified, normalized)
			excluded[key] = struct{}{}
		}
	}

	if len(verified) < fallbackThreshold {
		s.fillFromCatalog(ctx, req.Prompt, target, excluded, &verified)
	}

	if len(verified) == 0 {
		if lastGenErr != nil {
			return nil, fmt.Errorf("generation failed after %d rounds: %w", maxRounds, lastGenErr)
		}
		return nil, ErrNoAlbumsVerified
	}

	if req.Identity != "" {
		s.markSeen(ctx, req.Identity, verified)
	}

	if len(verified) > target {
		verified = verified[:target]
	}
	return verified, nil
}

// loadIdentityKeys folds the identity's previously seen recommendations
// and library into the exclusion set. Store failures only cost exclusion
// coverage, so they are logged and swallowed.
func (s Service) loadIdentityKeys(ctx context.Context, identity string, excluded map[string]struct{}) {
	seenKeys, err := s.seenStore.SeenKeys(ctx, identity)
	if err != nil {
		logrus.WithError(err).Warn("Failed to load seen recommendation keys")
	}
	for _, key := range seenKeys {
		excluded[key] = struct{}{}
	}

	libraryKeys, err := s.seenStore.LibraryKeys(ctx, identity)
	if err != nil {
		logrus.WithError(err).Warn("Failed to load library keys")
	}
	for _, key := range libraryKeys {
		excluded[key] = struct{}{}
	}
}

// fillFromCatalog tops up the verified list from a direct keyword search.
// Hits come straight from the catalog, so they skip the matcher.
func (s Service) fillFromCatalog(ctx context.Context, prompt string, target int, excluded map[string]struct{}, verified *[]music.Seed) {
	hits, err := s.catalog.SearchAlbums(ctx, prompt, fallbackSearchLimit)
	if err != nil {
		logrus.WithError(err).Warn("Fallback catalog search failed")
		return
	}

	for _, hit := range hits {
		if len(*verified) >= target {
			break
		}
		seed := music.Seed{Title: hit.Title, Artist: hit.Artist}
		key := seed.Key()
		if _, ok := excluded[key]; ok {
			continue
		}
		*verified = append(*verified, seed)
		excluded[key] = struct{}{}
	}
}

func (s Service) markSeen(ctx context.Context, identity string, verified []music.Seed) {
	keys := make([]string, 0, len(verified))
	for _, seed := range verified {
		keys = append(keys, seed.Key())
	}
	if err := s.seenStore.MarkSeen(ctx, identity, keys); err != nil {
		logrus.WithError(err).Warn("Failed to persist seen recommendations")
	}
}
