// Package music holds the domain types shared by the recommendation
// pipeline: unverified album seeds, verified catalog releases, and the
// canonical key used for dedup and exclusion.
package music

import (
	"regexp"
	"strings"
)

// Seed is an unverified (title, artist) pair from any candidate-generating
// source: the text model, a catalog search, or the caller.
type Seed struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// LibraryAlbum is an album already in the user's library, used as listening
// history context when generating candidates.
type LibraryAlbum struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Rating int    `json:"rating,omitempty"`
}

// Release is a seed confirmed to exist in the catalog, annotated with the
// catalog's metadata. Title and Artist carry the catalog's spelling, not
// whatever the seed said.
type Release struct {
	CollectionID      int64  `json:"collectionId"`
	Title             string `json:"title"`
	Artist            string `json:"artist"`
	ArtworkURL100     string `json:"artworkUrl100,omitempty"`
	ArtworkURL600     string `json:"artworkUrl600,omitempty"`
	CollectionViewURL string `json:"collectionViewUrl,omitempty"`
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeText lowercases value and collapses every run of
// non-alphanumeric characters into a single space.
func NormalizeText(value string) string {
	return strings.TrimSpace(nonAlphanumeric.ReplaceAllString(strings.ToLower(value), " "))
}

// Key derives the canonical identity for a (title, artist) pair. Seeds that
// differ only in case, punctuation or whitespace share a key.
func Key(title, artist string) string {
	return NormalizeText(title) + "|" + NormalizeText(artist)
}

// Key returns the seed's canonical identity.
func (s Seed) Key() string {
	return Key(s.Title, s.Artist)
}

// Dedupe removes seeds whose key already appeared earlier in the list. The
// first occurrence wins.
func Dedupe(seeds []Seed) []Seed {
	seen := make(map[string]struct{}, len(seeds))
	out := make([]Seed, 0, len(seeds))
	for _, seed := range seeds {
		key := seed.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, seed)
	}
	return out
}
