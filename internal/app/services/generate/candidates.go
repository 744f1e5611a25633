package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/musicmentor/music-mentor-api/internal/retry"
)

// At most this many library albums are quoted back to the model; beyond
// that the prompt grows without improving the recommendations.
const libraryContextLimit = 20

// Candidates asks the model for count albums matching the prompt that
// avoid everything in exclude. The list is filtered for blank entries but
// not deduplicated; callers dedupe by seed key.
func (s Service) Candidates(ctx context.Context, prompt string, library []music.LibraryAlbum, exclude []music.Seed, count int) ([]music.Seed, error) {
	ctx, span := s.tracer.Start(ctx, "GenerateService.Candidates")
	defer span.End()

	instruction := buildCuratorPrompt(prompt, library, exclude, count)

	var raw string
	err := retry.Do(ctx, func() error {
		var genErr error
		raw, genErr = s.model.GenerateText(ctx, instruction)
		return genErr
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %s", ErrModelFailure, err.Error())
	}

	seeds, err := parseSeeds(raw)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return seeds, nil
}

func buildCuratorPrompt(prompt string, library []music.LibraryAlbum, exclude []music.Seed, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert music curator. Recommend exactly %d NEW, UNIQUE albums based on the user's request and listening history. These must be different from what they've already heard.\n\n", count)

	if len(library) > 0 {
		fmt.Fprintf(&b, "User's listening library (%d albums):\n", len(library))
		for i, album := range library {
			if i >= libraryContextLimit {
				break
			}
			fmt.Fprintf(&b, "- %q by %s", album.Title, album.Artist)
			if album.Rating > 0 {
				fmt.Fprintf(&b, " (rated %d/5)", album.Rating)
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("User has no listening history yet (first recommendations)\n")
	}

	if len(exclude) > 0 {
		b.WriteString("\nAvoid these albums already seen or rejected:\n")
		for _, seed := range exclude {
			fmt.Fprintf(&b, "- %q by %s\n", seed.Title, seed.Artist)
		}
	}

	fmt.Fprintf(&b, "\nUser's request: %q\n\n", prompt)

	fmt.Fprintf(&b, `Return ONLY a valid JSON array with exactly %d items. Each item MUST have this structure:
{
  "title": "Album Title",
  "artist": "Artist Name"
}

CRITICAL REQUIREMENTS:
- Return ONLY the JSON array, no markdown, no explanations
- Exactly %d albums that ACTUALLY EXIST (real releases)
- Each album must be NEW (not in the user's library or exclusion list)
- Each album must be UNIQUE (no duplicates)
- Use the EXACT album title as it appears on the release
- Do not include any IDs, URLs, summaries, or extra fields`, count, count)

	return b.String()
}

var (
	jsonFenceOpen   = regexp.MustCompile("```json\n?")
	fenceAnywhere   = regexp.MustCompile("```\n?")
	fenceClose      = regexp.MustCompile("\n?```")
	singleQuotedKey = regexp.MustCompile(`'([^'"]*?)'\s*:`)
	doubleQuotedKey = regexp.MustCompile(`"([^'"]*?)"\s*:`)
	trailingComma   = regexp.MustCompile(`,\s*([}\]])`)
)

// cleanModelJSON strips the artifacts models wrap around JSON: code
// fences, stray quoting on object keys, trailing commas before a closing
// bracket. The key rewrite only touches the quote-colon pattern; quotes
// inside values are left alone.
func cleanModelJSON(content string) string {
	cleaned := strings.TrimSpace(content)

	if strings.Contains(cleaned, "```json") {
		cleaned = jsonFenceOpen.ReplaceAllString(cleaned, "")
		cleaned = fenceClose.ReplaceAllString(cleaned, "")
	} else if strings.Contains(cleaned, "```") {
		cleaned = fenceAnywhere.ReplaceAllString(cleaned, "")
		cleaned = fenceClose.ReplaceAllString(cleaned, "")
	}

	cleaned = singleQuotedKey.ReplaceAllString(cleaned, `"$1":`)
	cleaned = doubleQuotedKey.ReplaceAllString(cleaned, `"$1":`)
	cleaned = trailingComma.ReplaceAllString(cleaned, "$1")

	return cleaned
}

func parseSeeds(content string) ([]music.Seed, error) {
	cleaned := cleanModelJSON(content)

	var items []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, err.Error())
	}

	seeds := make([]music.Seed, 0, len(items))
	for _, item := range items {
		title, _ := item["title"].(string)
		artist, _ := item["artist"].(string)
		title = strings.TrimSpace(title)
		artist = strings.TrimSpace(artist)
		if title == "" || artist == "" {
			continue
		}
		seeds = append(seeds, music.Seed{Title: title, Artist: artist})
	}
	return seeds, nil
}
