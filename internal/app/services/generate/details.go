package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/musicmentor/music-mentor-api/internal/retry"
	"github.com/sirupsen/logrus"
)

// AlbumDetail is the model-written companion copy for one album.
type AlbumDetail struct {
	Title       string      `json:"title"`
	Artist      string      `json:"artist"`
	ArtistBio   string      `json:"artistBio,omitempty"`
	Summary     string      `json:"summary,omitempty"`
	ReleaseYear int         `json:"releaseYear,omitempty"`
	Genres      []string    `json:"genres,omitempty"`
	Personnel   []Personnel `json:"personnel,omitempty"`
}

type Personnel struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// AlbumDetails asks the model for bios, summaries and credits for the
// given seeds and keys them by seed key. An unparseable response degrades
// to an empty map: details are flavor, not load-bearing.
func (s Service) AlbumDetails(ctx context.Context, seeds []music.Seed) (map[string]AlbumDetail, error) {
	ctx, span := s.tracer.Start(ctx, "GenerateService.AlbumDetails")
	defer span.End()

	details := make(map[string]AlbumDetail, len(seeds))
	if len(seeds) == 0 {
		return details, nil
	}

	instruction := buildHistorianPrompt(seeds)

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

	var items []map[string]any
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &items); err != nil {
		logrus.WithError(err).Warn("Album details response unparseable, returning empty details")
		return details, nil
	}

	for _, item := range items {
		detail, ok := detailFromItem(item)
		if !ok {
			continue
		}
		details[music.Key(detail.Title, detail.Artist)] = detail
	}
	return details, nil
}

func buildHistorianPrompt(seeds []music.Seed) string {
	var b strings.Builder

	b.WriteString("You are a music historian and critic. Generate album details for the albums listed below.\n\nAlbums:\n")
	for _, seed := range seeds {
		fmt.Fprintf(&b, "- %q by %s\n", seed.Title, seed.Artist)
	}

	b.WriteString(`
Return ONLY a valid JSON array. Each item must have this exact structure:
{
  "title": "Album Title",
  "artist": "Artist Name",
  "artistBio": "3-4 sentence bio",
  "summary": "2-3 sentence album summary",
  "releaseYear": 2020,
  "genres": ["Genre 1", "Genre 2"],
  "personnel": [
    {
      "name": "Person Name",
      "role": "Instrument/Role"
    }
  ]
}

CRITICAL REQUIREMENTS:
- Use the exact album titles and artist names provided
- Return only JSON, no markdown or commentary
- Do not include any IDs or extra fields`)

	return b.String()
}

// detailFromItem extracts a detail entry field by field, dropping whatever
// the model got structurally wrong instead of rejecting the whole batch.
func detailFromItem(item map[string]any) (AlbumDetail, bool) {
	title := cleanString(item["title"])
	artist := cleanString(item["artist"])
	if title == "" || artist == "" {
		return AlbumDetail{}, false
	}

	detail := AlbumDetail{
		Title:     title,
		Artist:    artist,
		ArtistBio: cleanString(item["artistBio"]),
		Summary:   cleanString(item["summary"]),
	}

	if year, ok := item["releaseYear"].(float64); ok {
		detail.ReleaseYear = int(year)
	}

	if rawGenres, ok := item["genres"].([]any); ok {
		for _, g := range rawGenres {
			if genre := cleanString(g); genre != "" {
				detail.Genres = append(detail.Genres, genre)
			}
		}
	}

	if rawPersonnel, ok := item["personnel"].([]any); ok {
		for _, p := range rawPersonnel {
			member, ok := p.(map[string]any)
			if !ok {
				continue
			}
			name := cleanString(member["name"])
			role := cleanString(member["role"])
			if name == "" || role == "" {
				continue
			}
			detail.Personnel = append(detail.Personnel, Personnel{Name: name, Role: role})
		}
	}

	return detail, true
}

func cleanString(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}
