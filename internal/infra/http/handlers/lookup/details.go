package lookup

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/musicmentor/music-mentor-api/internal/app/services/generate"
	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/sirupsen/logrus"
)

type detailsRequest struct {
	Albums []music.Seed `json:"albums"`
}

type albumResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Artist        string               `json:"artist"`
	CoverURL      string               `json:"coverUrl,omitempty"`
	PreviewURL    string               `json:"previewUrl,omitempty"`
	AppleMusicURL string               `json:"appleMusicUrl,omitempty"`
	ArtistBio     string               `json:"artistBio,omitempty"`
	Summary       string               `json:"summary,omitempty"`
	ReleaseYear   int                  `json:"releaseYear,omitempty"`
	Genres        []string             `json:"genres,omitempty"`
	Personnel     []generate.Personnel `json:"personnel,omitempty"`
}

// AlbumDetails enriches a list of verified seeds with model-written notes
// and catalog artwork, preview and store links. Enrichment is best-effort:
// a failed lookup leaves its field empty instead of failing the request.
func (h *LookupHandler) AlbumDetails(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "LookupHandler.AlbumDetails")
	defer span.End()

	var body detailsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(body.Albums) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "albums is required"})
		return
	}

	seeds := music.Dedupe(body.Albums)

	details, err := h.detailsService.AlbumDetails(ctx, seeds)
	if err != nil {
		logrus.WithError(err).Warn("Album details generation failed, returning catalog data only")
		details = map[string]generate.AlbumDetail{}
	}

	albums := make([]albumResponse, 0, len(seeds))
	for _, seed := range seeds {
		album := albumResponse{
			ID:     albumID(seed),
			Title:  seed.Title,
			Artist: seed.Artist,
		}

		if detail, ok := details[seed.Key()]; ok {
			album.ArtistBio = detail.ArtistBio
			album.Summary = detail.Summary
			album.ReleaseYear = detail.ReleaseYear
			album.Genres = detail.Genres
			album.Personnel = detail.Personnel
		}

		if coverURL, err := h.catalogService.CoverURL(ctx, seed.Title, seed.Artist); err == nil {
			album.CoverURL = coverURL
		}
		if previewURL, err := h.catalogService.PreviewURL(ctx, seed.Title, seed.Artist); err == nil {
			album.PreviewURL = previewURL
		}
		if release, err := h.catalogService.FindRelease(ctx, seed.Title, seed.Artist); err == nil && release != nil {
			album.AppleMusicURL = release.CollectionViewURL
		}

		albums = append(albums, album)
	}

	c.JSON(http.StatusOK, gin.H{"albums": albums})
}

var slugRunSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// albumID builds a stable URL-safe identifier for a seed. Seeds whose
// title and artist are entirely non-alphanumeric fall back to a short
// hash so the ID is never empty.
func albumID(seed music.Seed) string {
	slug := strings.Trim(slugRunSeparators.ReplaceAllString(strings.ToLower(seed.Title+" "+seed.Artist), "-"), "-")
	if slug != "" {
		return slug
	}

	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(seed.Key()))
	return fmt.Sprintf("album-%08x", hasher.Sum32())
}
