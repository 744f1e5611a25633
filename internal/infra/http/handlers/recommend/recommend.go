package recommend

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/musicmentor/music-mentor-api/internal/app/services/generate"
	apprecommend "github.com/musicmentor/music-mentor-api/internal/app/services/recommend"
	"github.com/musicmentor/music-mentor-api/internal/music"
)

const (
	minCount     = 3
	maxCount     = 10
	defaultCount = 5
)

type recommendRequest struct {
	Prompt        string               `json:"prompt"`
	LibraryAlbums []music.LibraryAlbum `json:"libraryAlbums"`
	ExcludeAlbums []music.Seed         `json:"excludeAlbums"`
	DesiredCount  int                  `json:"desiredCount"`
}

func (h *RecommendHandler) Recommend(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "RecommendHandler.Recommend")
	defer span.End()

	var body recommendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(body.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	seeds, err := h.recommendService.Recommend(ctx, apprecommend.Request{
		Identity:     c.GetHeader("X-User-ID"),
		Prompt:       body.Prompt,
		Library:      body.LibraryAlbums,
		Exclude:      body.ExcludeAlbums,
		DesiredCount: clampCount(body.DesiredCount),
	})
	if err != nil {
		switch {
		case errors.Is(err, generate.ErrInvalidResponse), errors.Is(err, generate.ErrModelFailure):
			c.JSON(http.StatusBadGateway, gin.H{"error": "album generation failed"})
		case errors.Is(err, apprecommend.ErrNoAlbumsVerified):
			c.JSON(http.StatusNotFound, gin.H{"error": "no albums could be verified"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"albums": seeds})
}

// clampCount keeps the requested list size inside sane bounds so a caller
// cannot ask the model for a hundred albums at once.
func clampCount(count int) int {
	if count == 0 {
		return defaultCount
	}
	if count < minCount {
		return minCount
	}
	if count > maxCount {
		return maxCount
	}
	return count
}
