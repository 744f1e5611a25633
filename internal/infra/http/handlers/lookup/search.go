package lookup

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/musicmentor/music-mentor-api/internal/app/services/catalog"
)

const defaultSearchLimit = 6

func (h *LookupHandler) SearchAlbums(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "LookupHandler.SearchAlbums")
	defer span.End()

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	hits, err := h.catalogService.SearchAlbums(ctx, query, limit)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"albums": hits})
}
