package server

import (
	"github.com/gin-gonic/gin"
)

type RecommendHandler interface {
	Recommend(ctx *gin.Context)
}

type LookupHandler interface {
	SearchAlbums(ctx *gin.Context)
	AlbumDetails(ctx *gin.Context)
}
