package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/musicmentor/music-mentor-api/internal/app/services/catalog"
	"github.com/musicmentor/music-mentor-api/internal/app/services/catalog/mocks"
	"github.com/musicmentor/music-mentor-api/internal/infra/repository/cache/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func newService(client catalog.SearchClient) catalog.Service {
	return catalog.New(
		otel.Tracer("test"),
		client,
		memory.NewCache(time.Hour),
		memory.NewCache(time.Hour),
	)
}

func TestCatalogService_FindRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input short-circuits without a network call", func(t *testing.T) {
		client := &mocks.MockSearchClient{}
		s := newService(client)

		release, err := s.FindRelease(ctx, "  ", "Miles Davis")
		require.NoError(t, err)
		assert.Nil(t, release)

		release, err = s.FindRelease(ctx, "Kind of Blue", "")
		require.NoError(t, err)
		assert.Nil(t, release)

		client.AssertNotCalled(t, "Search")
	})

	t.Run("exact match wins and carries catalog metadata", func(t *testing.T) {
		client := &mocks.MockSearchClient{}
		client.On("Search", mock.Anything, "Kind of Blue Miles Davis", catalog.EntityAlbum, 5).
			Return([]catalog.SearchResult{
				{
					CollectionID:   17,
					CollectionName: "Kind of Blue (Legacy Edition)",
					ArtistName:     "Miles Davis",
				},
				{
					CollectionID:      42,
					CollectionName:    "Kind of Blue",
					ArtistName:        "Miles Davis",
					ArtworkURL100:     "https://img.example/100x100bb.jpg",
					ArtworkURL600:     "https://img.example/600x600bb.jpg",
					CollectionViewURL: "https://music.example/album/42",
				},
			}, nil).
			Once()
		s := newService(client)

		release, err := s.FindRelease(ctx, "Kind of Blue", "Miles Davis")
		require.NoError(t, err)
		require.NotNil(t, release)
		assert.Equal(t, int64(42), release.CollectionID)
		assert.Equal(t, "Kind of Blue", release.Title)
		assert.Equal(t, "Miles Davis", release.Artist)
		assert.Equal(t, "https://music.example/album/42", release.CollectionViewURL)
	})

	t.Run("simplified title match resolves remaster suffixes", func(t *testing.T) {
		client := &mocks.MockSearchClient{}
		client.On("Search", mock.Anything, mock.Anything, catalog.EntityAlbum, 5).
			Return([]catalog.SearchResult{
				{CollectionName: "The Magic City (Remastered 2017)", ArtistName: "Sun Ra"},
			}, nil).
			Once()
		s := newService(client)

		release, err := s.FindRelease(ctx, "The Magic City", "Sun Ra")
		require.NoError(t, err)
		require.NotNil(t, release)
		assert.Equal(t, "The Magic City (Remastered 2017)", release.Title)
	})

	t.Run("candidate with unrelated artist is eliminated", func(t *testing.T) {
		client := &mocks.MockSearchClient{}
		client.On("Search", mock.Anything, mock.Anything, catalog.EntityAlbum, 5).
			Return([]catalog.SearchResult{
				{CollectionName: "Kind of Blue", ArtistName: "A Tribute Band"},
			}, nil).
			Once()
		s := newService(client)

		release, err := s.FindRelease(ctx, "Kind of Blue", "Miles Davis")
		require.NoError(t, err)
		assert.Nil(t, release)
	})

	t.Run("first-seen order breaks score ties", func(t *testing.T) {
		client := &mocks.MockSearchClient{}
		client.On("Search", mock.Anything, mock.Anything, catalog.EntityAlbum, 5).
			Return([]catalog.SearchResult{
				{CollectionID: 1, CollectionName: "Fire Music", ArtistName: "Archie Shepp"},
				{CollectionID: 2, CollectionName: "Fire Music", ArtistName: "Archie Shepp"},
			}, nil).
			Once()
		s := newService(client)

		release, err := s.FindRelease(ctx, "Fire Music", "Archie Shepp")
		require.NoError(t, err)
		require.NotNil(t, release)
		assert.Equal(t, int64(1), release.CollectionID)
	})

	t.Run("cache hit avoids a second network call", func(t *testing.T) {
		client := &mocks.MockSearchClient{}
		client.On("Search", mock.Anything, mock.Anything, catalog.EntityAlbum, 5).
			Return([]catalog.SearchResult{
				{CollectionName: "Blue Train", ArtistName: "John Coltrane"},
			}, nil).
			Once()
		s := newService(client)

		first, err := s.FindRelease(ctx, "Blue Train", "John Coltrane")
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := s.FindRelease(ctx, "Blue Train", "John Coltrane")
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, first, second)

		client.AssertNumberOfCalls(t, "Search", 1)
	})

	t.Run("negative result is cached", func(t *testing.T) {
		client := &mocks.MockSearchClient{}
		client.On("Search", mock.Anything, mock.Anything, catalog.EntityAlbum, 5).
			Return([]catalog.SearchResult{}, nil).
			Once()
		s := newService(client)

		release, err := s.FindRelease(ctx, "Imaginary Album", "Nobody")
		require.NoError(t, err)
		assert.Nil(t, release)

		release, err = s.FindRelease(ctx, "Imaginary Album", "Nobody")
		require.NoError(t, err)
		assert.Nil(t, release)

		client.AssertNumberOfCalls(t, "Search", 1)
	})

	t.Run("negative cache entry expires after TTL", func(t *testing.T) {
		now := time.Now()
		clock := func() time.Time { return now }
		client := &mocks.MockSearchClient{}
		client.On("Search", mock.Anything, mock.Anything, catalog.EntityAlbum, 5).
			Return([]catalog.SearchResult{}, nil).
			Twice()
		s := catalog.New(
			otel.Tracer("test"),
			client,
			memory.NewCacheWithClock(time.Hour, clock),
			memory.NewCacheWithClock(time.Hour, clock),
		)

		_, err := s.FindRelease(ctx, "Imaginary Album", "Nobody")
		require.NoError(t, err)

		now = now.Add(6*time.Hour + time.Minute)

		_, err = s.FindRelease(ctx, "Imaginary Album", "Nobody")
		require.NoError(t, err)

		client.AssertNumberOfCalls(t, "Search", 2)
	})

	t.Run("search failure degrades to no match and is cached", func(t *testing.T) {
		client := &mocks.MockSearchClient{}
		client.On("Search", mock.Anything, mock.Anything, catalog.EntityAlbum, 5).
			Return(nil, errors.New("upstream down")).
			Times(3)
		s := newService(client)

		release, err := s.FindRelease(ctx, "Kind of Blue", "Miles Davis")
		require.NoError(t, err)
		assert.Nil(t, release)

		release, err = s.FindRelease(ctx, "Kind of Blue", "Miles Davis")
		require.NoError(t, err)
		assert.Nil(t, release)

		// Three attempts for the first lookup, none for the cached second.
		client.AssertNumberOfCalls(t, "Search", 3)
	})
}
