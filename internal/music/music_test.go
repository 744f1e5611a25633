package music_test

import (
	"testing"

	"github.com/musicmentor/music-mentor-api/internal/music"
	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	t.Run("case and whitespace insensitive", func(t *testing.T) {
		assert.Equal(t,
			music.Key("Kind of Blue", "Miles Davis"),
			music.Key("  KIND  OF blue ", "miles davis"),
		)
	})

	t.Run("punctuation insensitive", func(t *testing.T) {
		assert.Equal(t,
			music.Key("What's Going On", "Marvin Gaye"),
			music.Key("whats going on", "marvin-gaye"),
		)
	})

	t.Run("title and artist are separated", func(t *testing.T) {
		assert.NotEqual(t,
			music.Key("blue train", "coltrane"),
			music.Key("blue", "train coltrane"),
		)
	})
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kind of Blue", "kind of blue"},
		{"  KIND  OF blue ", "kind of blue"},
		{"A Love Supreme!!!", "a love supreme"},
		{"...", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, music.NormalizeText(tt.in))
	}
}

func TestDedupe(t *testing.T) {
	seeds := []music.Seed{
		{Title: "Fire Music", Artist: "Archie Shepp"},
		{Title: "FIRE MUSIC", Artist: "archie shepp"},
		{Title: "Space Is the Place", Artist: "Sun Ra"},
		{Title: "Fire Music!", Artist: "Archie Shepp"},
	}

	deduped := music.Dedupe(seeds)
	assert.Len(t, deduped, 2)
	assert.Equal(t, "Fire Music", deduped[0].Title)
	assert.Equal(t, "Space Is the Place", deduped[1].Title)

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, deduped, music.Dedupe(deduped))
	})
}
