package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Церква «Нове Життя»", site.Name)
	assert.Len(t, site.Hero.Slides, 3)
	assert.Len(t, site.Events.Items, 4)
	assert.Len(t, site.News.Items, 5)
	assert.NotEmpty(t, site.Typist.Words)
	assert.Len(t, site.Nav, 6)
	assert.Len(t, site.Nav[2].Children, 4)
	assert.Equal(t, "Найближчі події", site.Events.Title)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	site, err := Load("")
	require.NoError(t, err)
	assert.Len(t, site.Hero.Slides, 3)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	data := `
events:
  title: Події
  items:
    - id: a
      title: Перша
news:
  items: []
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Події", site.Events.Title)
	assert.Len(t, site.Events.Items, 1)
	assert.Empty(t, site.News.Items)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read content file")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		reasons []string
	}{
		{
			name:    "missing id",
			data:    "events:\n  items:\n    - title: x\n",
			reasons: []string{"events[0]: missing id"},
		},
		{
			name:    "duplicate id",
			data:    "news:\n  items:\n    - {id: a, title: x}\n    - {id: a, title: y}\n",
			reasons: []string{`news[1]: duplicate id "a"`},
		},
		{
			name:    "missing title",
			data:    "hero:\n  slides:\n    - id: s\n",
			reasons: []string{"hero[0]: missing title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
			for _, r := range tt.reasons {
				assert.Contains(t, err.Error(), r)
			}
		})
	}
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("events: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse content")
}

func TestCarousel(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	heading, cards, err := site.Carousel(SectionHero)
	require.NoError(t, err)
	assert.Empty(t, heading.Title)
	require.Len(t, cards, 3)
	assert.Len(t, cards[0].Actions, 2)
	assert.Len(t, cards[1].Actions, 1)

	heading, cards, err = site.Carousel(SectionEvents)
	require.NoError(t, err)
	assert.Equal(t, "Не пропустіть", heading.PreTitle)
	assert.Equal(t, "Подія", cards[0].Tag)
	assert.Equal(t, "/events/easter-concert", cards[0].Actions[0].Href)

	_, cards, err = site.Carousel(SectionNews)
	require.NoError(t, err)
	assert.Equal(t, "Місія", cards[0].Tag)
	assert.Equal(t, []string{"Благодійність"}, cards[2].Labels)

	_, _, err = site.Carousel("testimonials")
	assert.Error(t, err)
}

func TestSections(t *testing.T) {
	assert.Equal(t, []string{"hero", "events", "news"}, Sections())
}
