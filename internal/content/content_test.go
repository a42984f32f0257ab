package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasFullPage(t *testing.T) {
	s := Default()

	assert.Equal(t, "Ligon", s.Name)
	assert.Equal(t, "Welcome to Ligon", s.Hero.Title)
	assert.Len(t, s.Features.Cards, 6)
	require.Len(t, s.Examples.Items, 4)
	assert.Equal(t, "2D Game Setup", s.Examples.Items[0].Title)
	assert.True(t, strings.HasPrefix(s.Examples.Items[1].Code, `ligon.initialize("3d")`))
	assert.Len(t, s.Download.Steps, 3)
	assert.Equal(t, []string{"git clone https://github.com/BallistXReal/ligon.git", "cd ligon"}, s.Download.Steps[0].Commands)
	require.Len(t, s.Footer.Columns, 3)
	assert.Equal(t, "Resources", s.Footer.Columns[0].Title)
	assert.NotEmpty(t, s.Mascot)
}

func TestExample_Filename(t *testing.T) {
	cases := map[string]string{
		"2D Game Setup": "2d_game_setup.ligon",
		"3D Scene":      "3d_scene.ligon",
		"UI  System":    "ui_system.ligon",
		"Loop":          "loop.ligon",
	}
	for title, want := range cases {
		assert.Equal(t, want, Example{Title: title}.Filename())
	}
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.toml")
	doc := `
[hero]
title = "Hello Ligon"

[[examples.items]]
title = "Hello"
code = "print(\"hi\"):"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello Ligon", s.Hero.Title)
	assert.Equal(t, Default().Hero.Tagline, s.Hero.Tagline)
	require.Len(t, s.Examples.Items, 1)
	assert.Equal(t, "hello.ligon", s.Examples.Items[0].Filename())
	assert.Equal(t, `print("hi"):`, s.Examples.Items[0].Code)
	assert.Equal(t, Default().Features.Cards, s.Features.Cards)
}

func TestLoad_ListsReplaceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.toml")
	doc := `
[[examples.items]]
title = "Only Title"

[[features.cards]]
title = "X"

[[footer.columns]]
title = "Community"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	require.Len(t, s.Examples.Items, 1)
	assert.Equal(t, Example{Title: "Only Title"}, s.Examples.Items[0])

	require.Len(t, s.Features.Cards, 1)
	assert.Equal(t, Card{Title: "X"}, s.Features.Cards[0])
	assert.Equal(t, Default().Features.Title, s.Features.Title)

	require.Len(t, s.Footer.Columns, 1)
	assert.Equal(t, FooterColumn{Title: "Community"}, s.Footer.Columns[0])

	assert.Equal(t, Default().Download.Cards, s.Download.Cards)
	assert.Equal(t, Default().Download.Steps, s.Download.Steps)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	var s Site
	err = Parse(`[hero]
titel = "typo"`, &s)
	assert.ErrorContains(t, err, "hero.titel")

	s = Site{}
	err = Parse(`name = "x"`, &s)
	assert.ErrorIs(t, err, ErrNoExamples)
}
