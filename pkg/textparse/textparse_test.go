// Copyright (c) 2026 OWH Studio. All rights reserved.

package textparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owhstudio/owh-api/pkg/textparse"
)

func TestFirstURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{"image_formula_quoted", `=IMAGE("https://x.com/a.jpg","fit")`, "https://x.com/a.jpg", true},
		{"image_formula_single_quoted", `IMAGE('https://x.com/a.jpg', 2)`, "https://x.com/a.jpg", true},
		{"image_formula_unquoted", `=IMAGE(https://x.com/a.jpg)`, "https://x.com/a.jpg", true},
		{"hyperlink_quoted", `=HYPERLINK("https://owh.md/film", "vezi")`, "https://owh.md/film", true},
		{"hyperlink_unquoted", `=HYPERLINK(https://owh.md/film, vezi)`, "https://owh.md/film", true},
		{"bare_url", "https://cdn.owh.md/poster.png", "https://cdn.owh.md/poster.png", true},
		{"url_inside_prose", "poster: https://cdn.owh.md/p.jpg (final)", "https://cdn.owh.md/p.jpg", true},
		{"first_of_many", "https://a.md/1 https://b.md/2", "https://a.md/1", true},
		{"lowercase_formula", `image("https://x.com/b.webp")`, "https://x.com/b.webp", true},
		{"no_url", "no url here", "", false},
		{"empty", "", "", false},
		{"whitespace", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := textparse.FirstURL(tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"drive_file_path",
			"https://drive.google.com/file/d/1AbC_dEf-123/view?usp=sharing",
			"https://drive.google.com/thumbnail?id=1AbC_dEf-123&sz=w1000",
		},
		{
			"drive_uc_query_id",
			"https://drive.google.com/uc?export=view&id=XyZ_987-abc",
			"https://drive.google.com/thumbnail?id=XyZ_987-abc&sz=w1000",
		},
		{
			"drive_without_id",
			"https://drive.google.com/drive/my-drive",
			"https://drive.google.com/drive/my-drive",
		},
		{
			"other_host_passthrough",
			"https://cdn.owh.md/poster.jpg",
			"https://cdn.owh.md/poster.jpg",
		},
		{
			"relative_passthrough",
			"/produse/camere/sony-fx3.jpg",
			"/produse/camere/sony-fx3.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textparse.NormalizeImageURL(tt.input))
		})
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		found bool
	}{
		{"first_match_wins", "lansat in 2019, reeditat 2021", 2019, true},
		{"bare_year", "2020", 2020, true},
		{"nineteenth_century_style", "premiera 1998", 1998, true},
		{"no_year", "fara an", 0, false},
		{"implausible_century", "anul 1402", 0, false},
		{"digits_not_a_year", "123456", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := textparse.ParseYear(tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		found bool
	}{
		{"comma_decimal", "23,5 min", 23.5, true},
		{"dot_decimal", "12.75", 12.75, true},
		{"integer", "90 minute", 90, true},
		{"leading_prose", "cca 45 min", 45, true},
		{"no_number", "durata necunoscuta", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := textparse.ParseNumber(tt.input)
			assert.Equal(t, tt.found, found)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"backticks", "`https://owh.md`", "https://owh.md"},
		{"double_quotes", `"titlu"`, "titlu"},
		{"single_quotes", "'titlu'", "titlu"},
		{"whitespace_and_quotes", `  "titlu"  `, "titlu"},
		{"plain", "titlu", "titlu"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textparse.Sanitize(tt.input))
		})
	}
}

func TestYouTubeThumbnail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{"short_link", "https://youtu.be/dQw4w9WgXcQ", "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", true},
		{"watch_link", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", true},
		{"embed_link", "https://www.youtube.com/embed/dQw4w9WgXcQ", "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", true},
		{"schemeless_short_link", "youtu.be/dQw4w9WgXcQ", "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", true},
		{"vimeo", "https://vimeo.com/123456", "", false},
		{"not_a_url", "trailer pe dvd", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := textparse.YouTubeThumbnail(tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYouTubeID(t *testing.T) {
	id, ok := textparse.YouTubeID("https://youtube.com/watch?list=PL1&v=dQw4w9WgXcQ")
	require.True(t, ok)
	assert.Equal(t, "dQw4w9WgXcQ", id)
}

func TestLooksLikeImageURL(t *testing.T) {
	assert.True(t, textparse.LooksLikeImageURL("https://cdn.owh.md/a.jpg"))
	assert.True(t, textparse.LooksLikeImageURL("https://cdn.owh.md/a.jpeg?x=1"))
	assert.True(t, textparse.LooksLikeImageURL("https://drive.google.com/thumbnail?id=1"))
	assert.True(t, textparse.LooksLikeImageURL("https://lh3.googleusercontent.com/abc"))
	assert.False(t, textparse.LooksLikeImageURL("https://owh.md/despre"))
}

func TestIsAbsoluteHTTPURL(t *testing.T) {
	assert.True(t, textparse.IsAbsoluteHTTPURL("https://owh.md/a.jpg"))
	assert.True(t, textparse.IsAbsoluteHTTPURL("http://owh.md"))
	assert.False(t, textparse.IsAbsoluteHTTPURL("/relativ/poster.jpg"))
	assert.False(t, textparse.IsAbsoluteHTTPURL("ftp://owh.md/a.jpg"))
	assert.False(t, textparse.IsAbsoluteHTTPURL("nu e url"))
}
