// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package textparse extracts clean scalar values from messy spreadsheet text.

Cells arriving from the published catalog sheet are free-form: a "poster"
column may hold a bare URL, an =IMAGE(...) or =HYPERLINK(...) formula, a
Google Drive viewer link, or prose. Year and duration columns mix digits with
words ("lansat in 2019", "23,5 min"). Every function in this package is pure,
takes a raw string, and reports absence instead of returning an error — a cell
that cannot be parsed is simply an empty cell.

All spreadsheet-formula awareness in the codebase lives here; no other package
ever sees raw formula syntax.
*/
package textparse

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Formula-specific patterns are tried before the generic URL scan so that
	// =IMAGE("url", "fit") yields the wrapped URL, not the formula text.
	imageQuotedRe       = regexp.MustCompile(`(?i)IMAGE\(\s*["']([^"']+)["']\s*(?:,.*)?\)`)
	imageUnquotedRe     = regexp.MustCompile(`(?i)IMAGE\(\s*(https?:[^\s,)]+)\s*(?:,.*)?\)`)
	hyperlinkQuotedRe   = regexp.MustCompile(`(?i)HYPERLINK\(\s*["']([^"']+)["']\s*,`)
	hyperlinkUnquotedRe = regexp.MustCompile(`(?i)HYPERLINK\(\s*(https?:[^\s,)]+)\s*,`)
	genericURLRe        = regexp.MustCompile(`(?i)https?://[^\s)'"<>]+`)

	yearRe   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	numberRe = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

	imageExtRe = regexp.MustCompile(`(?i)(\.png|\.jpe?g|\.webp|\.gif)(\?.*)?$`)

	driveFileRe = regexp.MustCompile(`/d/([A-Za-z0-9_-]+)`)

	youtubeIDRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)youtu\.be/([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`(?i)[?&]v=([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`(?i)/embed/([A-Za-z0-9_-]{11})`),
	}
)

// FirstURL returns the first URL found in a raw cell value.
//
// Formula wrappers (IMAGE, HYPERLINK — quoted or unquoted argument) win over
// a generic scan so the intended link is preferred over incidental ones in
// trailing formula arguments.
func FirstURL(raw string) (string, bool) {
	str := strings.TrimSpace(raw)
	if str == "" {
		return "", false
	}

	for _, re := range []*regexp.Regexp{imageQuotedRe, imageUnquotedRe, hyperlinkQuotedRe, hyperlinkUnquotedRe} {
		if m := re.FindStringSubmatch(str); m != nil && m[1] != "" {
			return m[1], true
		}
	}

	if m := genericURLRe.FindString(str); m != "" {
		return m, true
	}

	return "", false
}

// NormalizeImageURL rewrites Google Drive viewer/share links into the direct
// thumbnail form that can be used in an <img> tag. Unrecognized hosts pass
// through unchanged, as do values that do not parse as URLs.
func NormalizeImageURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL
	}

	if !strings.Contains(parsed.Host, "drive.google.com") {
		return rawURL
	}

	id := ""
	if m := driveFileRe.FindStringSubmatch(parsed.Path); m != nil {
		id = m[1]
	} else if qid := parsed.Query().Get("id"); qid != "" {
		id = qid
	}

	if id == "" {
		return rawURL
	}

	return "https://drive.google.com/thumbnail?id=" + id + "&sz=w1000"
}

// ParseYear extracts the first plausible release year (19xx or 20xx) from
// free text. The first match wins: "lansat in 2019, reeditat 2021" → 2019.
func ParseYear(raw string) (int, bool) {
	m := yearRe.FindString(raw)
	if m == "" {
		return 0, false
	}

	year, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}

	return year, true
}

// ParseNumber extracts the first numeric token from free text, accepting both
// "." and "," as decimal separator: "23,5 min" → 23.5.
func ParseNumber(raw string) (float64, bool) {
	m := numberRe.FindString(raw)
	if m == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// Sanitize strips leading/trailing whitespace and the wrapping quote or
// backtick characters that spreadsheet formula syntax leaves behind.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "`")
	s = strings.Trim(s, `"`)
	s = strings.Trim(s, "'")
	return strings.TrimSpace(s)
}

// YouTubeID extracts the 11-character video id from the common YouTube URL
// shapes: youtu.be/<id>, watch?v=<id>, /embed/<id>.
func YouTubeID(raw string) (string, bool) {
	str := strings.TrimSpace(raw)
	for _, re := range youtubeIDRes {
		if m := re.FindStringSubmatch(str); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// YouTubeThumbnail builds the deterministic hqdefault thumbnail URL for a
// YouTube video link. Non-YouTube links report absence.
func YouTubeThumbnail(raw string) (string, bool) {
	id, ok := YouTubeID(raw)
	if !ok {
		return "", false
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg", true
}

// LooksLikeImageURL reports whether a URL plausibly points at an image:
// a known raster extension or a Google-hosted media link.
func LooksLikeImageURL(rawURL string) bool {
	return imageExtRe.MatchString(rawURL) ||
		strings.Contains(rawURL, "googleusercontent") ||
		strings.Contains(rawURL, "drive.google.com")
}

// IsAbsoluteHTTPURL reports whether the value resolves to an absolute
// http(s) URL. Relative paths and garbage cell contents fail the check.
func IsAbsoluteHTTPURL(rawURL string) bool {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
