// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package category folds source-specific category spellings onto the canonical
vocabulary used across the site.

Film categories arrive in whatever form an editor typed into a spreadsheet tab
or the CMS taxonomy: "Documentar", "DOCUMENTARE", "documentary", "Ficțiune".
All of them must resolve to one canonical id before a value is exposed to any
consumer. Unknown values pass through lowercased and unaccented so that a new
category added at the source renders without a code change.
*/
package category

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical film category identifiers.
const (
	FilmDocumentare = "documentare"
	FilmFictiune    = "fictiune"
	FilmPrezentare  = "prezentare"
)

// Production categories form a fixed enumerated set.
const (
	ProductionPublicitate    = "publicitate"
	ProductionSpoturiSociale = "spoturi_sociale"
	ProductionInstitutionale = "filme_institutionale"
	ProductionAnimatii       = "animatii"
	ProductionEmisiuni       = "emisiuni"
)

// Equipment categories form a fixed enumerated set.
const (
	EquipmentCameras     = "cameras"
	EquipmentLenses      = "lenses"
	EquipmentLighting    = "lighting"
	EquipmentAudio       = "audio"
	EquipmentGrip        = "grip"
	EquipmentAccessories = "accessories"
)

// filmSynonyms maps folded source spellings to canonical film categories.
var filmSynonyms = map[string]string{
	"documentare": FilmDocumentare,
	"documentar":  FilmDocumentare,
	"doc":         FilmDocumentare,
	"documentary": FilmDocumentare,

	"fictiune":  FilmFictiune,
	"fiction":   FilmFictiune,
	"narativ":   FilmFictiune,
	"narrative": FilmFictiune,

	"prezentare":          FilmPrezentare,
	"film de prezentare":  FilmPrezentare,
	"filme de prezentare": FilmPrezentare,
	"corporate":           FilmPrezentare,
	"institutional":       FilmPrezentare,
}

// Normalize resolves a raw category value to its canonical id.
//
// The value is lowercased and stripped of diacritics before the synonym
// lookup, so "Documentar", "DOCUMENTARE" and "documentary" all resolve to
// "documentare". Values with no synonym set pass through folded rather than
// failing closed. An empty input stays empty.
func Normalize(raw string) string {
	folded := Fold(raw)
	if folded == "" {
		return ""
	}

	if canonical, ok := filmSynonyms[folded]; ok {
		return canonical
	}

	return folded
}

// FilmCategories lists the canonical film categories in display order.
func FilmCategories() []string {
	return []string{FilmDocumentare, FilmFictiune, FilmPrezentare}
}

// ProductionCategories lists the fixed production category set.
func ProductionCategories() []string {
	return []string{
		ProductionPublicitate,
		ProductionSpoturiSociale,
		ProductionInstitutionale,
		ProductionAnimatii,
		ProductionEmisiuni,
	}
}

// EquipmentCategories lists the fixed equipment category set.
func EquipmentCategories() []string {
	return []string{
		EquipmentCameras,
		EquipmentLenses,
		EquipmentLighting,
		EquipmentAudio,
		EquipmentGrip,
		EquipmentAccessories,
	}
}

// Fold lowercases a value and strips combining marks (NFD decomposition
// followed by mark removal), trimming surrounding whitespace.
func Fold(raw string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	folded, _, _ := transform.String(t, raw)
	return strings.ToLower(strings.TrimSpace(folded))
}

// isMn reports whether r is a Unicode non-spacing mark.
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
