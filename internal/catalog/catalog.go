// Package catalog holds the fixed enumerations the station backend expects:
// the genre tag catalog, weekday and role codes, and the voice defaults used
// when creating presenters. The backend does not serve these; they are a
// closed set shared with the rest of the Rex Radio tooling.
package catalog

import (
	"regexp"
	"strings"
)

// Genre is one entry of the fixed genre catalog. ID is the machine slug
// stored by the backend; Label is what the operator sees.
type Genre struct {
	ID    string
	Label string
}

var genreLabels = []string{
	"Rock", "Pop", "Jazz", "Classical", "Electronic", "Hip-Hop", "Country",
	"R&B", "Blues", "Folk", "Reggae", "Punk", "Metal", "Indie", "Alternative",
	"Funk", "Soul", "Gospel", "Latin", "World", "Ambient", "Techno", "House",
	"Trance", "Drum & Bass", "Dubstep", "Trap", "Lo-Fi", "Experimental",
}

var genres = buildGenres()

func buildGenres() []Genre {
	out := make([]Genre, 0, len(genreLabels))
	for _, label := range genreLabels {
		out = append(out, Genre{ID: Slugify(label), Label: label})
	}
	return out
}

// Genres returns the full catalog in display order. Callers must not mutate
// the returned slice.
func Genres() []Genre {
	return genres
}

// GenreByValue resolves a server-held genre value against the catalog,
// matching the slug first and the display label as a fallback (older
// backends stored labels).
func GenreByValue(value string) (Genre, bool) {
	trimmed := strings.TrimSpace(value)
	for _, g := range genres {
		if g.ID == trimmed || strings.EqualFold(g.Label, trimmed) {
			return g, true
		}
	}
	return Genre{}, false
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)
var multiUnderscore = regexp.MustCompile(`_+`)

// Slugify converts a display label into the backend's genre id form.
func Slugify(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "+", " and ")
	s = nonSlug.ReplaceAllString(s, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	// bespoke fix: r&b -> rnb
	switch s {
	case "r_b", "r_and_b":
		s = "rnb"
	}
	return s
}

// Weekdays returns the seven weekday codes in schedule order.
func Weekdays() []string {
	return []string{
		"monday", "tuesday", "wednesday", "thursday",
		"friday", "saturday", "sunday",
	}
}

// Role is one of the fixed presenter role codes.
type Role struct {
	Code  string
	Label string
}

// Roles returns the closed presenter role catalog.
func Roles() []Role {
	return []Role{
		{Code: "news", Label: "News"},
		{Code: "music", Label: "Music"},
		{Code: "sports", Label: "Sports"},
		{Code: "emergency", Label: "Emergency"},
	}
}

// Voice defaults applied to every presenter created from this tool. Not
// operator-editable.
const (
	VoiceModelDefault = "eleven_multilingual_v2"
	VoiceIDDefault    = "British Radio Presenter 1"
)

// TimeRe matches the 24-hour HH:MM form schedule entries must use. Strict
// hour-range validation belongs to the backend.
var TimeRe = regexp.MustCompile(`^[0-2][0-9]:[0-5][0-9]$`)

// ValidTime reports whether s is an acceptable schedule time string.
func ValidTime(s string) bool {
	return TimeRe.MatchString(strings.TrimSpace(s))
}
