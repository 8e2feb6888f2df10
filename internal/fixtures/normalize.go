package fixtures

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"github.com/emulatorgames/rom-catalog/internal/models"
)

const (
	defaultCategory = "Other"
	defaultRegion   = "Unknown"
	defaultYear     = 2000
)

// ratingBand gives the rating range for games with more than Above downloads.
type ratingBand struct {
	Above int64
	Floor float64
	Width float64
}

// Checked top to bottom; the last band catches everything else.
var ratingBands = []ratingBand{
	{Above: 500000, Floor: 4.8, Width: 0.2},
	{Above: 300000, Floor: 4.5, Width: 0.3},
	{Above: 150000, Floor: 4.0, Width: 0.5},
	{Above: 50000, Floor: 3.5, Width: 0.5},
	{Above: math.MinInt64, Floor: 3.0, Width: 0.7},
}

// RatingRange returns the inclusive bounds a rating can take for the given
// download count.
func RatingRange(downloads int64) (float64, float64) {
	band := bandFor(downloads)
	return band.Floor, roundTenth(band.Floor + band.Width)
}

func bandFor(downloads int64) ratingBand {
	for _, band := range ratingBands {
		if downloads > band.Above {
			return band
		}
	}
	return ratingBands[len(ratingBands)-1]
}

func synthesizeRating(downloads int64, u float64) float64 {
	band := bandFor(downloads)
	return roundTenth(band.Floor + u*band.Width)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// variation maps its parts to a stable value in [0, 1).
func variation(parts ...string) float64 {
	h := fnv.New64a()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return float64(h.Sum64()>>11) / (1 << 53)
}

// parseLeadingInt reads an optionally signed run of leading decimal digits
// and ignores whatever follows, so "1200 downloads" is 1200. Anything
// without leading digits is 0.
func parseLeadingInt(s string) int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var n int64
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > (math.MaxInt64-9)/10 {
			break
		}
		n = n*10 + int64(s[i]-'0')
	}
	if negative {
		return -n
	}
	return n
}

func parseYear(raw string) int {
	if raw == "N/A" {
		return defaultYear
	}
	if year := parseLeadingInt(raw); year != 0 {
		return int(year)
	}
	return defaultYear
}

// baseID is the identifier a record asks for before uniqueness is enforced.
func baseID(raw models.RawRom, key string, index int) string {
	if slug := raw.Slug.String(); slug != "" {
		return slug
	}
	return fmt.Sprintf("%s-%d", key, index)
}

func convertGame(raw models.RawRom, key, id, categoryID string) models.Game {
	downloads := parseLeadingInt(raw.Downloads.String())

	console := raw.Console.String()
	if console == "" {
		console = strings.ToUpper(key)
	}

	category := raw.Category.String()
	if category == "" || category == "N/A" {
		category = defaultCategory
	}

	region := raw.Region.String()
	if region == "" {
		region = defaultRegion
	}

	size := raw.Size.String()
	if size == "unknown" {
		size = "Unknown"
	}

	return models.Game{
		ID:          id,
		Slug:        raw.Slug.String(),
		Title:       raw.Title.String(),
		Platform:    DisplayName(key),
		Console:     console,
		Category:    category,
		CategoryID:  categoryID,
		Image:       raw.Image.String(),
		Rating:      synthesizeRating(downloads, variation(categoryID, id, "rating")),
		Downloads:   downloads,
		Year:        parseYear(raw.ReleaseYear.String()),
		Region:      region,
		FileName:    raw.FileName.String(),
		Size:        size,
		DownloadURL: raw.DownloadURL.String(),
		ReviewCount: 100 + int(variation(categoryID, id, "reviews")*1000),
	}
}

func buildCategory(key string, games []models.Game) models.Category {
	name := DisplayName(key)

	image := ""
	if len(games) > 0 {
		image = games[0].Image
	}

	gameCount := gameCountOverride(key)
	if gameCount == 0 {
		gameCount = len(games)
	}

	return models.Category{
		ID:            CategoryID(key),
		Name:          name + " ROMs",
		Description:   name + " ROM collection",
		Image:         image,
		GameCount:     gameCount,
		DownloadCount: downloadCountOverride(key),
	}
}
