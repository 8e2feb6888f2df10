// internal/services/game_query.go
package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/emulatorgames/rom-catalog/internal/models"
)

type SortField string

const (
	SortByDownloads SortField = "downloads"
	SortByRating    SortField = "rating"
	SortByYear      SortField = "year"
	SortByTitle     SortField = "title"
)

// GameQuery narrows the game list. Zero-valued fields are ignored; set
// filters combine with AND. Pagination applies only when both Page and
// Limit are positive.
type GameQuery struct {
	CategoryID string
	Category   string
	Console    string
	Search     string
	SortBy     SortField
	Page       int
	Limit      int
}

type GameList struct {
	Games []models.Game `json:"games"`
	Total int           `json:"total"`
}

func (q GameQuery) filter(all []models.Game) []models.Game {
	search := strings.ToLower(q.Search)

	games := make([]models.Game, 0, len(all))
	for _, game := range all {
		if q.CategoryID != "" && game.CategoryID != q.CategoryID {
			continue
		}
		if q.Category != "" && !strings.EqualFold(game.Category, q.Category) {
			continue
		}
		if q.Console != "" && !strings.EqualFold(game.Console, q.Console) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(game.Title), search) &&
			!strings.Contains(strings.ToLower(game.Platform), search) {
			continue
		}
		games = append(games, game)
	}
	return games
}

// sort orders games in place. Numeric fields sort highest first, titles
// ascending by English collation. Unknown or empty SortBy keeps catalog
// order.
func (q GameQuery) sort(games []models.Game) {
	var less func(a, b *models.Game) bool

	switch q.SortBy {
	case SortByDownloads:
		less = func(a, b *models.Game) bool { return a.Downloads > b.Downloads }
	case SortByRating:
		less = func(a, b *models.Game) bool { return a.Rating > b.Rating }
	case SortByYear:
		less = func(a, b *models.Game) bool { return a.Year > b.Year }
	case SortByTitle:
		collator := collate.New(language.English)
		less = func(a, b *models.Game) bool { return collator.CompareString(a.Title, b.Title) < 0 }
	default:
		return
	}

	sort.SliceStable(games, func(i, j int) bool {
		return less(&games[i], &games[j])
	})
}

func (q GameQuery) paginate(games []models.Game) []models.Game {
	if q.Page <= 0 || q.Limit <= 0 {
		return games
	}

	if q.Page > len(games)/q.Limit+1 {
		return []models.Game{}
	}
	start := (q.Page - 1) * q.Limit
	if start >= len(games) {
		return []models.Game{}
	}
	end := start + q.Limit
	if end > len(games) {
		end = len(games)
	}
	return games[start:end]
}
