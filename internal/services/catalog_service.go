// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/emulatorgames/rom-catalog/internal/models"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrGameNotFound     = errors.New("game not found")
)

// DefaultPopularLimit is the size of the "most downloaded" shortlist.
const DefaultPopularLimit = 4

// RomDataSource supplies the catalog. *fixtures.Loader is the production
// implementation.
type RomDataSource interface {
	Load() (*models.RomData, error)
}

// CatalogService answers read-only queries over the loaded catalog. Every
// call goes through the source, so the first query triggers the load.
type CatalogService struct {
	source RomDataSource
}

func NewCatalogService(source RomDataSource) *CatalogService {
	return &CatalogService{source: source}
}

func (s *CatalogService) data() (*models.RomData, error) {
	data, err := s.source.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load ROM data: %w", err)
	}
	if data == nil {
		return models.EmptyRomData(), nil
	}
	return data, nil
}

func (s *CatalogService) GetRomData() (*models.RomData, error) {
	return s.data()
}

func (s *CatalogService) GetCategories() ([]models.Category, error) {
	data, err := s.data()
	if err != nil {
		return nil, err
	}
	return data.Categories, nil
}

func (s *CatalogService) GetCategory(id string) (*models.Category, error) {
	data, err := s.data()
	if err != nil {
		return nil, err
	}

	for i := range data.Categories {
		if data.Categories[i].ID == id {
			category := data.Categories[i]
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}

// GetGames filters, sorts and paginates the catalog. Total counts the
// matches before pagination.
func (s *CatalogService) GetGames(query GameQuery) (*GameList, error) {
	data, err := s.data()
	if err != nil {
		return nil, err
	}

	games := query.filter(data.Games)
	query.sort(games)
	total := len(games)

	return &GameList{
		Games: query.paginate(games),
		Total: total,
	}, nil
}

func (s *CatalogService) GetGame(id string) (*models.Game, error) {
	data, err := s.data()
	if err != nil {
		return nil, err
	}

	for i := range data.Games {
		if data.Games[i].ID == id {
			game := data.Games[i]
			return &game, nil
		}
	}
	return nil, ErrGameNotFound
}

// GetGameBySlug resolves the /roms/<platform>/<slug> URL pair.
func (s *CatalogService) GetGameBySlug(platformKey, slug string) (*models.Game, error) {
	data, err := s.data()
	if err != nil {
		return nil, err
	}

	game, tier := resolveSlug(data.Games, platformKey, slug)
	if tier == slugTierNone {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// GetPopularGames returns up to limit games with the most downloads.
// A non-positive limit uses DefaultPopularLimit.
func (s *CatalogService) GetPopularGames(limit int) ([]models.Game, error) {
	data, err := s.data()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	games := make([]models.Game, len(data.Games))
	copy(games, data.Games)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Downloads > games[j].Downloads
	})

	if limit < len(games) {
		games = games[:limit]
	}
	return games, nil
}

// GetConsoles lists the distinct console values in byte order.
func (s *CatalogService) GetConsoles() ([]string, error) {
	data, err := s.data()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	consoles := []string{}
	for _, game := range data.Games {
		if _, ok := seen[game.Console]; ok {
			continue
		}
		seen[game.Console] = struct{}{}
		consoles = append(consoles, game.Console)
	}
	sort.Strings(consoles)
	return consoles, nil
}
