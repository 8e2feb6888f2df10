// internal/services/slug.go
package services

import (
	"path"
	"regexp"
	"strings"

	"github.com/gosimple/slug"

	"github.com/emulatorgames/rom-catalog/internal/fixtures"
	"github.com/emulatorgames/rom-catalog/internal/models"
)

type slugTier int

const (
	slugTierNone slugTier = iota
	slugTierID
	slugTierFileName
	slugTierConsole
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// FileSlug derives the URL slug the front-end builds from a ROM file name:
// lowercased, extension dropped, non-alphanumeric runs collapsed to "-".
func FileSlug(fileName string) string {
	s := strings.ToLower(fileName)
	s = strings.TrimSuffix(s, path.Ext(s))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// categoryCandidates lists the category ids a platform URL segment may
// stand for: the id itself ("nintendo-64-roms"), a fixture key ("n64"), or
// a bare name missing the "-roms" suffix.
func categoryCandidates(platformKey string) []string {
	key := strings.ToLower(strings.TrimSpace(platformKey))
	if key == "" {
		return nil
	}

	var candidates []string
	rawKey := strings.ReplaceAll(key, "-", "_")
	if fixtures.IsKnownPlatform(rawKey) {
		candidates = append(candidates, fixtures.CategoryID(rawKey))
	}

	normalized := slug.Make(strings.ReplaceAll(key, "_", "-"))
	candidates = append(candidates, normalized)
	if !strings.HasSuffix(normalized, "-roms") {
		candidates = append(candidates, normalized+"-roms")
	}
	return candidates
}

func normalizeConsole(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}

func matchesID(game *models.Game, s string) bool {
	return game.ID == s || (game.Slug != "" && game.Slug == s)
}

// resolveSlug applies the matching tiers in order; the first tier with a
// hit wins, and within a tier the first game in catalog order.
//
//  1. category matches and the id (or source slug) equals slug
//  2. category matches and the file-name slug equals slug
//  3. console matches the platform segment, ignoring case and "_" vs "-",
//     and either the id or the file-name slug equals slug
func resolveSlug(games []models.Game, platformKey, s string) (*models.Game, slugTier) {
	if s == "" {
		return nil, slugTierNone
	}

	candidates := categoryCandidates(platformKey)
	inCategory := func(game *models.Game) bool {
		for _, id := range candidates {
			if game.CategoryID == id {
				return true
			}
		}
		return false
	}

	for i := range games {
		if inCategory(&games[i]) && matchesID(&games[i], s) {
			game := games[i]
			return &game, slugTierID
		}
	}

	for i := range games {
		if inCategory(&games[i]) && FileSlug(games[i].FileName) == s {
			game := games[i]
			return &game, slugTierFileName
		}
	}

	console := normalizeConsole(platformKey)
	if console == "" {
		return nil, slugTierNone
	}
	for i := range games {
		if normalizeConsole(games[i].Console) != console {
			continue
		}
		if matchesID(&games[i], s) || FileSlug(games[i].FileName) == s {
			game := games[i]
			return &game, slugTierConsole
		}
	}

	return nil, slugTierNone
}
