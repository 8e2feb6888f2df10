// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyError             = "error"
	KeyInternalError     = "internal_error"
	KeyValidationInvalid = "validation.invalid"
	KeyRateLimitExceeded = "rate_limit.exceeded"
	KeyRouteNotFound     = "route.not_found"

	// Not found
	KeyCategoryNotFound   = "category.not_found"
	KeyGameNotFound       = "game.not_found"
	KeyRomNotFound        = "rom.not_found"
	KeyArticleNotFound    = "article.not_found"
	KeyRomArticleNotFound = "rom_article.not_found"

	// Fetch failures
	KeyRomDataFetchFailed    = "rom_data.fetch_failed"
	KeyCategoriesFetchFailed = "categories.fetch_failed"
	KeyCategoryFetchFailed   = "category.fetch_failed"
	KeyGamesFetchFailed      = "games.fetch_failed"
	KeyGameFetchFailed       = "game.fetch_failed"
	KeyPopularFetchFailed    = "popular.fetch_failed"
	KeyConsolesFetchFailed   = "consoles.fetch_failed"
	KeyRomsFetchFailed       = "roms.fetch_failed"
	KeyRomFetchFailed        = "rom.fetch_failed"
	KeyArticleFetchFailed    = "article.fetch_failed"
)
