// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/emulatorgames/rom-catalog/internal/i18n"
	"github.com/emulatorgames/rom-catalog/internal/services"
	"github.com/emulatorgames/rom-catalog/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
	log            logrus.FieldLogger
}

func NewCatalogHandler(catalogService *services.CatalogService, log logrus.FieldLogger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		log:            log,
	}
}

// GET /api/rom-data
func (h *CatalogHandler) GetRomData(c *gin.Context) {
	data, err := h.catalogService.GetRomData()
	if err != nil {
		utils.InternalErrorResponse(c, i18n.KeyRomDataFetchFailed, err)
		return
	}

	utils.SuccessResponse(c, data)
}

// GET /api/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories()
	if err != nil {
		utils.InternalErrorResponse(c, i18n.KeyCategoriesFetchFailed, err)
		return
	}

	utils.SuccessResponse(c, categories)
}

// GET /api/categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalogService.GetCategory(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.NotFoundResponse(c, i18n.KeyCategoryNotFound)
			return
		}
		utils.InternalErrorResponse(c, i18n.KeyCategoryFetchFailed, err)
		return
	}

	utils.SuccessResponse(c, category)
}

// GET /api/games
func (h *CatalogHandler) GetGames(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	query := services.GameQuery{
		CategoryID: c.Query("categoryId"),
		Category:   c.Query("category"),
		Console:    c.Query("console"),
		Search:     params.Search,
		SortBy:     services.SortField(params.SortBy),
		Page:       params.Page,
		Limit:      params.Limit,
	}

	h.listGames(c, query, params, i18n.KeyGamesFetchFailed)
}

// GET /api/roms
func (h *CatalogHandler) GetRoms(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	query := services.GameQuery{
		Console:  c.Query("console"),
		Category: c.Query("category"),
		Search:   params.Search,
		SortBy:   services.SortField(params.SortBy),
		Page:     params.Page,
		Limit:    params.Limit,
	}

	h.listGames(c, query, params, i18n.KeyRomsFetchFailed)
}

func (h *CatalogHandler) listGames(c *gin.Context, query services.GameQuery, params utils.PaginationParams, failureKey string) {
	list, err := h.catalogService.GetGames(query)
	if err != nil {
		utils.InternalErrorResponse(c, failureKey, err)
		return
	}

	result := utils.CreatePaginationResult(list, int64(list.Total), params)
	utils.PaginatedResponse(c, result)
}

// GET /api/games/:id
func (h *CatalogHandler) GetGame(c *gin.Context) {
	game, err := h.catalogService.GetGame(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			utils.NotFoundResponse(c, i18n.KeyGameNotFound)
			return
		}
		utils.InternalErrorResponse(c, i18n.KeyGameFetchFailed, err)
		return
	}

	utils.SuccessResponse(c, game)
}

// GET /api/popular
func (h *CatalogHandler) GetPopularGames(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = services.DefaultPopularLimit
	}

	games, err := h.catalogService.GetPopularGames(limit)
	if err != nil {
		utils.InternalErrorResponse(c, i18n.KeyPopularFetchFailed, err)
		return
	}

	utils.SuccessResponse(c, games)
}

// GET /api/consoles
func (h *CatalogHandler) GetConsoles(c *gin.Context) {
	consoles, err := h.catalogService.GetConsoles()
	if err != nil {
		utils.InternalErrorResponse(c, i18n.KeyConsolesFetchFailed, err)
		return
	}

	utils.SuccessResponse(c, consoles)
}

// GET /api/roms/:console/:slug
func (h *CatalogHandler) GetRomBySlug(c *gin.Context) {
	var params utils.RomPathParams
	if err := c.ShouldBindUri(&params); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&params)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	log := h.log.WithFields(logrus.Fields{
		"console":    params.Console,
		"slug":       params.Slug,
		"request_id": utils.GetRequestIDFromContext(c),
	})

	game, err := h.catalogService.GetGameBySlug(params.Console, params.Slug)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			log.Debug("ROM not found")
			utils.NotFoundResponse(c, i18n.KeyRomNotFound)
			return
		}
		utils.InternalErrorResponse(c, i18n.KeyRomFetchFailed, err)
		return
	}

	log.WithField("game_id", game.ID).Debug("ROM resolved")
	utils.SuccessResponse(c, game)
}
