// internal/handlers/article.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/emulatorgames/rom-catalog/internal/i18n"
	"github.com/emulatorgames/rom-catalog/internal/services"
	"github.com/emulatorgames/rom-catalog/internal/utils"
)

type ArticleHandler struct {
	articleService    *services.ArticleService
	romArticleService *services.ArticleService
}

func NewArticleHandler(articleService, romArticleService *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService:    articleService,
		romArticleService: romArticleService,
	}
}

// GET /articles/*path
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	h.serve(c, h.articleService, i18n.KeyArticleNotFound)
}

// GET /roms/*path
func (h *ArticleHandler) GetRomArticle(c *gin.Context) {
	h.serve(c, h.romArticleService, i18n.KeyRomArticleNotFound)
}

func (h *ArticleHandler) serve(c *gin.Context, articleService *services.ArticleService, notFoundKey string) {
	content, err := articleService.GetArticle(c.Param("path"))
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			utils.NotFoundResponse(c, notFoundKey)
			return
		}
		utils.InternalErrorResponse(c, i18n.KeyArticleFetchFailed, err)
		return
	}

	utils.HTMLResponse(c, content)
}
