package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/emulatorgames/rom-catalog/internal/fixtures"
	"github.com/emulatorgames/rom-catalog/internal/i18n"
	"github.com/emulatorgames/rom-catalog/internal/middleware"
	"github.com/emulatorgames/rom-catalog/internal/models"
	"github.com/emulatorgames/rom-catalog/internal/services"
)

var catalogFixtures = fstest.MapFS{
	"n64_roms.json": {Data: []byte(`[
		{"slug":"super-mario-64","title":"Super Mario 64","downloads":"600000","category":"Platformer","release_year":"1996","region":"USA","file_name":"Super Mario 64 (USA).z64","console":"N64"},
		{"slug":"goldeneye-007","title":"GoldenEye 007","downloads":"350000","category":"Shooter","release_year":"1997","region":"USA","file_name":"GoldenEye 007 (USA).z64","console":"N64"}
	]`)},
	"gba_roms.json": {Data: []byte(`[
		{"slug":"pokemon-emerald","title":"Pokemon Emerald","downloads":"900000","category":"RPG","release_year":"2004","region":"USA","file_name":"Pokemon - Emerald Version (USA, Europe).gba","console":"GBA"},
		{"slug":"metroid-fusion","title":"Metroid Fusion","downloads":"120000","category":"Action","release_year":"2002","region":"USA","file_name":"Metroid Fusion (USA).gba","console":"GBA"},
		{"slug":"advance-wars","title":"Advance Wars","downloads":"80000","category":"Strategy","release_year":"2001","region":"USA","file_name":"Advance Wars (USA).gba","console":"GBA"}
	]`)},
}

type failingSource struct{}

func (failingSource) Load() (*models.RomData, error) {
	return nil, errors.New("fixture store unavailable")
}

type CatalogHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *CatalogHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(i18n.Initialize())

	log, _ := logtest.NewNullLogger()
	loader := fixtures.NewLoaderFS(catalogFixtures, "mem", fixtures.WithLogger(log))
	catalogHandler := NewCatalogHandler(services.NewCatalogService(loader), log)
	articleHandler := NewArticleHandler(
		services.NewArticleServiceFS(fstest.MapFS{
			"guides/best-gba-emulators.html": {Data: []byte("<h1>Best GBA emulators</h1>")},
		}),
		services.NewArticleServiceFS(fstest.MapFS{
			"top-10-n64-games.html": {Data: []byte("<h1>Top 10</h1>")},
		}),
	)

	suite.router = gin.New()
	suite.router.Use(middleware.I18nMiddleware())

	api := suite.router.Group("/api")
	{
		api.GET("/rom-data", catalogHandler.GetRomData)
		api.GET("/categories", catalogHandler.GetCategories)
		api.GET("/categories/:id", catalogHandler.GetCategory)
		api.GET("/games", catalogHandler.GetGames)
		api.GET("/games/:id", catalogHandler.GetGame)
		api.GET("/popular", catalogHandler.GetPopularGames)
		api.GET("/consoles", catalogHandler.GetConsoles)
		api.GET("/roms", catalogHandler.GetRoms)
		api.GET("/roms/:console/:slug", catalogHandler.GetRomBySlug)
	}
	suite.router.GET("/articles/*path", articleHandler.GetArticle)
	suite.router.GET("/roms/*path", articleHandler.GetRomArticle)
}

func (suite *CatalogHandlerTestSuite) get(target string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CatalogHandlerTestSuite) decode(w *httptest.ResponseRecorder, v interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v))
}

func (suite *CatalogHandlerTestSuite) TestGetRomData() {
	w := suite.get("/api/rom-data")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var data models.RomData
	suite.decode(w, &data)
	assert.Len(suite.T(), data.Games, 5)
	assert.Len(suite.T(), data.Categories, 2)
	assert.Equal(suite.T(), 5, data.Stats.TotalGames)
	assert.Equal(suite.T(), "2050K", data.Stats.TotalDownloads)
}

func (suite *CatalogHandlerTestSuite) TestGetCategory() {
	w := suite.get("/api/categories/gameboy-advance-roms")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var category models.Category
	suite.decode(w, &category)
	assert.Equal(suite.T(), "Game Boy Advance ROMs", category.Name)

	w = suite.get("/api/categories/atari-roms")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Category not found"}`, w.Body.String())
}

func (suite *CatalogHandlerTestSuite) TestGetGames() {
	w := suite.get("/api/games?sortBy=downloads&limit=2")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "5", w.Header().Get("X-Total-Count"))
	assert.Equal(suite.T(), "1", w.Header().Get("X-Page"))
	assert.Equal(suite.T(), "2", w.Header().Get("X-Per-Page"))
	assert.Equal(suite.T(), "3", w.Header().Get("X-Total-Pages"))

	var list services.GameList
	suite.decode(w, &list)
	assert.Equal(suite.T(), 5, list.Total)
	suite.Require().Len(list.Games, 2)
	assert.Equal(suite.T(), "pokemon-emerald", list.Games[0].ID)
	assert.Equal(suite.T(), "super-mario-64", list.Games[1].ID)

	w = suite.get("/api/games?categoryId=nintendo-64-roms&search=golden")
	suite.decode(w, &list)
	assert.Equal(suite.T(), 1, list.Total)
	assert.Equal(suite.T(), "goldeneye-007", list.Games[0].ID)

	w = suite.get("/api/games?page=9")
	suite.decode(w, &list)
	assert.Equal(suite.T(), 5, list.Total)
	assert.Empty(suite.T(), list.Games)
	assert.Equal(suite.T(), `{"games":[],"total":5}`, w.Body.String())
}

func (suite *CatalogHandlerTestSuite) TestGetRoms() {
	w := suite.get("/api/roms?console=gba&sortBy=title")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var list services.GameList
	suite.decode(w, &list)
	assert.Equal(suite.T(), 3, list.Total)
	suite.Require().Len(list.Games, 3)
	assert.Equal(suite.T(), "Advance Wars", list.Games[0].Title)
	assert.Equal(suite.T(), "Metroid Fusion", list.Games[1].Title)
	assert.Equal(suite.T(), "Pokemon Emerald", list.Games[2].Title)

	// the categoryId filter belongs to /api/games only
	w = suite.get("/api/roms?categoryId=nintendo-64-roms")
	suite.decode(w, &list)
	assert.Equal(suite.T(), 5, list.Total)
}

func (suite *CatalogHandlerTestSuite) TestGetGame() {
	w := suite.get("/api/games/metroid-fusion")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var game models.Game
	suite.decode(w, &game)
	assert.Equal(suite.T(), "Metroid Fusion", game.Title)
	assert.Equal(suite.T(), "gameboy-advance-roms", game.CategoryID)

	w = suite.get("/api/games/unknown")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Game not found"}`, w.Body.String())
}

func (suite *CatalogHandlerTestSuite) TestGetPopularGames() {
	for target, want := range map[string][]string{
		"/api/popular":          {"pokemon-emerald", "super-mario-64", "goldeneye-007", "metroid-fusion"},
		"/api/popular?limit=2":  {"pokemon-emerald", "super-mario-64"},
		"/api/popular?limit=0":  {"pokemon-emerald", "super-mario-64", "goldeneye-007", "metroid-fusion"},
		"/api/popular?limit=xx": {"pokemon-emerald", "super-mario-64", "goldeneye-007", "metroid-fusion"},
	} {
		w := suite.get(target)
		assert.Equal(suite.T(), http.StatusOK, w.Code, target)

		var games []models.Game
		suite.decode(w, &games)
		ids := make([]string, 0, len(games))
		for _, game := range games {
			ids = append(ids, game.ID)
		}
		assert.Equal(suite.T(), want, ids, target)
	}
}

func (suite *CatalogHandlerTestSuite) TestGetConsoles() {
	w := suite.get("/api/consoles")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `["GBA","N64"]`, w.Body.String())
}

func (suite *CatalogHandlerTestSuite) TestGetRomBySlug() {
	tests := []struct {
		target string
		status int
		wantID string
	}{
		{"/api/roms/gameboy-advance-roms/pokemon-emerald", http.StatusOK, "pokemon-emerald"},
		{"/api/roms/gba/pokemon-emerald-version-usa-europe", http.StatusOK, "pokemon-emerald"},
		{"/api/roms/n64/super-mario-64-usa", http.StatusOK, "super-mario-64"},
		{"/api/roms/n64/pokemon-emerald", http.StatusNotFound, ""},
		{"/api/roms/n64/zelda", http.StatusNotFound, ""},
		{"/api/roms/n64!/zelda", http.StatusNotFound, ""},
		{"/api/roms/" + strings.Repeat("n", 65) + "/zelda", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		w := suite.get(tt.target)
		assert.Equal(suite.T(), tt.status, w.Code, tt.target)

		switch tt.status {
		case http.StatusOK:
			var game models.Game
			suite.decode(w, &game)
			assert.Equal(suite.T(), tt.wantID, game.ID, tt.target)
		case http.StatusNotFound:
			assert.JSONEq(suite.T(), `{"error":"ROM not found"}`, w.Body.String(), tt.target)
		}
	}
}

func (suite *CatalogHandlerTestSuite) TestLocalizedNotFound() {
	req, _ := http.NewRequest(http.MethodGet, "/api/games/unknown", nil)
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Game not found","message":"Juego no encontrado"}`, w.Body.String())
}

func (suite *CatalogHandlerTestSuite) TestArticles() {
	w := suite.get("/articles/guides/best-gba-emulators")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "no-cache", w.Header().Get("Cache-Control"))
	assert.Equal(suite.T(), "<h1>Best GBA emulators</h1>", w.Body.String())

	w = suite.get("/articles/guides/missing")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Article not found"}`, w.Body.String())

	w = suite.get("/roms/top-10-n64-games")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "<h1>Top 10</h1>", w.Body.String())

	w = suite.get("/roms/nintendo-64-roms/unknown")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"ROM article not found"}`, w.Body.String())
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func TestGetRomBySlug_ConsoleNameSegment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	assert.NoError(t, i18n.Initialize())

	log, _ := logtest.NewNullLogger()
	loader := fixtures.NewLoaderFS(fstest.MapFS{
		"n64_roms.json":  {Data: []byte(`[{"slug":"mario-64","title":"Super Mario 64","console":"Nintendo 64","file_name":"Super Mario 64 (USA).z64"}]`)},
		"mame_roms.json": {Data: []byte(`[{"slug":"sf2","title":"Street Fighter II","console":"Arcade (MAME)","file_name":"sf2.zip"}]`)},
	}, "mem", fixtures.WithLogger(log))
	handler := NewCatalogHandler(services.NewCatalogService(loader), log)

	router := gin.New()
	router.GET("/api/roms/:console/:slug", handler.GetRomBySlug)

	tests := []struct {
		target string
		status int
		wantID string
	}{
		{"/api/roms/nintendo%2064/mario-64", http.StatusOK, "mario-64"},
		{"/api/roms/nintendo%2064/super-mario-64-usa", http.StatusOK, "mario-64"},
		{"/api/roms/arcade%20(mame)/sf2", http.StatusOK, "sf2"},
		{"/api/roms/nintendo%2064/sf2", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		req, _ := http.NewRequest(http.MethodGet, tt.target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tt.status, w.Code, tt.target)

		if tt.status == http.StatusOK {
			var game models.Game
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &game))
			assert.Equal(t, tt.wantID, game.ID, tt.target)
		}
	}
}

func TestGetGames_OversizedLimitIsCapped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	records := make([]string, 150)
	for i := range records {
		records[i] = fmt.Sprintf(`{"slug":"game-%03d","title":"Game %03d"}`, i, i)
	}
	log, _ := logtest.NewNullLogger()
	loader := fixtures.NewLoaderFS(fstest.MapFS{
		"nes_roms.json": {Data: []byte("[" + strings.Join(records, ",") + "]")},
	}, "mem", fixtures.WithLogger(log))
	handler := NewCatalogHandler(services.NewCatalogService(loader), log)

	router := gin.New()
	router.GET("/api/games", handler.GetGames)

	req, _ := http.NewRequest(http.MethodGet, "/api/games?limit=150", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "150", w.Header().Get("X-Total-Count"))
	assert.Equal(t, "100", w.Header().Get("X-Per-Page"))
	assert.Equal(t, "2", w.Header().Get("X-Total-Pages"))

	var list services.GameList
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 150, list.Total)
	assert.Len(t, list.Games, 100)
}

func TestCatalogHandler_SourceFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	assert.NoError(t, i18n.Initialize())

	log, _ := logtest.NewNullLogger()
	handler := NewCatalogHandler(services.NewCatalogService(failingSource{}), log)

	router := gin.New()
	router.GET("/api/games", handler.GetGames)
	router.GET("/api/roms/:console/:slug", handler.GetRomBySlug)

	req, _ := http.NewRequest(http.MethodGet, "/api/games", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch games","message":"failed to load ROM data: fixture store unavailable"}`, w.Body.String())

	req, _ = http.NewRequest(http.MethodGet, "/api/roms/n64/mario", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"Failed to fetch ROM"`)
}
