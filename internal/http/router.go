package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.Database, cfg.OrthoIndex, cfg.Version)
	router.GET("/health", healthController.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	entriesController := NewEntriesController(cfg.EntryStore)
	entries := router.Group("/dictionary/entries")
	{
		entries.GET("", entriesController.GetAllEntries)
		entries.POST("", entriesController.CreateEntry)
		entries.GET("/:id", entriesController.GetEntry)
		entries.PUT("/:id", entriesController.UpdateEntry)
		entries.DELETE("/:id", entriesController.DeleteEntry)
		entries.DELETE("/:id/usages/:usageId", entriesController.DeleteUsage)
	}

	lexicalSetsController := NewLexicalSetsController(cfg.LexicalSetStore)
	lexicalSets := router.Group("/dictionary/lexical-sets")
	{
		lexicalSets.GET("", lexicalSetsController.List)
		lexicalSets.POST("", lexicalSetsController.Create)
		lexicalSets.GET("/:id", lexicalSetsController.GetByID)
		lexicalSets.PUT("/:id", lexicalSetsController.Update)
		lexicalSets.DELETE("/:id", lexicalSetsController.Delete)
		lexicalSets.POST("/:id/usages/:usageId", lexicalSetsController.AddUsage)
		lexicalSets.DELETE("/:id/usages/:usageId", lexicalSetsController.RemoveUsage)
	}

	phonemesController := NewPhonemesController(cfg.PhonemeStore)
	phonemes := router.Group("/dictionary/consonant-phonemes")
	{
		phonemes.GET("", phonemesController.List)
		phonemes.POST("", phonemesController.Create)
		phonemes.GET("/:id", phonemesController.GetByID)
		phonemes.PUT("/:id", phonemesController.Update)
		phonemes.DELETE("/:id", phonemesController.Delete)
		phonemes.POST("/:id/usages/:usageId", phonemesController.AddUsage)
		phonemes.DELETE("/:id/usages/:usageId", phonemesController.RemoveUsage)
	}

	if cfg.OrthoIndex != nil {
		orthoController := NewOrthoController(cfg.OrthoIndex)
		router.GET("/ortho/word/:word", orthoController.GetWord)
		router.GET("/ortho/lex/:lex", orthoController.GetLex)
	}

	if cfg.WiktionaryClient != nil {
		wiktionaryController := NewWiktionaryController(cfg.WiktionaryClient)
		router.GET("/wiktionary/audio/:word", wiktionaryController.GetAudio)
		router.GET("/wiktionary/audio/:word/us", wiktionaryController.GetAudioUS)
	}

	if cfg.TaskClient != nil {
		audioController := NewAudioController(cfg.EntryStore, cfg.TaskClient)
		router.POST("/dictionary/entries/:id/enrich-audio", audioController.EnrichEntry)
		router.POST("/dictionary/audio/enrich-all", audioController.EnrichAll)
	}

	return router
}
