package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accentlab/lexicon/internal/wiktionary"
)

type WiktionaryController struct {
	client wiktionary.Client
}

func NewWiktionaryController(client wiktionary.Client) *WiktionaryController {
	return &WiktionaryController{client: client}
}

// GetAudio proxies a Wiktionary audio lookup for a word.
func (controller *WiktionaryController) GetAudio(c *gin.Context) {
	controller.lookup(c, false)
}

// GetAudioUS is GetAudio restricted to US-accent files.
func (controller *WiktionaryController) GetAudioUS(c *gin.Context) {
	controller.lookup(c, true)
}

func (controller *WiktionaryController) lookup(c *gin.Context, usOnly bool) {
	word := c.Param("word")

	files, err := controller.client.AudioLookup(c.Request.Context(), word, usOnly)
	if err != nil {
		if errors.Is(err, wiktionary.ErrNotFound) {
			respondNotFound(c, "word")
			return
		}
		respondError(c, http.StatusBadGateway, "wiktionary lookup failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"word":  word,
		"count": len(files),
		"files": files,
	})
}
