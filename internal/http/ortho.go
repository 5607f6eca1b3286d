package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/accentlab/lexicon/internal/ortho"
)

// defaultLexLimit caps lexical-set listings when the client sends no limit.
const defaultLexLimit = 50

// OrthoIndex is the read surface of the in-memory pronunciation index.
type OrthoIndex interface {
	Word(word string) (*ortho.WordResult, bool)
	Lex(label string, limit int, stress string) ([]ortho.WordResult, error)
	Size() int
}

type OrthoController struct {
	index OrthoIndex
}

func NewOrthoController(index OrthoIndex) *OrthoController {
	return &OrthoController{index: index}
}

func (controller *OrthoController) GetWord(c *gin.Context) {
	word := c.Param("word")

	result, ok := controller.index.Word(word)
	if !ok {
		respondNotFound(c, "word")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetLex lists words belonging to a lexical set or consonant phoneme,
// most frequent first. Supports ?limit= and ?stress= (a string of stress
// digits, e.g. "12").
func (controller *OrthoController) GetLex(c *gin.Context) {
	label := c.Param("lex")

	limit := defaultLexLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			respondBadRequest(c, "invalid limit")
			return
		}
		limit = parsed
	}

	words, err := controller.index.Lex(label, limit, c.Query("stress"))
	if err != nil {
		respondNotFound(c, "lexical set or phoneme")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lex":   label,
		"count": len(words),
		"words": words,
	})
}
