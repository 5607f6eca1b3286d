package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/accentlab/lexicon/internal/ortho"
)

func testOrthoIndex() *ortho.Index {
	records := []ortho.Record{
		{Word: "cat", Phones: []string{"K", "AE1", "T"}},
		{Word: "cab", Phones: []string{"K", "AE1", "B"}},
		{Word: "bird", Phones: []string{"B", "ER1", "D"}},
	}
	freqs := map[string]int64{"cat": 100, "cab": 10, "bird": 50}
	return ortho.NewIndex(records, freqs)
}

func setupOrthoRouter(index OrthoIndex) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewOrthoController(index)

	router := gin.New()
	router.GET("/ortho/word/:word", controller.GetWord)
	router.GET("/ortho/lex/:lex", controller.GetLex)
	return router
}

func TestGetWord(t *testing.T) {
	router := setupOrthoRouter(testOrthoIndex())

	req, _ := http.NewRequest("GET", "/ortho/word/CAT", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var result ortho.WordResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Word != "cat" {
		t.Errorf("expected lowercased word cat, got %q", result.Word)
	}
	if result.Frequency != 100 {
		t.Errorf("expected frequency 100, got %d", result.Frequency)
	}
}

func TestGetWordNotFound(t *testing.T) {
	router := setupOrthoRouter(testOrthoIndex())

	req, _ := http.NewRequest("GET", "/ortho/word/zyzzyva", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestGetLexOrderedByFrequency(t *testing.T) {
	router := setupOrthoRouter(testOrthoIndex())

	req, _ := http.NewRequest("GET", "/ortho/lex/TRAP", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Lex   string             `json:"lex"`
		Count int                `json:"count"`
		Words []ortho.WordResult `json:"words"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Count != 2 {
		t.Fatalf("expected 2 TRAP words, got %d", response.Count)
	}
	if response.Words[0].Word != "cat" || response.Words[1].Word != "cab" {
		t.Errorf("expected frequency order [cat cab], got %v", response.Words)
	}
}

func TestGetLexLimit(t *testing.T) {
	router := setupOrthoRouter(testOrthoIndex())

	req, _ := http.NewRequest("GET", "/ortho/lex/TRAP?limit=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Count != 1 {
		t.Errorf("expected limit to cap results at 1, got %d", response.Count)
	}
}

func TestGetLexInvalidLimit(t *testing.T) {
	router := setupOrthoRouter(testOrthoIndex())

	req, _ := http.NewRequest("GET", "/ortho/lex/TRAP?limit=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestGetLexUnknownLabel(t *testing.T) {
	router := setupOrthoRouter(testOrthoIndex())

	req, _ := http.NewRequest("GET", "/ortho/lex/NOPE", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
