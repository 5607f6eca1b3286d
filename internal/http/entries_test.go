package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/accentlab/lexicon/internal/entities"
)

type mockEntryStore struct {
	entries    map[uint]*entities.DictionaryEntry
	listErr    error
	refetchErr error

	created       *entities.DictionaryEntry
	updatedUsages []entities.WordUsage
	deletedID     uint
	deletedUsage  [2]uint
}

func newMockEntryStore() *mockEntryStore {
	return &mockEntryStore{entries: make(map[uint]*entities.DictionaryEntry)}
}

func (m *mockEntryStore) CreateEntry(entry *entities.DictionaryEntry) error {
	entry.ID = uint(len(m.entries) + 1)
	m.entries[entry.ID] = entry
	m.created = entry
	return nil
}

func (m *mockEntryStore) GetEntryByID(id uint) (*entities.DictionaryEntry, error) {
	if m.refetchErr != nil {
		return nil, m.refetchErr
	}
	entry, ok := m.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return entry, nil
}

func (m *mockEntryStore) GetAllEntries() ([]entities.DictionaryEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var all []entities.DictionaryEntry
	for _, entry := range m.entries {
		all = append(all, *entry)
	}
	return all, nil
}

func (m *mockEntryStore) UpdateEntry(id uint, word, notes string, usages []entities.WordUsage) (*entities.DictionaryEntry, error) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	entry.Word = word
	entry.Notes = notes
	entry.Usages = usages
	m.updatedUsages = usages
	return entry, nil
}

func (m *mockEntryStore) DeleteEntry(id uint) error {
	if _, ok := m.entries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.entries, id)
	m.deletedID = id
	return nil
}

func (m *mockEntryStore) DeleteUsage(entryID, usageID uint) error {
	if _, ok := m.entries[entryID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.deletedUsage = [2]uint{entryID, usageID}
	return nil
}

func setupEntriesRouter(store EntryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewEntriesController(store)

	router := gin.New()
	router.GET("/dictionary/entries", controller.GetAllEntries)
	router.POST("/dictionary/entries", controller.CreateEntry)
	router.GET("/dictionary/entries/:id", controller.GetEntry)
	router.PUT("/dictionary/entries/:id", controller.UpdateEntry)
	router.DELETE("/dictionary/entries/:id", controller.DeleteEntry)
	router.DELETE("/dictionary/entries/:id/usages/:usageId", controller.DeleteUsage)
	return router
}

func TestGetAllEntriesMasksStoreError(t *testing.T) {
	store := newMockEntryStore()
	store.listErr = gorm.ErrInvalidDB
	router := setupEntriesRouter(store)

	req, _ := http.NewRequest("GET", "/dictionary/entries", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var entries []entities.DictionaryEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("expected a JSON array, got %q", w.Body.String())
	}
	if len(entries) != 0 {
		t.Errorf("expected empty list, got %d entries", len(entries))
	}
}

func TestGetEntryNotFound(t *testing.T) {
	router := setupEntriesRouter(newMockEntryStore())

	req, _ := http.NewRequest("GET", "/dictionary/entries/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestCreateEntry(t *testing.T) {
	store := newMockEntryStore()
	router := setupEntriesRouter(store)

	body := `{
		"word": "cat",
		"notes": "feline",
		"usages": [{
			"partOfSpeech": "noun",
			"meaning": "a small domesticated feline",
			"pronunciations": [{"phonemic": "kaet", "isPrimary": false}],
			"examples": [{"text": "The cat sat."}],
			"spellingPatterns": [{"pattern": "-at"}]
		}]
	}`
	req, _ := http.NewRequest("POST", "/dictionary/entries", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if store.created == nil || store.created.Word != "cat" {
		t.Fatal("expected entry to be created")
	}
	// Creation honors an explicit isPrimary.
	if store.created.Usages[0].Pronunciations[0].IsPrimary {
		t.Error("expected isPrimary false to be preserved on create")
	}
}

func TestCreateEntryMissingUsages(t *testing.T) {
	router := setupEntriesRouter(newMockEntryStore())

	req, _ := http.NewRequest("POST", "/dictionary/entries", bytes.NewBufferString(`{"word": "cat"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCreateEntryDefaultsPrimary(t *testing.T) {
	store := newMockEntryStore()
	router := setupEntriesRouter(store)

	body := `{"word": "cat", "usages": [{"pronunciations": [{"phonemic": "kaet"}]}]}`
	req, _ := http.NewRequest("POST", "/dictionary/entries", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	if !store.created.Usages[0].Pronunciations[0].IsPrimary {
		t.Error("expected omitted isPrimary to default to true")
	}
	if store.created.Usages[0].PartOfSpeech != "noun" {
		t.Errorf("expected default part of speech noun, got %q", store.created.Usages[0].PartOfSpeech)
	}
}

func TestCreateEntrySurvivesRefetchFailure(t *testing.T) {
	store := newMockEntryStore()
	store.refetchErr = gorm.ErrInvalidDB
	router := setupEntriesRouter(store)

	body := `{"word": "cat", "usages": [{"pronunciations": [{"phonemic": "kaet"}]}]}`
	req, _ := http.NewRequest("POST", "/dictionary/entries", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// The row was written; a failed re-fetch must not turn the create
	// into an error.
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created entities.DictionaryEntry
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Word != "cat" {
		t.Errorf("expected created entry in response, got %+v", created)
	}
}

func TestUpdateEntryForcesPrimary(t *testing.T) {
	store := newMockEntryStore()
	store.entries[1] = &entities.DictionaryEntry{ID: 1, Word: "cat"}
	router := setupEntriesRouter(store)

	body := `{"word": "cat", "usages": [{"pronunciations": [{"phonemic": "kaet", "isPrimary": false}]}]}`
	req, _ := http.NewRequest("PUT", "/dictionary/entries/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !store.updatedUsages[0].Pronunciations[0].IsPrimary {
		t.Error("expected update to force isPrimary true")
	}
}

func TestUpdateEntryNotFound(t *testing.T) {
	router := setupEntriesRouter(newMockEntryStore())

	body := `{"word": "cat", "usages": []}`
	req, _ := http.NewRequest("PUT", "/dictionary/entries/99", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteEntry(t *testing.T) {
	store := newMockEntryStore()
	store.entries[7] = &entities.DictionaryEntry{ID: 7, Word: "cat"}
	router := setupEntriesRouter(store)

	req, _ := http.NewRequest("DELETE", "/dictionary/entries/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}
	if store.deletedID != 7 {
		t.Errorf("expected entry 7 to be deleted, got %d", store.deletedID)
	}
}

func TestDeleteEntryNotFound(t *testing.T) {
	router := setupEntriesRouter(newMockEntryStore())

	req, _ := http.NewRequest("DELETE", "/dictionary/entries/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteUsage(t *testing.T) {
	store := newMockEntryStore()
	store.entries[3] = &entities.DictionaryEntry{ID: 3, Word: "cat"}
	router := setupEntriesRouter(store)

	req, _ := http.NewRequest("DELETE", "/dictionary/entries/3/usages/11", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}
	if store.deletedUsage != [2]uint{3, 11} {
		t.Errorf("expected usage 11 of entry 3 to be deleted, got %v", store.deletedUsage)
	}
}

func TestDeleteUsageInvalidID(t *testing.T) {
	router := setupEntriesRouter(newMockEntryStore())

	req, _ := http.NewRequest("DELETE", "/dictionary/entries/3/usages/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
