package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accentlab/lexicon/internal/entities"
)

// LexicalSetStore defines the persistence operations for the lexical set
// catalog.
type LexicalSetStore interface {
	List() ([]entities.LexicalSet, error)
	GetByID(id uint) (*entities.LexicalSet, error)
	Create(set *entities.LexicalSet) error
	Update(id uint, set *entities.LexicalSet) (*entities.LexicalSet, error)
	Delete(id uint) error
	AddUsage(setID, usageID uint, order *int) (*entities.LexicalSetUsage, error)
	RemoveUsage(setID, usageID uint) error
}

type LexicalSetsController struct {
	store LexicalSetStore
}

func NewLexicalSetsController(store LexicalSetStore) *LexicalSetsController {
	return &LexicalSetsController{store: store}
}

// CatalogRequest is the shared write payload for both catalogs. Clients
// either send sortOrder/gridPosition directly or the legacy packed order
// integer, which is decoded into both.
type CatalogRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	SortOrder   *int                   `json:"sortOrder"`
	Grid        *entities.GridPosition `json:"gridPosition"`

	// Legacy packed field: section*10000 + row*100 + col + 10000.
	Order *int `json:"order"`
}

// resolveOrder merges the explicit fields with the legacy packed order.
// Explicit values win; a zero (falsy) legacy order is treated as absent.
func (r *CatalogRequest) resolveOrder() (*int, *entities.GridPosition) {
	sortOrder := r.SortOrder
	grid := r.Grid
	if r.Order != nil && *r.Order != 0 {
		if sortOrder == nil {
			sortOrder = r.Order
		}
		if grid == nil {
			g := entities.DecodeLegacyOrder(*r.Order)
			grid = &g
		}
	}
	return sortOrder, grid
}

type usageLinkRequest struct {
	Order *int `json:"order"`
}

func (controller *LexicalSetsController) List(c *gin.Context) {
	sets, err := controller.store.List()
	if err != nil {
		respondStoreError(c, err, "list lexical sets")
		return
	}
	c.JSON(http.StatusOK, sets)
}

func (controller *LexicalSetsController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	set, err := controller.store.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "lexical set")
			return
		}
		respondStoreError(c, err, "get lexical set")
		return
	}
	c.JSON(http.StatusOK, set)
}

func (controller *LexicalSetsController) Create(c *gin.Context) {
	var req CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	sortOrder, grid := req.resolveOrder()
	set := &entities.LexicalSet{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		SortOrder:   sortOrder,
		Grid:        grid,
	}
	if err := controller.store.Create(set); err != nil {
		respondStoreError(c, err, "create lexical set")
		return
	}
	respondCreated(c, set)
}

// Update overwrites every writable field, clearing any the payload omits.
func (controller *LexicalSetsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	sortOrder, grid := req.resolveOrder()
	set, err := controller.store.Update(id, &entities.LexicalSet{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		SortOrder:   sortOrder,
		Grid:        grid,
	})
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "lexical set")
			return
		}
		respondStoreError(c, err, "update lexical set")
		return
	}
	c.JSON(http.StatusOK, set)
}

func (controller *LexicalSetsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "lexical set")
			return
		}
		respondStoreError(c, err, "delete lexical set")
		return
	}
	c.Status(http.StatusNoContent)
}

func (controller *LexicalSetsController) AddUsage(c *gin.Context) {
	setID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	usageID, ok := parseIDParam(c, "usageId")
	if !ok {
		return
	}

	// Body is optional; an absent body links without an order.
	var req usageLinkRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBadRequest(c, "invalid request body")
			return
		}
	}

	link, err := controller.store.AddUsage(setID, usageID, req.Order)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "lexical set or usage")
			return
		}
		respondStoreError(c, err, "link lexical set usage")
		return
	}
	respondCreated(c, link)
}

func (controller *LexicalSetsController) RemoveUsage(c *gin.Context) {
	setID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	usageID, ok := parseIDParam(c, "usageId")
	if !ok {
		return
	}

	if err := controller.store.RemoveUsage(setID, usageID); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "lexical set usage")
			return
		}
		respondStoreError(c, err, "unlink lexical set usage")
		return
	}
	c.Status(http.StatusNoContent)
}
