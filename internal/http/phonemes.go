package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accentlab/lexicon/internal/entities"
)

// PhonemeStore defines the persistence operations for the consonant
// phoneme catalog.
type PhonemeStore interface {
	List() ([]entities.ConsonantPhoneme, error)
	GetByID(id uint) (*entities.ConsonantPhoneme, error)
	Create(phoneme *entities.ConsonantPhoneme) error
	Update(id uint, phoneme *entities.ConsonantPhoneme) (*entities.ConsonantPhoneme, error)
	Delete(id uint) error
	AddUsage(phonemeID, usageID uint, order *int) (*entities.ConsonantPhonemeUsage, error)
	RemoveUsage(phonemeID, usageID uint) error
}

type PhonemesController struct {
	store PhonemeStore
}

func NewPhonemesController(store PhonemeStore) *PhonemesController {
	return &PhonemesController{store: store}
}

func (controller *PhonemesController) List(c *gin.Context) {
	phonemes, err := controller.store.List()
	if err != nil {
		respondStoreError(c, err, "list consonant phonemes")
		return
	}
	c.JSON(http.StatusOK, phonemes)
}

func (controller *PhonemesController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	phoneme, err := controller.store.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "consonant phoneme")
			return
		}
		respondStoreError(c, err, "get consonant phoneme")
		return
	}
	c.JSON(http.StatusOK, phoneme)
}

func (controller *PhonemesController) Create(c *gin.Context) {
	var req CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required")
		return
	}

	sortOrder, grid := req.resolveOrder()
	phoneme := &entities.ConsonantPhoneme{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		SortOrder:   sortOrder,
		Grid:        grid,
	}
	if err := controller.store.Create(phoneme); err != nil {
		respondStoreError(c, err, "create consonant phoneme")
		return
	}
	respondCreated(c, phoneme)
}

// Update overwrites every writable field, clearing any the payload omits.
func (controller *PhonemesController) Update(c *gin.Context) {
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
	phoneme, err := controller.store.Update(id, &entities.ConsonantPhoneme{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		SortOrder:   sortOrder,
		Grid:        grid,
	})
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "consonant phoneme")
			return
		}
		respondStoreError(c, err, "update consonant phoneme")
		return
	}
	c.JSON(http.StatusOK, phoneme)
}

func (controller *PhonemesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(id); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "consonant phoneme")
			return
		}
		respondStoreError(c, err, "delete consonant phoneme")
		return
	}
	c.Status(http.StatusNoContent)
}

func (controller *PhonemesController) AddUsage(c *gin.Context) {
	phonemeID, ok := parseIDParam(c, "id")
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

	link, err := controller.store.AddUsage(phonemeID, usageID, req.Order)
	if err != nil {
		if isNotFound(err) {
			respondNotFound(c, "consonant phoneme or usage")
			return
		}
		respondStoreError(c, err, "link consonant phoneme usage")
		return
	}
	respondCreated(c, link)
}

func (controller *PhonemesController) RemoveUsage(c *gin.Context) {
	phonemeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	usageID, ok := parseIDParam(c, "usageId")
	if !ok {
		return
	}

	if err := controller.store.RemoveUsage(phonemeID, usageID); err != nil {
		if isNotFound(err) {
			respondNotFound(c, "consonant phoneme usage")
			return
		}
		respondStoreError(c, err, "unlink consonant phoneme usage")
		return
	}
	c.Status(http.StatusNoContent)
}
