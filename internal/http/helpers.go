package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
	Meta  any    `json:"meta,omitempty"` // additional context (driver details, validation errors)
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondStoreError logs a store failure and sends a 500 with the SQLite
// error code and extended code attached when the driver surfaced one.
func respondStoreError(c *gin.Context, err error, context string) {
	log.Printf("Store error (%s): %v", context, err)

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  strconv.Itoa(int(sqliteErr.Code)),
			Meta:  gin.H{"extendedCode": int(sqliteErr.ExtendedCode)},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondError sends an error response with the given status code.
// Use the specific helpers (respondBadRequest, respondNotFound, etc.) when possible.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// isNotFound reports whether a store error means the record does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
