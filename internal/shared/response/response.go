// Package response shapes the REST envelope. Successful responses carry a
// data payload plus optional meta, movement and reservation/transfer fields;
// errors carry {error, message, details?, status}.
package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type Meta struct {
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

// NewMeta computes total_pages with ceiling division; an empty result still
// reports one page.
func NewMeta(totalCount, page, perPage int) Meta {
	totalPages := 1
	if perPage > 0 {
		totalPages = (totalCount + perPage - 1) / perPage
		if totalPages == 0 {
			totalPages = 1
		}
	}
	return Meta{
		TotalCount: totalCount,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

type Envelope struct {
	Data          interface{} `json:"data"`
	Meta          *Meta       `json:"meta,omitempty"`
	Movement      interface{} `json:"movement,omitempty"`
	Movements     interface{} `json:"movements,omitempty"`
	ReservationID string      `json:"reservation_id,omitempty"`
	TransferID    string      `json:"transfer_id,omitempty"`
}

type ErrorBody struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Status  int         `json:"status"`
}

// Data writes a single-payload success response.
func Data(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{Data: data})
}

// List writes a paginated response and mirrors the meta into headers.
func List(c *gin.Context, statusCode int, data interface{}, meta Meta) {
	c.Header("X-Total-Count", strconv.Itoa(meta.TotalCount))
	c.Header("X-Page", strconv.Itoa(meta.Page))
	c.Header("X-Per-Page", strconv.Itoa(meta.PerPage))
	c.JSON(statusCode, Envelope{Data: data, Meta: &meta})
}

// Write emits an arbitrary envelope; used by the stock-transition endpoints.
func Write(c *gin.Context, statusCode int, env Envelope) {
	c.JSON(statusCode, env)
}

func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorBody{
		Error:   code,
		Message: message,
		Status:  statusCode,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, ErrorBody{
		Error:   code,
		Message: message,
		Details: details,
		Status:  statusCode,
	})
}
