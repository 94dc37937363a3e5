package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "cryptoex/internal/errors"
	"cryptoex/internal/pagination"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope written by middleware.ErrorHandler.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// FlatErrorResponse is the single-string error body of the /api/crypto proxy.
type FlatErrorResponse struct {
	Error string `json:"error"`
}

// SearchQuery is the optional free-text filter shared by list pages.
type SearchQuery struct {
	Search string `form:"search" binding:"omitempty,max=64"`
}

// bindPage parses page and page_size from the query string. Defaults are
// applied by the service.
func bindPage(c *gin.Context) (pagination.PageRequest, error) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return page, nil
}

// bindSearch parses the search query parameter.
func bindSearch(c *gin.Context) (string, error) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return q.Search, nil
}

// abortWithError attaches err to the request and stops the chain.
// middleware.ErrorHandler renders it as an ErrorResponse.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
