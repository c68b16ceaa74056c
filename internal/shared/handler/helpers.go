package handler

import (
	"fmt"
	"net/http"
	"strconv"

	sharedError "github.com/dormlife/community-api/internal/shared/error"
	"github.com/dormlife/community-api/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req SignupRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		// Add error to context for middleware logging
		c.Error(err)

		// Check if it's a validation error
		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			// JSON parsing error or other binding errors
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// RespondError records err for the logger middleware and sends errResp
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	c.Error(err)
	c.JSON(errResp.Status, errResp)
}

// RespondDomainError sends the response registered for err, or 500 when none is.
//
// Usage:
//
//	if err := service.DeletePost(ctx, memberID, postID); err != nil {
//	    handler.RespondDomainError(c, err)
//	    return
//	}
func RespondDomainError(c *gin.Context, err error) {
	RespondError(c, err, sharedError.Resolve(err))
}

// BindForm parses and validates a form or multipart request body
// Returns true if binding succeeded, false if failed (response already sent)
func BindForm(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		c.Error(err)

		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// BindQuery parses and validates query parameters
func BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.Error(err)

		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// ParamID reads a positive numeric path parameter such as :postId
// Returns false if the parameter is missing or malformed (response already sent)
func ParamID(c *gin.Context, name string) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.Error(fmt.Errorf("invalid path parameter %s=%q", name, c.Param(name)))
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return uint32(id), true
}
