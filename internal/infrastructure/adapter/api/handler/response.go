package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/middleware"
)

// bindJSON decodes the request body and writes a 400 response when it is malformed
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.AbortWithError(c, fmt.Errorf("%w: invalid request format: %s", errs.ErrInvalidRequest, err.Error()))
		return false
	}
	return true
}

// respondError writes the error response. Server side failures are logged with their detail,
// which never reaches the client.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	if errs.ErrorCode(err) >= errs.CodeInternalServer {
		fields := errs.LogFields(err)
		fields["operation"] = operation
		fields["request_id"] = middleware.GetRequestID(c)
		logger.Error("Request failed", fields)
	}
	middleware.AbortWithError(c, err)
}

// currentUser returns the authenticated user. Routes using it are behind Authenticate.
func currentUser(c *gin.Context) (*entity.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.AbortWithError(c, errs.ErrMissingToken)
	}
	return user, ok
}
