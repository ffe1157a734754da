package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gramseva/gramseva-backend/services"
	"github.com/gramseva/gramseva-backend/utils"
)

// requester pulls the authenticated caller out of the context set by
// the auth middleware.
func requester(c *gin.Context) (services.Requester, bool) {
	claimsVal, exists := c.Get("userClaims")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.APIResponse(true, "unauthorized", nil, http.StatusUnauthorized))
		return services.Requester{}, false
	}
	claims, ok := claimsVal.(*utils.JWTClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.APIResponse(true, "invalid user claims", nil, http.StatusUnauthorized))
		return services.Requester{}, false
	}
	return services.RequesterFromClaims(claims.UserID, claims.RuralBodyID, claims.Role), true
}

// respondError maps domain errors to HTTP statuses. Cross-tenant and
// non-owner failures come through as ErrNotFound and stay a 404.
// Anything outside the domain taxonomy is an infrastructure failure;
// its message stays in the logs, never in the response body.
func respondError(c *gin.Context, err error) {
	if !services.IsDomainError(err) {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError,
			utils.APIResponse(true, "internal server error", nil, http.StatusInternalServerError))
		return
	}

	status := http.StatusBadRequest
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	c.JSON(status, utils.APIResponse(true, err.Error(), nil, status))
}
