package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/buffapp/adsync/internal/app/api/middleware"
	"github.com/buffapp/adsync/internal/app/service/connection"
	"github.com/buffapp/adsync/pkg/response"
)

type startAuthResponse struct {
	AuthURL string `json:"auth_url"`
	State   string `json:"state"`
}

// StartAuth issues the Amazon consent URL for the authenticated user.
func StartAuth(svc *connection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := mw.AuthUserID(c)
		authURL, state, err := svc.StartAuth(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT(response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(&startAuthResponse{AuthURL: authURL, State: state}))
	}
}

// OAuthCallback completes the consent flow Amazon redirects back to.
func OAuthCallback(svc *connection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		state := c.Query("state")
		if code == "" || state == "" {
			c.JSON(http.StatusBadRequest, response.ErrorT(response.APIResponseCodeBadRequest, "code and state are required"))
			return
		}

		conns, err := svc.HandleCallback(c.Request.Context(), code, state)
		if err != nil {
			if errors.Is(err, connection.ErrInvalidState) {
				c.JSON(http.StatusBadRequest, response.ErrorT(response.APIResponseCodeBadRequest, "invalid or expired state"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT(response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(conns))
	}
}

// ListConnections returns the authenticated user's connections.
func ListConnections(svc *connection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		conns, err := svc.ListByUserID(c.Request.Context(), mw.AuthUserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT(response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(conns))
	}
}

// DeleteConnection removes one connection by profile id.
func DeleteConnection(svc *connection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), c.Param("profile_id"))
		if err != nil {
			if errors.Is(err, connection.ErrNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorT(response.APIResponseCodeBadRequest, "connection not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT(response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT("deleted"))
	}
}

// RegisterConnectionRoutes wires the OAuth and connection management routes.
// The callback route is registered separately on the public group because
// Amazon calls it without a bearer token.
func RegisterConnectionRoutes(authed gin.IRouter, svc *connection.Service) {
	g := authed.Group("/connections")
	g.POST("/auth", StartAuth(svc))
	g.GET("", ListConnections(svc))
	g.DELETE("/:profile_id", DeleteConnection(svc))
}

func RegisterOAuthCallbackRoute(public gin.IRouter, svc *connection.Service) {
	public.GET("/oauth/callback", OAuthCallback(svc))
}
