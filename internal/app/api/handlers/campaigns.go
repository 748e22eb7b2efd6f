package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buffapp/adsync/internal/app/service/campaign"
	"github.com/buffapp/adsync/pkg/response"
)

// SyncUserCampaigns pulls campaign metadata for every connection the user holds.
func SyncUserCampaigns(svc *campaign.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.SyncUserCampaigns(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			if errors.Is(err, campaign.ErrNoConnections) {
				c.JSON(http.StatusNotFound, response.ErrorT(response.APIResponseCodeBadRequest, "no connections found for user"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT(response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterCampaignRoutes(r gin.IRouter, svc *campaign.Service) {
	g := r.Group("/campaigns")
	g.POST("/sync/user/:user_id", SyncUserCampaigns(svc))
}
