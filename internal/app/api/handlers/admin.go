package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buffapp/adsync/internal/app/service/report"
	"github.com/buffapp/adsync/pkg/response"
)

// ScanReports lists report rows with arbitrary column filters and paging,
// for internal dashboards and support tooling.
func ScanReports(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req report.ScanReportsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT(response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := svc.ScanReports(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorT(response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterAdminRoutes(r gin.IRouter, svc *report.Service) {
	r.POST("/reports/scan", ScanReports(svc))
}
