package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/buffapp/adsync/internal/app/service/connection"
	"github.com/buffapp/adsync/internal/app/service/report"
	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/pkg/response"
)

type syncReportsRequest struct {
	AdProducts []string `json:"ad_products"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
}

// bindSyncRequest decodes an optional JSON body and query parameters; an
// empty request means "all products, default date range". Query parameters
// take precedence over the body.
func bindSyncRequest(c *gin.Context) (*syncReportsRequest, error) {
	var req syncReportsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
	}
	if p := c.Query("ad_product"); p != "" {
		req.AdProducts = []string{p}
	}
	if v := c.Query("start_date"); v != "" {
		req.StartDate = v
	}
	if v := c.Query("end_date"); v != "" {
		req.EndDate = v
	}
	return &req, nil
}

func (r *syncReportsRequest) products() ([]models.AdProduct, error) {
	products := lo.Map(r.AdProducts, func(s string, _ int) models.AdProduct {
		return models.AdProduct(s)
	})
	for _, p := range products {
		if !p.Valid() {
			return nil, errors.New("unknown ad product: " + string(p))
		}
	}
	return products, nil
}

// SyncUserReports creates reports for every connection the user holds.
func SyncUserReports(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := bindSyncRequest(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT(response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		products, err := req.products()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT(response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		res, err := svc.SyncUserReports(c.Request.Context(), c.Param("user_id"), products, req.StartDate, req.EndDate)
		if err != nil {
			if errors.Is(err, report.ErrNoConnections) {
				c.JSON(http.StatusNotFound, response.ErrorT(response.APIResponseCodeBadRequest, "no connections found for user"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT(response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// SyncProfileReports creates reports for a single profile.
func SyncProfileReports(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := bindSyncRequest(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT(response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		products, err := req.products()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorT(response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		res, err := svc.SyncProfileReports(c.Request.Context(), c.Param("profile_id"), products, req.StartDate, req.EndDate)
		if err != nil {
			if errors.Is(err, connection.ErrNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorT(response.APIResponseCodeBadRequest, "connection not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT(response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// ProcessReport drives one report through the lifecycle state machine.
func ProcessReport(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.ProcessReport(c.Request.Context(), c.Param("report_id"))
		if err != nil {
			if errors.Is(err, report.ErrReportNotFound) {
				c.JSON(http.StatusNotFound, response.ErrorT(response.APIResponseCodeBadRequest, "report not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT(response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// ProcessPendingReports drains pending reports, optionally scoped by user or
// profile via query parameters.
func ProcessPendingReports(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		res, err := svc.ProcessMultipleReports(c.Request.Context(), c.Query("user_id"), c.Query("profile_id"), limit)
		if err != nil {
			if errors.Is(err, report.ErrNoMatchingReports) {
				c.JSON(http.StatusNotFound, response.ErrorT(response.APIResponseCodeBadRequest, "no pending reports match the requested scope"))
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorT(response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterReportRoutes(r gin.IRouter, svc *report.Service) {
	g := r.Group("/reports")
	g.POST("/sync/user/:user_id", SyncUserReports(svc))
	g.POST("/sync/profile/:profile_id", SyncProfileReports(svc))
	g.POST("/process/:report_id", ProcessReport(svc))
	g.POST("/process", ProcessPendingReports(svc))
}
