package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/pizza_sales/config"
	"github.com/mmdatafocus/pizza_sales/middlewares"
	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/mmdatafocus/pizza_sales/models/reports"
	"github.com/mmdatafocus/pizza_sales/utils"
)

// dashboardQuery is the filter state sent by the dashboard widgets.
// Multi-valued filters accept repeated (?name=a&name=b) or comma-separated
// (?name=a,b) values. Only the repeated form can carry a name with a comma.
type dashboardQuery struct {
	Start       string   `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End         string   `form:"end" binding:"omitempty,datetime=2006-01-02"`
	Names       []string `form:"name"`
	Sizes       []string `form:"size"`
	Categories  []string `form:"category"`
	SummaryRows int      `form:"summary_rows" binding:"omitempty,min=1,max=1000"`
	SampleRows  int      `form:"sample_rows" binding:"omitempty,min=1,max=100000"`
}

func parseOptionalDate(value string) (*models.OrderDate, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(models.OrderDateLayout, value)
	if err != nil {
		return nil, err
	}
	d := models.NewOrderDate(t.Year(), t.Month(), t.Day())
	return &d, nil
}

func (q dashboardQuery) dateRange() (models.DateRange, error) {
	start, err := parseOptionalDate(q.Start)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := parseOptionalDate(q.End)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("invalid end date: %w", err)
	}
	return models.DateRange{Start: start, End: end}, nil
}

func (q dashboardQuery) filter() (reports.DashboardFilter, error) {
	r, err := q.dateRange()
	if err != nil {
		return reports.DashboardFilter{}, err
	}
	return reports.DashboardFilter{
		DateRange: r,
		Attributes: models.AttributeFilter{
			Names:      utils.QueryValues(q.Names),
			Sizes:      utils.QueryValues(q.Sizes),
			Categories: utils.QueryValues(q.Categories),
		},
		SummaryRows: q.SummaryRows,
		SampleRows:  q.SampleRows,
	}, nil
}

// bindDashboardQuery writes the 400 response itself and returns ok=false on failure.
func bindDashboardQuery(c *gin.Context) (reports.DashboardFilter, bool) {
	var q dashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "fields": utils.ProcessValidationErrors(err)})
		return reports.DashboardFilter{}, false
	}
	filter, err := q.filter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return reports.DashboardFilter{}, false
	}
	return filter, true
}

func sessionInfoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middlewares.GetSession(c)
		c.JSON(http.StatusOK, sessionResponse(session))
	}
}

func deleteSessionHandler(registry *models.SessionRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middlewares.GetSession(c)
		registry.Delete(session.ID)
		c.Status(http.StatusNoContent)
	}
}

func dashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middlewares.GetSession(c)
		filter, ok := bindDashboardQuery(c)
		if !ok {
			return
		}

		dashboard, err := reports.RunDashboard(c.Request.Context(), session.Store, filter)
		if err != nil {
			config.LogError(config.GetLogger(), "dashboardHandlers.go", "dashboardHandler", "RunDashboard", filter, err)
			c.JSON(statusForContextError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"session_id": session.ID,
			"warnings":   session.Warnings,
			"dashboard":  dashboard,
		})
	}
}

func optionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middlewares.GetSession(c)
		filter, ok := bindDashboardQuery(c)
		if !ok {
			return
		}
		dated := reports.DateFilteredOrders(c.Request.Context(), session.Store, filter.DateRange)
		c.JSON(http.StatusOK, reports.GetFilterOptions(session.Store, dated))
	}
}

type exportFunc func(w io.Writer, store *models.RowStore, orders []models.Order) error

func downloadHandler(fileName string, contentType string, export exportFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middlewares.GetSession(c)
		filter, ok := bindDashboardQuery(c)
		if !ok {
			return
		}

		// the download ignores name/size/category selections
		dated := reports.DateFilteredOrders(c.Request.Context(), session.Store, filter.DateRange)
		var buf bytes.Buffer
		if err := export(&buf, session.Store, dated); err != nil {
			config.LogError(config.GetLogger(), "dashboardHandlers.go", "downloadHandler", fileName, nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write file"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+fileName)
		c.Data(http.StatusOK, contentType, buf.Bytes())
	}
}

func downloadCsvHandler() gin.HandlerFunc {
	return downloadHandler(reports.ExportFileName+".csv", reports.CsvContentType, reports.ExportCsv)
}

func downloadExcelHandler() gin.HandlerFunc {
	return downloadHandler(reports.ExportFileName+".xlsx", reports.ExcelContentType, reports.ExportExcel)
}

func statusForContextError(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	// client went away (context.Canceled)
	return 499
}
