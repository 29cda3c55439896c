package handlers

import (
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/retail-pos/internal/logging"
	service "github.com/aaravmahajanofficial/retail-pos/internal/services"
	"github.com/aaravmahajanofficial/retail-pos/internal/utils"
	"github.com/aaravmahajanofficial/retail-pos/internal/utils/response"
)

type ReportHandler struct {
	reportService service.ReportService
	now           func() time.Time
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService, now: time.Now}
}

// ListSales godoc
//
//	@Summary		List sales
//	@Description	Lists sales, newest first, optionally within [start, end]. A plain date as end covers the whole day.
//	@Tags			Sales
//	@Produce		json
//	@Param			start	query		string					false	"RFC 3339 time or YYYY-MM-DD"
//	@Param			end		query		string					false	"RFC 3339 time or YYYY-MM-DD"
//	@Success		200		{object}	models.SaleListResponse	"Sales"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid time range"
//	@Security		BearerAuth
//	@Router			/sales [get]
func (h *ReportHandler) ListSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		start, end, err := utils.ParseTimeRange(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		sales, err := h.reportService.ListSales(r.Context(), start, end)
		if err != nil {
			logger.Error("Failed to list sales", "error", err)
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sales)
	}
}

// GetSale godoc
//
//	@Summary	Get a sale
//	@Tags		Sales
//	@Produce	json
//	@Param		id	path		string					true	"Sale ID (UUID)"
//	@Success	200	{object}	models.Sale				"Sale with items"
//	@Failure	404	{object}	response.ErrorResponse	"Sale not found"
//	@Security	BearerAuth
//	@Router		/sales/{id} [get]
func (h *ReportHandler) GetSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		sale, err := h.reportService.GetSale(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to fetch sale", "saleID", id, "error", err)
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sale)
	}
}

// Summary godoc
//
//	@Summary		Sales summary
//	@Description	Revenue, items sold and the top products and categories over [start, end].
//	@Tags			Reports
//	@Produce		json
//	@Param			start	query		string					false	"RFC 3339 time or YYYY-MM-DD"
//	@Param			end		query		string					false	"RFC 3339 time or YYYY-MM-DD"
//	@Success		200		{object}	models.ReportSummary	"Summary"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid time range"
//	@Security		BearerAuth
//	@Router			/reports/summary [get]
func (h *ReportHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		start, end, err := utils.ParseTimeRange(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		summary, err := h.reportService.Summary(r.Context(), start, end)
		if err != nil {
			logger.Error("Failed to build sales summary", "error", err)
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// Dashboard godoc
//
//	@Summary	Store dashboard
//	@Tags		Reports
//	@Produce	json
//	@Success	200	{object}	models.Dashboard		"Dashboard"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/dashboard [get]
func (h *ReportHandler) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := logging.FromContext(r.Context())

		dashboard, err := h.reportService.Dashboard(r.Context(), h.now())
		if err != nil {
			logger.Error("Failed to build dashboard", "error", err)
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, dashboard)
	}
}
