package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mb-vendas/internal/application/dto"
	"github.com/jhoicas/mb-vendas/internal/application/sales"
)

// ReportHandler reportes de ventas.
type ReportHandler struct {
	svc *sales.Service
}

// NewReportHandler construye el handler.
func NewReportHandler(svc *sales.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Sales godoc
// @Summary      Reporte de ventas
// @Description  Sólo ventas confirmadas del rango.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date_from  query  string  false  "YYYY-MM-DD"
// @Param        date_to    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  entity.SalesReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if !bindQuery(c, &q) {
		return nil
	}
	report, err := h.svc.GetSalesReport(c.UserContext(), q.DateFrom, q.DateTo)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// SalesPDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        date_from  query  string  false  "YYYY-MM-DD"
// @Param        date_to    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if !bindQuery(c, &q) {
		return nil
	}
	pdf, err := h.svc.ReportPDF(c.UserContext(), q.DateFrom, q.DateTo)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="relatorio-vendas%s.pdf"`, rangeSuffix(q)))
	return c.Send(pdf)
}

func rangeSuffix(q dto.DateRangeQuery) string {
	s := ""
	if q.DateFrom != "" {
		s += "-" + q.DateFrom
	}
	if q.DateTo != "" {
		s += "-" + q.DateTo
	}
	return s
}
