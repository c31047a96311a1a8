package employee

import (
	"errors"

	"hris-sync/core/logger"
	"hris-sync/core/reconcile"
	"hris-sync/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests that trigger reconciliation passes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SelectedRequest is the body of POST /sync/selected.
type SelectedRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleFullSync)
	group.Post("/selected", h.HandleSelectedSync)
	group.Get("/export", h.HandleExport)
	group.Get("/reports", h.HandleListReports)
	group.Get("/reports/:id", h.HandleGetReport)
}

// HandleFullSync runs a pass over the whole staff population.
// @Summary Run Full Sync
// @Description Reconciles every staff employee with the directory. Without apply=true the pass is a dry run.
// @Tags sync
// @Produce json
// @Param apply query bool false "Apply changes to the directory"
// @Success 200 {object} reconcile.SyncReport "Sync Report"
// @Failure 502 {object} map[string]string "Source or directory unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync [post]
func (h *Handler) HandleFullSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	apply := c.QueryBool("apply", false)
	l.Info("Full sync requested", zap.Bool("apply", apply))

	report, err := h.service.RunFullSync(c.Context(), !apply)
	if err != nil {
		return h.fail(c, l, "Full sync failed", err)
	}
	return c.JSON(report)
}

// HandleSelectedSync applies changes for the listed employees only.
// @Summary Run Selected Sync
// @Description Reconciles and applies changes for the given employee ids. Unknown ids are skipped.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body SelectedRequest true "Employee ids"
// @Success 200 {object} reconcile.SyncReport "Sync Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Source or directory unavailable"
// @Router /sync/selected [post]
func (h *Handler) HandleSelectedSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req SelectedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if len(req.EmployeeIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employee_ids is required"})
	}
	l.Info("Selected sync requested", zap.Int("count", len(req.EmployeeIDs)))

	report, err := h.service.RunSelectedSync(c.Context(), req.EmployeeIDs)
	if err != nil {
		return h.fail(c, l, "Selected sync failed", err)
	}
	return c.JSON(report)
}

// HandleExport streams the comparison report as CSV.
// @Summary Export Comparison Report
// @Description Side-by-side CSV of HR and directory attributes. Read-only.
// @Tags sync
// @Produce text/csv
// @Success 200 {string} string "CSV"
// @Failure 502 {object} map[string]string "Source or directory unavailable"
// @Router /sync/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	data, err := h.service.ComparisonCSV(c.Context())
	if err != nil {
		return h.fail(c, l, "Export failed", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="hris-directory-comparison.csv"`)
	return c.Send(data)
}

// HandleListReports lists archived run ids.
// @Summary List Sync Reports
// @Tags sync
// @Produce json
// @Success 200 {object} map[string][]string "Run ids"
// @Failure 404 {object} map[string]string "Archive disabled"
// @Router /sync/reports [get]
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	ids, err := h.service.ListReports(c.Context())
	if err != nil {
		return h.fail(c, l, "Listing reports failed", err)
	}
	return c.JSON(fiber.Map{"reports": ids})
}

// HandleGetReport returns one archived report.
// @Summary Get Sync Report
// @Tags sync
// @Produce json
// @Param id path string true "Run id"
// @Success 200 {object} reconcile.SyncReport "Sync Report"
// @Failure 404 {object} map[string]string "Archive disabled or unknown run id"
// @Router /sync/reports/{id} [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.GetReport(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, l, "Fetching report failed", err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	l.Error(msg, zap.Error(err))

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, reconcile.ErrExtract):
		status = fiber.StatusBadGateway
	case errors.Is(err, ErrArchiveDisabled), errors.Is(err, storage.ErrNotFound):
		status = fiber.StatusNotFound
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
