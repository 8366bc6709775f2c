package integrity

import (
	"errors"

	"spawner-loot/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/catalog", h.HandleCatalogCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/loot", h.HandleLootCheck)
	group.Get("/snapshots", h.HandleSnapshotCheck)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrNoStorage) {
		status = fiber.StatusServiceUnavailable
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs every check; failures are reported per check.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Info("Triggering all integrity checks")
	return c.JSON(h.service.Report(c.Context()))
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks that the snapshot and catalog folders exist in the bucket. Optionally creates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix")

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		return h.fail(c, "Structure check failed", err)
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{"status": "fixed", "fixed": missing})
		}
	}

	return c.JSON(fiber.Map{"status": "checked", "missing": missing})
}

// HandleCatalogCheck checks the catalog object.
// @Summary Check Catalog
// @Description Verifies that the item catalog exists in the bucket and parses.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.CatalogReport
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /integrity/catalog [get]
func (h *Handler) HandleCatalogCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckCatalog(c.Context())
	if err != nil {
		return h.fail(c, "Catalog check failed", err)
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the database schema.
// @Summary Check Schema
// @Description Compares the spawner tables with the persisted models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSchema()
	if err != nil {
		return h.fail(c, "Schema check failed", err)
	}
	return c.JSON(report)
}

// HandleLootCheck validates stored loot rows.
// @Summary Check Stored Loot
// @Description Decodes every persisted loot row and reports orphans and duplicates.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.LootReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/loot [get]
func (h *Handler) HandleLootCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckLoot()
	if err != nil {
		return h.fail(c, "Loot check failed", err)
	}
	return c.JSON(report)
}

// HandleSnapshotCheck reports spawners without backups and stale snapshots.
// @Summary Check Snapshots
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SnapshotReport
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /integrity/snapshots [get]
func (h *Handler) HandleSnapshotCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSnapshots(c.Context())
	if err != nil {
		return h.fail(c, "Snapshot check failed", err)
	}
	return c.JSON(report)
}
