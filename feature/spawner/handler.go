package spawner

import (
	"errors"
	"strconv"

	"spawner-loot/core/catalog"
	"spawner-loot/core/logger"
	"spawner-loot/feature/spawner/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the spawner operations over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the spawner, actor and catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/spawners")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDestroy)
	group.Post("/:id/loot", h.HandleAddLoot)
	group.Get("/:id/pages/:page", h.HandlePage)
	group.Post("/:id/session", h.HandleOpenSession)
	group.Delete("/:id/session", h.HandleCloseSession)
	group.Post("/:id/take", h.HandleTake)
	group.Post("/:id/sell", h.HandleSellAll)
	group.Get("/:id/siphons", h.HandleListSiphons)
	group.Post("/:id/siphons", h.HandleAttachSiphon)
	group.Delete("/:id/siphons/:siphon", h.HandleDetachSiphon)
	group.Post("/:id/siphons/:siphon/drain", h.HandleDrainSiphon)
	group.Post("/:id/persist", h.HandlePersist)
	group.Post("/:id/backup", h.HandleBackup)
	group.Post("/:id/import", h.HandleImport)

	app.Delete("/actors/:actor/sessions", h.HandleEndActor)

	app.Get("/catalog/:kind", h.HandleCatalogItem)
	app.Post("/catalog/reload", h.HandleCatalogReload)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrSiphonMissing), errors.Is(err, catalog.ErrUnknownKind):
		return fiber.StatusNotFound
	case errors.Is(err, ErrExists), errors.Is(err, ErrLocked), errors.Is(err, ErrSiphonExists):
		return fiber.StatusConflict
	case errors.Is(err, ErrNotOwner):
		return fiber.StatusForbidden
	case errors.Is(err, ErrCooldown):
		return fiber.StatusTooManyRequests
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrInvalidKind):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrSettlement):
		return fiber.StatusBadGateway
	case errors.Is(err, ErrNoPersistence), errors.Is(err, ErrNoStorage):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body: " + err.Error()})
}

// HandleList lists live spawners.
// @Summary List Spawners
// @Tags spawners
// @Produce json
// @Success 200 {array} models.Summary
// @Router /spawners [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// HandleCreate creates a spawner.
// @Summary Create Spawner
// @Tags spawners
// @Accept json
// @Produce json
// @Param body body models.CreateRequest true "Spawner"
// @Success 201 {object} models.Summary
// @Failure 409 {object} map[string]string
// @Router /spawners [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	sp, err := h.service.Create(req.ID, req.Kind)
	if err != nil {
		return h.fail(c, "Create spawner failed", err)
	}
	sum, err := h.service.Summary(sp.ID)
	if err != nil {
		return h.fail(c, "Create spawner failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(sum)
}

// HandleGet describes a spawner.
// @Summary Get Spawner
// @Tags spawners
// @Produce json
// @Param id path string true "Spawner ID"
// @Success 200 {object} models.Summary
// @Failure 404 {object} map[string]string
// @Router /spawners/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	sum, err := h.service.Summary(c.Params("id"))
	if err != nil {
		return h.fail(c, "Get spawner failed", err)
	}
	return c.JSON(sum)
}

// HandleDestroy destroys a spawner and discards its loot.
// @Summary Destroy Spawner
// @Tags spawners
// @Param id path string true "Spawner ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /spawners/{id} [delete]
func (h *Handler) HandleDestroy(c *fiber.Ctx) error {
	if err := h.service.Destroy(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, "Destroy spawner failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAddLoot feeds produced units into a spawner.
// @Summary Add Loot
// @Tags spawners
// @Accept json
// @Produce json
// @Param id path string true "Spawner ID"
// @Param body body models.LootRequest true "Units"
// @Success 200 {object} models.LootReport
// @Router /spawners/{id}/loot [post]
func (h *Handler) HandleAddLoot(c *fiber.Ctx) error {
	var req models.LootRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	report, err := h.service.AddLoot(c.Params("id"), req.Units)
	if err != nil {
		return h.fail(c, "Add loot failed", err)
	}
	return c.JSON(report)
}

// HandlePage returns one page of virtual stacks, clamped to the valid range.
// @Summary Get Page
// @Tags spawners
// @Produce json
// @Param id path string true "Spawner ID"
// @Param page path int true "Page number, from 1"
// @Success 200 {object} loot.Page
// @Router /spawners/{id}/pages/{page} [get]
func (h *Handler) HandlePage(c *fiber.Ctx) error {
	n, err := strconv.Atoi(c.Params("page"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "page must be a number"})
	}
	page, err := h.service.Page(c.Params("id"), n)
	if err != nil {
		return h.fail(c, "Get page failed", err)
	}
	return c.JSON(page)
}

// HandleOpenSession opens the spawner UI for an actor.
// @Summary Open Session
// @Tags sessions
// @Accept json
// @Param id path string true "Spawner ID"
// @Param body body models.ActorRequest true "Actor"
// @Success 204
// @Failure 409 {object} map[string]string "Spawner in use"
// @Failure 429 {object} map[string]string "Cooldown"
// @Router /spawners/{id}/session [post]
func (h *Handler) HandleOpenSession(c *fiber.Ctx) error {
	var req models.ActorRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.service.OpenSession(c.Params("id"), req.Actor); err != nil {
		return h.fail(c, "Open session failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCloseSession closes the spawner UI of an actor.
// @Summary Close Session
// @Tags sessions
// @Param id path string true "Spawner ID"
// @Param actor query string true "Actor"
// @Success 204
// @Router /spawners/{id}/session [delete]
func (h *Handler) HandleCloseSession(c *fiber.Ctx) error {
	h.service.CloseSession(c.Params("id"), c.Query("actor"))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleEndActor closes every session of a disconnected actor.
// @Summary End Actor Sessions
// @Tags sessions
// @Produce json
// @Param actor path string true "Actor"
// @Success 200 {array} string "Released spawner ids"
// @Router /actors/{actor}/sessions [delete]
func (h *Handler) HandleEndActor(c *fiber.Ctx) error {
	released := h.service.EndActor(c.Params("actor"))
	if released == nil {
		released = []string{}
	}
	return c.JSON(released)
}

// HandleTake moves loot into the inventory sent by the client.
// @Summary Take Loot
// @Tags spawners
// @Accept json
// @Produce json
// @Param id path string true "Spawner ID"
// @Param body body models.TakeRequest true "Take"
// @Success 200 {object} models.TakeReport
// @Failure 403 {object} map[string]string "No session"
// @Failure 429 {object} map[string]string "Cooldown"
// @Router /spawners/{id}/take [post]
func (h *Handler) HandleTake(c *fiber.Ctx) error {
	var req models.TakeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	report, err := h.service.Take(c.Params("id"), req)
	if err != nil {
		return h.fail(c, "Take failed", err)
	}
	return c.JSON(report)
}

// HandleSellAll sells every sellable unit of the spawner.
// @Summary Sell All
// @Tags spawners
// @Accept json
// @Produce json
// @Param id path string true "Spawner ID"
// @Param body body models.ActorRequest true "Actor"
// @Success 200 {object} models.SaleReport
// @Failure 502 {object} map[string]string "Settlement failed"
// @Router /spawners/{id}/sell [post]
func (h *Handler) HandleSellAll(c *fiber.Ctx) error {
	var req models.ActorRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	report, err := h.service.SellAll(c.Context(), c.Params("id"), req.Actor)
	if err != nil {
		return h.fail(c, "Sell all failed", err)
	}
	return c.JSON(report)
}

// HandleListSiphons lists the siphons of a spawner.
// @Summary List Siphons
// @Tags siphons
// @Produce json
// @Param id path string true "Spawner ID"
// @Success 200 {array} models.SiphonInfo
// @Router /spawners/{id}/siphons [get]
func (h *Handler) HandleListSiphons(c *fiber.Ctx) error {
	if _, err := h.service.Get(c.Params("id")); err != nil {
		return h.fail(c, "List siphons failed", err)
	}
	return c.JSON(h.service.Siphons(c.Params("id")))
}

// HandleAttachSiphon attaches a siphon.
// @Summary Attach Siphon
// @Tags siphons
// @Accept json
// @Param id path string true "Spawner ID"
// @Param body body models.SiphonRequest true "Siphon"
// @Success 201
// @Failure 409 {object} map[string]string
// @Router /spawners/{id}/siphons [post]
func (h *Handler) HandleAttachSiphon(c *fiber.Ctx) error {
	var req models.SiphonRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.service.AttachSiphon(c.Params("id"), req.ID, req.Slots); err != nil {
		return h.fail(c, "Attach siphon failed", err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// HandleDetachSiphon detaches a siphon and returns its buffered stacks.
// @Summary Detach Siphon
// @Tags siphons
// @Produce json
// @Param id path string true "Spawner ID"
// @Param siphon path string true "Siphon ID"
// @Success 200 {array} loot.Stack
// @Router /spawners/{id}/siphons/{siphon} [delete]
func (h *Handler) HandleDetachSiphon(c *fiber.Ctx) error {
	stacks, err := h.service.DetachSiphon(c.Params("id"), c.Params("siphon"))
	if err != nil {
		return h.fail(c, "Detach siphon failed", err)
	}
	return c.JSON(stacks)
}

// HandleDrainSiphon empties a siphon buffer.
// @Summary Drain Siphon
// @Tags siphons
// @Produce json
// @Param id path string true "Spawner ID"
// @Param siphon path string true "Siphon ID"
// @Success 200 {array} loot.Stack
// @Router /spawners/{id}/siphons/{siphon}/drain [post]
func (h *Handler) HandleDrainSiphon(c *fiber.Ctx) error {
	stacks, err := h.service.DrainSiphon(c.Params("id"), c.Params("siphon"))
	if err != nil {
		return h.fail(c, "Drain siphon failed", err)
	}
	return c.JSON(stacks)
}

// HandlePersist saves a spawner to the database.
// @Summary Persist Spawner
// @Tags persistence
// @Param id path string true "Spawner ID"
// @Success 204
// @Router /spawners/{id}/persist [post]
func (h *Handler) HandlePersist(c *fiber.Ctx) error {
	if err := h.service.Persist(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, "Persist failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleBackup writes a spawner snapshot to object storage.
// @Summary Backup Spawner
// @Tags persistence
// @Produce json
// @Param id path string true "Spawner ID"
// @Success 200 {object} map[string]string
// @Router /spawners/{id}/backup [post]
func (h *Handler) HandleBackup(c *fiber.Ctx) error {
	name, err := h.service.Backup(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Backup failed", err)
	}
	return c.JSON(fiber.Map{"object": name})
}

// HandleImport recreates a spawner from its snapshot.
// @Summary Import Spawner
// @Tags persistence
// @Produce json
// @Param id path string true "Spawner ID"
// @Success 201 {object} models.Summary
// @Router /spawners/{id}/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	sp, err := h.service.Import(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Import failed", err)
	}
	sum, err := h.service.Summary(sp.ID)
	if err != nil {
		return h.fail(c, "Import failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(sum)
}

// HandleCatalogItem returns the catalog entry of a kind.
// @Summary Get Catalog Item
// @Tags catalog
// @Produce json
// @Param kind path string true "Item kind"
// @Success 200 {object} catalog.Item
// @Failure 404 {object} map[string]string
// @Router /catalog/{kind} [get]
func (h *Handler) HandleCatalogItem(c *fiber.Ctx) error {
	item, err := h.service.Catalog().Lookup(c.Params("kind"))
	if err != nil {
		return h.fail(c, "Catalog lookup failed", err)
	}
	return c.JSON(item)
}

// HandleCatalogReload reloads the catalog from its source.
// @Summary Reload Catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /catalog/reload [post]
func (h *Handler) HandleCatalogReload(c *fiber.Ctx) error {
	cat, err := h.service.Catalog().Reload(c.Context())
	if err != nil {
		return h.fail(c, "Catalog reload failed", err)
	}
	return c.JSON(fiber.Map{"kinds": cat.Len(), "loaded": h.service.Catalog().Loaded()})
}
