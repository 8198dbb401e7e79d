package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/procurement-service/internal/api/dto"
	"github.com/spec-kit/procurement-service/internal/auth"
	"github.com/spec-kit/procurement-service/internal/service"
	apperrors "github.com/spec-kit/procurement-service/pkg/util"
)

// TicketsHandler serves the procurement ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /ticket.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}
	if req.Count <= 0 {
		return apperrors.NewValidationError("count must be positive", nil)
	}

	view, err := h.service.Create(c.UserContext(), actor, service.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Count:       req.Count,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": view})
}

// ListTickets GET /ticket.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	offset := parseNonNegative(c.Query("offset"), 0)
	limit := parseNonNegative(c.Query("limit"), 20)
	if limit > 100 {
		limit = 100
	}

	view, err := h.service.List(c.UserContext(), offset, limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// GetTicket GET /ticket/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}
	view, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// EditTicket PATCH /ticket/:id.
func (h *TicketsHandler) EditTicket(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}
	var req dto.EditTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	op, err := req.Operation()
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	view, err := h.service.Edit(c.UserContext(), actor, id, op)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

func parseNonNegative(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}
