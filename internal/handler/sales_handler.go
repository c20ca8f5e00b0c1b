package handler

import (
	"go-pos-backoffice/internal/model"
	"go-pos-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

func (h *SalesHandler) GetInvoices(c *fiber.Ctx) error {
	invoices, err := h.service.GetInvoices(tenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(invoices)
}

func (h *SalesHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	invoice, err := h.service.GetInvoice(tenantID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(invoice)
}

func (h *SalesHandler) CreateInvoice(c *fiber.Ctx) error {
	var req service.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	invoice, err := h.service.CreateInvoice(tenantID(c), &req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Invoice created", "data": invoice})
}

type updateStatusRequest struct {
	PaymentStatus model.PaymentStatus `json:"payment_status"`
}

func (h *SalesHandler) UpdatePaymentStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	invoice, err := h.service.UpdatePaymentStatus(tenantID(c), id, req.PaymentStatus)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Payment status updated", "data": invoice})
}

func (h *SalesHandler) DeleteInvoice(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	if err := h.service.DeleteInvoice(tenantID(c), id); err != nil {
		return fail(c, err)
	}

	// Unreachable today: invoice deletion is always refused.
	return c.JSON(fiber.Map{"message": "Invoice deleted"})
}
