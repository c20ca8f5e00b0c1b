package handler

import (
	"go-pos-backoffice/internal/model"
	"go-pos-backoffice/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RegistryHandler struct {
	service service.RegistryService
}

func NewRegistryHandler(s service.RegistryService) *RegistryHandler {
	return &RegistryHandler{service: s}
}

func (h *RegistryHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetCustomers(tenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customers)
}

func (h *RegistryHandler) CreateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateCustomer(tenantID(c), &customer); err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": customer})
}

func (h *RegistryHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateCustomer(tenantID(c), id, &customer)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Customer updated", "data": updated})
}

func (h *RegistryHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	if err := h.service.DeleteCustomer(tenantID(c), id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Customer deleted"})
}

func (h *RegistryHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetSuppliers(tenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(suppliers)
}

func (h *RegistryHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateSupplier(tenantID(c), &supplier); err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Supplier created", "data": supplier})
}

func (h *RegistryHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateSupplier(tenantID(c), id, &supplier)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Supplier updated", "data": updated})
}

func (h *RegistryHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	if err := h.service.DeleteSupplier(tenantID(c), id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Supplier deleted"})
}
