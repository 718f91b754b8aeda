package devserver

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"cafeteria/internal/models"
)

// HandleUserItems lists the purchasable menu.
func (s *Server) HandleUserItems(c *fiber.Ctx) error {
	items, err := s.store.AllItems()
	if err != nil {
		log.Printf("Error getting items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve items",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleAdminItems lists every item for the admin dashboard.
func (s *Server) HandleAdminItems(c *fiber.Ctx) error {
	items, err := s.store.AllItems()
	if err != nil {
		log.Printf("Error getting admin items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve items",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleUpload creates a menu item owned by the calling admin.
func (s *Server) HandleUpload(c *fiber.Ctx) error {
	var item models.FoodItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if adminID, _ := c.Locals("user_id").(string); adminID != "" {
		item.AdminID = adminID
	}

	if err := s.validate.Struct(item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := s.store.CreateItem(&item); err != nil {
		log.Printf("Error creating item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create item",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleDelete removes a menu item.
func (s *Server) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := s.store.DeleteItem(id); err != nil {
		log.Printf("Error deleting item %s: %v", id, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Could not delete item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}
