package devserver

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"cafeteria/internal/models"
)

// HandlePlaceOrder persists one order as pending. The submitted totalPrice is
// stored as-is and never recomputed, so later menu price changes cannot touch
// existing orders.
func (s *Server) HandlePlaceOrder(c *fiber.Ctx) error {
	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if userID, _ := c.Locals("user_id").(string); userID != "" {
		order.UserID = userID
	}
	if order.Quantity < 1 {
		order.Quantity = 1
	}
	if order.FoodItemID == "" || order.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "foodItemId and userId are required",
		})
	}

	if err := s.store.CreateOrder(&order); err != nil {
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandlePurchasedItems lists the calling user's orders.
func (s *Server) HandlePurchasedItems(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	orders, err := s.store.OrdersByUser(userID)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleAdminOrders lists every order.
func (s *Server) HandleAdminOrders(c *fiber.Ctx) error {
	orders, err := s.store.AllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleCompleteOrder transitions an order to completed. The completion event
// is also published to the broker when one is configured; a publish failure is
// logged and never fails the transition.
func (s *Server) HandleCompleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	order, err := s.store.CompleteOrder(id)
	if err != nil {
		log.Printf("Error completing order %s: %v", id, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Could not complete order",
			"error":   err.Error(),
		})
	}

	if s.mq != nil {
		event := map[string]interface{}{
			"orderId": order.ID,
			"userId":  order.UserID,
			"status":  order.Status,
		}
		if err := s.mq.PublishOrderCompleted(event); err != nil {
			log.Printf("Warning: Failed to publish completion event for order %s: %v", order.ID, err)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Order completed",
		"order":   order,
	})
}

// HandleRateOrder attaches a rating to a completed order, overwriting any
// previous rating. Only the purchaser may rate; the status is left alone.
func (s *Server) HandleRateOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	var req struct {
		Rating int `json:"rating"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Rating must be between 1 and 5",
		})
	}

	order, err := s.store.OrderByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Could not rate order",
			"error":   err.Error(),
		})
	}
	if userID, _ := c.Locals("user_id").(string); order.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You can only rate your own orders",
		})
	}

	if err := s.store.RateOrder(id, req.Rating); err != nil {
		log.Printf("Error rating order %s: %v", id, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not rate order",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Rating saved"})
}

// HandleSendNotification records a completion notification for a user. The
// simulator has no push channel, so delivery is a log line plus an optional
// broker publish.
func (s *Server) HandleSendNotification(c *fiber.Ctx) error {
	var req struct {
		UserID  string `json:"userId"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "userId is required",
		})
	}

	log.Printf("Notification for user %s: %s", req.UserID, req.Message)
	if s.mq != nil {
		event := map[string]interface{}{
			"userId":  req.UserID,
			"message": req.Message,
		}
		if err := s.mq.PublishNotification(event); err != nil {
			log.Printf("Warning: Failed to publish notification for user %s: %v", req.UserID, err)
		}
	}
	return c.JSON(fiber.Map{"message": "Notification sent"})
}
