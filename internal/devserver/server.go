// Package devserver is an in-process stand-in for the cafeteria backend. The
// storefront client treats the backend as an external collaborator; this
// server implements the same REST contract so the client can be developed and
// integration-tested without one.
package devserver

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"cafeteria/pkg/rabbitmq"
)

// Server holds the simulator's dependencies.
type Server struct {
	store     *Store
	validate  *validator.Validate
	jwtSecret []byte
	mq        *rabbitmq.Client // optional, nil when no broker is configured
}

// New creates a Server on an open database connection. mq may be nil.
func New(db *gorm.DB, jwtSecret string, mq *rabbitmq.Client) (*Server, error) {
	store, err := NewStore(db)
	if err != nil {
		return nil, err
	}
	return &Server{
		store:     store,
		validate:  validator.New(),
		jwtSecret: []byte(jwtSecret),
		mq:        mq,
	}, nil
}

// App assembles the Fiber app with all routes from the endpoint contract.
func (s *Server) App() *fiber.App {
	app := fiber.New()
	app.Use(logger.New())

	auth := app.Group("/api/auth")
	auth.Post("/register", s.HandleRegister)
	auth.Post("/login", s.HandleLogin)

	user := app.Group("/api/user", s.authRequired())
	user.Get("/items", s.HandleUserItems)
	user.Get("/purchasedItems", s.HandlePurchasedItems)
	user.Post("/placeOrder", s.HandlePlaceOrder)
	user.Post("/rateOrder/:id", s.HandleRateOrder)
	user.Post("/sendNotification", s.HandleSendNotification)

	admin := app.Group("/api/admin", s.authRequired(), adminOnly())
	admin.Get("/items", s.HandleAdminItems)
	admin.Post("/upload", s.HandleUpload)
	admin.Delete("/delete/:id", s.HandleDelete)
	admin.Get("/orders", s.HandleAdminOrders)
	admin.Put("/complete-order/:id", s.HandleCompleteOrder)

	return app
}
