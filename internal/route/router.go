package router

import (
	"net/http"

	adminHandler "travel-service/internal/module/admin/handler"
	bookingHandler "travel-service/internal/module/booking/handler"
	contentHandler "travel-service/internal/module/content/handler"
	reviewHandler "travel-service/internal/module/review/handler"
	serviceHandler "travel-service/internal/module/service/handler"
	tourHandler "travel-service/internal/module/tour/handler"
	userHandler "travel-service/internal/module/user/handler"
	"travel-service/internal/pkg/middleware"
	"travel-service/internal/pkg/scheduler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type Handlers struct {
	Tour    *tourHandler.TourHandler
	Service *serviceHandler.ServiceHandler
	Booking *bookingHandler.BookingHandler
	Content *contentHandler.ContentHandler
	Review  *reviewHandler.ReviewHandler
	User    *userHandler.UserHandler
	Admin   *adminHandler.AdminHandler
}

// Initialize mounts every route. monitoring is optional and admin-only.
func Initialize(app *fiber.App, h *Handlers, m *middleware.Middleware, monitoring http.Handler) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	if monitoring != nil {
		app.All(scheduler.MonitoringPath+"/*", m.ValidateToken, m.Authorize("monitoring", middleware.ActManage), adaptor.HTTPHandler(monitoring))
	}

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.User.Register)
	auth.Post("/login", h.User.Login)
	auth.Get("/me", m.ValidateToken, h.User.Me)
	auth.Put("/preferences", m.ValidateToken, h.User.UpdatePreferences)

	// public routes
	api.Get("/tours", h.Tour.ListTours)
	api.Get("/tours/:id", h.Tour.GetTour)
	api.Get("/tours/:id/reviews", h.Review.ListTourReviews)
	api.Post("/tours/:id/reviews", m.ValidateToken, h.Review.CreateReview)
	api.Delete("/reviews/:id", m.ValidateToken, h.Review.DeleteReview)

	api.Get("/services", h.Service.ListServices)
	api.Get("/services/featured", h.Service.FeaturedServices)
	api.Get("/services/categories", h.Service.Categories)
	api.Get("/services/:id", h.Service.GetService)

	api.Post("/bookings", m.OptionalToken, h.Booking.CreateBooking)
	api.Get("/bookings/lookup/:number", h.Booking.LookupBooking)

	api.Get("/content", h.Content.ListContent)
	api.Get("/content/slug/:slug", h.Content.GetBySlug)

	// back office
	admin := api.Group("/admin", m.ValidateToken)
	admin.Get("/stats", m.Authorize("stats", middleware.ActRead), h.Admin.Dashboard)

	tours := admin.Group("/tours")
	tours.Get("/", m.Authorize("tours", middleware.ActRead), h.Tour.AdminListTours)
	tours.Get("/:id", m.Authorize("tours", middleware.ActRead), h.Tour.AdminGetTour)
	tours.Post("/", m.Authorize("tours", middleware.ActWrite), h.Tour.CreateTour)
	tours.Put("/:id", m.Authorize("tours", middleware.ActWrite), h.Tour.UpdateTour)
	tours.Put("/:id/status", m.Authorize("tours", middleware.ActWrite), h.Tour.UpdateStatus)
	tours.Put("/:id/images", m.Authorize("uploads", middleware.ActWrite), h.Tour.UpdateImages)
	tours.Delete("/:id", m.Authorize("tours", middleware.ActWrite), h.Tour.DeleteTour)

	services := admin.Group("/services")
	services.Get("/", m.Authorize("services", middleware.ActRead), h.Service.AdminListServices)
	services.Get("/:id", m.Authorize("services", middleware.ActRead), h.Service.AdminGetService)
	services.Post("/", m.Authorize("services", middleware.ActWrite), h.Service.CreateService)
	services.Put("/:id", m.Authorize("services", middleware.ActWrite), h.Service.UpdateService)
	services.Put("/:id/status", m.Authorize("services", middleware.ActWrite), h.Service.UpdateStatus)
	services.Put("/:id/images", m.Authorize("uploads", middleware.ActWrite), h.Service.UpdateImages)
	services.Delete("/:id", m.Authorize("services", middleware.ActWrite), h.Service.DeleteService)

	content := admin.Group("/content")
	content.Get("/", m.Authorize("content", middleware.ActRead), h.Content.AdminListContent)
	content.Get("/:id", m.Authorize("content", middleware.ActRead), h.Content.AdminGetContent)
	content.Post("/", m.Authorize("content", middleware.ActWrite), h.Content.CreateContent)
	content.Put("/:id", m.Authorize("content", middleware.ActWrite), h.Content.UpdateContent)
	content.Put("/:id/image", m.Authorize("uploads", middleware.ActWrite), h.Content.UpdateImage)
	content.Delete("/:id", m.Authorize("content", middleware.ActWrite), h.Content.DeleteContent)

	bookings := admin.Group("/bookings")
	bookings.Get("/", m.Authorize("bookings", middleware.ActRead), h.Booking.ListBookings)
	bookings.Get("/stats", m.Authorize("bookings", middleware.ActRead), h.Booking.BookingStats)
	bookings.Get("/export", m.Authorize("bookings", middleware.ActRead), h.Booking.ExportBookings)
	bookings.Get("/:id", m.Authorize("bookings", middleware.ActRead), h.Booking.GetBooking)
	bookings.Put("/:id/status", m.Authorize("bookings", middleware.ActWrite), h.Booking.UpdateStatus)
	bookings.Delete("/:id", m.Authorize("bookings", middleware.ActWrite), h.Booking.DeleteBooking)

	admin.Get("/reviews", m.Authorize("reviews", middleware.ActRead), h.Review.AdminListReviews)

	admin.Get("/users", m.Authorize("users", middleware.ActRead), h.User.AdminListUsers)
	admin.Put("/users/:id/role", m.Authorize("users", middleware.ActManage), h.User.UpdateRole)

	return app

}
