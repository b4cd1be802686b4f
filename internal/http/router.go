package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	intconfig "hotelbooking/internal/config"
	h "hotelbooking/internal/http/handlers"
	"hotelbooking/internal/http/middleware"
	"hotelbooking/internal/repositories"
	"hotelbooking/internal/services"
)

func NewRouter(cfg *intconfig.Config, redisClient *goredis.Client) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(cfg.CORS.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logrus.Warnf("failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authSvc := services.AuthService{
		UserRepo: repositories.UserRepository{},
		Sessions: repositories.SessionStore{Client: redisClient},
		Secret:   []byte(cfg.JWT.Secret),
		TokenTTL: cfg.JWT.Expiration,
	}
	catalogSvc := services.CatalogService{
		HotelRepo: repositories.HotelRepository{},
		RoomRepo:  repositories.RoomRepository{},
		PageSize:  cfg.Catalog.PageSize,
	}

	authHandler := h.AuthHandler{Auth: authSvc}
	hotelHandler := h.HotelHandler{Catalog: catalogSvc}
	bookingHandler := h.BookingHandler{
		Bookings: services.BookingService{},
		Payments: services.PaymentService{},
		Docs:     services.DocsService{BookingRepo: repositories.BookingRepository{}},
	}
	blogHandler := h.BlogHandler{
		Blog: services.BlogService{BlogRepo: repositories.BlogRepository{}, PageSize: cfg.Catalog.PageSize},
	}
	contactHandler := h.ContactHandler{Contact: services.ContactService{ContactRepo: repositories.ContactRepository{}}}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/about", h.About)

		auth := api.Group("/auth")
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)

		// Catalog browsing is public.
		api.GET("/hotels", hotelHandler.List)
		api.GET("/hotels/:id", hotelHandler.Detail)
		api.GET("/cities", hotelHandler.Cities)

		api.POST("/contact", contactHandler.Submit)

		// Everything below needs an identity.
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(authSvc))

		authed.POST("/hotels/:id/bookings", bookingHandler.Create)
		authed.GET("/bookings", bookingHandler.MyBookings)
		authed.GET("/bookings/:id", bookingHandler.Detail)
		authed.POST("/bookings/:id/payment", bookingHandler.RecordPayment)
		authed.GET("/bookings/:id/invoice", bookingHandler.Invoice)

		authed.GET("/blog", blogHandler.List)
		authed.GET("/blog/:id", blogHandler.Detail)
		authed.POST("/blog/:id/comments", blogHandler.AddComment)
		authed.POST("/blog/:id/like", blogHandler.ToggleLike)
	}

	return r
}
