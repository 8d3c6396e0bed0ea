package handler

import (
	"hotelchat/backend/internal/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

// NewRouter wires every route of the API.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	a := r.Group("/auth")
	{
		a.POST("/register", h.Register)
		a.POST("/login", h.Login)
		a.GET("/me", h.AuthRequired(), h.Me)
	}

	hotels := r.Group("/hotels")
	{
		hotels.GET("", h.ListHotels)
		hotels.GET("/search", h.SearchHotels)
		hotels.GET("/place/:placeId", h.GetHotel)
		hotels.POST("", h.AuthRequired(), h.CreateHotel)
	}

	operator := RequireRole(models.RoleOperator)
	chat := r.Group("/chat", h.AuthRequired())
	{
		chat.POST("/offer/:hotelPlaceId", h.OpenOffer)
		chat.GET("", h.ListMyRooms)
		chat.GET("/all", operator, h.ListAllRooms)
		chat.GET("/:roomId", h.GetRoom)
		chat.POST("/:roomId/message", h.PostMessage)
		chat.DELETE("/:roomId", operator, h.CloseRoom)
	}

	return r
}

// WithCORS wraps next with the CORS policy for the given origins.
func WithCORS(next http.Handler, allowedOrigins []string) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}
