package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"blue-star-api/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	authServ *service.AuthService,
	authH *AuthHandler,
	otpH *OTPHandler,
	categoryH *CategoryHandler,
	inventoryH *InventoryHandler,
	corsOrigin string,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: request id, logging, recovery y CORS con
	// allow-list del origen del frontend.
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())
	if corsOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{corsOrigin},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	auth := r.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/logout", authH.Logout)

	r.POST("/check-email", otpH.CheckEmail)
	r.POST("/verify-otp", otpH.VerifyOTP)

	protected := RequireAuth(authServ)
	r.GET("/user/me", protected, authH.Me)

	r.GET("/category", categoryH.Search)
	r.POST("/category", protected, categoryH.Create)
	r.PUT("/category/:id", protected, categoryH.Update)
	r.DELETE("/category/:id", protected, categoryH.Delete)

	r.GET("/inventory", inventoryH.Search)
	r.POST("/inventory", protected, inventoryH.Create)
	r.PUT("/inventory/:id", protected, inventoryH.Update)
	r.DELETE("/inventory/:id", protected, inventoryH.Delete)

	return r
}

// requestIDMiddleware asigna un id unico por request para correlacion.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
