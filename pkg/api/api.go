package api

import (
	"fmt"

	"carconnect/config"
	"carconnect/pkg/logger"
	"carconnect/service"
	"carconnect/storage"

	"github.com/gin-gonic/gin"
)

type Server struct {
	cfg    config.Config
	svc    service.IServiceManager
	blob   storage.IBlobStorage
	log    logger.ILogger
	router *gin.Engine
}

func New(cfg config.Config, svc service.IServiceManager, blob storage.IBlobStorage, log logger.ILogger) *Server {
	s := &Server{
		cfg:  cfg,
		svc:  svc,
		blob: blob,
		log:  log,
	}

	r := gin.Default()
	r.Use(corsMiddleware())
	r.SetTrustedProxies(nil)

	// Uploaded images are public; the URLs returned by the blob store
	// point here.
	r.Static("/uploads", cfg.UploadDir)

	v1 := r.Group("/api/v1")
	s.registerRoutes(v1)

	s.router = r
	return s
}

func (s *Server) registerRoutes(rg *gin.RouterGroup) {
	// Public catalog and inquiry intake
	rg.GET("/cars", s.listCars)
	rg.GET("/cars/:id", s.getCar)
	rg.POST("/inquiries", s.createInquiry)

	// Auth
	auth := rg.Group("/auth")
	{
		auth.POST("/login", s.login)
		auth.POST("/logout", s.sessionAuth(), s.logout)
		auth.GET("/session", s.sessionAuth(), s.session)
	}

	// Admin-only surface
	admin := rg.Group("/admin")
	admin.Use(s.sessionAuth(), s.requireAdmin())
	{
		admin.POST("/uploads", s.uploadImages)
		admin.POST("/cars", s.createCar)
		admin.PATCH("/cars/:id/status", s.updateCarStatus)
		admin.DELETE("/cars/:id", s.deleteCar)

		admin.GET("/inquiries", s.listInquiries)
		admin.DELETE("/inquiries/:id", s.deleteInquiry)

		admin.PUT("/settings", s.updateSettings)
	}
}

func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%d", s.cfg.AppPort))
}

// Router is exposed for httptest in handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
