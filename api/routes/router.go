// api/routes/router.go
package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"boxoffice/internal/checkout"
	"boxoffice/internal/events"
	"boxoffice/internal/pricing"
	"boxoffice/internal/seats"
	"boxoffice/internal/shared/config"
	"boxoffice/internal/shared/database"
	"boxoffice/internal/tickets"
	"boxoffice/pkg/cache"

	"github.com/gin-gonic/gin"
)

const serviceName = "boxoffice-backend"

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher checkout.OrderPublisher
	cache     cache.Service // nil without Redis

	// Shared services, built once and injected into dependent modules
	pricingService pricing.Service
	eventService   events.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher checkout.OrderPublisher) *Router {
	r := &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
	if db.HasRedis() {
		r.cache = cache.NewService(db.GetRedisClient())
	}
	return r
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) error {
	if err := checkout.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register checkout validators: %w", err)
	}

	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Pricing and catalog first, later modules depend on them
		r.setupPricingRoutes(api)
		r.setupEventRoutes(api)

		r.setupSelectionRoutes(api)
		r.setupTicketRoutes(api)
		r.setupCheckoutRoutes(api)
	}
	return nil
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		err := r.checkHealth(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   serviceName,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   serviceName,
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":           "operational",
			"api_version":      r.config.APIVersion,
			"selection_store":  r.selectionStoreName(),
			"service_fee_rate": r.config.Storefront.ServiceFeeRate.String(),
			"timestamp":        time.Now(),
		})
	})
}

// checkHealth pings Redis when configured, then the order publisher
func (r *Router) checkHealth(ctx context.Context) error {
	if r.cache != nil {
		if err := r.cache.Ping(ctx); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
	}
	return r.publisher.HealthCheck(ctx)
}

// setupPricingRoutes configures the price breakdown routes
func (r *Router) setupPricingRoutes(rg *gin.RouterGroup) {
	r.pricingService = pricing.NewService(r.config.Storefront.ServiceFeeRate)
	pricing.SetupPricingRoutes(rg, pricing.NewController(r.pricingService))
}

// setupEventRoutes configures catalog routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepositoryWithMaxQuantity(r.config.Storefront.MaxTicketsPerOrder)
	r.eventService = events.NewService(eventRepo, r.pricingService)
	events.SetupEventRoutes(rg, events.NewController(r.eventService))
}

// setupSelectionRoutes configures seat selection session routes
func (r *Router) setupSelectionRoutes(rg *gin.RouterGroup) {
	selectionService := seats.NewService(r.newSelectionStore(), r.eventService, r.pricingService)
	seats.SetupSelectionRoutes(rg, seats.NewController(selectionService))
}

// setupTicketRoutes configures purchased ticket routes
func (r *Router) setupTicketRoutes(rg *gin.RouterGroup) {
	tickets.SetupTicketRoutes(rg, tickets.NewController(tickets.NewRepository()))
}

// setupCheckoutRoutes configures order submission
func (r *Router) setupCheckoutRoutes(rg *gin.RouterGroup) {
	checkoutService := checkout.NewService(r.eventService, r.pricingService, r.publisher)
	checkout.SetupCheckoutRoutes(rg, checkout.NewController(checkoutService))
}

// newSelectionStore keeps sessions in Redis when connected, in process memory otherwise
func (r *Router) newSelectionStore() seats.Store {
	ttl := r.config.Storefront.SelectionTTL
	if r.cache != nil {
		return seats.NewRedisStore(r.cache, ttl)
	}
	return seats.NewMemoryStore(ttl)
}

func (r *Router) selectionStoreName() string {
	if r.cache != nil {
		return "redis"
	}
	return "memory"
}
