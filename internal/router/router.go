// Package router defines how the API's HTTP routes are registered.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/config"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/handler"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/middleware"
)

// Handlers bundles every constructed handler so main can register the
// whole surface in one call.
type Handlers struct {
	Auth       *handler.AuthHandler
	Orders     *handler.OrderHandler
	Ledger     *handler.LedgerHandler
	StonePrice *handler.LookupHandler
	Finishing  *handler.LookupHandler
	Sizes      *handler.LookupHandler
	Thickness  *handler.LookupHandler
	Settings   *handler.SettingsHandler
	Quotations *handler.QuotationHandler
	StoneStock *handler.LookupHandler
	Machinery  *handler.LookupHandler
	Employees  *handler.EmployeeHandler
}

// RegisterRoutes wires the full /api surface.  Only the mines ledger
// sits behind JWT authentication; every other endpoint is open, matching
// how the factory clients consume the API.  When Redis is reachable the
// login route is rate limited and the pricing-table list endpoints are
// served through the response cache; without Redis both degrade to
// plain handlers.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client) {
	api := e.Group("/api")

	api.GET("/health", handler.Health)

	// Login takes the brunt of credential-stuffing traffic, so it gets
	// its own token bucket.
	if rdb != nil {
		api.POST("/login", h.Auth.Login, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	} else {
		api.POST("/login", h.Auth.Login)
	}

	registerOrders(api, h.Orders)
	registerLedger(api, h.Ledger, jwtSecret)
	registerPricing(api, h, rdb)
	registerSettings(api, h.Settings)
	registerQuotations(api, h.Quotations)
	registerLookup(api, "/stone_ledger_data", h.StoneStock, nil)
	registerLookup(api, "/machinery_ledger_data", h.Machinery, nil)
	registerEmployees(api, h.Employees)
}

func registerOrders(g *echo.Group, h *handler.OrderHandler) {
	g.GET("/orders", h.List)
	g.POST("/orders", h.Create)
	g.GET("/orders/:id", h.Get)
	g.PUT("/orders/:id", h.Update)
	g.DELETE("/orders/:id", h.Delete)
}

// registerLedger guards the mines ledger behind bearer authentication.
func registerLedger(g *echo.Group, h *handler.LedgerHandler, jwtSecret string) {
	ledger := g.Group("/ledger", middleware.JWTAuth(jwtSecret))
	ledger.GET("", h.List)
	ledger.POST("", h.Create)
	ledger.GET("/:id", h.Get)
	ledger.PUT("/:id", h.Update)
	ledger.DELETE("/:id", h.Delete)
}

// registerPricing maps the four pricing tables.  Their list endpoints
// are read-heavy and change rarely, so they go through the Redis cache.
func registerPricing(g *echo.Group, h Handlers, rdb *redis.Client) {
	var cache echo.MiddlewareFunc
	if rdb != nil {
		cache = middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	}
	registerLookup(g, "/stone_data", h.StonePrice, cache)
	registerLookup(g, "/stone_finishing", h.Finishing, cache)
	registerLookup(g, "/stone_sizes", h.Sizes, cache)
	registerLookup(g, "/stone_thicknesses", h.Thickness, cache)
}

// registerLookup maps the shared CRUD shape of a flat entity under the
// given prefix.  listMW, when non-nil, wraps only the list endpoint.
func registerLookup(g *echo.Group, prefix string, h *handler.LookupHandler, listMW echo.MiddlewareFunc) {
	if listMW != nil {
		g.GET(prefix, h.List, listMW)
	} else {
		g.GET(prefix, h.List)
	}
	g.POST(prefix, h.Create)
	g.GET(prefix+"/:id", h.Get)
	g.PUT(prefix+"/:id", h.Update)
	g.DELETE(prefix+"/:id", h.Delete)
}

func registerSettings(g *echo.Group, h *handler.SettingsHandler) {
	g.GET("/settings/:id", h.Get)
	g.PUT("/settings/:id", h.Update)
}

func registerQuotations(g *echo.Group, h *handler.QuotationHandler) {
	g.GET("/quotations", h.List)
	g.POST("/quotations", h.Create)
	// lastId must be mapped before :id so it is not swallowed as an id.
	g.GET("/quotations/lastId", h.LastID)
	g.GET("/quotations/:id", h.Get)
	g.PUT("/quotations/:id", h.Update)
	g.DELETE("/quotations/:id", h.Delete)
}

func registerEmployees(g *echo.Group, h *handler.EmployeeHandler) {
	g.GET("/employees", h.List)
	g.POST("/employees", h.Create)
	g.PUT("/employees/:id", h.Update)
	g.DELETE("/employees/:id", h.Delete)
}
