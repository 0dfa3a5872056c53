package httpserver

import (
	"context"

	commentHTTP "inventory-hub/internal/comment/delivery/http"
	commentMySQL "inventory-hub/internal/comment/repository/mysql"
	commentUC "inventory-hub/internal/comment/usecase"
	inventoryHTTP "inventory-hub/internal/inventory/delivery/http"
	inventoryMySQL "inventory-hub/internal/inventory/repository/mysql"
	inventoryUC "inventory-hub/internal/inventory/usecase"
	itemHTTP "inventory-hub/internal/item/delivery/http"
	itemMySQL "inventory-hub/internal/item/repository/mysql"
	itemUC "inventory-hub/internal/item/usecase"
	"inventory-hub/internal/middleware"
	searchHTTP "inventory-hub/internal/search/delivery/http"
	searchUC "inventory-hub/internal/search/usecase"
	userHTTP "inventory-hub/internal/user/delivery/http"
	userMySQL "inventory-hub/internal/user/repository/mysql"
	userRedis "inventory-hub/internal/user/repository/redis"
	userUC "inventory-hub/internal/user/usecase"
	"inventory-hub/pkg/customid"
)

// registerDomainRoutes wires every domain bottom-up (repository, usecase,
// handler, routes) under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Shared stores
	userRepo := userMySQL.New(srv.db, srv.l)
	sessions := userRedis.NewSessionStore(srv.redis, srv.l)
	inventoryRepo := inventoryMySQL.New(srv.db, srv.l)
	itemRepo := itemMySQL.New(srv.db, srv.l)
	commentRepo := commentMySQL.New(srv.db, srv.l)

	mw := middleware.New(srv.l, srv.jwtManager, sessions, userRepo, srv.rateLimit)
	api.Use(mw.RateLimit())

	// User domain
	usersUC := userUC.New(userRepo, sessions, srv.oauth, srv.jwtManager, srv.auth.TokenTTL, srv.l)
	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, usersUC), mw)

	// Inventory domain
	inventoriesUC := inventoryUC.New(inventoryRepo, userRepo, srv.stats.CacheSize, srv.stats.CacheTTL, srv.l)
	inventoryHTTP.RegisterRoutes(api, inventoryHTTP.New(srv.l, inventoriesUC), mw)

	// Item domain
	itemsUC := itemUC.New(itemRepo, inventoryRepo, customid.New(), srv.l)
	itemHTTP.RegisterRoutes(api, itemHTTP.New(srv.l, itemsUC), mw)

	// Comment domain
	commentsUC := commentUC.New(commentRepo, inventoryRepo, srv.l)
	commentHTTP.RegisterRoutes(api, commentHTTP.New(srv.l, commentsUC), mw)

	// Search
	searchesUC := searchUC.New(inventoryRepo, itemRepo, srv.l)
	searchHTTP.RegisterRoutes(api, searchHTTP.New(srv.l, searchesUC))

	srv.l.Infof(ctx, "All domain routes registered under /api/v1")
	return nil
}
