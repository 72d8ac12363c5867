package routes

import (
	"skill-matrix/internal/config"
	"skill-matrix/internal/database"
	"skill-matrix/internal/delivery/http/handler"
	"skill-matrix/internal/delivery/http/middleware"
	v1 "skill-matrix/internal/delivery/http/routes/v1"
	"skill-matrix/internal/infrastructure/cache"
	"skill-matrix/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg config.Config
	db  database.DB
	rdb *cache.Redis
	wsh *ws.Handler
}

func NewRegistry(cfg config.Config, db database.DB, rdb *cache.Redis, wsh *ws.Handler) *Registry {
	return &Registry{cfg: cfg, db: db, rdb: rdb, wsh: wsh}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.db).RegisterRoutes(app)

	authMw := middleware.NewAuthMiddleware(r.cfg.App.APIToken)
	api := app.Group("/api", authMw.Middleware())
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.rdb)

	if r.wsh != nil {
		app.Get("/ws/matrix", r.wsh.HandleMatrixWS)
	}
}
