package v1

import (
	"skill-matrix/internal/config"
	"skill-matrix/internal/database"
	"skill-matrix/internal/delivery/http/handler"
	"skill-matrix/internal/infrastructure/cache"
	"skill-matrix/internal/repository"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires the v1 API: repositories over the shared pool, usecases over
// a shared snapshot cache, handlers over the usecases.
func Register(r fiber.Router, cfg config.Config, db database.DB, rdb *cache.Redis) {
	if r == nil {
		return
	}

	snapshot := usecase.NewSnapshotCache(rdb, cfg.Redis.TTL)

	deptRepo := repository.NewPostgresDepartmentRepository(db)
	empRepo := repository.NewPostgresEmployeeRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	levelRepo := repository.NewPostgresLevelRepository(db)
	transferRepo := repository.NewPostgresTransferRepository(db)

	deptUC := usecase.NewDepartmentUsecase(deptRepo, snapshot)
	empUC := usecase.NewEmployeeUsecase(empRepo, deptRepo, snapshot)
	skillUC := usecase.NewSkillUsecase(skillRepo, levelRepo, empRepo, deptRepo, snapshot)
	reportUC := usecase.NewReportUsecase(deptUC)
	transferUC := usecase.NewTransferUsecase(deptUC, transferRepo, deptRepo, snapshot)

	handler.NewDepartmentHandler(deptUC).RegisterRoutes(r)
	handler.NewEmployeeHandler(empUC).RegisterRoutes(r)
	handler.NewSkillHandler(skillUC).RegisterRoutes(r)
	handler.NewReportHandler(reportUC).RegisterRoutes(r)
	handler.NewTransferHandler(transferUC).RegisterRoutes(r)
}
