package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ruxshona/bakery-api/internal/application/auth"
	"github.com/ruxshona/bakery-api/internal/application/stats"
	"github.com/ruxshona/bakery-api/internal/application/usecase"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
	"github.com/ruxshona/bakery-api/internal/infrastructure/localstore"
	infrapdf "github.com/ruxshona/bakery-api/internal/infrastructure/pdf"
	"github.com/ruxshona/bakery-api/internal/infrastructure/postgres"
	httpRouter "github.com/ruxshona/bakery-api/internal/interfaces/http"
	"github.com/ruxshona/bakery-api/pkg/config"
	"github.com/ruxshona/bakery-api/pkg/logger"
)

// stores agrupa las implementaciones de los puertos de persistencia; ambas
// variantes (postgres y local) llenan el mismo conjunto.
type stores struct {
	products    repository.ProductRepository
	categories  repository.CategoryRepository
	units       repository.UnitRepository
	expenses    repository.ExpenseRepository
	orders      repository.OrderRepository
	users       repository.UserRepository
	statsSource repository.StatsSource
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Mode).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var st stores
	switch cfg.Store.Mode {
	case config.StoreLocal:
		store, err := localstore.Open(cfg.Store.Dir)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir almacenamiento local")
		}
		st = stores{
			products:    localstore.NewProductStore(store),
			categories:  localstore.NewCategoryStore(store),
			units:       localstore.NewUnitStore(store),
			expenses:    localstore.NewExpenseStore(store),
			orders:      localstore.NewOrderStore(store),
			users:       localstore.NewUserStore(store),
			statsSource: localstore.NewStatsSource(store),
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		st = stores{
			products:    postgres.NewProductRepository(pool),
			categories:  postgres.NewCategoryRepository(pool),
			units:       postgres.NewUnitRepository(pool),
			expenses:    postgres.NewExpenseRepository(pool),
			orders:      postgres.NewOrderRepository(pool),
			users:       postgres.NewUserRepository(pool),
			statsSource: postgres.NewStatsSource(pool),
		}
	}

	productUC := usecase.NewProductUseCase(st.products)
	productCategoryUC := usecase.NewCategoryUseCase(st.categories, entity.CategoryProduct)
	expenseCategoryUC := usecase.NewCategoryUseCase(st.categories, entity.CategoryExpense)
	unitUC := usecase.NewUnitUseCase(st.units)
	expenseUC := usecase.NewExpenseUseCase(st.expenses)
	orderUC := usecase.NewOrderUseCase(st.orders)

	overviewUC := stats.NewOverviewUseCase(st.statsSource)
	dashboardUC := stats.NewDashboardUseCase(st.statsSource)
	marketingUC := stats.NewMarketingUseCase(st.statsSource)
	exportUC := stats.NewExportUseCase(st.statsSource)
	expenseReportUC := stats.NewExpenseReportUseCase(st.statsSource, infrapdf.NewExpenseReportGenerator())

	authUC := auth.NewAuthUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ruxshona API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:         productUC,
		ProductCategoryUC: productCategoryUC,
		ExpenseCategoryUC: expenseCategoryUC,
		UnitUC:            unitUC,
		ExpenseUC:         expenseUC,
		OrderUC:           orderUC,
		AuthUC:            authUC,
		OverviewUC:        overviewUC,
		DashboardUC:       dashboardUC,
		MarketingUC:       marketingUC,
		ExportUC:          exportUC,
		ExpenseReportUC:   expenseReportUC,
		JWTSecret:         cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
