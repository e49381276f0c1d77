// seed aplica el esquema (modo postgres) y carga los datos iniciales de la
// pastelería: categorías, unidades, un par de productos de muestra y un gasto.
// Es idempotente: si ya hay categorías de catálogo no vuelve a insertar nada.
//
// Uso: go run ./cmd/seed
// Respeta STORE_MODE igual que el servidor (postgres o local).
package main

import (
	"context"
	"time"

	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/application/usecase"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
	"github.com/ruxshona/bakery-api/internal/infrastructure/localstore"
	"github.com/ruxshona/bakery-api/internal/infrastructure/postgres"
	"github.com/ruxshona/bakery-api/pkg/config"
	"github.com/ruxshona/bakery-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()

	var (
		categories repository.CategoryRepository
		units      repository.UnitRepository
		products   repository.ProductRepository
		expenses   repository.ExpenseRepository
	)
	switch cfg.Store.Mode {
	case config.StoreLocal:
		store, err := localstore.Open(cfg.Store.Dir)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir almacenamiento local")
		}
		categories = localstore.NewCategoryStore(store)
		units = localstore.NewUnitStore(store)
		products = localstore.NewProductStore(store)
		expenses = localstore.NewExpenseStore(store)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migrar esquema")
		}
		categories = postgres.NewCategoryRepository(pool)
		units = postgres.NewUnitRepository(pool)
		products = postgres.NewProductRepository(pool)
		expenses = postgres.NewExpenseRepository(pool)
	}

	// Idempotencia: si ya hay categorías de catálogo, no se vuelve a sembrar.
	existing, err := categories.List(entity.CategoryProduct)
	if err != nil {
		log.Fatal().Err(err).Msg("listar categorías")
	}
	if len(existing) > 0 {
		log.Info().Int("categorias", len(existing)).Msg("datos ya sembrados, nada que hacer")
		return
	}

	prodCatUC := usecase.NewCategoryUseCase(categories, entity.CategoryProduct)
	expCatUC := usecase.NewCategoryUseCase(categories, entity.CategoryExpense)
	unitUC := usecase.NewUnitUseCase(units)
	productUC := usecase.NewProductUseCase(products)
	expenseUC := usecase.NewExpenseUseCase(expenses)

	prodCats := map[string]string{} // nombre -> id
	for _, name := range []string{"Tortlar", "Ingredientlar", "Dekor", "Xo'jalik"} {
		out, err := prodCatUC.Create(dto.CreateCategoryRequest{Name: name})
		if err != nil {
			log.Fatal().Err(err).Str("categoria", name).Msg("sembrar categoría de catálogo")
		}
		prodCats[name] = out.ID
	}

	expCats := map[string]string{}
	for _, name := range []string{"Xomashyo", "Ish haqi", "Transport", "Kommunal", "Boshqa"} {
		out, err := expCatUC.Create(dto.CreateCategoryRequest{Name: name})
		if err != nil {
			log.Fatal().Err(err).Str("categoria", name).Msg("sembrar categoría de gastos")
		}
		expCats[name] = out.ID
	}

	unitIDs := map[string]string{}
	for _, u := range []dto.CreateUnitRequest{
		{Name: "Kilogram", Short: "kg"},
		{Name: "Dona", Short: "dona"},
		{Name: "Litr", Short: "l"},
	} {
		out, err := unitUC.Create(u)
		if err != nil {
			log.Fatal().Err(err).Str("unidad", u.Name).Msg("sembrar unidad")
		}
		unitIDs[u.Name] = out.ID
	}

	napoleonPrice := int64(180000)
	smetanaPrice := int64(68000)
	for _, p := range []dto.CreateProductRequest{
		{
			Name:       "Napoleon tort",
			Type:       entity.TypeProduct,
			CategoryID: prodCats["Tortlar"],
			UnitID:     unitIDs["Dona"],
			Price:      &napoleonPrice,
		},
		{
			Name:       "Smetana",
			Type:       entity.TypeIngredient,
			CategoryID: prodCats["Ingredientlar"],
			UnitID:     unitIDs["Kilogram"],
			Price:      &smetanaPrice,
		},
	} {
		if _, err := productUC.Create(p); err != nil {
			log.Fatal().Err(err).Str("producto", p.Name).Msg("sembrar producto")
		}
	}

	if _, err := expenseUC.Create(dto.CreateExpenseRequest{
		Date:          time.Now().Format("2006-01-02"),
		CategoryID:    expCats["Xomashyo"],
		Amount:        250000,
		PaymentMethod: entity.PayCash,
		Note:          "Un va shakar",
	}); err != nil {
		log.Fatal().Err(err).Msg("sembrar gasto")
	}

	log.Info().Msg("datos iniciales sembrados")
}
