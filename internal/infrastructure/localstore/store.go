// Package localstore persiste las colecciones como archivos JSON en disco.
// Es el modo de operación sin base de datos (STORE_MODE=local): cada colección
// vive en su propio archivo y un mutex global serializa las escrituras. Pensado
// para demos y para trabajar sin PostgreSQL, no para concurrencia alta.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Nombres de archivo de las colecciones.
const (
	fileCategories   = "categories.json"
	fileUnits        = "units.json"
	fileProducts     = "products.json"
	fileExpenses     = "expenses.json"
	fileOrders       = "orders.json"
	fileUsers        = "users.json"
	fileSales        = "sales.json"
	fileReturns      = "returns.json"
	fileBranchStocks = "branch_stocks.json"
	fileCoupons      = "coupons.json"
	fileWorkers      = "workers.json"
	fileBranches     = "branches.json"
	fileShops        = "shops.json"
)

// Store acceso serializado al directorio de datos.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open prepara el directorio de datos, creándolo si no existe.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: dir}, nil
}

// load lee una colección; un archivo inexistente es una colección vacía.
// El llamador debe sostener el mutex.
func load[T any](s *Store, name string) ([]T, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer %s: %w", name, err)
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", name, err)
	}
	return list, nil
}

// save escribe la colección completa con write-then-rename para no dejar un
// archivo a medias si el proceso muere durante la escritura.
func save[T any](s *Store, name string, list []T) error {
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renombrar %s: %w", name, err)
	}
	return nil
}
