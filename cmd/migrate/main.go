// migrate aplica el esquema de la base de datos (idempotente).
//
// Uso: go run ./cmd/migrate
// Lee la conexión de DATABASE_URL o de las variables DB_* (igual que la API).
package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/bidtracker-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bidtracker-api/pkg/config"
)

//go:embed schema.sql
var schema string

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "conexión a PostgreSQL:", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintln(os.Stderr, "aplicar esquema:", err)
		os.Exit(1)
	}
	fmt.Println("esquema aplicado")
}
