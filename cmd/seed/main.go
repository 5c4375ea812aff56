// seed crea la cuenta admin inicial y, opcionalmente, importa suppliers desde
// el padrón legado exportado como CSV en ISO-8859-1 (username;email;nombre;apellido).
//
// Uso:
//
//	go run ./cmd/seed                        # solo admin
//	go run ./cmd/seed padron_suppliers.csv   # admin + import de suppliers
//
// Variables: ADMIN_USERNAME (default "admin"), ADMIN_EMAIL, ADMIN_PASSWORD
// (obligatoria para crear el admin). Los suppliers importados reciben el
// password inicial SEED_SUPPLIER_PASSWORD.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/brewops/brewops-api/internal/domain/entity"
	"github.com/brewops/brewops-api/internal/infrastructure/postgres"
	"github.com/brewops/brewops-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	if err := seedAdmin(ctx, userRepo); err != nil {
		fmt.Fprintf(os.Stderr, "Seed admin: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		n, err := importSuppliers(ctx, userRepo, os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Importar suppliers: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Importados %d suppliers desde %s\n", n, os.Args[1])
	}
}

// seedAdmin crea la cuenta admin si no existe todavía.
func seedAdmin(ctx context.Context, repo *postgres.UserRepo) error {
	username := envOr("ADMIN_USERNAME", "admin")
	existing, err := repo.GetByLogin(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Printf("Admin %q ya existe, sin cambios\n", username)
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("ADMIN_PASSWORD es requerida para crear el admin")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        envOr("ADMIN_EMAIL", "admin@brewops.local"),
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "BrewOps",
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	fmt.Printf("Admin %q creado\n", username)
	return nil
}

// importSuppliers lee el CSV legado (ISO-8859-1, separador ';') y crea un
// usuario con rol supplier por fila. Filas con username o email ya registrado
// se saltan sin abortar el import.
func importSuppliers(ctx context.Context, repo *postgres.UserRepo, path string) (int, error) {
	password := os.Getenv("SEED_SUPPLIER_PASSWORD")
	if password == "" {
		return 0, fmt.Errorf("SEED_SUPPLIER_PASSWORD es requerida para importar suppliers")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	// El padrón legado viene de un sistema que exporta en ISO-8859-1.
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = 4

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("leer CSV: %w", err)
	}

	imported := 0
	for i, rec := range records {
		username := strings.TrimSpace(rec[0])
		if i == 0 && strings.EqualFold(username, "username") {
			continue // cabecera
		}
		now := time.Now()
		supplier := &entity.User{
			ID:           uuid.New().String(),
			Username:     username,
			Email:        strings.TrimSpace(rec[1]),
			PasswordHash: string(hash),
			FirstName:    strings.TrimSpace(rec[2]),
			LastName:     strings.TrimSpace(rec[3]),
			Role:         entity.RoleSupplier,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repo.Create(ctx, supplier); err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d (%s): %v\n", i+1, username, err)
			continue
		}
		imported++
	}
	return imported, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
