// Comando migrator: aplica las migraciones de esquema con goose.
//
//	migrator up     - aplica todas las migraciones pendientes
//	migrator down   - revierte la última migración
//	migrator status - muestra el estado de las migraciones
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/brewops/brewops-api/internal/infrastructure/postgres/migrations"
	"github.com/brewops/brewops-api/pkg/config"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error cargando configuración: %v", err)
	}

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatalf("Error conectando a la base de datos: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Error verificando conexión a la BD: %v", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Error configurando dialecto: %v", err)
	}

	switch command {
	case "up":
		if err := goose.Up(db, "."); err != nil {
			log.Fatalf("Error aplicando migraciones: %v", err)
		}
		fmt.Println("Migraciones aplicadas")
	case "down":
		if err := goose.Down(db, "."); err != nil {
			log.Fatalf("Error revirtiendo migración: %v", err)
		}
		fmt.Println("Migración revertida")
	case "status":
		if err := goose.Status(db, "."); err != nil {
			log.Fatalf("Error consultando estado: %v", err)
		}
	default:
		fmt.Printf("Comando desconocido: %s\n", command)
		flag.Usage()
	}
}

func usage() {
	fmt.Println("Uso: migrator [comando]")
	fmt.Println("Comandos:")
	fmt.Println("  up     - Aplicar todas las migraciones pendientes")
	fmt.Println("  down   - Revertir la última migración")
	fmt.Println("  status - Mostrar el estado de las migraciones")
}
