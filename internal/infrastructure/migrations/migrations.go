// Package migrations contiene el esquema versionado de la base de datos y lo aplica con ptah.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/stokaro/ptah/dbschema"
	"github.com/stokaro/ptah/migration/migrator"
)

//go:embed sql/*.sql
var files embed.FS

// FS devuelve los archivos NNNNNNNNNN_desc.{up,down}.sql embebidos en el binario.
func FS() fs.FS {
	sub, err := fs.Sub(files, "sql")
	if err != nil {
		// el directorio está embebido; solo falla si se renombra
		panic(err)
	}
	return sub
}

// Provider carga y valida las migraciones embebidas (cada versión con up y down).
func Provider() (*migrator.FSMigrationProvider, error) {
	return migrator.NewFSMigrationProvider(FS())
}

// Runner aplica las migraciones sobre una conexión ptah.
type Runner struct {
	conn *dbschema.DatabaseConnection
	m    *migrator.Migrator
}

// Open conecta a databaseURL y prepara el migrador con los archivos embebidos.
func Open(databaseURL string) (*Runner, error) {
	conn, err := dbschema.ConnectToDatabase(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("conectar para migrar: %w", err)
	}
	m, err := migrator.NewFSMigrator(conn, FS())
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("cargar migraciones: %w", err)
	}
	return &Runner{conn: conn, m: m}, nil
}

// Up aplica todas las migraciones pendientes.
func (r *Runner) Up(ctx context.Context) error {
	return r.m.MigrateUp(ctx)
}

// Down revierte la última migración aplicada.
func (r *Runner) Down(ctx context.Context) error {
	return r.m.MigrateDown(ctx)
}

// Status devuelve versión actual y migraciones pendientes.
func (r *Runner) Status(ctx context.Context) (*migrator.MigrationStatus, error) {
	return r.m.GetMigrationStatus(ctx)
}

// Close libera la conexión.
func (r *Runner) Close() error {
	return r.conn.Close()
}
