// seed_suppliers genera una migración SQL que carga proveedores desde un CSV
// exportado de la hoja de cálculo (columnas: nombre, apellido, teléfono, email).
//
// Uso: go run ./cmd/seed_suppliers [ruta/proveedores.csv] [versión]
// Por defecto lee proveedores.csv y usa la versión 0000000003.
// Escribe: internal/infrastructure/migrations/sql/<versión>_seed_suppliers.{up,down}.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	csvPath := "proveedores.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	version := "0000000003"
	if len(os.Args) > 2 {
		version = os.Args[2]
	}

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	rows, err := parseSuppliers(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "El CSV no contiene proveedores válidos")
		os.Exit(1)
	}

	dir := filepath.Join(findModuleRoot(), "internal", "infrastructure", "migrations", "sql")
	upPath := filepath.Join(dir, version+"_seed_suppliers.up.sql")
	downPath := filepath.Join(dir, version+"_seed_suppliers.down.sql")

	if err := writeFile(upPath, upSQL(rows)); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", upPath, err)
		os.Exit(1)
	}
	if err := writeFile(downPath, downSQL(rows)); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", downPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d proveedores\n", upPath, len(rows))
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
