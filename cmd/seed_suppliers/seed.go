package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type supplierRow struct {
	name, lastName, phone, email string
}

// parseSuppliers lee el CSV. Las exportaciones de Excel llegan en Windows-1252,
// así que si el contenido no es UTF-8 válido se transcodifica antes de parsear.
// Filas sin email o sin nombre se descartan; emails repetidos conservan la primera fila.
func parseSuppliers(raw []byte) ([]supplierRow, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	if bytes.Count(firstLine(raw), []byte(";")) > bytes.Count(firstLine(raw), []byte(",")) {
		r.Comma = ';'
	}

	seen := make(map[string]bool)
	var rows []supplierRow
	for line := 1; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if line == 1 && isHeader(rec) {
			continue
		}
		if len(rec) < 4 {
			continue
		}
		row := supplierRow{
			name:     strings.TrimSpace(rec[0]),
			lastName: strings.TrimSpace(rec[1]),
			phone:    strings.TrimSpace(rec[2]),
			email:    strings.ToLower(strings.TrimSpace(rec[3])),
		}
		if row.name == "" || row.email == "" || seen[row.email] {
			continue
		}
		seen[row.email] = true
		rows = append(rows, row)
	}
	return rows, nil
}

func firstLine(b []byte) []byte {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[:i]
	}
	return b
}

func isHeader(rec []string) bool {
	for _, f := range rec {
		if strings.EqualFold(strings.TrimSpace(f), "email") {
			return true
		}
	}
	return false
}

// suppliers.email no es UNIQUE: la idempotencia se resuelve con NOT EXISTS.
func upSQL(rows []supplierRow) string {
	var b strings.Builder
	b.WriteString("-- Proveedores iniciales\n")
	b.WriteString("-- Generado por cmd/seed_suppliers\n\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "INSERT INTO suppliers (name, last_name, phone, email)\n")
		fmt.Fprintf(&b, "SELECT '%s', '%s', '%s', '%s'\n",
			escapeSQL(row.name), escapeSQL(row.lastName), escapeSQL(row.phone), escapeSQL(row.email))
		fmt.Fprintf(&b, "WHERE NOT EXISTS (SELECT 1 FROM suppliers WHERE email = '%s');\n", escapeSQL(row.email))
	}
	return b.String()
}

// El down no borra proveedores que ya tengan materiales asociados.
func downSQL(rows []supplierRow) string {
	emails := make([]string, 0, len(rows))
	for _, row := range rows {
		emails = append(emails, "'"+escapeSQL(row.email)+"'")
	}
	sort.Strings(emails)

	var b strings.Builder
	b.WriteString("DELETE FROM suppliers WHERE email IN (")
	b.WriteString(strings.Join(emails, ", "))
	b.WriteString(")\n    AND NOT EXISTS (SELECT 1 FROM materials WHERE materials.supplier_id = suppliers.id);\n")
	return b.String()
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
