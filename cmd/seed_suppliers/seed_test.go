package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuppliers_ConEncabezado(t *testing.T) {
	raw := []byte("nombre,apellido,telefono,email\nAna,Pérez,809-555-0101,Ana@Piki.do\nLuis,Gómez,809-555-0102,luis@piki.do\n")
	rows, err := parseSuppliers(raw)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, supplierRow{name: "Ana", lastName: "Pérez", phone: "809-555-0101", email: "ana@piki.do"}, rows[0])
	assert.Equal(t, "luis@piki.do", rows[1].email)
}

func TestParseSuppliers_Windows1252(t *testing.T) {
	// "Núñez" codificado en Windows-1252: ú=0xFA, ñ=0xF1.
	raw := []byte("Marta,N\xfa\xf1ez,809-555-0103,marta@piki.do\n")
	rows, err := parseSuppliers(raw)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Núñez", rows[0].lastName)
}

func TestParseSuppliers_PuntoYComaYBOM(t *testing.T) {
	raw := []byte("\xef\xbb\xbfnombre;apellido;telefono;email\nAna;Pérez;809;ana@piki.do\n")
	rows, err := parseSuppliers(raw)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pérez", rows[0].lastName)
}

func TestParseSuppliers_DescartaInvalidosYDuplicados(t *testing.T) {
	raw := []byte("Ana,Pérez,809,ana@piki.do\n,SinNombre,809,x@piki.do\nSinEmail,X,809,\nCorta,fila\nAna2,Otra,809,ANA@piki.do\n")
	rows, err := parseSuppliers(raw)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].name)
}

func TestUpSQL_EscapaComillas(t *testing.T) {
	sql := upSQL([]supplierRow{{name: "D'Oleo", lastName: "O'Neil", phone: "809", email: "d@piki.do"}})
	assert.Contains(t, sql, "SELECT 'D''Oleo', 'O''Neil', '809', 'd@piki.do'")
	assert.Contains(t, sql, "WHERE NOT EXISTS (SELECT 1 FROM suppliers WHERE email = 'd@piki.do');")
}

func TestDownSQL_OrdenEstable(t *testing.T) {
	sql := downSQL([]supplierRow{{email: "b@piki.do"}, {email: "a@piki.do"}})
	assert.Contains(t, sql, "email IN ('a@piki.do', 'b@piki.do')")
	assert.Contains(t, sql, "materials.supplier_id = suppliers.id")
}
