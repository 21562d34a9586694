// seed_options genera un script SQL para poblar el catálogo de platos a
// partir del CSV exportado del sistema de casino anterior (separado por
// punto y coma, codificado en ISO-8859-1).
//
// Formato esperado por línea: codigo;nombre;descripcion;costo;precio;subsidiado
// donde precio puede venir vacío (se cobra el costo) y subsidiado es S o N.
//
// Uso: go run ./cmd/seed_options <NIT de la empresa> [ruta/platos.csv]
// Por defecto busca platos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_options.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type plato struct {
	code, name, description string
	cost                    decimal.Decimal
	price                   *decimal.Decimal
	subsidized              bool
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed_options <NIT> [platos.csv]")
		os.Exit(1)
	}
	nit := strings.TrimSpace(os.Args[1])
	csvPath := "platos.csv"
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El export del sistema anterior viene en ISO-8859-1 (tildes y eñes).
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var platos []plato
	for i, rec := range records {
		if len(rec) < 4 {
			continue
		}
		code := strings.TrimSpace(rec[0])
		name := strings.TrimSpace(rec[1])
		if code == "" || name == "" || strings.EqualFold(code, "codigo") {
			continue // cabecera o línea vacía
		}
		cost, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Línea %d: costo inválido %q\n", i+1, rec[3])
			os.Exit(1)
		}
		p := plato{
			code:        code,
			name:        name,
			description: strings.TrimSpace(rec[2]),
			cost:        cost,
		}
		if len(rec) > 4 && strings.TrimSpace(rec[4]) != "" {
			price, err := decimal.NewFromString(strings.TrimSpace(rec[4]))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Línea %d: precio inválido %q\n", i+1, rec[4])
				os.Exit(1)
			}
			p.price = &price
		}
		if len(rec) > 5 {
			p.subsidized = strings.EqualFold(strings.TrimSpace(rec[5]), "S")
		}
		platos = append(platos, p)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_options.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de platos migrado del sistema de casino anterior\n")
	out.WriteString("-- Generado desde platos.csv\n\n")
	for _, p := range platos {
		price := "NULL"
		if p.price != nil {
			price = "'" + p.price.String() + "'"
		}
		subsidized := "FALSE"
		if p.subsidized {
			subsidized = "TRUE"
		}
		fmt.Fprintf(out, "INSERT INTO menu_options (id, company_id, code, name, description, cost, price, is_subsidized)\n")
		fmt.Fprintf(out, "SELECT gen_random_uuid()::text, id, '%s', '%s', '%s', '%s', %s, %s FROM companies WHERE nit = '%s'\n",
			escapeSQL(p.code), escapeSQL(p.name), escapeSQL(p.description), p.cost.String(), price, subsidized, escapeSQL(nit))
		out.WriteString("ON CONFLICT (company_id, code) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, cost = EXCLUDED.cost, price = EXCLUDED.price, is_subsidized = EXCLUDED.is_subsidized;\n")
	}

	fmt.Printf("Generado %s: %d platos\n", outPath, len(platos))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
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
