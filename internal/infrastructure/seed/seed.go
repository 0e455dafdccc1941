// Package seed carga un archivo YAML con datos iniciales y lo aplica sobre el snapshot.
package seed

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/recout-api/internal/application/auth"
	"github.com/jhoicas/recout-api/internal/domain/entity"
	"github.com/jhoicas/recout-api/internal/infrastructure/snapshot"
)

// File es el formato del archivo de semilla.
type File struct {
	Employees []Employee       `yaml:"employees"`
	Clients   []entity.Client  `yaml:"clients"`
	Products  []entity.Product `yaml:"products"`
	Sectors   []entity.Sector  `yaml:"sectors"`
}

// Employee empleado en la semilla; el password va en texto plano y se guarda como hash.
type Employee struct {
	ID                  int64  `yaml:"id"`
	Name                string `yaml:"name"`
	Sector              string `yaml:"sector"`
	CPF                 string `yaml:"cpf"`
	Username            string `yaml:"username"`
	Password            string `yaml:"password"`
	DailyProductionBase int    `yaml:"dailyProductionBase"`
}

// Parse decodifica el YAML. Campos desconocidos son error.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("seed: decodificar yaml: %w", err)
	}
	return &f, nil
}

// Result cuántos registros se agregaron por colección.
type Result struct {
	Employees, Clients, Products, Sectors int
}

// Apply agrega al snapshot los registros cuyo id todavía no existe. Con replace=true
// las colecciones presentes en la semilla reemplazan a las guardadas.
func Apply(ctx context.Context, store *snapshot.Store, f *File, replace bool) (Result, error) {
	employees := make([]entity.Employee, 0, len(f.Employees))
	for _, e := range f.Employees {
		emp := entity.Employee{
			ID:                  e.ID,
			Name:                e.Name,
			Sector:              e.Sector,
			CPF:                 e.CPF,
			Status:              entity.EmployeeOffline,
			DailyProductionBase: e.DailyProductionBase,
			Username:            strings.TrimSpace(e.Username),
		}
		if e.Password != "" {
			hash, err := auth.HashPassword(e.Password)
			if err != nil {
				return Result{}, fmt.Errorf("seed: hash de %s: %w", e.Name, err)
			}
			emp.Password = hash
		}
		employees = append(employees, emp)
	}

	var res Result
	err := store.Mutate(ctx, func(m *entity.Snapshot) bool {
		if replace {
			if len(employees) > 0 {
				m.Employees = nil
			}
			if len(f.Clients) > 0 {
				m.Clients = nil
			}
			if len(f.Products) > 0 {
				m.Products = nil
			}
			if len(f.Sectors) > 0 {
				m.Sectors = nil
			}
		}
		m.Employees, res.Employees = merge(m.Employees, employees, func(e entity.Employee) int64 { return e.ID })
		m.Clients, res.Clients = merge(m.Clients, f.Clients, func(c entity.Client) int64 { return c.ID })
		m.Products, res.Products = merge(m.Products, f.Products, func(p entity.Product) int64 { return p.ID })
		m.Sectors, res.Sectors = merge(m.Sectors, f.Sectors, func(s entity.Sector) int64 { return s.ID })
		return true
	})
	return res, err
}

func merge[T any](dst, src []T, id func(T) int64) ([]T, int) {
	seen := make(map[int64]bool, len(dst))
	for _, d := range dst {
		seen[id(d)] = true
	}
	added := 0
	for _, s := range src {
		if seen[id(s)] {
			continue
		}
		seen[id(s)] = true
		dst = append(dst, s)
		added++
	}
	return dst, added
}
