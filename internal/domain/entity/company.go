package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/personnel-api/internal/domain"
)

// Company representa una empresa registrada en el sistema.
type Company struct {
	ID     int
	Name   string // único
	Active bool
}

// NewCompany construye una empresa sin persistir (ID ausente, activa).
func NewCompany() *Company {
	return &Company{Active: true}
}

// Validate verifica los invariantes de campo antes de persistir.
func (c *Company) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: empresa nula", domain.ErrInvalidInput)
	}
	if c.ID < 0 {
		return fmt.Errorf("%w: id negativo", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: nombre en blanco", domain.ErrInvalidInput)
	}
	return nil
}

// Equal compara empresas por identidad y datos visibles.
func (c *Company) Equal(other *Company) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID && c.Name == other.Name && c.Active == other.Active
}

// Less define un orden estable: activas primero, luego nombre e id.
func (c *Company) Less(other *Company) bool {
	if c.Active != other.Active {
		return c.Active
	}
	if c.Name != other.Name {
		return c.Name < other.Name
	}
	return c.ID < other.ID
}

// SortCompanies ordena el slice con el orden canónico de Company.Less.
func SortCompanies(companies []*Company) {
	sort.Slice(companies, func(i, j int) bool { return companies[i].Less(companies[j]) })
}
