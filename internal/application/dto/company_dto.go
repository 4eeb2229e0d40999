package dto

import "github.com/jhoicas/personnel-api/internal/domain/entity"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name   string `json:"name" validate:"required"`
	Active *bool  `json:"active"` // nil = activa por defecto
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ToCompanyResponse mapea la entidad a su representación pública.
func ToCompanyResponse(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{ID: c.ID, Name: c.Name, Active: c.Active}
}
