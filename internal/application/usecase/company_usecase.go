package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/personnel-api/internal/application/dto"
	"github.com/jhoicas/personnel-api/internal/domain"
	"github.com/jhoicas/personnel-api/internal/domain/entity"
	"github.com/jhoicas/personnel-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get obtiene una empresa por id. Devuelve (nil, nil) si no existe.
func (uc *CompanyUseCase) Get(ctx context.Context, id int) (*dto.CompanyResponse, error) {
	company, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return dto.ToCompanyResponse(company), nil
}

// List obtiene todas las empresas en orden estable.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	companies, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		items = append(items, *dto.ToCompanyResponse(c))
	}
	return items, nil
}

// Create crea una empresa. Devuelve domain.ErrDuplicate si el nombre ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := entity.NewCompany()
	company.Name = in.Name
	if in.Active != nil {
		company.Active = *in.Active
	}

	if err := uc.repo.Add(ctx, company); err != nil {
		return nil, err
	}
	return dto.ToCompanyResponse(company), nil
}

// Delete elimina una empresa por id. Un id inexistente no es un error.
func (uc *CompanyUseCase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: id de empresa inválido", domain.ErrInvalidInput)
	}
	return uc.repo.Delete(ctx, id)
}
