package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/personnel-api/internal/application/dto"
	"github.com/jhoicas/personnel-api/internal/domain"
	"github.com/jhoicas/personnel-api/internal/domain/entity"
	"github.com/jhoicas/personnel-api/internal/domain/repository"
	"github.com/jhoicas/personnel-api/pkg/password"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	users repository.UserRepository
	roles repository.RoleRepository
	gen   password.Generator
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, roles repository.RoleRepository, gen password.Generator) *UserUseCase {
	return &UserUseCase{users: users, roles: roles, gen: gen}
}

// Get obtiene un usuario por id con los enrichments pedidos (tokens en texto,
// orden irrelevante). Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) Get(ctx context.Context, id int, enrichmentTokens []string) (*dto.UserResponse, error) {
	enrichments, err := entity.ParseEnrichments(enrichmentTokens)
	if err != nil {
		return nil, err
	}
	user, err := uc.users.Get(ctx, id, enrichments...)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return dto.ToUserResponse(user), nil
}

// List obtiene todos los usuarios en orden canónico con los enrichments pedidos.
func (uc *UserUseCase) List(ctx context.Context, enrichmentTokens []string) ([]dto.UserResponse, error) {
	enrichments, err := entity.ParseEnrichments(enrichmentTokens)
	if err != nil {
		return nil, err
	}
	users, err := uc.users.GetAll(ctx, enrichments...)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *dto.ToUserResponse(u))
	}
	return items, nil
}

// Create crea un usuario: genera salt, hashea la contraseña, persiste y
// asigna los roles iniciales si vienen. Devuelve domain.ErrDuplicate si el
// login o el email ya existen.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	roles, err := parseRoles(in.Roles)
	if err != nil {
		return nil, err
	}

	salt, err := uc.gen.RandomSalt()
	if err != nil {
		return nil, err
	}

	user := entity.NewUser()
	user.Login = in.Login
	user.Email = in.Email
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.HashedPass = uc.gen.Hash(in.Password, salt)
	user.Salt = salt
	if in.Active != nil {
		user.Active = *in.Active
	}

	if err := uc.users.Add(ctx, user); err != nil {
		return nil, err
	}
	if len(roles) > 0 {
		if err := uc.roles.Add(ctx, user.ID, roles...); err != nil {
			return nil, err
		}
		user.SetRoles(roles...)
	}
	return dto.ToUserResponse(user), nil
}

// Update reescribe los campos mutables de un usuario por id. Nunca toca las
// credenciales aunque el caller mande valores para ellas.
func (uc *UserUseCase) Update(ctx context.Context, id int, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id de usuario inválido", domain.ErrInvalidInput)
	}

	user := &entity.User{
		ID:        id,
		Login:     in.Login,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Active:    true,
	}
	if in.Active != nil {
		user.Active = *in.Active
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Delete elimina un usuario por id. Un id inexistente no es un error.
func (uc *UserUseCase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: id de usuario inválido", domain.ErrInvalidInput)
	}
	return uc.users.Delete(ctx, id)
}

func parseRoles(values []string) ([]entity.Role, error) {
	var out []entity.Role
	for _, v := range values {
		role, ok := entity.ParseRole(v)
		if !ok {
			return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, v)
		}
		out = append(out, role)
	}
	return out, nil
}
