package auth

import (
	"context"
	"crypto/subtle"

	"github.com/jhoicas/personnel-api/internal/application/dto"
	"github.com/jhoicas/personnel-api/internal/domain"
	"github.com/jhoicas/personnel-api/internal/domain/repository"
	"github.com/jhoicas/personnel-api/pkg/jwt"
	"github.com/jhoicas/personnel-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login con credenciales.
type AuthUseCase struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	gen    password.Generator
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, roles repository.RoleRepository, gen password.Generator, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, roles: roles, gen: gen, jwtCfg: jwtCfg}
}

// Login verifica login/password contra el hash almacenado, genera JWT y
// retorna token + usuario. GetByLogin solo devuelve cuentas activas, así que
// una cuenta inactiva se comporta como credenciales inválidas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByLogin(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	hashed := uc.gen.Hash(in.Password, user.Salt)
	if subtle.ConstantTimeCompare([]byte(hashed), []byte(user.HashedPass)) != 1 {
		return nil, domain.ErrUnauthorized
	}

	// GetByLogin no adjunta roles; los claims del token los necesitan.
	userRoles, err := uc.roles.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.SetRoles(userRoles...)

	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, string(role))
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Login, roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *dto.ToUserResponse(user),
	}, nil
}
