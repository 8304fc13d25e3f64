package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login. El token
// lleva solo identidad y rol; las banderas de compra se leen frescas de la
// base en cada operación.
type AuthUseCase struct {
	userRepo repository.UserProfileRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserProfileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un perfil: hashea password con bcrypt y persiste. Devuelve
// ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.FullName
	if name == "" {
		name = in.Email
	}
	role := entity.ParseRole(in.Role)
	if role == entity.RoleUnknown {
		role = entity.RoleOperador
	}
	now := time.Now()
	profile := &entity.UserProfile{
		ID:                  uuid.New().String(),
		Email:               in.Email,
		PasswordHash:        string(hash),
		FullName:            name,
		Role:                role,
		IsActive:            true,
		CanRequestPurchases: in.CanRequestPurchases,
		CanApprovePurchases: in.CanApprovePurchases,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.userRepo.Create(profile); err != nil {
		return nil, err
	}
	return toUserResponse(profile), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !profile.IsActive {
		return nil, domain.ErrInactiveUser
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, string(profile.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(profile),
	}, nil
}

func toUserResponse(p *entity.UserProfile) *dto.UserResponse {
	if p == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                  p.ID,
		Email:               p.Email,
		FullName:            p.FullName,
		Role:                string(p.Role),
		IsActive:            p.IsActive,
		CanRequestPurchases: p.CanRequestPurchases,
		CanApprovePurchases: p.CanApprovePurchases,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
