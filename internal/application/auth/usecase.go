package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
	"github.com/jhoicas/Mayorista-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta fn con repos atados a una misma transacción: el usuario y
// su perfil de rol se persisten como unidad atómica o no se persisten.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		wholesalers repository.WholesalerRepository,
		sellers repository.LocalSellerRepository,
		salesmen repository.SalesmanRepository,
	) error) error
}

// Hash bcrypt precomputado contra el que se compara cuando el email no existe,
// para que login tarde lo mismo con email desconocido que con password malo.
var unknownUserHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo       repository.UserRepository
	wholesalerRepo repository.WholesalerRepository
	tx             TxRunner
	jwtCfg         JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, wholesalerRepo repository.WholesalerRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, wholesalerRepo: wholesalerRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register crea la identidad y exactamente un perfil según el rol, dentro de
// una transacción: si el perfil falla, el usuario no queda persistido.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado y
// ErrMissingRole si el request no trae rol.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Role == "" {
		return nil, domain.ErrMissingRole
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.userRepo.ExistsByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.Run(ctx, func(
		users repository.UserRepository,
		wholesalers repository.WholesalerRepository,
		sellers repository.LocalSellerRepository,
		salesmen repository.SalesmanRepository,
	) error {
		if err := users.Create(user); err != nil {
			return err
		}
		switch in.Role {
		case entity.RoleWholesaler:
			return wholesalers.Create(&entity.Wholesaler{
				ID:           uuid.New().String(),
				UserID:       user.ID,
				BusinessName: in.BusinessName,
				Address:      in.Address,
				GSTNumber:    in.GSTNumber,
				IsActive:     true,
			})
		case entity.RoleLocalSeller:
			return sellers.Create(&entity.LocalSeller{
				ID:        uuid.New().String(),
				UserID:    user.ID,
				ShopName:  in.ShopName,
				Address:   in.Address,
				Latitude:  in.Latitude,
				Longitude: in.Longitude,
			})
		case entity.RoleSalesman:
			// El comercial se asocia a un mayorista que debe existir.
			w, err := wholesalers.GetByID(in.WholesalerID)
			if err != nil {
				return err
			}
			if w == nil {
				return domain.ErrNotFound
			}
			return salesmen.Create(&entity.Salesman{
				ID:           uuid.New().String(),
				UserID:       user.ID,
				WholesalerID: w.ID,
				Region:       in.Region,
			})
		}
		return domain.ErrMissingRole
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + datos básicos.
// Email desconocido y password incorrecto devuelven el mismo
// ErrInvalidCredentials sin distinción. Una cuenta inactiva no puede iniciar
// sesión aunque sus credenciales sean correctas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparación dummy para no delatar por tiempo si el email existe.
		_ = bcrypt.CompareHashAndPassword(unknownUserHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveAccount
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:  token,
		Role:   user.Role,
		UserID: user.ID,
		Name:   user.Name,
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
