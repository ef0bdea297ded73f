package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Mayorista-api/internal/application/auth"
	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/Mayorista-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	users       map[string]*entity.User // por email
	wholesalers map[string]*entity.Wholesaler
	sellers     []*entity.LocalSeller
	salesmen    []*entity.Salesman
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       map[string]*entity.User{},
		wholesalers: map[string]*entity.Wholesaler{},
	}
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.s.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.s.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.s.users[email], nil
}

func (r *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	_, ok := r.s.users[email]
	return ok, nil
}

type fakeWholesalerRepo struct{ s *fakeStore }

func (r *fakeWholesalerRepo) Create(w *entity.Wholesaler) error {
	r.s.wholesalers[w.ID] = w
	return nil
}

func (r *fakeWholesalerRepo) GetByID(id string) (*entity.Wholesaler, error) {
	return r.s.wholesalers[id], nil
}

func (r *fakeWholesalerRepo) GetByUserID(userID string) (*entity.Wholesaler, error) {
	for _, w := range r.s.wholesalers {
		if w.UserID == userID {
			return w, nil
		}
	}
	return nil, nil
}

func (r *fakeWholesalerRepo) ListActive() ([]*entity.Wholesaler, error) {
	var out []*entity.Wholesaler
	for _, w := range r.s.wholesalers {
		if w.IsActive {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeSellerRepo struct{ s *fakeStore }

func (r *fakeSellerRepo) Create(s *entity.LocalSeller) error {
	r.s.sellers = append(r.s.sellers, s)
	return nil
}

func (r *fakeSellerRepo) GetByID(id string) (*entity.LocalSeller, error) {
	for _, s := range r.s.sellers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSellerRepo) GetByUserID(userID string) (*entity.LocalSeller, error) {
	for _, s := range r.s.sellers {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, nil
}

type fakeSalesmanRepo struct{ s *fakeStore }

func (r *fakeSalesmanRepo) Create(s *entity.Salesman) error {
	r.s.salesmen = append(r.s.salesmen, s)
	return nil
}

func (r *fakeSalesmanRepo) GetByUserID(userID string) (*entity.Salesman, error) {
	for _, s := range r.s.salesmen {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, nil
}

// fakeTxRunner emula la transacción: si fn falla, restaura el estado previo
// (equivalente al rollback del TxRunner real).
type fakeTxRunner struct{ s *fakeStore }

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	wholesalers repository.WholesalerRepository,
	sellers repository.LocalSellerRepository,
	salesmen repository.SalesmanRepository,
) error) error {
	snapshot := struct {
		users       map[string]*entity.User
		wholesalers map[string]*entity.Wholesaler
		sellers     int
		salesmen    int
	}{
		users:       map[string]*entity.User{},
		wholesalers: map[string]*entity.Wholesaler{},
		sellers:     len(tx.s.sellers),
		salesmen:    len(tx.s.salesmen),
	}
	for k, v := range tx.s.users {
		snapshot.users[k] = v
	}
	for k, v := range tx.s.wholesalers {
		snapshot.wholesalers[k] = v
	}

	err := fn(&fakeUserRepo{tx.s}, &fakeWholesalerRepo{tx.s}, &fakeSellerRepo{tx.s}, &fakeSalesmanRepo{tx.s})
	if err != nil {
		tx.s.users = snapshot.users
		tx.s.wholesalers = snapshot.wholesalers
		tx.s.sellers = tx.s.sellers[:snapshot.sellers]
		tx.s.salesmen = tx.s.salesmen[:snapshot.salesmen]
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "auth-usecase-test-secret"
	testIssuer = "mayorista-api-test"
)

func newUseCase(s *fakeStore) *auth.AuthUseCase {
	return auth.NewAuthUseCase(
		&fakeUserRepo{s}, &fakeWholesalerRepo{s}, &fakeTxRunner{s},
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
	)
}

func registerWholesaler(t *testing.T, uc *auth.AuthUseCase, email string) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:         "Distribuidora Centro",
		Email:        email,
		Password:     "password-123",
		Role:         entity.RoleWholesaler,
		BusinessName: "Distribuidora Centro SA",
		Address:      "Av. Siempre Viva 123",
		GSTNumber:    "GST-001",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_MayoristaCreaUsuarioYPerfil(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)

	out := registerWholesaler(t, uc, "mayorista@test.local")

	assert.Equal(t, entity.RoleWholesaler, out.Role)
	assert.True(t, out.IsActive, "el usuario nuevo nace activo")

	// Se creó exactamente un perfil de mayorista ligado al usuario.
	require.Len(t, s.wholesalers, 1)
	for _, w := range s.wholesalers {
		assert.Equal(t, out.ID, w.UserID)
		assert.Equal(t, "Distribuidora Centro SA", w.BusinessName)
		assert.True(t, w.IsActive)
	}

	// El hash persistido es bcrypt válido, nunca el password plano.
	u := s.users["mayorista@test.local"]
	require.NotNil(t, u)
	assert.NotEqual(t, "password-123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password-123")))
}

func TestRegister_EmailDuplicado_RetornaConflicto(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)

	registerWholesaler(t, uc, "dup@test.local")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Otro",
		Email:    "dup@test.local",
		Password: "password-456",
		Role:     entity.RoleLocalSeller,
		ShopName: "Tienda Sur",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, s.users, 1, "el segundo registro no debe persistir nada")
}

func TestRegister_SinRol_RetornaMissingRole(t *testing.T) {
	uc := newUseCase(newFakeStore())
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Sin Rol",
		Email:    "sinrol@test.local",
		Password: "password-123",
	})
	assert.ErrorIs(t, err, domain.ErrMissingRole)
}

func TestRegister_RolInvalido_RetornaValidacion(t *testing.T) {
	uc := newUseCase(newFakeStore())
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Rol Raro",
		Email:    "raro@test.local",
		Password: "password-123",
		Role:     "ADMIN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ComercialConMayoristaInexistente_NoDejaUsuarioHuerfano(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:         "Comercial",
		Email:        "comercial@test.local",
		Password:     "password-123",
		Role:         entity.RoleSalesman,
		WholesalerID: "no-existe",
		Region:       "Norte",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Rollback: el usuario no quedó persistido aunque su INSERT venía primero.
	assert.Empty(t, s.users, "usuario y perfil se persisten como unidad atómica")
	assert.Empty(t, s.salesmen)
}

func TestRegister_ComercialConMayoristaValido(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)

	registerWholesaler(t, uc, "jefe@test.local")
	var wholesalerID string
	for id := range s.wholesalers {
		wholesalerID = id
	}

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:         "Comercial",
		Email:        "comercial@test.local",
		Password:     "password-123",
		Role:         entity.RoleSalesman,
		WholesalerID: wholesalerID,
		Region:       "Norte",
	})
	require.NoError(t, err)

	require.Len(t, s.salesmen, 1)
	assert.Equal(t, out.ID, s.salesmen[0].UserID)
	assert.Equal(t, wholesalerID, s.salesmen[0].WholesalerID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteToken(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)
	registerWholesaler(t, uc, "login@test.local")

	out, err := uc.Login(dto.LoginRequest{Email: "login@test.local", Password: "password-123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleWholesaler, out.Role)

	// El token emitido debe parsear con el mismo secret y traer la identidad.
	userID, email, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.UserID, userID)
	assert.Equal(t, "login@test.local", email)
	assert.Equal(t, entity.RoleWholesaler, role)
}

func TestLogin_EmailDesconocidoYPasswordMalo_MismoError(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)
	registerWholesaler(t, uc, "existe@test.local")

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "noexiste@test.local", Password: "password-123"})
	_, errBadPass := uc.Login(dto.LoginRequest{Email: "existe@test.local", Password: "password-mala"})

	// El caller no puede distinguir si el email existe.
	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errBadPass)
}

func TestLogin_CuentaInactiva_Rechazada(t *testing.T) {
	s := newFakeStore()
	uc := newUseCase(s)
	registerWholesaler(t, uc, "inactivo@test.local")
	s.users["inactivo@test.local"].IsActive = false

	_, err := uc.Login(dto.LoginRequest{Email: "inactivo@test.local", Password: "password-123"})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount,
		"cuenta desactivada no inicia sesión aunque las credenciales sean correctas")
}

func TestLogin_TokenExpiraSegunConfig(t *testing.T) {
	s := newFakeStore()
	uc := auth.NewAuthUseCase(
		&fakeUserRepo{s}, &fakeWholesalerRepo{s}, &fakeTxRunner{s},
		auth.JWTConfig{Secret: testSecret, ExpMinutes: -1, Issuer: testIssuer},
	)
	hash, err := bcrypt.GenerateFromPassword([]byte("password-123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	s.users["exp@test.local"] = &entity.User{
		ID: "u1", Email: "exp@test.local", PasswordHash: string(hash),
		Role: entity.RoleWholesaler, IsActive: true,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}

	out, err := uc.Login(dto.LoginRequest{Email: "exp@test.local", Password: "password-123"})
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, out.Token)
	assert.Error(t, err, "un token ya vencido no debe validar")
}
