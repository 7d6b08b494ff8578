package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/pkg/jwt"
	"github.com/jhoicas/Restaurante-api/pkg/metrics"
)

// PasswordCost factor de costo de bcrypt para los hashes nuevos.
const PasswordCost = 10

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// dummyHash se compara cuando el email no existe para que el tiempo de respuesta
// no revele si la cuenta existe.
var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func timingHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("restaurante-api/dummy-password"), PasswordCost)
	})
	return dummyHash
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario activo: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe (comparación exacta).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisteredUserResponse, error) {
	user := &entity.User{
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Active:   true,
	}
	if user.FullName == "" {
		return nil, fmt.Errorf("%w: fullName es obligatorio", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(user.Email); err != nil || !strings.Contains(user.Email, "@") {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password es obligatorio", domain.ErrInvalidInput)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		metrics.ObserveAuth("register", "error")
		return nil, err
	}
	if existing != nil {
		metrics.ObserveAuth("register", "conflict")
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password supera 72 bytes", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			metrics.ObserveAuth("register", "conflict")
		} else {
			metrics.ObserveAuth("register", "error")
		}
		return nil, err
	}
	metrics.ObserveAuth("register", "ok")
	return &dto.RegisteredUserResponse{ID: user.ID, Email: user.Email}, nil
}

// Login verifica email/password, genera JWT y retorna token + identidad.
// Email desconocido, password incorrecto y usuario inactivo devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		metrics.ObserveAuth("login", "error")
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(timingHash(), []byte(in.Password))
		metrics.ObserveAuth("login", "unauthorized")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		metrics.ObserveAuth("login", "unauthorized")
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		metrics.ObserveAuth("login", "unauthorized")
		return nil, domain.ErrUnauthorized
	}

	roles := user.Roles.Names()
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Roles:  roles,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.TTL)
	if err != nil {
		metrics.ObserveAuth("login", "error")
		return nil, fmt.Errorf("generar token: %w", err)
	}
	metrics.ObserveAuth("login", "ok")
	return &dto.LoginResponse{
		Token:    token,
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Roles:    roles,
	}, nil
}
