package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"blue-star-api/internal/domain"
	"blue-star-api/internal/repository"
	"blue-star-api/internal/validation"
)

// AuthService coordina registro, login y logout.
type AuthService struct {
	logger    *zap.Logger
	users     repository.UserRepository
	blacklist repository.TokenBlacklistRepository
	tokens    *TokenService
	hashCost  int
}

var (
	ErrUserExists         = errors.New("user already exists")
	ErrEmailConflict      = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUserNotFound       = errors.New("user not found")
)

const defaultHashCost = 12

func NewAuthService(logger *zap.Logger, users repository.UserRepository, blacklist repository.TokenBlacklistRepository, tokens *TokenService, hashCost int) *AuthService {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = defaultHashCost
	}
	return &AuthService{
		logger:    logger,
		users:     users,
		blacklist: blacklist,
		tokens:    tokens,
		hashCost:  hashCost,
	}
}

// Register sanea, valida y persiste un usuario nuevo. Devuelve
// *validation.Error para fallas de entrada, ErrUserExists cuando el
// pre-chequeo encuentra el email y ErrEmailConflict cuando la
// restriccion de unicidad gana la carrera contra el pre-chequeo.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) error {
	sanitized := validation.SanitizeRegistration(reg)
	if verr := validation.ValidateRegistration(sanitized); verr != nil {
		return verr
	}

	// El pre-chequeo es solo UX: la constraint unica es la garantia real.
	_, err := s.users.GetByEmail(ctx, sanitized.Email)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("lookup existing user: %w", err)
	}

	// El hash corre fuera de la transaccion para no retener locks
	// durante un calculo costoso.
	hash, err := bcrypt.GenerateFromPassword([]byte(sanitized.Password), s.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		Email:        sanitized.Email,
		PasswordHash: string(hash),
		FirstName:    sanitized.FirstName,
		LastName:     sanitized.LastName,
		PhoneNumber:  sanitized.PhoneNumber,
		Gender:       domain.Gender(sanitized.Gender),
		UserType:     domain.UserType(sanitized.UserType),
	}

	var member *domain.ServiceMember
	if user.UserType == domain.UserTypeServiceMember {
		member = &domain.ServiceMember{
			Branch:         domain.Branch(sanitized.Branch),
			AddressLineOne: sanitized.AddressLineOne,
			AddressLineTwo: sanitized.AddressLineTwo,
			Country:        sanitized.Country,
			State:          sanitized.State,
			City:           sanitized.City,
			ZipCode:        sanitized.ZipCode,
		}
	}

	if _, err := s.users.Create(ctx, user, member); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrEmailConflict
		}
		return fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("email", user.Email),
		zap.String("user_type", string(user.UserType)),
	)
	return nil
}

// Login verifica credenciales y emite un token firmado. Un email
// desconocido y una clave incorrecta devuelven el mismo error para no
// permitir enumeracion de usuarios.
func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (string, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Generate(user)
}

// Logout verifica el token y lo agrega a la blacklist. Repetir el
// logout con el mismo token tambien es exito.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if _, err := s.tokens.Parse(token); err != nil {
		return err
	}
	if err := s.blacklist.Add(ctx, token); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

// VerifyAccess valida un token para rutas protegidas, rechazando los
// que ya figuran en la blacklist.
func (s *AuthService) VerifyAccess(ctx context.Context, token string) (Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return Claims{}, err
	}
	listed, err := s.blacklist.Exists(ctx, token)
	if err != nil {
		return Claims{}, fmt.Errorf("blacklist lookup: %w", err)
	}
	if listed {
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}

// GetUser devuelve el usuario autenticado.
func (s *AuthService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
