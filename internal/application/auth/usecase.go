package auth

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/application/ports"
	"github.com/jhoicas/integraprice-api/internal/domain"
	"github.com/jhoicas/integraprice-api/internal/domain/entity"
	"github.com/jhoicas/integraprice-api/internal/domain/repository"
	"github.com/jhoicas/integraprice-api/pkg/jwt"
)

const avatarBaseURL = "https://ui-avatars.com/api/?name="

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación simulada: no verifica credenciales, solo arma el usuario,
// guarda la sesión y emite un JWT para el resto de la API.
type AuthUseCase struct {
	sessions repository.SessionRepository
	jwtCfg   JWTConfig
	metrics  ports.Metrics
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(sessions repository.SessionRepository, jwtCfg JWTConfig, metrics ports.Metrics) *AuthUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &AuthUseCase{sessions: sessions, jwtCfg: jwtCfg, metrics: metrics}
}

// Login acepta cualquier password. El nombre es la parte local del email y el ID
// se deriva del email, de modo que el mismo email recupera el mismo usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	name := localPart(email)
	user := entity.UserRecord{
		ID:     uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(email))).String(),
		Email:  email,
		Name:   name,
		Avatar: avatarURL(name),
	}
	resp, err := uc.startSession(ctx, user)
	if err != nil {
		return nil, err
	}
	uc.metrics.AuthEvent("login")
	return resp, nil
}

// Register crea un usuario nuevo con ID aleatorio. Sin nombre se usa la parte local del email.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, domain.ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = localPart(email)
	}
	user := entity.UserRecord{
		ID:     uuid.New().String(),
		Email:  email,
		Name:   name,
		Avatar: avatarURL(name),
	}
	resp, err := uc.startSession(ctx, user)
	if err != nil {
		return nil, err
	}
	uc.metrics.AuthEvent("register")
	return resp, nil
}

// Logout borra la sesión guardada.
func (uc *AuthUseCase) Logout(ctx context.Context) {
	uc.sessions.ClearSession(ctx)
	uc.metrics.AuthEvent("logout")
}

// CurrentSession devuelve el usuario de la sesión guardada o domain.ErrNotFound.
func (uc *AuthUseCase) CurrentSession(ctx context.Context) (*dto.UserResponse, error) {
	u := uc.sessions.LoadSession(ctx)
	if u == nil {
		return nil, domain.ErrNotFound
	}
	out := toUserResponse(*u)
	return &out, nil
}

func (uc *AuthUseCase) startSession(ctx context.Context, user entity.UserRecord) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.sessions.SaveSession(ctx, user)
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

func avatarURL(name string) string {
	return avatarBaseURL + url.QueryEscape(name)
}

func toUserResponse(u entity.UserRecord) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Avatar: u.Avatar}
}
