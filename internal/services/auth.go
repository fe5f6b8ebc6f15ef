package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/ctxutil"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/validate"
)

const CodeEmailTaken = "email_taken"

type JWTClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterInput has no role field; the server decides the role.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*types.User, error)
	Login(ctx context.Context, in LoginInput) (string, *types.User, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type AuthConfig struct {
	JWTSecretKey string
	AccessTTL    time.Duration
	AdminEmails  []string
	Clock        Clock
}

type authService struct {
	log          *logger.Logger
	userRepo     repos.UserRepo
	jwtSecretKey []byte
	accessTTL    time.Duration
	adminEmails  map[string]bool
	clock        Clock
}

func NewAuthService(log *logger.Logger, userRepo repos.UserRepo, cfg AuthConfig) AuthService {
	admins := make(map[string]bool, len(cfg.AdminEmails))
	for _, e := range cfg.AdminEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			admins[e] = true
		}
	}
	return &authService{
		log:          log.With("service", "AuthService"),
		userRepo:     userRepo,
		jwtSecretKey: []byte(cfg.JWTSecretKey),
		accessTTL:    cfg.AccessTTL,
		adminEmails:  admins,
		clock:        cfg.Clock.orNow(),
	}
}

func (as *authService) Register(ctx context.Context, in RegisterInput) (*types.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	dbc := dbctx.New(ctx)
	exists, err := as.userRepo.EmailExists(dbc, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, apierr.New(http.StatusConflict, CodeEmailTaken, errors.New("user already exists"))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := types.RoleUser
	if as.adminEmails[in.Email] {
		role = types.RoleAdmin
	}
	created, err := as.userRepo.Create(dbc, []*types.User{{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Role:     role,
	}})
	if err != nil {
		as.log.Error("User create failed", "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}
	as.log.Info("User registered", "user_id", created[0].ID, "role", role)
	return created[0], nil
}

func (as *authService) Login(ctx context.Context, in LoginInput) (string, *types.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validate.Struct(in); err != nil {
		return "", nil, err
	}
	users, err := as.userRepo.GetByEmails(dbctx.New(ctx), []string{in.Email})
	if err != nil {
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if len(users) == 0 {
		return "", nil, apierr.Unauthorized("invalid email or password")
	}
	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", nil, apierr.Unauthorized("invalid email or password")
	}
	tok, err := as.generateAccessToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate access token: %w", err)
	}
	return tok, user, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	now := as.clock()
	claims := JWTClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(as.jwtSecretKey)
}

// SetContextFromToken attaches the caller identity carried by a valid token.
// The role comes only from the signed claims.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, apierr.Unauthorized("missing token")
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return as.jwtSecretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(as.clock))
	if err != nil {
		return ctx, apierr.Unauthorized("token is not valid")
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid {
		return ctx, apierr.Unauthorized("token is not valid")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, apierr.Unauthorized("token is not valid")
	}
	role := claims.Role
	if !types.ValidRole(role) {
		role = types.RoleUser
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{UserID: userID, Role: role}), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
