package bootstrap

import (
	"pharmalink/internal/domain/user"
	"pharmalink/internal/handler/middleware"
	"pharmalink/internal/pkg/config"
	"pharmalink/internal/pkg/jwt"
	"pharmalink/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		fx.Annotate(
			NewTokenValidator,
			fx.As(new(middleware.TokenValidator)),
		),
		func(svc *jwt.Service) queries.TokenIssuer { return svc },
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}

// tokenValidator adapts jwt.Service claims to what the auth middleware needs.
type tokenValidator struct {
	svc *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) *tokenValidator {
	return &tokenValidator{svc: svc}
}

func (v *tokenValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.svc.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
