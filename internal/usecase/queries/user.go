package queries

import (
	"context"

	"pharmalink/internal/domain/user"
	"pharmalink/internal/infra"
	"pharmalink/internal/pkg/errs"
	"pharmalink/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrUserInactive         = errs.New("user account is inactive")
)

// CredentialRecord carries what the login check needs and nothing more.
type CredentialRecord struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         user.Role
	Name         string
	IsActive     bool
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*CredentialRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type LoginResult struct {
	Token string
	User  AuthorizedUserView
}

type AuthQueries interface {
	// Login verifies the credentials and issues a signed token. Wrong email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	GetAuthorizedUser(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type authQueriesImpl struct {
	readStore UserReadStore
	tokens    TokenIssuer
}

func NewAuthQueries(readStore UserReadStore, tokens TokenIssuer) AuthQueries {
	return &authQueriesImpl{readStore: readStore, tokens: tokens}
}

func (q *authQueriesImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	rec, err := q.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}
	if !rec.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(rec.PasswordHash, plainPassword); err != nil {
		return nil, ErrAuthenticationFailed
	}

	token, err := q.tokens.GenerateToken(rec.ID, rec.Role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		Token: token,
		User: AuthorizedUserView{
			ID:       rec.ID,
			Email:    rec.Email,
			Role:     rec.Role.String(),
			Name:     rec.Name,
			IsActive: rec.IsActive,
		},
	}, nil
}

func (q *authQueriesImpl) GetAuthorizedUser(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}
	return view, nil
}
