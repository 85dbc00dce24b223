// Package services contains server-side business logic. UserService
// implements registration and login on top of the credential store, the
// password hasher and the token codec.
package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

// Caller-visible messages. Several causes share one message.
const (
	MsgInvalidCredentials  = "invalid email or password"
	MsgCreateUserFailed    = "error while creating the user"
	MsgUserAlreadyExists   = "user already exists"
	MsgTokenFailed         = "cannot generate a token for the user"
	MsgInvalidRegistration = "invalid registration data"
)

// TokenIssuer mints access tokens. *auth.Codec implements it.
type TokenIssuer interface {
	ClaimsFor(userID int64) auth.Claims
	Issue(claims auth.Claims) (string, error)
}

// RegisterInput is the data needed to create an account. Only the column
// widths of the users table are enforced; any other value is accepted as is.
type RegisterInput struct {
	FirstName string `validate:"max=100"`
	LastName  string `validate:"max=100"`
	Email     string `validate:"max=255"`
	Password  string
}

// UserService provides Login and Register. Errors it returns are always
// *common.Error.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	tokens      TokenIssuer
	validate    *validator.Validate

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService constructs a UserService over an open store.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h auth.PasswordHasher, t TokenIssuer) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      h,
		tokens:      t,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Login checks email and password and returns a fresh access token. Unknown
// email, wrong password, lookup failures and issuance failures all produce
// the same Unauthenticated error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	if err != nil {
		// spend the same hashing time as for a known email
		s.hasher.Verify(password, s.placeholderHash())
		return "", common.NewError(common.KindUnauthenticated, MsgInvalidCredentials, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.NewError(common.KindUnauthenticated, MsgInvalidCredentials, nil)
	}

	token, err := s.tokens.Issue(s.tokens.ClaimsFor(user.ID))
	if err != nil {
		return "", common.NewError(common.KindUnauthenticated, MsgInvalidCredentials, err)
	}

	return token, nil
}

// Register creates the account and returns an access token for it. The
// insert and the token issuance share a transaction, so a failed issuance
// leaves no account behind.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if err := s.validate.Struct(in); err != nil {
		return "", common.NewError(common.KindInvalidArgument, MsgInvalidRegistration, err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", common.NewError(common.KindInternal, MsgCreateUserFailed, err)
	}

	var token string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.repomanager.Users(tx).Create(ctx, &models.User{
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.NewError(common.KindAlreadyExists, MsgUserAlreadyExists, err)
			}
			return common.NewError(common.KindInternal, MsgCreateUserFailed, err)
		}

		token, err = s.tokens.Issue(s.tokens.ClaimsFor(user.ID))
		if err != nil {
			return common.NewError(common.KindInternal, MsgTokenFailed, err)
		}
		return nil
	})
	if err != nil {
		var appErr *common.Error
		if errors.As(err, &appErr) {
			return "", appErr
		}
		// begin or commit failed
		return "", common.NewError(common.KindInternal, MsgCreateUserFailed, err)
	}

	return token, nil
}

func (s *UserService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("placeholder-password")
	})
	return s.dummyHash
}
