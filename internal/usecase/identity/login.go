package identity

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-manager/internal/auth"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/identity"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/ratelimit"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type LoginInput struct {
	Login    string
	Password string
	Type     auth.PrincipalType
}

type PrincipalData struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type LoginResult struct {
	Token         string        `json:"token"`
	ExpiresAt     time.Time     `json:"expiresAt"`
	PrincipalData PrincipalData `json:"principalData"`
}

const msgCredentialMismatch = "Login or password incorrect."

// ======================================================
// USE CASE
// ======================================================

type Login struct {
	repo    domain.Repository
	tokens  *auth.TokenService
	limiter ratelimit.LoginLimiter
	log     *zap.Logger
}

func NewLogin(
	repo domain.Repository,
	tokens *auth.TokenService,
	limiter ratelimit.LoginLimiter,
	log *zap.Logger,
) *Login {
	if limiter == nil {
		limiter = ratelimit.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Login{
		repo:    repo,
		tokens:  tokens,
		limiter: limiter,
		log:     log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginResult, error) {
	login := strings.TrimSpace(in.Login)
	if login == "" {
		return nil, httperr.MissingField("Insert your login to enter.")
	}
	if in.Password == "" {
		return nil, httperr.MissingField("Insert your password to enter.")
	}

	// --------------------------------------------------
	// Throttling (fails open)
	// --------------------------------------------------
	key := in.Type.String() + ":" + login
	allowed, err := uc.limiter.Allow(ctx, key)
	if err != nil {
		uc.log.Warn("login limiter unavailable", zap.Error(err))
	}
	if !allowed {
		return nil, httperr.TooManyAttempts()
	}

	// --------------------------------------------------
	// Credentials
	// --------------------------------------------------
	p, err := uc.repo.FindByLogin(ctx, in.Type, login)
	if httperr.Is(err, httperr.KindNotFound) {
		auth.BurnComparison(in.Password)
		uc.fail(ctx, key)
		return nil, httperr.CredentialMismatch(msgCredentialMismatch)
	}
	if err != nil {
		return nil, err
	}

	if err := auth.ComparePassword(p.PasswordHash, in.Password); err != nil {
		uc.fail(ctx, key)
		return nil, httperr.CredentialMismatch(msgCredentialMismatch)
	}

	// --------------------------------------------------
	// Token
	// --------------------------------------------------
	token, expiresAt, err := uc.tokens.Issue(p.ID, in.Type)
	if err != nil {
		return nil, httperr.Internal(err)
	}

	if err := uc.limiter.Reset(ctx, key); err != nil {
		uc.log.Warn("login limiter reset failed", zap.Error(err))
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		PrincipalData: PrincipalData{
			ID:   p.ID,
			Name: p.Name,
		},
	}, nil
}

func (uc *Login) fail(ctx context.Context, key string) {
	if err := uc.limiter.Fail(ctx, key); err != nil {
		uc.log.Warn("login limiter write failed", zap.Error(err))
	}
}
