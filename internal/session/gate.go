package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/phishguard/internal/common"
	"github.com/dmitrijs2005/phishguard/internal/logging"
	"github.com/dmitrijs2005/phishguard/internal/models"
	"github.com/dmitrijs2005/phishguard/internal/services"
)

var ErrAlreadyAuthenticated = errors.New("already authenticated")

const (
	msgAlreadyAuthenticated = "Already logged in"
	msgLoggedOut            = "Logged out"
	msgNotLoggedIn          = "Please log in first"
)

// Authenticator is implemented by *services.AuthService.
type Authenticator interface {
	Register(ctx context.Context, req services.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, identifier string, password []byte) (bool, error)
}

// Detector is implemented by *services.DetectionService.
type Detector interface {
	Detect(ctx context.Context, kind services.Kind, input string) (*services.Verdict, error)
}

// Result is the user-facing outcome of an auth operation.
type Result struct {
	OK      bool
	Message string
	Err     error
}

func failure(err error) Result {
	return Result{Message: MessageFor(err), Err: err}
}

// MessageFor extends services.Message with the Gate's own errors.
func MessageFor(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyAuthenticated):
		return msgAlreadyAuthenticated
	case errors.Is(err, common.ErrorUnauthorized):
		return msgNotLoggedIn
	}
	return services.Message(err)
}

// Gate routes requests by session state: register and login only while
// anonymous, detection only while authenticated.
type Gate struct {
	session  *Session
	auth     Authenticator
	detector Detector
	logger   logging.Logger
}

func NewGate(s *Session, auth Authenticator, detector Detector, logger logging.Logger) *Gate {
	return &Gate{
		session:  s,
		auth:     auth,
		detector: detector,
		logger:   logger.With("session_id", s.ID()),
	}
}

func (g *Gate) Session() *Session { return g.session }

// Register creates an account. It does not log the user in.
func (g *Gate) Register(ctx context.Context, req services.RegisterRequest) Result {
	if g.session.IsAuthenticated() {
		return failure(ErrAlreadyAuthenticated)
	}

	if _, err := g.auth.Register(ctx, req); err != nil {
		return failure(err)
	}
	return Result{OK: true, Message: services.MsgRegistered}
}

// Login authenticates identifier and, on success, moves the session to
// Authenticated with identifier as its identity.
func (g *Gate) Login(ctx context.Context, identifier string, password []byte) Result {
	if g.session.IsAuthenticated() {
		return failure(ErrAlreadyAuthenticated)
	}

	ok, err := g.auth.Login(ctx, identifier, password)
	if err != nil {
		return failure(err)
	}
	if !ok {
		return failure(services.ErrInvalidCredentials)
	}

	g.session.authenticate(identifier)
	g.logger.Info(ctx, "session authenticated", "identifier", identifier)
	return Result{OK: true, Message: services.MsgLoggedIn}
}

// Logout returns the session to Anonymous. Logging out an anonymous session
// is a no-op.
func (g *Gate) Logout() Result {
	if !g.session.IsAuthenticated() {
		return Result{OK: true, Message: msgLoggedOut}
	}
	identity := g.session.Identity()
	g.session.clear()
	g.logger.Info(context.Background(), "session cleared", "identifier", identity)
	return Result{OK: true, Message: msgLoggedOut}
}

// Detect runs the protected detection. Anonymous sessions get
// common.ErrorUnauthorized.
func (g *Gate) Detect(ctx context.Context, kind services.Kind, input string) (*services.Verdict, error) {
	if !g.session.IsAuthenticated() {
		return nil, common.ErrorUnauthorized
	}
	return g.detector.Detect(ctx, kind, input)
}
