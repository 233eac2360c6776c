package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/phishguard/internal/common"
	"github.com/dmitrijs2005/phishguard/internal/logging"
	"github.com/dmitrijs2005/phishguard/internal/models"
	"github.com/dmitrijs2005/phishguard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	registerErr error
	loginOK     bool
	loginErr    error

	registered []services.RegisterRequest
	logins     []string
}

func (f *fakeAuth) Register(ctx context.Context, req services.RegisterRequest) (*models.User, error) {
	f.registered = append(f.registered, req)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &models.User{ID: 1, UserName: req.Username, Email: req.Email}, nil
}

func (f *fakeAuth) Login(ctx context.Context, identifier string, password []byte) (bool, error) {
	f.logins = append(f.logins, identifier)
	return f.loginOK, f.loginErr
}

type fakeDetector struct {
	calls int
}

func (f *fakeDetector) Detect(ctx context.Context, kind services.Kind, input string) (*services.Verdict, error) {
	f.calls++
	return &services.Verdict{Kind: kind, Phishing: true, Score: 0.9}, nil
}

func newGate(auth *fakeAuth, det *fakeDetector) *Gate {
	return NewGate(New(), auth, det, logging.NewNopLogger())
}

func TestNewSession_IsAnonymous(t *testing.T) {
	s := New()
	assert.Equal(t, Anonymous, s.State())
	assert.Empty(t, s.Identity())
	assert.Len(t, s.ID(), 36)
	assert.NotEqual(t, s.ID(), New().ID())
}

func TestGate_LoginLogoutCycle(t *testing.T) {
	ctx := context.Background()
	g := newGate(&fakeAuth{loginOK: true}, &fakeDetector{})

	res := g.Login(ctx, "alice@example.com", []byte("secret1"))
	require.True(t, res.OK)
	assert.Equal(t, "Login successful", res.Message)
	assert.Equal(t, Authenticated, g.Session().State())
	assert.Equal(t, "alice@example.com", g.Session().Identity())

	res = g.Logout()
	require.True(t, res.OK)
	assert.Equal(t, Anonymous, g.Session().State())
	assert.Empty(t, g.Session().Identity())
}

func TestGate_FailedLoginStaysAnonymous(t *testing.T) {
	g := newGate(&fakeAuth{loginOK: false}, &fakeDetector{})

	res := g.Login(context.Background(), "alice", []byte("wrong"))
	assert.False(t, res.OK)
	require.ErrorIs(t, res.Err, services.ErrInvalidCredentials)
	assert.Equal(t, "Invalid username/email or password", res.Message)
	assert.Equal(t, Anonymous, g.Session().State())
}

func TestGate_LoginStorageFailure(t *testing.T) {
	err := fmt.Errorf("%w: disk I/O error", services.ErrStorageUnavailable)
	g := newGate(&fakeAuth{loginErr: err}, &fakeDetector{})

	res := g.Login(context.Background(), "alice", []byte("secret1"))
	assert.False(t, res.OK)
	require.ErrorIs(t, res.Err, services.ErrStorageUnavailable)
	assert.Equal(t, "Service temporarily unavailable, please try again later", res.Message)
	assert.Equal(t, Anonymous, g.Session().State())
}

func TestGate_RegisterDoesNotLogIn(t *testing.T) {
	g := newGate(&fakeAuth{}, &fakeDetector{})

	res := g.Register(context.Background(), services.RegisterRequest{Username: "alice"})
	require.True(t, res.OK)
	assert.Equal(t, "Registration successful", res.Message)
	assert.Equal(t, Anonymous, g.Session().State())
}

func TestGate_RegisterFailureMessage(t *testing.T) {
	g := newGate(&fakeAuth{registerErr: services.ErrDuplicateUser}, &fakeDetector{})

	res := g.Register(context.Background(), services.RegisterRequest{})
	assert.False(t, res.OK)
	assert.Equal(t, "Username or Email already exists", res.Message)
}

func TestGate_AuthenticatedRefusesAuthOperations(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuth{loginOK: true}
	g := newGate(auth, &fakeDetector{})
	require.True(t, g.Login(ctx, "alice", []byte("secret1")).OK)

	res := g.Login(ctx, "bob", []byte("secret2"))
	require.ErrorIs(t, res.Err, ErrAlreadyAuthenticated)
	assert.Equal(t, "Already logged in", res.Message)
	assert.Equal(t, "alice", g.Session().Identity())

	res = g.Register(ctx, services.RegisterRequest{Username: "bob"})
	require.ErrorIs(t, res.Err, ErrAlreadyAuthenticated)

	assert.Equal(t, []string{"alice"}, auth.logins)
	assert.Empty(t, auth.registered)
}

func TestGate_DetectRequiresAuthentication(t *testing.T) {
	ctx := context.Background()
	det := &fakeDetector{}
	g := newGate(&fakeAuth{loginOK: true}, det)

	_, err := g.Detect(ctx, services.KindURL, "http://x")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Equal(t, "Please log in first", MessageFor(err))
	assert.Zero(t, det.calls)

	require.True(t, g.Login(ctx, "alice", []byte("secret1")).OK)
	v, err := g.Detect(ctx, services.KindURL, "http://x")
	require.NoError(t, err)
	assert.True(t, v.Phishing)
	assert.Equal(t, 1, det.calls)

	g.Logout()
	_, err = g.Detect(ctx, services.KindURL, "http://x")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestGate_LogoutWhenAnonymous(t *testing.T) {
	g := newGate(&fakeAuth{}, &fakeDetector{})
	res := g.Logout()
	assert.True(t, res.OK)
	assert.Equal(t, Anonymous, g.Session().State())
}
