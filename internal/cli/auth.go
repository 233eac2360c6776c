package cli

import (
	"context"

	"github.com/dmitrijs2005/phishguard/internal/common"
	"github.com/dmitrijs2005/phishguard/internal/services"
)

// Register prompts for username, email, password and confirmation and
// submits them through the Gate. Both password buffers are wiped before
// returning. The returned error is the Gate's, already shown to the user.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	pw, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	confirm, err := GetPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	res := a.gate.Register(ctx, services.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        pw,
		ConfirmPassword: confirm,
	})
	a.say(res)
	return res.Err
}

// Login prompts for a username or email and a password.
func (a *App) Login(ctx context.Context) error {
	identifier, err := GetSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	pw, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	res := a.gate.Login(ctx, identifier, pw)
	a.say(res)
	return res.Err
}

func (a *App) Logout(ctx context.Context) error {
	a.say(a.gate.Logout())
	return nil
}
