package cli

import (
	"context"
	"fmt"
)

func (a *App) Login(ctx context.Context, args []string) error {

	email, err := a.emailArg(args)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, a.prompt)
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, token)
	return err

}
