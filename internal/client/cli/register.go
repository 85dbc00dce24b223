package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context, args []string) error {

	email, err := a.emailArg(args)
	if err != nil {
		return err
	}

	firstName, err := GetSimpleText(a.reader, "Enter first name", a.prompt)
	if err != nil {
		return err
	}

	lastName, err := GetSimpleText(a.reader, "Enter last name", a.prompt)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, a.prompt)
	if err != nil {
		return err
	}

	token, err := a.api.Register(ctx, firstName, lastName, email, password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, token)
	return err

}
