package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/examhub/internal/client/client"
	"github.com/dmitrijs2005/examhub/internal/client/services"
	"github.com/dmitrijs2005/examhub/internal/client/session"
	"github.com/dmitrijs2005/examhub/internal/client/upload"
)

// errUsage marks a command invoked with missing or malformed arguments.
var errUsage = errors.New("usage")

func usage(text string) error {
	return fmt.Errorf("%w: %s", errUsage, text)
}

// describe turns an error into a one-line message for the terminal.
func describe(err error) string {
	var (
		reqErr   *client.RequestError
		stageErr *upload.StageError
		authErr  *services.AuthError
	)
	switch {
	case errors.Is(err, errUsage):
		return err.Error()
	case errors.Is(err, session.ErrNoSession):
		return "not logged in, run 'login' first"
	case errors.Is(err, services.ErrNoInitData):
		return "no Telegram init data available"
	case errors.As(err, &authErr):
		return "login failed: " + describe(authErr.Err)
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	case errors.As(err, &stageErr):
		if stageErr.Stage == upload.StageStore {
			return fmt.Sprintf("upload failed at page %d: %s", stageErr.Page, describe(stageErr.Err))
		}
		return "saving exam failed: " + describe(stageErr.Err)
	case errors.As(err, &reqErr):
		return reqErr.Message
	default:
		return err.Error()
	}
}

// fail prints err for the user, logs it and returns it unchanged.
func (a *App) fail(ctx context.Context, cmd string, err error) error {
	fmt.Fprintln(a.out, "Error:", describe(err))
	a.log.Warn(ctx, "command failed", "command", cmd, "error", err)
	return err
}
