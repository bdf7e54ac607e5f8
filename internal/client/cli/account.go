package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/examhub/internal/client/client"
	"github.com/dmitrijs2005/examhub/internal/client/models"
)

// Login verifies the current init payload. When neither the environment nor
// the payload file provides one, the user is asked to paste it.
func (a *App) Login(ctx context.Context, _ []string) error {
	if a.source.InitData() == "" {
		payload, err := GetSecret(a.reader, "Paste Telegram init data", a.out)
		if err != nil {
			return a.fail(ctx, "login", err)
		}
		a.manual.set(payload)
	}

	sess, err := a.auth.Authenticate(ctx)
	if err != nil {
		return a.fail(ctx, "login", err)
	}

	a.log.Info(ctx, "logged in", "user_id", sess.User.ID)
	fmt.Fprintf(a.out, "Logged in as %s\n", sess.User.Username)
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	sess, err := a.holder.Require()
	if err != nil {
		return a.fail(ctx, "whoami", err)
	}
	fmt.Fprintf(a.out, "%s (id %s, telegram %s)\n", sess.User.Username, sess.User.ID, sess.User.TelegramID)
	return nil
}

// Profile shows the caller's profile, or another user's when an id is given.
func (a *App) Profile(ctx context.Context, args []string) error {
	var (
		resp *client.ProfileResponse
		err  error
	)
	if len(args) > 0 {
		resp, err = a.api.GetUserProfile(ctx, args[0])
	} else {
		resp, err = a.api.GetProfile(ctx)
	}
	if err != nil {
		return a.fail(ctx, "profile", err)
	}

	a.printUser(resp.User)
	return nil
}

func (a *App) printUser(u models.User) {
	fmt.Fprintf(a.out, "%s (id %s)\n", u.Username, u.ID)
	if u.Bio != "" {
		fmt.Fprintf(a.out, "  %s\n", u.Bio)
	}
	if u.AvatarURL != "" {
		fmt.Fprintf(a.out, "  avatar: %s\n", u.AvatarURL)
	}
	fmt.Fprintf(a.out, "  followers: %d, following: %d\n", u.FollowersCount, u.FollowingCount)
	if u.IsFollowing != nil {
		if *u.IsFollowing {
			fmt.Fprintln(a.out, "  you follow this user")
		} else {
			fmt.Fprintln(a.out, "  you do not follow this user")
		}
	}
}

// EditProfile prompts for each editable field; an empty answer keeps the
// current value.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	if _, err := a.holder.Require(); err != nil {
		return a.fail(ctx, "editprofile", err)
	}

	var update models.ProfileUpdate
	fields := []struct {
		prompt string
		dst    **string
	}{
		{"Username (empty to keep)", &update.Username},
		{"Bio (empty to keep)", &update.Bio},
		{"Avatar URL (empty to keep)", &update.AvatarURL},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return a.fail(ctx, "editprofile", err)
		}
		if v != "" {
			*f.dst = &v
		}
	}

	if update.Username == nil && update.Bio == nil && update.AvatarURL == nil {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}

	resp, err := a.api.UpdateProfile(ctx, update)
	if err != nil {
		return a.fail(ctx, "editprofile", err)
	}
	if resp.User != nil {
		if sess, ok := a.holder.Get(); ok {
			updated := *sess
			updated.User = *resp.User
			a.holder.Set(&updated)
		}
	}
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

func (a *App) Follow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.fail(ctx, "follow", usage("follow <user id>"))
	}
	resp, err := a.api.Follow(ctx, args[0])
	if err != nil {
		return a.fail(ctx, "follow", err)
	}
	a.printToggle(resp.Message, "Following "+args[0])
	return nil
}

func (a *App) Unfollow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.fail(ctx, "unfollow", usage("unfollow <user id>"))
	}
	if _, err := a.api.Unfollow(ctx, args[0]); err != nil {
		return a.fail(ctx, "unfollow", err)
	}
	fmt.Fprintln(a.out, "Unfollowed "+args[0])
	return nil
}

// printToggle prints the server's message for idempotent repeats, otherwise
// the default text.
func (a *App) printToggle(message, def string) {
	if message != "" {
		fmt.Fprintln(a.out, message)
		return
	}
	fmt.Fprintln(a.out, def)
}

// Health pings the server once and updates the mode indicator.
func (a *App) Health(ctx context.Context, _ []string) error {
	if err := a.checkHealth(ctx); err != nil {
		return a.fail(ctx, "health", err)
	}
	fmt.Fprintln(a.out, "Server is up")
	return nil
}
