package cli

import (
	"context"
	"fmt"

	"github.com/socialsched/socialsched/internal/service"
)

func (c *CLI) cmdSignup(ctx context.Context) {
	username, err := promptLine(c.in, c.out, "username")
	if err != nil {
		return
	}
	email, err := promptLine(c.in, c.out, "email")
	if err != nil {
		return
	}
	password, err := promptPassword(c.out, "password")
	if err != nil {
		return
	}

	if err := c.auth.Signup(ctx, username, email, password); err != nil {
		fmt.Fprintln(c.out, "signup failed:", err)
		return
	}
	c.bindPosts()
	fmt.Fprintf(c.out, "welcome to SocialSched, %s!\n", c.auth.CurrentUser().Username)
}

func (c *CLI) cmdLogin(ctx context.Context) {
	email, err := promptLine(c.in, c.out, "email")
	if err != nil {
		return
	}
	password, err := promptPassword(c.out, "password")
	if err != nil {
		return
	}
	remember, err := promptLine(c.in, c.out, "stay signed in for 30 days? [y/N]")
	if err != nil {
		return
	}

	if err := c.auth.Login(ctx, email, password, remember == "y" || remember == "yes"); err != nil {
		fmt.Fprintln(c.out, "login failed:", err)
		return
	}
	c.bindPosts()
	fmt.Fprintf(c.out, "welcome back, %s!\n", c.auth.CurrentUser().Username)
}

func (c *CLI) cmdLogout(ctx context.Context) {
	c.auth.Logout(ctx)
	c.bindPosts()
	fmt.Fprintln(c.out, "logged out")
}

func (c *CLI) cmdWhoami() {
	user := c.auth.CurrentUser()
	if user == nil {
		fmt.Fprintln(c.out, "not signed in")
		return
	}
	fmt.Fprintf(c.out, "%s <%s> (since %s)\n", user.Username, user.Email, user.CreatedAt.Format("2006-01-02"))
}

// cmdProfile updates username and/or email; empty answers keep the
// current value.
func (c *CLI) cmdProfile(ctx context.Context) {
	if !c.loggedIn() {
		fmt.Fprintln(c.out, service.ErrNotAuthenticated)
		return
	}

	username, err := promptLine(c.in, c.out, "new username (blank to keep)")
	if err != nil {
		return
	}
	email, err := promptLine(c.in, c.out, "new email (blank to keep)")
	if err != nil {
		return
	}

	var changes service.ProfileChanges
	if username != "" {
		changes.Username = &username
	}
	if email != "" {
		changes.Email = &email
	}
	if changes.Username == nil && changes.Email == nil {
		fmt.Fprintln(c.out, "nothing to change")
		return
	}

	if err := c.auth.UpdateProfile(ctx, changes); err != nil {
		fmt.Fprintln(c.out, "update failed:", err)
		return
	}
	fmt.Fprintln(c.out, "profile updated")
}

func (c *CLI) cmdPasswd(ctx context.Context) {
	if !c.loggedIn() {
		fmt.Fprintln(c.out, service.ErrNotAuthenticated)
		return
	}

	current, err := promptPassword(c.out, "current password")
	if err != nil {
		return
	}
	next, err := promptPassword(c.out, "new password")
	if err != nil {
		return
	}

	if err := c.auth.ChangePassword(ctx, current, next); err != nil {
		fmt.Fprintln(c.out, "change failed:", err)
		return
	}
	fmt.Fprintln(c.out, "password changed")
}
