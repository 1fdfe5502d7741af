// Package cli is the interactive terminal front end. It is a thin UI
// collaborator: every business rule lives behind the auth and post
// facades, and the CLI only translates lines of input into facade calls
// and facade errors into messages.
package cli

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/socialsched/socialsched/internal/service"
	"github.com/socialsched/socialsched/internal/store"
)

// scheduleLayout is the timestamp format accepted for scheduled times.
const scheduleLayout = "2006-01-02 15:04"

type CLI struct {
	auth  *service.AuthService
	store *store.Store
	log   *slog.Logger

	in  *bufio.Reader
	out io.Writer

	// posts is bound to the signed-in user and rebuilt on login/logout.
	posts *service.PostService
}

func New(auth *service.AuthService, st *store.Store, logger *slog.Logger) *CLI {
	return NewWithIO(auth, st, logger, os.Stdin, os.Stdout)
}

// NewWithIO is New with injectable input/output, the seam the tests use.
func NewWithIO(auth *service.AuthService, st *store.Store, logger *slog.Logger, in io.Reader, out io.Writer) *CLI {
	c := &CLI{
		auth:  auth,
		store: st,
		log:   logger,
		in:    bufio.NewReader(in),
		out:   out,
	}
	c.bindPosts()
	return c
}

// bindPosts points the content facade at the current user, if any.
func (c *CLI) bindPosts() {
	user := c.auth.CurrentUser()
	if user == nil {
		c.posts = nil
		return
	}
	c.posts = service.NewPostService(c.store, c.log, user.ID)
}

func (c *CLI) loggedIn() bool {
	return c.auth.CurrentUser() != nil
}
