package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/socialsched/socialsched/pkg/slogx"
)

// Run starts the read-eval-print loop. It exits on EOF, "exit"/"quit", or
// context cancellation. Command handlers report their own errors to the
// user; the loop itself only dispatches.
func (c *CLI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(c.out, "sched %s> ", c.status())
		line, err := c.in.ReadString('\n')
		if err != nil {
			fmt.Fprintln(c.out)
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		cmdCtx := ctx
		if user := c.auth.CurrentUser(); user != nil {
			cmdCtx = slogx.WithUserID(ctx, user.ID)
		}

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			c.printHelp()
		case "signup":
			c.cmdSignup(cmdCtx)
		case "login":
			c.cmdLogin(cmdCtx)
		case "logout":
			c.cmdLogout(cmdCtx)
		case "whoami":
			c.cmdWhoami()
		case "profile":
			c.cmdProfile(cmdCtx)
		case "passwd":
			c.cmdPasswd(cmdCtx)
		case "post":
			c.cmdPost(cmdCtx)
		case "list":
			c.cmdList(args)
		case "edit":
			c.cmdEdit(cmdCtx, args)
		case "delete":
			c.cmdDelete(cmdCtx, args)
		case "analytics":
			c.cmdAnalytics(cmdCtx)
		case "clear-data":
			c.cmdClearData(cmdCtx)
		default:
			fmt.Fprintf(c.out, "unknown command %q, try help\n", cmd)
		}
	}
}

func (c *CLI) status() string {
	if user := c.auth.CurrentUser(); user != nil {
		return user.Username
	}
	return "-"
}

func (c *CLI) printHelp() {
	if c.loggedIn() {
		fmt.Fprintln(c.out, "commands: post, list [platform|status], edit <id>, delete <id>, analytics, profile, passwd, whoami, clear-data, logout, exit")
	} else {
		fmt.Fprintln(c.out, "commands: signup, login, exit")
	}
}
