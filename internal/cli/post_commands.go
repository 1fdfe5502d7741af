package cli

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/socialsched/socialsched/internal/domain"
	"github.com/socialsched/socialsched/internal/service"
)

func (c *CLI) cmdPost(ctx context.Context) {
	if c.posts == nil {
		fmt.Fprintln(c.out, service.ErrNotAuthenticated)
		return
	}

	content, err := promptLine(c.in, c.out, "content")
	if err != nil {
		return
	}
	platform, err := promptLine(c.in, c.out, "platform ("+platformChoices()+")")
	if err != nil {
		return
	}
	when, err := promptLine(c.in, c.out, "schedule (YYYY-MM-DD HH:MM)")
	if err != nil {
		return
	}

	scheduled, perr := time.ParseInLocation(scheduleLayout, when, time.Local)
	if perr != nil {
		fmt.Fprintln(c.out, "unrecognized time, expected YYYY-MM-DD HH:MM")
		return
	}

	post, err := c.posts.Create(ctx, service.PostDraft{
		Content:       content,
		Platform:      domain.Platform(platform),
		ScheduledTime: scheduled,
	})
	if err != nil {
		fmt.Fprintln(c.out, "could not create post:", err)
		return
	}
	fmt.Fprintf(c.out, "scheduled %s post %s for %s\n",
		displayName(post.Platform), post.ID, post.ScheduledTime.Format(scheduleLayout))
}

// cmdList prints the user's posts, optionally filtered by a platform or
// status given as the first argument.
func (c *CLI) cmdList(args []string) {
	if c.posts == nil {
		fmt.Fprintln(c.out, service.ErrNotAuthenticated)
		return
	}

	posts := c.posts.Refresh()
	if len(args) > 0 {
		switch {
		case domain.Platform(args[0]).Valid():
			posts = c.posts.ListByPlatform(domain.Platform(args[0]))
		case domain.Status(args[0]).Valid():
			posts = c.posts.ListByStatus(domain.Status(args[0]))
		default:
			fmt.Fprintf(c.out, "unknown filter %q\n", args[0])
			return
		}
	}

	if len(posts) == 0 {
		fmt.Fprintln(c.out, "no posts")
		return
	}
	for _, p := range posts {
		fmt.Fprintf(c.out, "%s  %-9s  %-9s  %s  %q\n",
			p.ID, displayName(p.Platform), p.Status,
			p.ScheduledTime.Format(scheduleLayout), truncate(p.Content, 40))
	}
}

func (c *CLI) cmdEdit(ctx context.Context, args []string) {
	if c.posts == nil {
		fmt.Fprintln(c.out, service.ErrNotAuthenticated)
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: edit <id>")
		return
	}

	content, err := promptLine(c.in, c.out, "new content (blank to keep)")
	if err != nil {
		return
	}
	when, err := promptLine(c.in, c.out, "new schedule (blank to keep)")
	if err != nil {
		return
	}

	var changes domain.PostChanges
	if content != "" {
		changes.Content = &content
	}
	if when != "" {
		scheduled, perr := time.ParseInLocation(scheduleLayout, when, time.Local)
		if perr != nil {
			fmt.Fprintln(c.out, "unrecognized time, expected YYYY-MM-DD HH:MM")
			return
		}
		changes.ScheduledTime = &scheduled
	}

	if err := c.posts.Edit(ctx, args[0], changes); err != nil {
		fmt.Fprintln(c.out, "edit failed:", err)
		return
	}
	fmt.Fprintln(c.out, "post updated")
}

func (c *CLI) cmdDelete(ctx context.Context, args []string) {
	if c.posts == nil {
		fmt.Fprintln(c.out, service.ErrNotAuthenticated)
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: delete <id>")
		return
	}

	if err := c.posts.Remove(ctx, args[0]); err != nil {
		fmt.Fprintln(c.out, "delete failed:", err)
		return
	}
	fmt.Fprintln(c.out, "post deleted")
}

func (c *CLI) cmdAnalytics(ctx context.Context) {
	if c.posts == nil {
		fmt.Fprintln(c.out, service.ErrNotAuthenticated)
		return
	}

	snap := c.posts.Analytics(ctx)
	fmt.Fprintf(c.out, "total reach:      %d\n", snap.TotalReach)
	fmt.Fprintf(c.out, "engagement rate:  %.1f%%\n", snap.EngagementRate)
	fmt.Fprintf(c.out, "followers:        %d\n", snap.Followers)
	fmt.Fprintf(c.out, "scheduled posts:  %d\n", snap.ScheduledPosts)
}

func (c *CLI) cmdClearData(ctx context.Context) {
	if c.posts == nil {
		fmt.Fprintln(c.out, service.ErrNotAuthenticated)
		return
	}

	confirm, err := promptLine(c.in, c.out, "delete ALL your posts and analytics? [y/N]")
	if err != nil || (confirm != "y" && confirm != "yes") {
		fmt.Fprintln(c.out, "aborted")
		return
	}

	if err := c.posts.ClearData(ctx); err != nil {
		fmt.Fprintln(c.out, "clear failed:", err)
		return
	}
	fmt.Fprintln(c.out, "all content cleared")
}

// truncate caps s at n characters, cutting on a rune boundary so multibyte
// content never prints a broken trailing sequence.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
