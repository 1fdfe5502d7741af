package domain

import "math"

// Analytics is the per-user dashboard snapshot. It is derived data: a
// write-through cache of ComputeAnalytics over the user's posts, never
// authoritative. Followers is maintained by UI collaborators; this core
// only carries it through.
type Analytics struct {
	TotalReach     int     `json:"totalReach"`
	EngagementRate float64 `json:"engagementRate"`
	Followers      int     `json:"followers"`
	ScheduledPosts int     `json:"scheduledPosts"`
}

// ComputeAnalytics aggregates a user's full post collection. Reach is the
// summed engagement of published posts; the engagement rate is reach per
// published post expressed as a percentage fraction, rounded to one
// decimal. A collection with no published posts yields a zero rate.
func ComputeAnalytics(posts []Post) Analytics {
	var a Analytics
	published := 0

	for _, p := range posts {
		switch p.Status {
		case StatusPublished:
			published++
			a.TotalReach += p.Engagement.Total()
		case StatusScheduled:
			a.ScheduledPosts++
		}
	}

	if published > 0 {
		rate := float64(a.TotalReach) / float64(published) / 100
		a.EngagementRate = math.Round(rate*10) / 10
	}

	return a
}
