package domain

import "time"

// Platform is the closed set of social networks a post can target.
// Display concerns (name, color, icon) belong to the UI layer.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
)

// Platforms lists every valid platform in a fixed order.
func Platforms() []Platform {
	return []Platform{PlatformInstagram, PlatformTwitter, PlatformFacebook, PlatformLinkedIn}
}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformTwitter, PlatformFacebook, PlatformLinkedIn:
		return true
	}
	return false
}

// Status is a post's lifecycle state. This core never advances scheduled
// posts to published on its own; that belongs to an external scheduler.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusPublished:
		return true
	}
	return false
}

// Engagement is the counter triple attached to a post.
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// Total sums all engagement counters.
func (e Engagement) Total() int {
	return e.Likes + e.Comments + e.Shares
}

// Post is one schedulable unit of social content, owned by the user
// referenced by UserID.
type Post struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Platform      Platform   `json:"platform"`
	Content       string     `json:"content"`
	ScheduledTime time.Time  `json:"scheduledTime"`
	Status        Status     `json:"status"`
	Engagement    Engagement `json:"engagement"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// PostChanges is a partial update to a post. Nil fields are left untouched
// by merges and skipped by validation, so an edit that doesn't touch a
// field never trips that field's rule.
type PostChanges struct {
	Content       *string
	Platform      *Platform
	ScheduledTime *time.Time
	Status        *Status
	Engagement    *Engagement
}

// Apply shallow-merges the provided fields over p.
func (c PostChanges) Apply(p *Post) {
	if c.Content != nil {
		p.Content = *c.Content
	}
	if c.Platform != nil {
		p.Platform = *c.Platform
	}
	if c.ScheduledTime != nil {
		p.ScheduledTime = *c.ScheduledTime
	}
	if c.Status != nil {
		p.Status = *c.Status
	}
	if c.Engagement != nil {
		p.Engagement = *c.Engagement
	}
}
