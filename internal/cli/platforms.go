package cli

import (
	"strings"

	"github.com/socialsched/socialsched/internal/domain"
)

// PlatformInfo is the display metadata for a platform. It lives with the
// UI, not the core: the domain only knows the closed enum.
type PlatformInfo struct {
	Name  string
	Color string
}

var platformDisplay = map[domain.Platform]PlatformInfo{
	domain.PlatformInstagram: {Name: "Instagram", Color: "#E4405F"},
	domain.PlatformTwitter:   {Name: "Twitter", Color: "#1DA1F2"},
	domain.PlatformFacebook:  {Name: "Facebook", Color: "#1877F2"},
	domain.PlatformLinkedIn:  {Name: "LinkedIn", Color: "#0A66C2"},
}

// displayName renders a platform for terminal output, falling back to the
// raw value for anything unknown (old data with a retired platform).
func displayName(p domain.Platform) string {
	if info, ok := platformDisplay[p]; ok {
		return info.Name
	}
	return string(p)
}

// platformChoices renders the valid platforms for prompts, in the domain's
// fixed order.
func platformChoices() string {
	platforms := domain.Platforms()
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return strings.Join(names, "/")
}
