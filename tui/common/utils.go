package common

import (
	"fmt"
	"time"
)

// RelativeAge renders a story's age the way the mobile client does:
// "now", "12m", "5h", "2d". Stories expire after a day, but deleted
// clocks or clock skew can produce older timestamps.
func RelativeAge(createdAt, now time.Time) string {
	d := now.Sub(createdAt)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
