package common

import (
	"testing"
	"time"
)

func TestRelativeAge(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "now"},
		{12 * time.Minute, "12m"},
		{5 * time.Hour, "5h"},
		{26 * time.Hour, "1d"},
	}
	for _, c := range cases {
		if got := RelativeAge(now.Add(-c.ago), now); got != c.want {
			t.Fatalf("RelativeAge(-%v) = %q, want %q", c.ago, got, c.want)
		}
	}
}
