package ui

import (
	"strings"
	"testing"
)

func TestXPBarClamps(t *testing.T) {
	for _, pct := range []float64{-10, 0, 33.3, 100, 250} {
		bar := XPBar(pct, 10)
		if !strings.HasPrefix(bar, "[") || !strings.HasSuffix(bar, "]") {
			t.Fatalf("XPBar(%v)=%q missing brackets", pct, bar)
		}
		if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 10 {
			t.Fatalf("XPBar(%v) has %d cells, want 10", pct, n)
		}
	}
	if n := strings.Count(XPBar(50, 10), "█"); n != 5 {
		t.Fatalf("half bar filled=%d, want 5", n)
	}
}

func TestStreakText(t *testing.T) {
	if s := StreakText(0); !strings.Contains(s, "Start your streak") {
		t.Fatalf("StreakText(0)=%q", s)
	}
	if s := StreakText(4); !strings.Contains(s, "4 day streak") {
		t.Fatalf("StreakText(4)=%q", s)
	}
}

func TestLevelUpBannerMentionsLevel(t *testing.T) {
	if s := LevelUpBanner(7); !strings.Contains(s, "LVL 7") || !strings.Contains(s, "LEVEL UP") {
		t.Fatalf("banner=%q", s)
	}
}
