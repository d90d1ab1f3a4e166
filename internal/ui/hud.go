package ui

import (
	"fmt"
	"time"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
)

// HUD is the text a frontend shows over the playfield.
type HUD struct {
	Time      string
	Score     string
	Combo     string
	ShowCombo bool
	// ComboScale pulses above 1 right after a hit.
	ComboScale float64
}

// FormatTime renders remaining time in seconds with one decimal, e.g. "39.9".
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.1f", d.Seconds())
}

func NewHUD(r component.RoundState) HUD {
	h := HUD{
		Time:       "TIME " + FormatTime(r.Remaining),
		Score:      fmt.Sprintf("SCORE %d", r.Score),
		Combo:      fmt.Sprintf("COMBO ×%d", r.Combo),
		ShowCombo:  r.HasHit && r.Phase == component.RoundRunning,
		ComboScale: 1,
	}
	if r.ComboPop > 0 {
		h.ComboScale = 1 + 0.35*float64(r.ComboPop)/float64(config.ComboPopLife)
	}
	return h
}

// SummaryLines is the end-of-round panel.
func SummaryLines(s component.Summary) []string {
	return []string{
		"TIME UP",
		fmt.Sprintf("SCORE %d", s.Score),
		fmt.Sprintf("MAX COMBO %d", s.MaxCombo),
	}
}

// TitleLines is shown before the first round.
func TitleLines() []string {
	return []string{
		"GHOST FIGHTER",
		"tap a ghost to throw",
		"hits within 1.5s build a combo",
	}
}
