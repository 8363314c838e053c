package scene

import (
	"fmt"

	"caneat/game/types"
)

// HUD is the text shown over the board.
type HUD struct {
	Header string
	Prompt string
	Footer string
}

// ScoreLine is the score header, e.g. "3 / 12 KOMB".
func ScoreLine(score int) string {
	return fmt.Sprintf("%d / %d KOMB", score, types.WinScore)
}

// Prompt is the start/restart hint for a status; empty while a round runs.
func Prompt(status types.GameStatus) string {
	switch status {
	case types.StatusStart:
		return "Press Enter or tap to start"
	case types.StatusGameOver:
		return "Game over! Press Enter or tap to retry"
	case types.StatusWin:
		return "You win! Press Enter or tap to play again"
	default:
		return ""
	}
}

// BuildHUD composes the overlay text.
func BuildHUD(status types.GameStatus, score, best, speedMs int, musicOn bool) HUD {
	music := "off"
	if musicOn {
		music = "on"
	}
	return HUD{
		Header: ScoreLine(score),
		Prompt: Prompt(status),
		Footer: fmt.Sprintf("best %d  speed %dms  music %s", best, speedMs, music),
	}
}
