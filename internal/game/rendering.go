package game

import (
	"strings"

	"github.com/mitchelldurbincs/ayo/internal/game/core"
)

// This file contains the text rendering of the board.

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorBlue   = "\033[34m"
	ColorYellow = "\033[33m"
	ColorGray   = "\033[90m"
)

var playerColors = []string{ColorRed, ColorBlue}

const rowRule = "+----+----+----+----+----+----+"

// RenderBoard draws the board as the two players see it across the table:
// Player B's row on top running right to left, Player A's row below running
// left to right, each labelled with its owner and score. Pit numbers are the
// 1-based numbers a player types to choose a pit.
func RenderBoard(gs GameState, color bool) string {
	var sb strings.Builder
	sb.Grow(512)

	a, b := gs.Players[0], gs.Players[1]

	writeScore(&sb, b, color)
	writePitNumbers(&sb, true)
	sb.WriteString(rowRule)
	sb.WriteString("\n")
	writeRow(&sb, gs, b, true, color)
	sb.WriteString(rowRule)
	sb.WriteString("\n")
	writeRow(&sb, gs, a, false, color)
	sb.WriteString(rowRule)
	sb.WriteString("\n")
	writePitNumbers(&sb, false)
	writeScore(&sb, a, color)

	return sb.String()
}

func writeScore(sb *strings.Builder, p Player, color bool) {
	writeColored(sb, p.Name, getPlayerColor(p.ID), color)
	sb.WriteString(" Score: ")
	sb.WriteString(core.IntToStringFixedWidth(p.Score, 1))
	sb.WriteString("\n")
}

func writePitNumbers(sb *strings.Builder, reversed bool) {
	sb.WriteString(" ")
	for i := 0; i < core.PitsPerSide; i++ {
		n := i + 1
		if reversed {
			n = core.PitsPerSide - i
		}
		sb.WriteString("  ")
		sb.WriteString(core.IntToStringFixedWidth(n, 1))
		sb.WriteString("  ")
	}
	sb.WriteString("\n")
}

func writeRow(sb *strings.Builder, gs GameState, p Player, reversed bool, color bool) {
	sb.WriteString("|")
	for i := 0; i < core.PitsPerSide; i++ {
		pit := i
		if reversed {
			pit = core.PitsPerSide - 1 - i
		}
		count := gs.Board.Count(p.Side.Abs(pit))
		sb.WriteString(" ")
		if count == 0 {
			writeColored(sb, core.IntToStringFixedWidth(count, 2), ColorGray, color)
		} else {
			writeColored(sb, core.IntToStringFixedWidth(count, 2), getPlayerColor(p.ID), color)
		}
		sb.WriteString(" |")
	}
	sb.WriteString("  (")
	sb.WriteString(p.Name)
	if gs.Current == p.ID {
		sb.WriteString(" to move")
	}
	sb.WriteString(")\n")
}

func writeColored(sb *strings.Builder, s, c string, color bool) {
	if !color {
		sb.WriteString(s)
		return
	}
	sb.WriteString(c)
	sb.WriteString(s)
	sb.WriteString(ColorReset)
}

// getPlayerColor returns the color for the given player ID
func getPlayerColor(playerID int) string {
	if playerID < 0 || playerID >= len(playerColors) {
		return ColorYellow
	}
	return playerColors[playerID]
}
