package drifter

import (
	"fmt"
	"strings"

	"github.com/chewishmasuf/PortalDrifterDashCross/internal/core"
)

// Visual characters for rendering
const (
	GroundChar     = '═'
	WallChar       = '▓'
	MovingWallChar = '▒'
	LaserChar      = '║'
	PlatformChar   = '▀'
	PitFloorChar   = '░'
	GatewayChar    = '▌'
	PlayerBody     = '█'
	PlayerHead     = '◆'
	PlayerLeg1     = '╱'
	PlayerLeg2     = '╲'
	ChargeGlyph    = '◈'
	LifeGlyph      = '♥'
)

// gatewayColumnHeight is how tall a gateway is drawn above the ground.
const gatewayColumnHeight = 7

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	groundY := snap.GroundY
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, o, groundY)
	}

	if snap.Gateways != nil {
		drawGateway(dst, int(snap.Gateways.EntranceX), groundY, core.ColorBrightCyan)
		drawGateway(dst, int(snap.Gateways.ExitX), groundY, core.ColorOrange)
	}

	drawPlayer(dst, snap)
	drawHUD(dst, snap)
	drawOverlay(dst, snap)
}

func drawObstacle(dst *core.Screen, o ObstacleView, groundY int) {
	x, y := int(o.X), int(o.Y)
	w, h := int(o.W), int(o.H)

	switch o.Type {
	case ObstaclePit:
		// A pit reads as a gap in the ground, not a box.
		for dx := 0; dx < w; dx++ {
			dst.Set(x+dx, groundY, ' ')
			dst.SetCell(x+dx, groundY+1, PitFloorChar, core.ColorGray)
		}
	case ObstaclePlatform:
		for dx := 0; dx < w; dx++ {
			dst.SetCell(x+dx, y, PlatformChar, core.ColorGreen)
		}
	case ObstacleLaserGate:
		dst.DrawVLineColored(x, y, h, LaserChar, core.ColorBrightRed)
	case ObstacleMovingWall:
		dst.DrawRectColored(core.NewRect(x, y, w, h), MovingWallChar, core.ColorMagenta)
	default: // wall
		dst.DrawRectColored(core.NewRect(x, y, w, h), WallChar, core.ColorYellow)
	}
}

func drawGateway(dst *core.Screen, x, groundY int, c core.Color) {
	dst.DrawVLineColored(x, groundY-gatewayColumnHeight, gatewayColumnHeight, GatewayChar, c)
}

func drawPlayer(dst *core.Screen, snap Snapshot) {
	x, y := int(snap.PlayerX), int(snap.PlayerY)

	color := core.ColorBrightWhite
	if snap.Invincible {
		color = core.ColorBrightYellow
	}

	// 3x3 runner sprite:
	//  ◆█
	// ███
	// ╱╲
	dst.SetCell(x+1, y, PlayerHead, color)
	dst.SetCell(x+2, y, PlayerBody, color)
	dst.SetCell(x, y+1, PlayerBody, color)
	dst.SetCell(x+1, y+1, PlayerBody, color)
	dst.SetCell(x+2, y+1, PlayerBody, color)
	if snap.Jumping {
		dst.SetCell(x, y+2, PlayerLeg1, color)
		dst.SetCell(x+1, y+2, PlayerLeg2, color)
	} else {
		dst.SetCell(x, y+2, PlayerLeg1, color)
		dst.SetCell(x+2, y+2, PlayerLeg2, color)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
	if snap.BestScore > 0 {
		scoreText += fmt.Sprintf(" Best: %d ", snap.BestScore)
	}
	dst.DrawText(2, 0, scoreText)

	lives := strings.Repeat(string(LifeGlyph), snap.Lives)
	dst.DrawTextColored(2, 1, fmt.Sprintf("Lives: %-3s", lives), core.ColorBrightRed)

	charges := strings.Repeat(string(ChargeGlyph), snap.Charges)
	chargeText := fmt.Sprintf("Gates: %-3s", charges)
	if snap.CooldownActive {
		chargeText += " [cooldown]"
	}
	dst.DrawTextColored(14, 1, chargeText, core.ColorBrightCyan)

	levelText := fmt.Sprintf(" D%d: %s ", snap.Level, snap.LevelName)
	dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)

	// Dimension progress bar on the right of row 1.
	barW := 12
	filled := int(snap.LevelProgress * float64(barW))
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", barW-filled) + "]"
	dst.DrawText(dst.Width()-len(bar)-2, 1, bar)
}

func drawOverlay(dst *core.Screen, snap Snapshot) {
	switch {
	case snap.LevelComplete:
		title := fmt.Sprintf("%s CLEARED", strings.ToUpper(snap.CompletedLevelName))
		secs := int(snap.CountdownSecs) + 1
		subtitle := fmt.Sprintf("Next dimension in %d...  Enter to skip", secs)
		drawCenteredBox(dst, title, subtitle)

	case snap.MissionComplete:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", snap.Score)
		drawCenteredBox(dst, "MISSION COMPLETE", subtitle)

	case snap.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)

	case snap.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
