package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wordscramble/internal/game"
)

const (
	rowTitle = 0
	rowInput = 2
	rowScore = 4
	rowWords = 6

	inputPrompt = "> "
	helpText    = "Enter submit  Ctrl-R restart  Esc quit"
)

var (
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	countStyle  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	placeholder = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen     *Screen
	titleStyle tcell.Style
	alertStyle tcell.Style
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{
		screen:     screen,
		titleStyle: tcell.StyleDefault.Foreground(theme.Title).Bold(true),
		alertStyle: tcell.StyleDefault.Background(theme.Alert).Foreground(tcell.ColorWhite),
	}
}

// Render draws the root word, input line, score, used words and any open alert.
func (r *Renderer) Render(snap game.Snapshot, input string) {
	r.screen.Clear()
	width, height := r.screen.Size()

	r.drawText(0, rowTitle, strings.ToUpper(snap.RootWord), r.titleStyle)

	r.drawText(0, rowInput, inputPrompt, labelStyle)
	if input == "" {
		r.drawText(len(inputPrompt), rowInput, "Enter your word", placeholder)
	} else {
		r.drawText(len(inputPrompt), rowInput, input, textStyle)
	}
	r.screen.ShowCursor(len(inputPrompt)+len([]rune(input)), rowInput)

	r.drawText(0, rowScore, "Your score is: "+strconv.Itoa(snap.Score), textStyle)

	r.drawText(0, rowWords, "Words used", labelStyle)
	for i, w := range snap.UsedWords {
		y := rowWords + 1 + i
		if y >= height-1 {
			break
		}
		count := "(" + strconv.Itoa(len([]rune(w))) + ")"
		r.drawText(0, y, count, countStyle)
		r.drawText(len(count)+1, y, w, textStyle)
	}

	r.drawText(0, height-1, helpText, labelStyle)

	if snap.Error != nil {
		r.renderAlert(snap.Error, width, height)
	}

	r.screen.Show()
}

// renderAlert draws a centered box with the rejection's title and message.
func (r *Renderer) renderAlert(rej *game.RejectionError, width, height int) {
	lines := []string{rej.Title, rej.Message, "", "Press any key"}

	boxWidth := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > boxWidth {
			boxWidth = n
		}
	}
	boxWidth += 4
	boxHeight := len(lines) + 2

	x0 := max((width-boxWidth)/2, 0)
	y0 := max((height-boxHeight)/2, 0)

	for y := y0; y < y0+boxHeight; y++ {
		for x := x0; x < x0+boxWidth; x++ {
			r.screen.SetContent(x, y, ' ', r.alertStyle)
		}
	}
	for i, l := range lines {
		style := r.alertStyle
		if i == 0 {
			style = style.Bold(true)
		}
		r.drawText(x0+2, y0+1+i, l, style)
	}
}

// drawText writes s starting at (x, y).
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	i := 0
	for _, ch := range s {
		r.screen.SetContent(x+i, y, ch, style)
		i++
	}
}
