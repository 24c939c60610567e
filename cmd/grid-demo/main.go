// grid-demo renders a live panel grid driven by autogrid.AutoGrid.
// Add and remove panels or change spacing and watch the layout adapt.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/autogrid"
)

// Colors
var (
	styleDefault = tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(200, 200, 200)).
			Background(tcell.NewRGBColor(20, 20, 30))
	styleBorder = tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(100, 180, 200)).
			Background(tcell.NewRGBColor(20, 20, 30))
	styleLabel = tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(220, 180, 80)).
			Background(tcell.NewRGBColor(20, 20, 30))
	styleStatus = tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(255, 255, 255)).
			Background(tcell.NewRGBColor(40, 60, 90))
)

// Layout
const (
	statusHeight = 1
	maxPanels    = 64
	maxSpacing   = 10
)

var (
	startCount   int
	startSpacing int
)

func init() {
	flag.IntVar(&startCount, "n", 6, "initial panel count")
	flag.IntVar(&startSpacing, "s", 1, "initial spacing between panels")
}

type Demo struct {
	screen  tcell.Screen
	count   int
	spacing int

	audioInit bool
}

func NewDemo(count, spacing int) (*Demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	d := &Demo{
		screen:  screen,
		count:   clamp(count, 0, maxPanels),
		spacing: clamp(spacing, 0, maxSpacing),
	}

	if err := d.initAudio(); err != nil {
		// Non-fatal, demo can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	return d, nil
}

func (d *Demo) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		d.audioInit = true
	}
	return err
}

// playBlip gives audible feedback when the layout changes
func (d *Demo) playBlip() {
	if !d.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(50 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, 880)
	speaker.Play(beep.Take(duration, sine))
}

func (d *Demo) draw() {
	d.screen.Clear()

	w, h := d.screen.Size()
	root := autogrid.Rect{W: w, H: h}
	body, status := autogrid.SplitVFixed(root, h-statusHeight)

	cells := autogrid.AutoGrid(body, d.count, d.spacing)
	for i, cell := range cells {
		d.drawPanel(cell, i+1)
	}

	d.drawStatus(status, len(cells))
	d.screen.Show()
}

func (d *Demo) drawPanel(r autogrid.Rect, index int) {
	if r.Empty() {
		return
	}

	// Interior fill
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			d.screen.SetContent(x, y, ' ', nil, styleDefault)
		}
	}

	if r.W >= 2 && r.H >= 2 {
		d.drawBorder(r)
	}

	label := fmt.Sprintf("%d", index)
	if r.W >= runewidth.StringWidth(label)+2 && r.H >= 3 {
		c := r.Center(runewidth.StringWidth(label), 1)
		drawText(d.screen, c.X, c.Y, label, styleLabel)
	}
}

func (d *Demo) drawBorder(r autogrid.Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < right; x++ {
		d.screen.SetContent(x, r.Y, '─', nil, styleBorder)
		d.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := r.Y + 1; y < bottom; y++ {
		d.screen.SetContent(r.X, y, '│', nil, styleBorder)
		d.screen.SetContent(right, y, '│', nil, styleBorder)
	}

	d.screen.SetContent(r.X, r.Y, '┌', nil, styleBorder)
	d.screen.SetContent(right, r.Y, '┐', nil, styleBorder)
	d.screen.SetContent(r.X, bottom, '└', nil, styleBorder)
	d.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (d *Demo) drawStatus(r autogrid.Rect, shown int) {
	for x := r.X; x < r.Right(); x++ {
		d.screen.SetContent(x, r.Y, ' ', nil, styleStatus)
	}

	rows, cols := autogrid.Shape(d.count)
	text := fmt.Sprintf(" panels:%d grid:%dx%d spacing:%d  [+/-] count  [ [/] ] spacing  [q] quit",
		shown, rows, cols, d.spacing)
	if runewidth.StringWidth(text) > r.W {
		text = runewidth.Truncate(text, r.W, "…")
	}
	drawText(d.screen, r.X, r.Y, text, styleStatus)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func (d *Demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case '+', '=':
				d.setCount(d.count + 1)
			case '-', '_':
				d.setCount(d.count - 1)
			case ']':
				d.spacing = clamp(d.spacing+1, 0, maxSpacing)
			case '[':
				d.spacing = clamp(d.spacing-1, 0, maxSpacing)
			}
		}

	case *tcell.EventResize:
		d.screen.Sync()
	}

	d.draw()
	return true
}

func (d *Demo) setCount(n int) {
	n = clamp(n, 0, maxPanels)
	if n != d.count {
		d.count = n
		d.playBlip()
	}
}

func (d *Demo) run() {
	d.draw()
	for {
		if !d.handleInput(d.screen.PollEvent()) {
			return
		}
	}
}

func (d *Demo) cleanup() {
	if d.audioInit {
		speaker.Close()
	}
	d.screen.Fini()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func main() {
	flag.Parse()

	demo, err := NewDemo(startCount, startSpacing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer demo.cleanup()

	demo.run()
}
