// Command ledsim previews the animation catalog in the terminal.
//
// It renders the seven strip outputs and the four color channels as
// colored blocks, advancing the engine in real time.
//
// Keys:
//
//	1-9    select an animation by catalog position
//	n, p   next / previous animation
//	q, Esc quit
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/cwbudde/algo-led/led/anim"
	"github.com/cwbudde/algo-led/led/level"
)

const refresh = 20 * time.Millisecond

func main() {
	engine, err := anim.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	screen, errGo := tcell.NewScreen()
	if errGo != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", errGo)
		os.Exit(1)
	}
	if errGo = screen.Init(); errGo != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", errGo)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			engine.Cycle()
			draw(screen, engine)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if done := handleKey(engine, ev); done {
					return
				}
			}
		}
	}
}

func handleKey(engine *anim.Engine, ev *tcell.EventKey) (done bool) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	switch r := ev.Rune(); {
	case r == 'q':
		return true
	case r == 'n':
		engine.SetAnimation((engine.Animation() + 1) % len(engine.Catalog()))
	case r == 'p':
		engine.SetAnimation((engine.Animation() + len(engine.Catalog()) - 1) % len(engine.Catalog()))
	case r >= '1' && r <= '9':
		engine.SetAnimation(int(r - '1'))
	}
	return false
}

// Channel hues for the four color outputs, full brightness.
var channelHues = [][3]int32{
	{255, 48, 48},
	{48, 255, 48},
	{48, 96, 255},
	{255, 255, 255},
}

func draw(screen tcell.Screen, engine *anim.Engine) {
	screen.Clear()

	catalog := engine.Catalog()
	title := fmt.Sprintf("[%d/%d] %s", engine.Animation()+1, len(catalog), catalog[engine.Animation()].Name)
	drawText(screen, 1, 1, title)
	drawText(screen, 1, 7, "1-9 select  n/p cycle  q quit")

	for i, v := range engine.Strip().Snapshot() {
		drawBlock(screen, 1+i*4, 3, v, [3]int32{255, 178, 77})
	}
	for i, v := range engine.Color().Snapshot() {
		drawBlock(screen, 1+i*4, 5, v, channelHues[i%len(channelHues)])
	}

	screen.Show()
}

func drawBlock(screen tcell.Screen, x, y int, v level.Level, hue [3]int32) {
	scale := int32(v)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		hue[0]*scale/int32(level.Max),
		hue[1]*scale/int32(level.Max),
		hue[2]*scale/int32(level.Max),
	))
	for dx := 0; dx < 3; dx++ {
		screen.SetContent(x+dx, y, '█', nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
