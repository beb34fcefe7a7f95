package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"tweenq/internal/tween"
)

// sprite is a positionable glyph drawn at its interpolated position.
type sprite struct {
	pos   tween.Vec3
	ch    rune
	style tcell.Style
}

func (s *sprite) SetPosition(v tween.Vec3) { s.pos = v }

func main() {
	// Parse command line parameters
	configPath := flag.String("config", "config.yml", "YAML config file.")
	count := flag.Int("n", 12, "number of animated sprites")
	flag.Parse()

	cfg := tween.Load(*configPath)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("new screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	width, height := screen.Size()

	sched := tween.New(cfg)
	if cfg.CSVLog != "" {
		if err := sched.EnableCSVLogging(cfg.CSVLog); err != nil {
			log.Fatalf("csv log: %v", err)
		}
		defer sched.CloseCSVLogging()
	}

	defaultEasing, _ := tween.ParseEasing(cfg.Easing)

	// Each sprite ping-pongs between two random points with its own
	// duration and curve; every fourth one uses the configured default.
	sprites := make([]*sprite, 0, *count)
	for i := 0; i < *count; i++ {
		sp := &sprite{
			ch:    rune('A' + i%26),
			style: tcell.StyleDefault.Foreground(tcell.PaletteColor(1 + i%7)),
		}
		start := tween.Vec3{
			X: rand.Float64() * float64(width-1),
			Y: rand.Float64() * float64(height-1),
		}
		travel := tween.Vec3{
			X: rand.Float64()*float64(width-1) - start.X,
			Y: rand.Float64()*float64(height-1) - start.Y,
		}
		end := tween.Add(start, tween.Scale(travel, 0.9))

		easing := tween.EasingKind(i % 4)
		if i%4 == 0 {
			easing = defaultEasing
		}
		duration := 1.5 + rand.Float64()*3.0

		if _, err := sched.Submit(sp, start, end, duration, true, easing); err != nil {
			log.Fatalf("submit: %v", err)
		}
		sprites = append(sprites, sp)
	}

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	clock := tween.NewFrameClock(4)
	clock.Start(time.Duration(cfg.TickMS) * time.Millisecond)
	defer clock.Stop()

	for {
		select {
		case <-quit:
			return
		case delta := <-clock.Ch:
			sched.Tick(delta)
			screen.Clear()
			for _, sp := range sprites {
				screen.SetContent(int(sp.pos.X), int(sp.pos.Y), sp.ch, nil, sp.style)
			}
			screen.Show()
		}
	}
}
