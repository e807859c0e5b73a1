package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/droundy/goopt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/dialkit/dial"
	"github.com/iburimskiy/dialkit/internal/alarm"
	"github.com/iburimskiy/dialkit/internal/config"
	"github.com/iburimskiy/dialkit/internal/render"
	"github.com/iburimskiy/dialkit/internal/sensor"
)

// Version of the program; set during build from git tags
var Version = "0.0.0"

var stderrLogger = log.New(os.Stderr, "", 0)

// Default accent sweep: the hand blends from cool green toward hot red as
// the value approaches the redline. A color picked via the C key replaces
// the sweep with a fixed accent.
var (
	accentCool = color.RGBA{0x20, 0xa0, 0x50, 0xff}
	accentHot  = color.RGBA{0xd0, 0x30, 0x20, 0xff}
)

type game struct {
	dial     *dial.Dial
	source   sensor.Source
	renderer *render.Renderer
	alarm    *alarm.Alarm

	value   float64
	spring  dial.SpringState
	redline float64

	scheme       dial.Scheme
	accent       color.RGBA
	accentPicked bool

	width, height int
	lastSample    time.Time
	paused        bool
	muted         bool
	lastErr       error
}

func newGame(d *dial.Dial, src sensor.Source, al *alarm.Alarm, scheme dial.Scheme, redline float64, muted bool) *game {
	g := &game{
		dial:     d,
		source:   src,
		renderer: render.New(),
		alarm:    al,
		redline:  redline,
		scheme:   scheme,
		muted:    muted,
		width:    config.WindowWidth,
		height:   config.WindowHeight,
	}

	// Seed the hand on the first reading so it doesn't swing in from zero.
	if v, err := src.Read(); err == nil {
		g.value = v
	}
	g.spring = dial.NewSpringState(d.AngleFor(g.value))
	g.lastSample = time.Now()
	return g
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if g.scheme == dial.SchemeDark {
			g.scheme = dial.SchemeLight
		} else {
			g.scheme = dial.SchemeDark
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.muted = !g.muted
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.pickAccent(); err != nil {
			g.lastErr = err
		}
	}

	if !g.paused && time.Since(g.lastSample) >= config.SampleInterval {
		v, err := g.source.Read()
		if err != nil {
			g.lastErr = err
		} else {
			g.value = v
			g.lastErr = nil
		}
		g.lastSample = time.Now()
	}

	// The hand chases the latest reading between samples.
	g.spring, _ = g.spring.Step(g.dial.AngleFor(g.value), 1.0/60.0)

	g.alarm.Set(!g.muted && g.value >= g.redline)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	theme := dial.ThemeFor(g.scheme)
	if g.accentPicked {
		theme.Accent = g.accent
	} else {
		cfg := g.dial.Config()
		t := (g.value - cfg.Min) / (g.redline - cfg.Min)
		theme.Accent = dial.BlendAccent(accentCool, accentHot, t)
	}

	scene := g.dial.Compose(g.value, g.spring.Angle, theme, float64(g.width), float64(g.height))
	g.renderer.Draw(screen, scene)

	status := fmt.Sprintf("%s: %.1f", scene.Summary.Label, scene.Summary.Value)
	if g.paused {
		status += " | Paused - Space to resume"
	} else {
		status += " | Space: pause, D: dark/light, C: hand color, M: mute, Esc/Q: quit"
	}
	if g.alarm.Active() {
		status += " | REDLINE"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *game) pickAccent() error {
	picked, err := zenity.SelectColor(
		zenity.Title("Hand Color"),
		zenity.Color(g.accent),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	r, gr, b, _ := picked.RGBA()
	g.accent = color.RGBA{R: uint8(r >> 8), G: uint8(gr >> 8), B: uint8(b >> 8), A: 0xff}
	g.accentPicked = true
	return nil
}

func main() {
	sourceName := goopt.String([]string{"--source"}, "sim", "value source: sim or cpu")
	dark := goopt.Flag([]string{"--dark"}, []string{"--light"}, "start in the dark scheme", "start in the light scheme")
	muted := goopt.Flag([]string{"--mute"}, nil, "disable the redline alarm tone", "")
	redlineArg := goopt.String([]string{"--redline"}, strconv.FormatFloat(config.DefaultRedline, 'f', -1, 64), "value at which the alarm engages")
	goopt.Summary = "Analog dial gauge demo"
	goopt.Version = Version
	goopt.Parse(nil)

	redline, err := strconv.ParseFloat(*redlineArg, 64)
	if err != nil {
		stderrLogger.Fatalf("invalid --redline value %q: %v", *redlineArg, err)
	}

	d, err := dial.New(dial.Config{
		Min:          config.DialMin,
		Max:          config.DialMax,
		MajorStep:    config.DialMajorStep,
		Subdivisions: config.DialSubdivisions,
		StartAngle:   -225,
		EndAngle:     45,
	})
	if err != nil {
		stderrLogger.Fatalf("dial: %v", err)
	}

	var src sensor.Source
	switch *sourceName {
	case "sim":
		src = sensor.NewSimulated(config.DialMin, config.DialMax, time.Now().UnixNano())
	case "cpu":
		src = sensor.NewCPU(config.DialMin, config.DialMax, config.SmoothingFactor)
	default:
		stderrLogger.Fatalf("unknown source %q (want sim or cpu)", *sourceName)
	}

	al, err := alarm.New(config.AlarmFrequency)
	if err != nil {
		// No audio device is not fatal; the gauge still runs silent.
		stderrLogger.Printf("alarm disabled: %v", err)
		al = nil
	}

	scheme := dial.SchemeLight
	if *dark {
		scheme = dial.SchemeDark
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Dial Gauge - Space: Pause, D: Dark/Light, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := newGame(d, src, al, scheme, redline, *muted)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
