// Package playing provides the arena fight scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/robobrawl/internal/application/scene"
	"github.com/younwookim/robobrawl/internal/application/state"
	"github.com/younwookim/robobrawl/internal/application/system"
	"github.com/younwookim/robobrawl/internal/domain/ai"
	"github.com/younwookim/robobrawl/internal/domain/entity"
	"github.com/younwookim/robobrawl/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorFloor      = color.RGBA{80, 80, 100, 255}
	colorPlatform   = color.RGBA{110, 110, 140, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorDefending  = color.RGBA{100, 160, 255, 255}
	colorFist       = color.RGBA{230, 230, 230, 255}
	colorFistHeavy  = color.RGBA{255, 200, 80, 255}
	colorFlash      = color.RGBA{255, 255, 255, 200}
	colorProjectile = color.RGBA{255, 100, 100, 255}
	colorBeam       = color.RGBA{255, 60, 200, 220}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorEnemyHP    = color.RGBA{220, 80, 80, 255}
)

var enemyColors = map[entity.Kind]color.RGBA{
	entity.KindDummy:   {150, 150, 150, 255},
	entity.KindCharger: {220, 140, 60, 255},
	entity.KindElite:   {200, 100, 200, 255},
	entity.KindCaster:  {80, 180, 220, 255},
	entity.KindBoss:    {200, 60, 60, 255},
}

// fadeSeconds is how long labels and sparks stay on screen
const fadeSeconds = 0.6

// Controls is the input a Playing scene reads each tick
type Controls interface {
	GetInput() entity.Input
	JustPressed(k ebiten.Key) bool
}

// Option configures a Playing scene
type Option func(*Playing)

// WithControls replaces the keyboard and mouse input
func WithControls(c Controls) Option {
	return func(p *Playing) {
		p.controls = c
	}
}

// WithProgress records fight outcomes into rec
func WithProgress(rec system.ProgressRecorder) Option {
	return func(p *Playing) {
		p.progress = rec
	}
}

// WithUnlocked limits which arenas the clear screen can continue to
func WithUnlocked(unlocked func(arena string) bool) Option {
	return func(p *Playing) {
		p.unlocked = unlocked
	}
}

// flash is a short-lived label or hit spark
type flash struct {
	label string
	x, y  float64
	spark bool
	heavy bool
	fade  *gween.Tween
	a     float32
}

func newFlash(label string, x, y float64) *flash {
	return &flash{label: label, x: x, y: y, fade: gween.New(1, 0, fadeSeconds, ease.OutQuad), a: 1}
}

// Playing is the arena fight scene
type Playing struct {
	config   *config.GameConfig
	arenaCfg *config.ArenaConfig
	opts     []Option

	resolver *system.Resolver
	clock    *system.FrameClock
	feedback *system.Feedback
	controls Controls
	progress system.ProgressRecorder
	unlocked func(string) bool

	screenW int
	screenH int
	dt      float64

	shakeX, shakeY float64
	rng            *rand.Rand
	flashes        []*flash
}

// New creates the fight scene for the arena with the given id
func New(cfg *config.GameConfig, arenaID string, opts ...Option) (*Playing, error) {
	arenaCfg, ok := cfg.Arena(arenaID)
	if !ok {
		return nil, fmt.Errorf("unknown arena %q", arenaID)
	}

	display := cfg.Tuning.Display
	fps := display.Framerate
	if fps <= 0 {
		fps = 60
	}

	p := &Playing{
		config:   cfg,
		arenaCfg: arenaCfg,
		opts:     opts,
		clock:    system.NewFrameClock(time.Now(), fps),
		controls: system.NewInputSystem(),
		screenW:  display.ScreenWidth,
		screenH:  display.ScreenHeight,
		dt:       1.0 / float64(fps),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.start(); err != nil {
		return nil, err
	}
	return p, nil
}

// start loads a fresh copy of the arena and a resolver for it
func (p *Playing) start() error {
	arena, err := system.LoadArena(p.config.Tuning, p.arenaCfg)
	if err != nil {
		return err
	}

	p.feedback = system.NewFeedback(p.config.Tuning.Feedback)
	p.resolver = system.NewResolver(arena, p.clock,
		system.WithEffects(p.feedback),
		system.WithFeedback(p.config.Tuning.Feedback),
	)
	if p.progress != nil {
		system.SubscribeProgress(p.resolver.Events(), p.progress)
	}
	p.shakeX, p.shakeY = 0, 0
	p.flashes = nil
	return nil
}

// ArenaID returns the id of the arena being fought
func (p *Playing) ArenaID() string {
	return p.arenaCfg.ID
}

// Resolver returns the running fight
func (p *Playing) Resolver() *system.Resolver {
	return p.resolver
}

// Update advances the fight by one frame (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.updateFlashes()

	switch p.resolver.State() {
	case state.StatePlaying:
		if p.controls.JustPressed(ebiten.KeyEscape) {
			p.resolver.Pause()
			return nil, nil
		}
		p.updatePlaying()
	case state.StatePaused:
		if p.controls.JustPressed(ebiten.KeyEscape) {
			p.resolver.Resume()
		}
	case state.StateGameOver:
		if p.controls.JustPressed(ebiten.KeyR) {
			return nil, p.restart()
		}
	case state.StateStageClear:
		switch {
		case p.controls.JustPressed(ebiten.KeyR):
			return nil, p.restart()
		case p.controls.JustPressed(ebiten.KeyEnter):
			return p.nextArena()
		}
	}
	return nil, nil
}

func (p *Playing) updatePlaying() {
	if p.controls.JustPressed(ebiten.KeyR) {
		if err := p.restart(); err != nil {
			log.Printf("Failed to restart arena: %v", err)
		}
		return
	}

	// Hitstop freezes the simulation clock as well
	if p.feedback.Frozen() {
		return
	}

	p.resolver.Tick(p.controls.GetInput())
	p.clock.Advance()

	p.feedback.Decay()
	p.shakeX = p.feedback.Shake * (2*p.rng.Float64() - 1)
	p.shakeY = p.feedback.Shake * (2*p.rng.Float64() - 1)

	p.collectEffects()
}

// collectEffects turns this tick's effects into flashes.
// There is no audio backend; a blocked hit is shown as a label instead.
func (p *Playing) collectEffects() {
	for _, c := range p.feedback.DrainCues() {
		p.flashes = append(p.flashes, cueFlash(c))
	}
	for _, sp := range p.feedback.DrainSparks() {
		f := newFlash("", sp.X, sp.Y)
		f.spark, f.heavy = true, sp.Heavy
		p.flashes = append(p.flashes, f)
	}
	for _, snd := range p.feedback.DrainSounds() {
		if snd == system.SoundDefend {
			pl := p.resolver.Player()
			p.flashes = append(p.flashes, newFlash("block", pl.CenterX(), pl.CenterY()))
		}
	}
}

func cueFlash(c ai.Cue) *flash {
	return newFlash(c.Kind.String(), c.X, c.Y)
}

func (p *Playing) updateFlashes() {
	for _, f := range p.flashes {
		a, done := f.fade.Update(float32(p.dt))
		f.a = a
		if done {
			f.a = 0
		}
	}
	p.flashes = slices.DeleteFunc(p.flashes, func(f *flash) bool { return f.a <= 0 })
}

func (p *Playing) restart() error {
	return p.start()
}

// nextArena continues to the arena after this one, if it is unlocked
func (p *Playing) nextArena() (scene.Scene, error) {
	order := p.config.Tuning.Arenas
	i := slices.Index(order, p.arenaCfg.ID)
	if i < 0 || i+1 >= len(order) {
		return nil, nil
	}
	next := order[i+1]
	if p.unlocked != nil && !p.unlocked(next) {
		return nil, nil
	}
	n, err := New(p.config, next, p.opts...)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Draw renders the arena
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	ox, oy := p.shakeX, p.shakeY
	arena := p.resolver.Arena()

	w := arena.World
	ebitenutil.DrawRect(screen, ox, w.FloorY+oy, w.Width, w.Height-w.FloorY, colorFloor)
	for _, r := range arena.Platforms.Platforms() {
		ebitenutil.DrawRect(screen, r.X+ox, r.Y+oy, r.W, r.H, colorPlatform)
	}

	for _, e := range p.resolver.Enemies() {
		p.drawEnemy(screen, e, ox, oy)
	}
	p.drawPlayer(screen, ox, oy)
	p.drawFlashes(screen, ox, oy)
	p.drawUI(screen)

	switch p.resolver.State() {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nDefeated: %d\n\nPress R to retry", p.resolver.Defeated()))
	case state.StateStageClear:
		p.drawOverlay(screen, color.RGBA{0, 60, 0, 180},
			fmt.Sprintf("ARENA CLEAR\n\nTime: %.1fs\n\nR: retry | Enter: next arena", p.resolver.Elapsed().Seconds()))
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, ox, oy float64) {
	pl := p.resolver.Player()
	if !pl.Alive {
		return
	}

	c := colorPlayer
	if pl.IsDefending() {
		c = colorDefending
	}
	if pl.IsInvincible() && p.clock.Now().UnixMilli()/100%2 == 0 {
		c = colorFlash
	}
	r := pl.Hurtbox()
	ebitenutil.DrawRect(screen, r.X+ox, r.Y+oy, r.W, r.H, c)

	for _, f := range pl.Fists() {
		fc := colorFist
		if f.Charged || f.FullyCharged(p.clock.Now()) {
			fc = colorFistHeavy
		}
		fr := f.Rect()
		ebitenutil.DrawRect(screen, fr.X+ox, fr.Y+oy, fr.W, fr.H, fc)
	}
}

func (p *Playing) drawEnemy(screen *ebiten.Image, e *entity.Enemy, ox, oy float64) {
	c, ok := enemyColors[e.Kind]
	if !ok {
		c = colorProjectile
	}
	if e.IsInvincible() {
		c = colorFlash
	}
	ebitenutil.DrawRect(screen, e.X+ox, e.Y+oy, e.Width, e.Height, c)

	// Health bar above the body
	ebitenutil.DrawRect(screen, e.X+ox, e.Y+oy-8, e.Width, 4, colorHealthBG)
	ebitenutil.DrawRect(screen, e.X+ox, e.Y+oy-8, e.Width*e.HealthRatio(), 4, colorEnemyHP)

	for _, pr := range e.Projectiles {
		if !pr.Alive {
			continue
		}
		if pr.Kind == entity.ProjectileBeam {
			ex, ey := pr.EndPoint()
			vector.StrokeLine(screen, float32(pr.X+ox), float32(pr.Y+oy), float32(ex+ox), float32(ey+oy),
				float32(pr.Width), colorBeam, false)
			continue
		}
		r := pr.Rect()
		ebitenutil.DrawRect(screen, r.X+ox, r.Y+oy, r.W, r.H, colorProjectile)
	}
}

func (p *Playing) drawFlashes(screen *ebiten.Image, ox, oy float64) {
	for _, f := range p.flashes {
		if f.spark {
			size := 12.0
			c := colorFist
			if f.heavy {
				size, c = 24, colorFistHeavy
			}
			c = fade(c, f.a)
			size *= 2 - float64(f.a)
			ebitenutil.DrawRect(screen, f.x+ox-size/2, f.y+oy-size/2, size, size, c)
			continue
		}
		// Labels rise as they fade
		rise := float64(1-f.a) * 20
		ebitenutil.DebugPrintAt(screen, f.label, int(f.x+ox)-16, int(f.y+oy-rise)-40)
	}
}

// fade scales a color by a (premultiplied alpha)
func fade(c color.RGBA, a float32) color.RGBA {
	return color.RGBA{
		uint8(float32(c.R) * a),
		uint8(float32(c.G) * a),
		uint8(float32(c.B) * a),
		uint8(float32(c.A) * a),
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	pl := p.resolver.Player()

	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, barY, barW*pl.HealthRatio(), barH, colorHealthFG)

	status := fmt.Sprintf("%s | HP %d/%d | Combo %d | Time %.1fs",
		p.resolver.Arena().Name, pl.Health, pl.MaxHealth, pl.Combo, p.resolver.Elapsed().Seconds())
	text.Draw(screen, status, basicfont.Face7x13, 10, p.screenH-28, color.White)

	ebitenutil.DebugPrint(screen, "A/D: Move | W: Jump | S: Drop | Shift: Crouch/Slide | LMB/RMB: Punch | Space: Defend | Q: Counter | E: Skill | ESC: Pause | R: Restart")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, msg string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	text.Draw(screen, msg, basicfont.Face7x13, p.screenW/2-60, p.screenH/2-30, color.White)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Entering arena %s (%d enemies)", p.arenaCfg.ID, len(p.resolver.Enemies()))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {}

// Layout returns the scene's screen dimensions
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
