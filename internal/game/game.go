package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/eldoria/internal/engine"
	"github.com/samdwyer/eldoria/internal/gamedata"
	"github.com/samdwyer/eldoria/internal/telemetry"
	"github.com/samdwyer/eldoria/internal/ui"
)

// Game wires the engine, story content, and terminal UI into one session.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	scenes   *gamedata.SceneRegistry
	guardian *gamedata.GuardianDef
	eng      *engine.Engine

	phase     Phase
	log       []ui.Line
	nameBuf   string
	sessionID string
	running   bool
}

// New creates a game instance with a terminal screen attached.
func New(cfg Config) (*Game, error) {
	scenes, err := gamedata.LoadSceneRegistry()
	if err != nil {
		return nil, err
	}
	guardian, err := gamedata.LoadGuardian()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g := newGame(cfg, scenes, guardian, engine.NewRoller(seed))
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	return g, nil
}

// newGame builds a session without a screen. Tests drive it directly.
func newGame(cfg Config, scenes *gamedata.SceneRegistry, guardian *gamedata.GuardianDef, rng engine.Source) *Game {
	return &Game{
		cfg:       cfg,
		scenes:    scenes,
		guardian:  guardian,
		eng:       engine.New(rng),
		phase:     PhaseIntro,
		sessionID: uuid.NewString(),
		running:   true,
	}
}

// Run executes the main loop until the session ends or the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	span.SetAttributes(attribute.String("session.id", g.sessionID))
	defer span.End()

	g.say("intro", nil)
	g.say("name_prompt", nil)
	g.phase = PhaseNameEntry

	for g.running && g.phase != PhaseDone {
		g.renderer.Render(g.view())
		g.handleInput(ctx)
	}

	g.finishSpan(span)
	g.screen.Close()
	return nil
}

// finishSpan records how the session ended on the run span.
func (g *Game) finishSpan(span trace.Span) {
	s := g.eng.State()
	span.SetAttributes(
		attribute.String("player.name", s.PlayerName),
		attribute.Int("player.hp", s.PlayerHP),
		attribute.Bool("game_over", s.GameOver),
		attribute.String("final_phase", g.phase.String()),
	)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input for the current phase.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return

	case tcell.KeyEnter:
		if g.phase == PhaseNameEntry {
			g.confirmName()
			return
		}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if g.phase == PhaseNameEntry && len(g.nameBuf) > 0 {
			g.nameBuf = g.nameBuf[:len(g.nameBuf)-1]
			return
		}
	}

	if ev.Key() == tcell.KeyRune {
		g.handleRune(ctx, ev.Rune())
		return
	}

	// Any other key advances the wait-for-key phases.
	g.advance(ctx)
}

// handleRune routes printable keys: name characters, menu digits, quit.
func (g *Game) handleRune(ctx context.Context, r rune) {
	if g.phase == PhaseNameEntry {
		if len(g.nameBuf) < 24 && r >= ' ' {
			g.nameBuf += string(r)
		}
		return
	}

	switch r {
	case 'q', 'Q':
		g.running = false
	case '1', '2', '3':
		g.choose(ctx, int(r-'0'))
	default:
		g.advance(ctx)
	}
}

// advance moves past the phases that only wait for a keypress.
func (g *Game) advance(ctx context.Context) {
	switch g.phase {
	case PhaseGuardianIntro:
		g.phase = PhaseBattle
	case PhaseVictory, PhaseDefeat:
		g.say("farewell", nil)
		g.phase = PhaseDone
	}
}

// confirmName locks in the player's name and opens the crossroads.
func (g *Game) confirmName() {
	if g.nameBuf == "" {
		return
	}
	g.eng.State().SetName(g.nameBuf)
	g.say("greeting", map[string]string{"name": g.nameBuf})
	g.say("crossroads", nil)
	g.phase = PhasePathChoice
}

// view assembles the frame for the renderer from the current state.
func (g *Game) view() ui.View {
	s := g.eng.State()
	v := ui.View{
		Name:       s.PlayerName,
		HP:         s.PlayerHP,
		HasPotion:  s.HasPotion,
		HasKey:     s.HasKey,
		GuardianHP: s.GuardianHP,
		Log:        g.log,
	}

	switch g.phase {
	case PhaseNameEntry:
		v.Prompt = g.nameBuf
	case PhasePathChoice:
		v.Menu = g.menuFor("crossroads")
	case PhaseCaveChoice:
		v.Menu = g.menuFor("cave_prompt")
	case PhaseStreamChoice:
		v.Menu = g.menuFor("stream_prompt")
	case PhaseBattle:
		v.ShowGuardian = true
		menu := g.menuFor("battle_prompt")
		if !s.HasPotion && len(menu) == 3 {
			menu = menu[:2] // no potion, no potion option
		}
		v.Menu = menu
	case PhaseGuardianIntro:
		v.ShowGuardian = true
	}
	return v
}

// menuFor returns a scene's menu options, or nil if the scene is missing.
func (g *Game) menuFor(sceneID string) []string {
	scene := g.scenes.GetByID(sceneID)
	if scene == nil {
		return nil
	}
	return scene.Options
}

// say appends a scene's rendered narration to the log.
func (g *Game) say(sceneID string, vars map[string]string) {
	scene := g.scenes.GetByID(sceneID)
	if scene == nil {
		return
	}
	color := scene.TCellColor()
	for _, line := range scene.Render(vars) {
		g.log = append(g.log, ui.Line{Text: line, Color: color})
	}
}

// pause sleeps for the configured dramatic pause. Pacing only; it never
// changes draw order or outcomes.
func (g *Game) pause() {
	if g.cfg.Pause > 0 {
		time.Sleep(g.cfg.Pause)
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
