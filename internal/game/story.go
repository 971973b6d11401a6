package game

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/eldoria/internal/engine"
	"github.com/samdwyer/eldoria/internal/telemetry"
)

// choose resolves a numbered menu selection for the current phase.
func (g *Game) choose(ctx context.Context, n int) {
	switch g.phase {
	case PhasePathChoice:
		switch n {
		case 1:
			g.easternPath(ctx)
		case 2:
			g.westernPath()
		}

	case PhaseCaveChoice:
		switch n {
		case 1:
			g.investigateCave(ctx)
		case 2:
			g.say("main_path", nil)
		default:
			return
		}
		if g.phase == PhaseCaveChoice {
			g.guardianAppears()
		}

	case PhaseStreamChoice:
		switch n {
		case 1:
			g.drinkFromStream(ctx)
		case 2:
			g.say("stream_cross", nil)
		default:
			return
		}
		g.crossStream(ctx)
		g.guardianAppears()

	case PhaseBattle:
		switch n {
		case 1:
			g.attackGuardian(ctx)
		case 2:
			g.sneakPastGuardian(ctx)
		case 3:
			g.drinkPotion(ctx)
		}
	}
}

// easternPath runs the trap/key event and opens the cave choice.
func (g *Game) easternPath(ctx context.Context) {
	g.say("eastern_entry", nil)
	g.pause()

	tracer := telemetry.Tracer("story")
	_, span := tracer.Start(ctx, "story.eastern_path")
	event, damage := g.eng.EnterEasternPath()
	span.SetAttributes(
		attribute.String("event", event.String()),
		attribute.Int("damage", damage),
		attribute.Int("player.hp", g.eng.State().PlayerHP),
	)
	span.End()

	switch event {
	case engine.EventTrap:
		g.say("trap", g.vars("damage", damage))
		if g.playerDown() {
			return
		}
		g.say("trap_recovered", nil)
	case engine.EventSafeKeyFound:
		g.say("path_safe", nil)
		g.say("key_found", nil)
	default:
		g.say("path_safe", nil)
	}

	g.say("cave_prompt", nil)
	g.phase = PhaseCaveChoice
}

// westernPath narrates the quieter route and opens the stream choice.
func (g *Game) westernPath() {
	g.say("western_entry", nil)
	g.say("stream_prompt", nil)
	g.phase = PhaseStreamChoice
}

// investigateCave tries the chest with whatever the player carries.
func (g *Game) investigateCave(ctx context.Context) {
	g.say("cave_approach", nil)
	g.pause()

	tracer := telemetry.Tracer("story")
	_, span := tracer.Start(ctx, "story.cave")
	result := g.eng.InvestigateCave()
	span.SetAttributes(attribute.String("result", result.String()))
	span.End()

	switch result {
	case engine.CaveNoKey:
		g.say("chest_locked", nil)
	case engine.CaveChestPotion:
		g.say("chest_potion", nil)
	case engine.CaveChestEmpty:
		g.say("chest_empty", nil)
	}
}

// drinkFromStream restores a little health, uncapped.
func (g *Game) drinkFromStream(ctx context.Context) {
	tracer := telemetry.Tracer("story")
	_, span := tracer.Start(ctx, "story.stream")
	healing := g.eng.DrinkFromStream()
	span.SetAttributes(
		attribute.Int("healing", healing),
		attribute.Int("player.hp", g.eng.State().PlayerHP),
	)
	span.End()

	g.say("stream_drink", g.vars("healing", healing))
}

// crossStream runs the western key check. The crossing roll happens
// whether or not the key is already held.
func (g *Game) crossStream(ctx context.Context) {
	tracer := telemetry.Tracer("story")
	_, span := tracer.Start(ctx, "story.western_crossing")
	keyFound := g.eng.EnterWesternPath()
	span.SetAttributes(attribute.Bool("key_found", keyFound))
	span.End()

	if keyFound {
		g.say("western_key", nil)
		g.pause()
	}
}

// guardianAppears narrates the chamber and arms the battle loop.
func (g *Game) guardianAppears() {
	g.say("guardian_intro", map[string]string{
		"guardian_hp": strconv.Itoa(g.eng.State().GuardianHP),
	})
	g.phase = PhaseGuardianIntro
}

// attackGuardian resolves one battle round.
func (g *Game) attackGuardian(ctx context.Context) {
	tracer := telemetry.Tracer("story")
	_, span := tracer.Start(ctx, "story.battle_round")
	outcome, playerAttack, guardianAttack := g.eng.BattleGuardianOnce()
	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Int("player.attack", playerAttack),
		attribute.Int("guardian.attack", guardianAttack),
		attribute.Int("guardian.hp", g.eng.State().GuardianHP),
		attribute.Int("player.hp", g.eng.State().PlayerHP),
	)
	span.End()

	g.say("battle_strike", g.vars("damage", playerAttack))

	if outcome == engine.GuardianDefeated {
		g.say("battle_defeated", nil)
		g.win()
		return
	}

	g.say("battle_retaliate", g.vars("damage", guardianAttack))
	g.playerDown()
	g.pause()
}

// sneakPastGuardian tries to slip by instead of fighting.
func (g *Game) sneakPastGuardian(ctx context.Context) {
	g.say("sneak_attempt", nil)
	g.pause()

	tracer := telemetry.Tracer("story")
	_, span := tracer.Start(ctx, "story.sneak")
	ok, damage := g.eng.AttemptSneak()
	span.SetAttributes(
		attribute.Bool("success", ok),
		attribute.Int("damage", damage),
		attribute.Int("player.hp", g.eng.State().PlayerHP),
	)
	span.End()

	if ok {
		g.say("sneak_success", nil)
		g.win()
		return
	}
	g.say("sneak_fail", g.vars("damage", damage))
	g.playerDown()
}

// drinkPotion uses the held potion mid-battle.
func (g *Game) drinkPotion(ctx context.Context) {
	tracer := telemetry.Tracer("story")
	_, span := tracer.Start(ctx, "story.potion")
	ok, heal := g.eng.UsePotion()
	span.SetAttributes(
		attribute.Bool("success", ok),
		attribute.Int("heal", heal),
		attribute.Int("player.hp", g.eng.State().PlayerHP),
	)
	span.End()

	if !ok {
		g.say("potion_none", nil)
		return
	}
	g.say("potion_drink", g.vars("heal", heal))
}

// win narrates the sanctum and ends the session victorious.
func (g *Game) win() {
	g.say("victory", map[string]string{"name": g.eng.State().PlayerName})
	g.phase = PhaseVictory
}

// playerDown checks the external game-over condition and, if the player
// has fallen, moves to the defeat ending. Returns true when the player
// is down.
func (g *Game) playerDown() bool {
	if g.eng.State().PlayerHP > 0 {
		return false
	}
	g.say("collapse", nil)
	g.say("defeat", nil)
	g.phase = PhaseDefeat
	return true
}

// vars builds a placeholder map with the given amount plus the player's
// current HP, the pair nearly every scene needs.
func (g *Game) vars(key string, amount int) map[string]string {
	return map[string]string{
		key:  strconv.Itoa(amount),
		"hp": strconv.Itoa(g.eng.State().PlayerHP),
	}
}
