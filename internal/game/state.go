// Package game provides the main loop that sequences the adventure's
// story beats. All rules live in internal/engine; this package only
// decides which engine operation runs next and narrates the result.
package game

// Phase represents where the session is in the story.
type Phase int

const (
	// PhaseIntro - title narration, waiting for a key.
	PhaseIntro Phase = iota
	// PhaseNameEntry - collecting the player's name.
	PhaseNameEntry
	// PhasePathChoice - eastern or western path.
	PhasePathChoice
	// PhaseCaveChoice - investigate the cave or stay on the main path.
	PhaseCaveChoice
	// PhaseStreamChoice - drink from the stream or cross it.
	PhaseStreamChoice
	// PhaseGuardianIntro - guardian narration, waiting for a key.
	PhaseGuardianIntro
	// PhaseBattle - the attack/sneak/potion loop.
	PhaseBattle
	// PhaseVictory - scroll claimed, waiting for a key to exit.
	PhaseVictory
	// PhaseDefeat - the player fell, waiting for a key to exit.
	PhaseDefeat
	// PhaseDone - session over, loop exits.
	PhaseDone
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseNameEntry:
		return "name_entry"
	case PhasePathChoice:
		return "path_choice"
	case PhaseCaveChoice:
		return "cave_choice"
	case PhaseStreamChoice:
		return "stream_choice"
	case PhaseGuardianIntro:
		return "guardian_intro"
	case PhaseBattle:
		return "battle"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}
