package engine

// PathEvent is the outcome of walking the eastern path.
type PathEvent int

const (
	// EventTrap - a hidden trap triggered and dealt damage.
	EventTrap PathEvent = iota
	// EventSafe - the path was navigated without incident.
	EventSafe
	// EventSafeKeyFound - safe passage, and the rusty key turned up.
	EventSafeKeyFound
)

// String returns the event's wire name.
func (e PathEvent) String() string {
	switch e {
	case EventTrap:
		return "trap"
	case EventSafe:
		return "safe"
	case EventSafeKeyFound:
		return "safe_key_found"
	default:
		return "unknown"
	}
}

// CaveResult is the outcome of investigating the cave chest.
type CaveResult int

const (
	// CaveNoKey - the chest is locked and the player holds no key.
	CaveNoKey CaveResult = iota
	// CaveChestPotion - the chest opened and yielded a healing potion.
	CaveChestPotion
	// CaveChestEmpty - the chest opened but the player already holds a potion.
	CaveChestEmpty
)

// String returns the result's wire name.
func (c CaveResult) String() string {
	switch c {
	case CaveNoKey:
		return "no_key"
	case CaveChestPotion:
		return "chest_potion"
	case CaveChestEmpty:
		return "chest_empty"
	default:
		return "unknown"
	}
}

// BattleOutcome is the result of one round against the guardian.
type BattleOutcome int

const (
	// GuardianDefeated - the strike dropped the guardian to 0 or below.
	GuardianDefeated BattleOutcome = iota
	// GuardianRetaliates - the guardian survived and struck back.
	GuardianRetaliates
)

// String returns the outcome's wire name.
func (b BattleOutcome) String() string {
	switch b {
	case GuardianDefeated:
		return "guardian_defeated"
	case GuardianRetaliates:
		return "guardian_retaliates"
	default:
		return "unknown"
	}
}

// Engine applies the adventure's rules to a single session's State.
// Every operation is synchronous, performs no I/O, and is deterministic
// given the Source's output sequence. Draw order within an operation is
// part of the contract: recorded sequences replay exactly.
type Engine struct {
	state *State
	rng   Source
}

// New creates an engine with a fresh session state and the given
// randomness source.
func New(rng Source) *Engine {
	return &Engine{
		state: NewState(),
		rng:   rng,
	}
}

// State exposes the session state for the driver to render from.
func (e *Engine) State() *State {
	return e.state
}

// UsePotion drinks the held healing potion, restoring 20-40 HP capped
// at MaxPlayerHP. Without a potion it is a no-op returning (false, 0).
func (e *Engine) UsePotion() (ok bool, heal int) {
	if !e.state.HasPotion {
		return false, 0
	}
	heal = e.rng.Intn(20, 40)
	e.state.PlayerHP += heal
	if e.state.PlayerHP > MaxPlayerHP {
		e.state.PlayerHP = MaxPlayerHP
	}
	e.state.HasPotion = false
	return true, heal
}

// EnterEasternPath resolves the eastern path: 60% chance of a trap for
// 15-30 damage, otherwise safe passage with a 1-in-3 chance of finding
// the key if it isn't held yet. The trap roll is always drawn first;
// the key roll is drawn only when the path is safe and the key is
// missing.
func (e *Engine) EnterEasternPath() (PathEvent, int) {
	if e.rng.Intn(1, 100) > 40 {
		damage := e.rng.Intn(15, 30)
		e.state.PlayerHP -= damage
		return EventTrap, damage
	}
	if !e.state.HasKey && e.rng.Intn(1, 3) == 1 {
		e.state.HasKey = true
		return EventSafeKeyFound, 0
	}
	return EventSafe, 0
}

// InvestigateCave tries the chest in the cave. The key is required but
// never consumed; the chest restocks a potion only when none is held.
func (e *Engine) InvestigateCave() CaveResult {
	if !e.state.HasKey {
		return CaveNoKey
	}
	if !e.state.HasPotion {
		e.state.HasPotion = true
		return CaveChestPotion
	}
	return CaveChestEmpty
}

// EnterWesternPath crosses the stream on the western path, with a
// 1-in-4 chance of uncovering the key. One draw is consumed per call
// even when the key is already held, so recorded draw sequences stay
// aligned regardless of inventory.
func (e *Engine) EnterWesternPath() (keyFound bool) {
	if e.rng.Intn(1, 4) == 1 && !e.state.HasKey {
		e.state.HasKey = true
		return true
	}
	return false
}

// DrinkFromStream restores 5-15 HP. Unlike UsePotion the result is not
// capped at MaxPlayerHP; stream water can push HP past 100.
func (e *Engine) DrinkFromStream() int {
	healing := e.rng.Intn(5, 15)
	e.state.PlayerHP += healing
	return healing
}

// BattleGuardianOnce resolves one round of battle: the player strikes
// for 10-25, and if the guardian survives it retaliates for 10-20. On a
// killing blow no retaliation draw is consumed and the session ends.
func (e *Engine) BattleGuardianOnce() (outcome BattleOutcome, playerAttack, guardianAttack int) {
	playerAttack = e.rng.Intn(10, 25)
	e.state.GuardianHP -= playerAttack

	if e.state.GuardianHP <= 0 {
		e.state.GameOver = true
		return GuardianDefeated, playerAttack, 0
	}

	guardianAttack = e.rng.Intn(10, 20)
	e.state.PlayerHP -= guardianAttack
	return GuardianRetaliates, playerAttack, guardianAttack
}

// AttemptSneak tries to slip past the guardian: 30% chance of success
// ending the session unharmed, otherwise 20-35 damage.
func (e *Engine) AttemptSneak() (ok bool, damage int) {
	if e.rng.Intn(1, 100) > 70 {
		e.state.GameOver = true
		return true, 0
	}
	damage = e.rng.Intn(20, 35)
	e.state.PlayerHP -= damage
	return false, damage
}
