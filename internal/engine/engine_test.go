package engine

import "testing"

func TestResetRestoresStartingState(t *testing.T) {
	e := New(NewScript(50, 20))
	e.State().SetName("Aria")
	e.EnterEasternPath() // trap for 20
	e.BattleGuardianOnce()
	e.State().GameOver = true

	e.State().Reset()

	s := e.State()
	if s.PlayerHP != 100 {
		t.Errorf("PlayerHP = %d, want 100", s.PlayerHP)
	}
	if s.PlayerName != "" {
		t.Errorf("PlayerName = %q, want empty", s.PlayerName)
	}
	if s.HasKey {
		t.Error("HasKey should be false after reset")
	}
	if !s.HasPotion {
		t.Error("HasPotion should be true after reset")
	}
	if s.GameOver {
		t.Error("GameOver should be false after reset")
	}
	if s.GuardianHP != 50 {
		t.Errorf("GuardianHP = %d, want 50", s.GuardianHP)
	}
}

func TestSetNameIsImmutable(t *testing.T) {
	s := NewState()
	if !s.SetName("Aria") {
		t.Fatal("first SetName should succeed")
	}
	if s.SetName("Borin") {
		t.Error("second SetName should be rejected")
	}
	if s.PlayerName != "Aria" {
		t.Errorf("PlayerName = %q, want %q", s.PlayerName, "Aria")
	}
}

func TestUsePotionHealsAndConsumes(t *testing.T) {
	tests := []struct {
		name    string
		startHP int
		heal    int
		wantHP  int
	}{
		{"uncapped heal", 61, 20, 81},
		{"exactly to cap", 60, 40, 100},
		{"capped at 100", 90, 35, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(NewScript(tt.heal))
			e.State().PlayerHP = tt.startHP

			ok, heal := e.UsePotion()

			if !ok {
				t.Fatal("UsePotion should succeed with a potion held")
			}
			if heal != tt.heal {
				t.Errorf("heal = %d, want %d", heal, tt.heal)
			}
			if e.State().PlayerHP != tt.wantHP {
				t.Errorf("PlayerHP = %d, want %d", e.State().PlayerHP, tt.wantHP)
			}
			if e.State().HasPotion {
				t.Error("potion should be consumed")
			}
		})
	}
}

func TestUsePotionWithoutPotionIsNoOp(t *testing.T) {
	rng := NewScript(30)
	e := New(rng)
	e.State().HasPotion = false
	e.State().PlayerHP = 40

	ok, heal := e.UsePotion()

	if ok || heal != 0 {
		t.Errorf("UsePotion() = (%v, %d), want (false, 0)", ok, heal)
	}
	if e.State().PlayerHP != 40 {
		t.Errorf("PlayerHP = %d, want 40 (unchanged)", e.State().PlayerHP)
	}
	if rng.Draws() != 0 {
		t.Errorf("no draw should be consumed, got %d", rng.Draws())
	}
}

func TestEnterEasternPathTrap(t *testing.T) {
	// 50 > 40 triggers the trap, 20 is the damage draw.
	e := New(NewScript(50, 20))

	event, damage := e.EnterEasternPath()

	if event != EventTrap {
		t.Errorf("event = %s, want trap", event)
	}
	if damage != 20 {
		t.Errorf("damage = %d, want 20", damage)
	}
	if e.State().PlayerHP != 80 {
		t.Errorf("PlayerHP = %d, want 80", e.State().PlayerHP)
	}
}

func TestEnterEasternPathSafeKeyFound(t *testing.T) {
	// 40 is safe (not > 40), key roll of 1 finds the key.
	e := New(NewScript(40, 1))

	event, damage := e.EnterEasternPath()

	if event != EventSafeKeyFound {
		t.Errorf("event = %s, want safe_key_found", event)
	}
	if damage != 0 {
		t.Errorf("damage = %d, want 0", damage)
	}
	if !e.State().HasKey {
		t.Error("key should be held after safe_key_found")
	}
}

func TestEnterEasternPathSafeNoKey(t *testing.T) {
	// Safe passage, key roll of 2 misses.
	e := New(NewScript(40, 2))

	event, _ := e.EnterEasternPath()

	if event != EventSafe {
		t.Errorf("event = %s, want safe", event)
	}
	if e.State().HasKey {
		t.Error("key should not be held")
	}
}

func TestEnterEasternPathSkipsKeyRollWhenKeyHeld(t *testing.T) {
	rng := NewScript(40)
	e := New(rng)
	e.State().HasKey = true

	event, _ := e.EnterEasternPath()

	if event != EventSafe {
		t.Errorf("event = %s, want safe", event)
	}
	if rng.Draws() != 1 {
		t.Errorf("draws = %d, want 1 (no key roll when key held)", rng.Draws())
	}
}

func TestInvestigateCave(t *testing.T) {
	tests := []struct {
		name       string
		hasKey     bool
		hasPotion  bool
		want       CaveResult
		wantPotion bool
	}{
		{"locked without key", false, false, CaveNoKey, false},
		{"restocks potion", true, false, CaveChestPotion, true},
		{"empty with potion held", true, true, CaveChestEmpty, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewScript(1)
			e := New(rng)
			e.State().HasKey = tt.hasKey
			e.State().HasPotion = tt.hasPotion

			got := e.InvestigateCave()

			if got != tt.want {
				t.Errorf("InvestigateCave() = %s, want %s", got, tt.want)
			}
			if e.State().HasPotion != tt.wantPotion {
				t.Errorf("HasPotion = %v, want %v", e.State().HasPotion, tt.wantPotion)
			}
			if e.State().HasKey != tt.hasKey {
				t.Error("key must never be consumed by the cave")
			}
			if rng.Draws() != 0 {
				t.Errorf("the cave consumes no draws, got %d", rng.Draws())
			}
		})
	}
}

func TestEnterWesternPathFindsKey(t *testing.T) {
	e := New(NewScript(1))

	if !e.EnterWesternPath() {
		t.Error("roll of 1 without a key should find the key")
	}
	if !e.State().HasKey {
		t.Error("key should be held")
	}
}

func TestEnterWesternPathMisses(t *testing.T) {
	e := New(NewScript(2))

	if e.EnterWesternPath() {
		t.Error("roll of 2 should not find the key")
	}
	if e.State().HasKey {
		t.Error("key should not be held")
	}
}

func TestEnterWesternPathAlwaysDrawsOnce(t *testing.T) {
	// The crossing roll happens even when the key is already held, so
	// recorded draw sequences replay identically either way.
	rng := NewScript(1)
	e := New(rng)
	e.State().HasKey = true

	if e.EnterWesternPath() {
		t.Error("key already held, keyFound should be false")
	}
	if rng.Draws() != 1 {
		t.Errorf("draws = %d, want exactly 1", rng.Draws())
	}
}

func TestDrinkFromStreamIsUncapped(t *testing.T) {
	tests := []struct {
		name    string
		startHP int
		draw    int
		wantHP  int
	}{
		{"heals to exactly 100", 90, 10, 100},
		{"overheals past 100", 95, 10, 105},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(NewScript(tt.draw))
			e.State().PlayerHP = tt.startHP

			healing := e.DrinkFromStream()

			if healing != tt.draw {
				t.Errorf("healing = %d, want %d", healing, tt.draw)
			}
			if e.State().PlayerHP != tt.wantHP {
				t.Errorf("PlayerHP = %d, want %d", e.State().PlayerHP, tt.wantHP)
			}
		})
	}
}

func TestBattleGuardianOnceKillingBlow(t *testing.T) {
	rng := NewScript(25)
	e := New(rng)
	e.State().GuardianHP = 25

	outcome, playerAttack, guardianAttack := e.BattleGuardianOnce()

	if outcome != GuardianDefeated {
		t.Errorf("outcome = %s, want guardian_defeated", outcome)
	}
	if playerAttack != 25 || guardianAttack != 0 {
		t.Errorf("attacks = (%d, %d), want (25, 0)", playerAttack, guardianAttack)
	}
	if e.State().GuardianHP != 0 {
		t.Errorf("GuardianHP = %d, want 0", e.State().GuardianHP)
	}
	if !e.State().GameOver {
		t.Error("defeating the guardian ends the session")
	}
	// The retaliation draw must be skipped on a killing blow.
	if rng.Draws() != 1 {
		t.Errorf("draws = %d, want 1 (no retaliation draw)", rng.Draws())
	}
}

func TestBattleGuardianOnceRetaliation(t *testing.T) {
	e := New(NewScript(10, 15))

	outcome, playerAttack, guardianAttack := e.BattleGuardianOnce()

	if outcome != GuardianRetaliates {
		t.Errorf("outcome = %s, want guardian_retaliates", outcome)
	}
	if playerAttack != 10 || guardianAttack != 15 {
		t.Errorf("attacks = (%d, %d), want (10, 15)", playerAttack, guardianAttack)
	}
	if e.State().GuardianHP != 40 {
		t.Errorf("GuardianHP = %d, want 40", e.State().GuardianHP)
	}
	if e.State().PlayerHP != 85 {
		t.Errorf("PlayerHP = %d, want 85", e.State().PlayerHP)
	}
	if e.State().GameOver {
		t.Error("session should continue while the guardian stands")
	}
}

func TestAttemptSneakSuccess(t *testing.T) {
	rng := NewScript(71)
	e := New(rng)

	ok, damage := e.AttemptSneak()

	if !ok || damage != 0 {
		t.Errorf("AttemptSneak() = (%v, %d), want (true, 0)", ok, damage)
	}
	if e.State().PlayerHP != 100 {
		t.Errorf("PlayerHP = %d, want 100 (unchanged)", e.State().PlayerHP)
	}
	if !e.State().GameOver {
		t.Error("a successful sneak ends the session")
	}
	if rng.Draws() != 1 {
		t.Errorf("draws = %d, want 1 (no damage draw on success)", rng.Draws())
	}
}

func TestAttemptSneakFailure(t *testing.T) {
	e := New(NewScript(70, 25))

	ok, damage := e.AttemptSneak()

	if ok {
		t.Error("70 is not > 70, sneak should fail")
	}
	if damage != 25 {
		t.Errorf("damage = %d, want 25", damage)
	}
	if e.State().PlayerHP != 75 {
		t.Errorf("PlayerHP = %d, want 75", e.State().PlayerHP)
	}
	if e.State().GameOver {
		t.Error("a failed sneak does not end the session")
	}
}

func TestResultStrings(t *testing.T) {
	tests := []struct {
		got      string
		expected string
	}{
		{EventTrap.String(), "trap"},
		{EventSafe.String(), "safe"},
		{EventSafeKeyFound.String(), "safe_key_found"},
		{PathEvent(99).String(), "unknown"},
		{CaveNoKey.String(), "no_key"},
		{CaveChestPotion.String(), "chest_potion"},
		{CaveChestEmpty.String(), "chest_empty"},
		{CaveResult(99).String(), "unknown"},
		{GuardianDefeated.String(), "guardian_defeated"},
		{GuardianRetaliates.String(), "guardian_retaliates"},
		{BattleOutcome(99).String(), "unknown"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("String() = %q, want %q", tt.got, tt.expected)
		}
	}
}
