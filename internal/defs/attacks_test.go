package defs

import "testing"

func TestAttackLookup(t *testing.T) {
	if got := Attack(AttackTalisman); got.Motion != MotionRise || got.HitCue != CueHappy {
		t.Fatalf("talisman definition wrong: %+v", got)
	}
	if got := Attack(AttackPoop); got.Motion != MotionDrop || got.HitCue != CueCry {
		t.Fatalf("poop definition wrong: %+v", got)
	}
	if got := Attack("banana"); got.Mode != DefaultAttack {
		t.Fatalf("unknown mode should fall back to %q, got %q", DefaultAttack, got.Mode)
	}
}

func TestValid(t *testing.T) {
	if !Valid(AttackPoop) || !Valid(AttackTalisman) {
		t.Fatal("known modes reported invalid")
	}
	if Valid("") {
		t.Fatal("empty mode reported valid")
	}
}
