package app

import (
	"slices"
	"testing"
	"time"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/testutil/testlog"
	"ghost-fighter/internal/types"
)

type cueRecorder struct {
	cues []defs.Cue
}

func (r *cueRecorder) Play(cue defs.Cue) { r.cues = append(r.cues, cue) }

func (r *cueRecorder) count(cue defs.Cue) int {
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T) (*Game, *cueRecorder) {
	t.Helper()
	testlog.Start(t)
	tuning := config.Default()
	tuning.Seed = 42
	rec := &cueRecorder{}
	return NewGame(tuning, nil, rec), rec
}

func startedGame(t *testing.T) (*Game, *cueRecorder) {
	t.Helper()
	g, rec := newTestGame(t)
	if !g.StartRound() {
		t.Fatalf("StartRound returned false from idle")
	}
	return g, rec
}

// step advances the session in frame-sized slices.
func step(g *Game, total, frame time.Duration) {
	for total > 0 {
		dt := min(frame, total)
		g.Update(dt)
		total -= dt
	}
}

func aliveGhost(t *testing.T, g *Game) types.EntityID {
	t.Helper()
	var ids []types.EntityID
	for id, gh := range g.ECS.Ghosts {
		if gh.Alive() {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		t.Fatalf("no alive ghost")
	}
	slices.Sort(ids)
	return ids[0]
}

// isolate puts ghost id at a known box and moves every other ghost far away.
func isolate(g *Game, id types.EntityID, x, y, w float64) {
	for other, pos := range g.ECS.Positions {
		if _, isGhost := g.ECS.Ghosts[other]; isGhost && other != id {
			pos.X, pos.Y = -5000, -5000
		}
	}
	*g.ECS.Positions[id] = component.Position{X: x, Y: y}
	*g.ECS.Sizes[id] = component.Size{W: w, H: w}
}

func TestStartRoundInitialState(t *testing.T) {
	g, _ := startedGame(t)
	r := g.Round()
	if r.Phase != component.RoundRunning {
		t.Fatalf("phase=%v, want running", r.Phase)
	}
	if r.Remaining != 40*time.Second {
		t.Fatalf("remaining=%v, want 40s", r.Remaining)
	}
	if r.Score != 0 || r.Combo != 0 || r.MaxCombo != 0 {
		t.Fatalf("round not zeroed: %+v", r)
	}
	if n := g.ECS.AliveGhosts(); n < 3 || n > 5 {
		t.Fatalf("initial ghosts=%d, want 3..5", n)
	}
	if g.StartRound() {
		t.Fatalf("StartRound while running should be a no-op")
	}
}

func TestDirectHitScoresAndRemovesGhost(t *testing.T) {
	g, rec := startedGame(t)
	id := aliveGhost(t, g)

	res := g.ThrowAtGhost(id)
	if !res.Launched || !res.Hit || res.Target != id {
		t.Fatalf("resolution=%+v, want launched hit on %d", res, id)
	}
	g.Update(config.Default().ProjectileFlight())

	r := g.Round()
	if r.Score != 1 || r.Combo != 1 {
		t.Fatalf("score=%d combo=%d, want 1/1", r.Score, r.Combo)
	}
	gh := g.ECS.Ghosts[id]
	if gh == nil || gh.State != component.GhostDead || gh.Face != component.FaceSad {
		t.Fatalf("ghost after hit=%+v, want dead and sad", gh)
	}
	if rec.count(defs.CueThrow) != 1 || rec.count(defs.CueCry) != 1 {
		t.Fatalf("cues=%v, want one throw and one cry", rec.cues)
	}

	step(g, config.DropDuration+100*time.Millisecond, 100*time.Millisecond)
	if _, ok := g.ECS.Ghosts[id]; ok {
		t.Fatalf("ghost %d still present after its death tween", id)
	}
}

func TestTalismanKillRisesHappy(t *testing.T) {
	g, rec := startedGame(t)
	g.SetAttackMode(defs.AttackTalisman)
	id := aliveGhost(t, g)
	g.ThrowAtGhost(id)
	g.Update(300 * time.Millisecond)

	gh := g.ECS.Ghosts[id]
	if gh.Face != component.FaceHappy || gh.KilledBy != defs.AttackTalisman {
		t.Fatalf("ghost=%+v, want happy, killed by talisman", gh)
	}
	if rec.count(defs.CueHappy) != 1 {
		t.Fatalf("cues=%v, want one happy", rec.cues)
	}
	before := g.ECS.Positions[id].Y
	g.Update(time.Second)
	if after := g.ECS.Positions[id].Y; after >= before {
		t.Fatalf("talisman ghost did not rise: y %v -> %v", before, after)
	}
}

func TestTwoProjectilesOnOneGhostCountOnce(t *testing.T) {
	g, _ := startedGame(t)
	id := aliveGhost(t, g)
	first := g.ThrowAtGhost(id)
	second := g.ThrowAtGhost(id)
	if !first.Launched || !second.Launched {
		t.Fatalf("both throws should launch while the ghost is alive")
	}
	g.Update(300 * time.Millisecond)
	if s := g.Round().Score; s != 1 {
		t.Fatalf("score=%d, want 1", s)
	}
}

func TestScoreEqualsHits(t *testing.T) {
	g, _ := startedGame(t)
	const hits = 12
	for i := 0; i < hits; i++ {
		g.ThrowAtGhost(aliveGhost(t, g))
		g.Update(300 * time.Millisecond)
		if s := g.Round().Score; s != i+1 {
			t.Fatalf("after %d hits score=%d", i+1, s)
		}
	}
}

func TestComboWindowExample(t *testing.T) {
	g, _ := startedGame(t)
	flight := config.Default().ProjectileFlight()

	g.ThrowAtGhost(aliveGhost(t, g))
	g.Update(flight)
	if c := g.Round().Combo; c != 1 {
		t.Fatalf("first hit combo=%d, want 1", c)
	}

	g.Update(500*time.Millisecond - flight)
	g.ThrowAtGhost(aliveGhost(t, g))
	g.Update(flight)
	if c := g.Round().Combo; c != 2 {
		t.Fatalf("hit 500ms later combo=%d, want 2", c)
	}

	step(g, 2000*time.Millisecond-flight, 100*time.Millisecond)
	g.ThrowAtGhost(aliveGhost(t, g))
	g.Update(flight)
	r := g.Round()
	if r.Combo != 1 {
		t.Fatalf("hit 2000ms later combo=%d, want 1", r.Combo)
	}
	if r.MaxCombo != 2 {
		t.Fatalf("max combo=%d, want 2", r.MaxCombo)
	}
}

func TestMaxComboTracksLargestStreak(t *testing.T) {
	g, _ := startedGame(t)
	gaps := []time.Duration{0, 400, 400, 400, 1600, 300, 300}
	maxSeen, prevMax := 0, 0
	for _, gap := range gaps {
		step(g, gap*time.Millisecond, 100*time.Millisecond)
		g.ThrowAtGhost(aliveGhost(t, g))
		g.Update(config.Default().ProjectileFlight())
		r := g.Round()
		maxSeen = max(maxSeen, r.Combo)
		if r.MaxCombo < prevMax {
			t.Fatalf("max combo decreased %d -> %d", prevMax, r.MaxCombo)
		}
		if r.MaxCombo != maxSeen {
			t.Fatalf("max combo=%d, want %d", r.MaxCombo, maxSeen)
		}
		prevMax = r.MaxCombo
	}
	if maxSeen != 4 {
		t.Fatalf("largest streak=%d, want 4", maxSeen)
	}
}

func TestAimedThrowHitRadius(t *testing.T) {
	cases := []struct {
		name   string
		offset float64
		hit    bool
	}{
		{"inside radius", 40, true},
		{"just inside radius", 47.9, true},
		{"outside radius", 60, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := startedGame(t)
			id := aliveGhost(t, g)
			// 80px ghost centred on (140,140): radius is 0.6*80 = 48
			isolate(g, id, 100, 100, 80)

			res := g.ThrowAt(140+tc.offset, 140)
			if !res.Launched {
				t.Fatalf("throw did not launch")
			}
			if res.Hit != tc.hit {
				t.Fatalf("hit=%v, want %v", res.Hit, tc.hit)
			}
			if tc.hit && res.Target != id {
				t.Fatalf("target=%d, want %d", res.Target, id)
			}
			g.Update(300 * time.Millisecond)
			want := 0
			if tc.hit {
				want = 1
			}
			if s := g.Round().Score; s != want {
				t.Fatalf("score=%d, want %d", s, want)
			}
		})
	}
}

func TestTapOnGhostIsDirectThrow(t *testing.T) {
	g, _ := startedGame(t)
	id := aliveGhost(t, g)
	isolate(g, id, 200, 300, 60)

	// a corner is outside the 60% radius but still on the ghost
	if !g.Tap(201, 301) {
		t.Fatalf("tap on ghost did not launch")
	}
	p := g.ECS.Projectiles[g.ECS.NextID-1]
	if p == nil || !p.Hit || p.TargetID != id {
		t.Fatalf("projectile=%+v, want direct hit on %d", p, id)
	}
	if p.ToX != 230 || p.ToY != 330 {
		t.Fatalf("projectile target=(%v,%v), want ghost centre (230,330)", p.ToX, p.ToY)
	}
}

func TestMissPlaysEffectOnly(t *testing.T) {
	g, rec := startedGame(t)
	isolate(g, aliveGhost(t, g), 0, 0, 60)
	res := g.ThrowAt(400, 600)
	if !res.Launched || res.Hit {
		t.Fatalf("resolution=%+v, want launched miss", res)
	}
	g.Update(300 * time.Millisecond)
	if g.Round().Score != 0 {
		t.Fatalf("miss changed score")
	}
	if len(g.ECS.Rings) != 1 || len(g.ECS.Particles) != config.ParticleCount {
		t.Fatalf("rings=%d particles=%d, want 1/%d", len(g.ECS.Rings), len(g.ECS.Particles), config.ParticleCount)
	}
	if rec.count(defs.CueThrow) != 1 || rec.count(defs.CueCry) != 0 {
		t.Fatalf("cues=%v, want throw only", rec.cues)
	}
}

func TestRoundEndsExactlyAtZero(t *testing.T) {
	g, _ := startedGame(t)
	for i := 0; i < 399; i++ {
		g.Update(100 * time.Millisecond)
	}
	r := g.Round()
	if r.Phase != component.RoundRunning || r.Remaining != 100*time.Millisecond {
		t.Fatalf("after 399 ticks phase=%v remaining=%v", r.Phase, r.Remaining)
	}
	g.Update(100 * time.Millisecond)
	r = g.Round()
	if r.Phase != component.RoundEnded || r.Remaining != 0 {
		t.Fatalf("after 400 ticks phase=%v remaining=%v", r.Phase, r.Remaining)
	}
	if !r.GameOver() {
		t.Fatalf("GameOver false after end")
	}
	g.Update(time.Second)
	if g.Round().Remaining != 0 {
		t.Fatalf("remaining went below zero: %v", g.Round().Remaining)
	}
}

func TestRemainingNeverNegativeWithCoarseFrames(t *testing.T) {
	g, _ := startedGame(t)
	for i := 0; i < 200; i++ {
		g.Update(333 * time.Millisecond)
		if rem := g.Round().Remaining; rem < 0 {
			t.Fatalf("remaining=%v", rem)
		}
	}
	if g.Round().Phase != component.RoundEnded {
		t.Fatalf("round did not end")
	}
}

func TestAliveCountStaysInBounds(t *testing.T) {
	g, _ := startedGame(t)
	for i := 0; i < 390; i++ {
		if i%3 == 0 {
			g.ThrowAtGhost(aliveGhost(t, g))
		}
		g.Update(100 * time.Millisecond)
		if !g.Running() {
			break
		}
		if n := g.ECS.AliveGhosts(); n < 3 || n > 7 {
			t.Fatalf("frame %d alive=%d, want 3..7", i, n)
		}
	}
}

func TestEndMarksGhostsDeadAndStopsThrows(t *testing.T) {
	g, _ := startedGame(t)
	id := aliveGhost(t, g)
	g.ThrowAtGhost(id)
	if !g.EndRound() {
		t.Fatalf("EndRound returned false while running")
	}
	if g.EndRound() {
		t.Fatalf("second EndRound should be a no-op")
	}
	if n := g.ECS.AliveGhosts(); n != 0 {
		t.Fatalf("alive after end=%d", n)
	}
	g.Update(300 * time.Millisecond)
	if s := g.Summary(); s.Score != 0 {
		t.Fatalf("projectile landing after end scored: %+v", s)
	}
	if g.Tap(10, 10) {
		t.Fatalf("tap after end launched a projectile")
	}
	if g.StartRound() {
		t.Fatalf("StartRound from ended should require a reset")
	}
}

func TestAgainStartsFreshRound(t *testing.T) {
	g, _ := startedGame(t)
	g.ThrowAtGhost(aliveGhost(t, g))
	g.Update(300 * time.Millisecond)
	g.SetAttackMode(defs.AttackTalisman)
	g.EndRound()

	if !g.Again() {
		t.Fatalf("Again returned false")
	}
	r := g.Round()
	if r.Phase != component.RoundRunning || r.Score != 0 || r.HasHit {
		t.Fatalf("round after Again=%+v", r)
	}
	if g.AttackMode() != defs.AttackPoop {
		t.Fatalf("mode=%v, want poop after restart", g.AttackMode())
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	g, _ := startedGame(t)
	g.ResetRound()
	if g.Round().Phase != component.RoundIdle {
		t.Fatalf("phase=%v, want idle", g.Round().Phase)
	}
	if len(g.ECS.Ghosts) != 0 {
		t.Fatalf("ghosts left after reset: %d", len(g.ECS.Ghosts))
	}
	g.Update(5 * time.Second)
	if len(g.ECS.Ghosts) != 0 {
		t.Fatalf("idle session spawned ghosts")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	a, _ := startedGame(t)
	b, _ := newTestGame(t)
	a.ThrowAtGhost(aliveGhost(t, a))
	a.Update(300 * time.Millisecond)
	if b.Round().Score != 0 || b.Round().Phase != component.RoundIdle {
		t.Fatalf("session b touched by a: %+v", b.Round())
	}
}

func TestSameSeedReplaysIdentically(t *testing.T) {
	run := func() []component.Position {
		g, _ := startedGame(t)
		step(g, 3*time.Second, 16*time.Millisecond)
		var ids []types.EntityID
		for id := range g.ECS.Ghosts {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		out := make([]component.Position, 0, len(ids))
		for _, id := range ids {
			out = append(out, *g.ECS.Positions[id])
		}
		return out
	}
	if a, b := run(), run(); !slices.Equal(a, b) {
		t.Fatalf("seeded runs diverged:\n%v\n%v", a, b)
	}
}

func TestUnknownAttackModeIgnored(t *testing.T) {
	g, _ := newTestGame(t)
	g.SetAttackMode("glitter")
	if g.AttackMode() != defs.AttackPoop {
		t.Fatalf("mode=%v", g.AttackMode())
	}
}
