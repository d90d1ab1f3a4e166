package system

import (
	"context"
	"testing"
	"time"

	"ghost-fighter/internal/component"
	"ghost-fighter/internal/config"
	"ghost-fighter/internal/defs"
	"ghost-fighter/internal/entity"
	"ghost-fighter/internal/event"
	"ghost-fighter/internal/testutil/testlog"
	"ghost-fighter/internal/timer"
	"ghost-fighter/internal/types"
	"ghost-fighter/internal/utils"
)

type fakeRound struct {
	ctx     context.Context
	cancel  context.CancelFunc
	running bool
}

func newFakeRound() *fakeRound {
	ctx, cancel := context.WithCancel(context.Background())
	return &fakeRound{ctx: ctx, cancel: cancel, running: true}
}

func (r *fakeRound) Context() context.Context { return r.ctx }
func (r *fakeRound) Running() bool            { return r.running }

func (r *fakeRound) end() {
	r.running = false
	r.cancel()
}

type rig struct {
	ecs     *entity.ECS
	events  *event.Dispatcher
	sched   *timer.Scheduler
	tweens  *TweenSystem
	effects *VisualEffectSystem
	ghosts  *GhostSystem
	round   *fakeRound
	field   *Playfield
}

func newRig(t *testing.T) *rig {
	t.Helper()
	testlog.Start(t)
	r := &rig{
		ecs:    entity.NewECS(),
		events: event.NewDispatcher(),
		sched:  timer.NewScheduler(),
		round:  newFakeRound(),
		field:  DefaultPlayfield(),
	}
	rng := utils.NewPRNGService(7)
	r.ecs.Round.Phase = component.RoundRunning
	r.tweens = NewTweenSystem(r.ecs)
	r.effects = NewVisualEffectSystem(r.ecs, rng)
	r.ghosts = NewGhostSystem(r.ecs, r.events, r.sched, rng, r.tweens, r.field, config.Default(), r.round)
	return r
}

func (r *rig) update(dt time.Duration) {
	r.sched.Advance(dt)
	r.tweens.Update(dt)
	r.effects.Update(dt)
}

func TestNextCombo(t *testing.T) {
	window := 1500 * time.Millisecond
	cases := []struct {
		name   string
		combo  int
		hasHit bool
		gap    time.Duration
		want   int
	}{
		{"first hit", 0, false, 0, 1},
		{"within window", 1, true, 500 * time.Millisecond, 2},
		{"on window edge", 3, true, window, 4},
		{"past window", 5, true, window + time.Millisecond, 1},
		{"long gap", 2, true, 2 * time.Second, 1},
	}
	for _, tc := range cases {
		if got := NextCombo(tc.combo, tc.hasHit, tc.gap, window); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestTweenMovesAndCompletesOnce(t *testing.T) {
	ecs := entity.NewECS()
	ts := NewTweenSystem(ecs)
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	done := 0
	ts.Start(id, component.Position{X: 100, Y: 50}, time.Second, utils.Linear, func() { done++ })

	ts.Update(500 * time.Millisecond)
	if p := ecs.Positions[id]; p.X != 50 || p.Y != 25 {
		t.Fatalf("halfway position=%+v", *p)
	}
	ts.Update(600 * time.Millisecond)
	if p := ecs.Positions[id]; p.X != 100 || p.Y != 50 {
		t.Fatalf("final position=%+v", *p)
	}
	ts.Update(time.Second)
	if done != 1 {
		t.Fatalf("onDone ran %d times", done)
	}
}

func TestTweenCompletionsRunInIDOrder(t *testing.T) {
	ecs := entity.NewECS()
	ts := NewTweenSystem(ecs)
	var order []types.EntityID
	for i := 0; i < 5; i++ {
		id := ecs.NewEntity()
		ecs.Positions[id] = &component.Position{}
		ts.Start(id, component.Position{X: 1}, 10*time.Millisecond, nil, func() { order = append(order, id) })
	}
	ts.Update(time.Second)
	for i := 1; i < len(order); i++ {
		if order[i-1] > order[i] {
			t.Fatalf("completion order=%v", order)
		}
	}
}

func TestSpawnStartsOffscreen(t *testing.T) {
	r := newRig(t)
	for i := 0; i < 40; i++ {
		id := r.ghosts.Spawn()
		p := r.ecs.Positions[id]
		off := p.X == -config.OffscreenMargin || p.X == r.field.W+config.OffscreenMargin ||
			p.Y == -config.OffscreenMargin || p.Y == r.field.H+config.OffscreenMargin
		if !off {
			t.Fatalf("ghost %d spawned on screen at %+v", id, *p)
		}
		s := r.ecs.Sizes[id]
		base := r.field.BaseGhostWidth()
		if s.W < base*config.GhostJitterMin || s.W > base*config.GhostJitterMax || s.W != s.H {
			t.Fatalf("ghost size=%+v, base %v", *s, base)
		}
	}
}

func TestGhostFliesToInBoundsTarget(t *testing.T) {
	r := newRig(t)
	id := r.ghosts.Spawn()
	r.update(0)
	tw := r.ecs.Tweens[id]
	if tw == nil {
		t.Fatalf("ghost has no fly-in tween")
	}
	s := r.ecs.Sizes[id]
	maxX := r.field.W - s.W - config.GhostPad
	maxY := r.field.H - r.field.ActionsH - s.H - config.GhostPad
	if tw.To.X < config.GhostPad || tw.To.X > maxX || tw.To.Y < config.GhostPad || tw.To.Y > maxY {
		t.Fatalf("target %+v outside [%d,%v]x[%d,%v]", tw.To, config.GhostPad, maxX, config.GhostPad, maxY)
	}
	if tw.Duration < 1200*time.Millisecond || tw.Duration > 2000*time.Millisecond {
		t.Fatalf("fly-in duration=%v", tw.Duration)
	}
}

func TestGhostLoopKeepsCycling(t *testing.T) {
	r := newRig(t)
	id := r.ghosts.Spawn()
	// a full cycle is at most 2000+1400+1800+300 ms
	for i := 0; i < 120; i++ {
		r.update(100 * time.Millisecond)
	}
	if _, ok := r.ecs.Tweens[id]; !ok && r.sched.Pending() == 0 {
		t.Fatalf("ghost loop stopped while alive")
	}
}

func TestRoundEndStopsGhostLoop(t *testing.T) {
	r := newRig(t)
	id := r.ghosts.Spawn()
	r.update(0)
	r.round.end()
	r.ghosts.KillAll()
	r.update(10 * time.Second)
	if _, ok := r.ecs.Tweens[id]; ok {
		t.Fatalf("tween still running after the loop should have stopped")
	}
	if r.ecs.Ghosts[id].Alive() {
		t.Fatalf("ghost alive after KillAll")
	}
}

func TestKillOnlyOnce(t *testing.T) {
	r := newRig(t)
	kills := 0
	r.events.Subscribe(event.GhostKilled, event.ListenerFunc(func(event.Event) { kills++ }))
	id := r.ghosts.Spawn()
	if !r.ghosts.Kill(id, defs.AttackPoop) {
		t.Fatalf("first kill refused")
	}
	if r.ghosts.Kill(id, defs.AttackTalisman) {
		t.Fatalf("second kill accepted")
	}
	if kills != 1 {
		t.Fatalf("GhostKilled sent %d times", kills)
	}
	tw := r.ecs.Tweens[id]
	if tw.Duration != config.DropDuration || tw.To.Rot != config.DropRotation {
		t.Fatalf("drop tween=%+v", tw)
	}
}

func TestNearestPicksClosestAlive(t *testing.T) {
	r := newRig(t)
	a, b, c := r.ghosts.Spawn(), r.ghosts.Spawn(), r.ghosts.Spawn()
	place := func(id types.EntityID, x, y float64) {
		*r.ecs.Positions[id] = component.Position{X: x, Y: y}
		*r.ecs.Sizes[id] = component.Size{W: 60, H: 60}
	}
	place(a, 0, 0)
	place(b, 200, 200)
	place(c, 100, 100)
	r.ecs.Ghosts[c].State = component.GhostDead

	id, dist, width, ok := r.ghosts.Nearest(140, 140)
	if !ok {
		t.Fatalf("no nearest ghost")
	}
	if width != 60 {
		t.Fatalf("width=%v", width)
	}
	// c is closest but dead; b's centre (230,230) beats a's (30,30)
	if id != b || dist != utils.Hypot(230, 230, 140, 140) {
		t.Fatalf("nearest=%d dist=%v", id, dist)
	}
}

func TestGhostAtPrefersTopmost(t *testing.T) {
	r := newRig(t)
	a, b := r.ghosts.Spawn(), r.ghosts.Spawn()
	*r.ecs.Positions[a] = component.Position{X: 100, Y: 100}
	*r.ecs.Positions[b] = component.Position{X: 110, Y: 110}
	if id, ok := r.ghosts.GhostAt(120, 120); !ok || id != b {
		t.Fatalf("GhostAt=%d,%v want %d", id, ok, b)
	}
	if _, ok := r.ghosts.GhostAt(5, 5); ok {
		t.Fatalf("GhostAt found a ghost on empty space")
	}
}

func TestEffectsExpire(t *testing.T) {
	r := newRig(t)
	r.effects.Burst(10, 10, defs.AttackTalisman)
	r.effects.FloatText(10, 10, "+1", config.TextLightColor)
	if n := r.effects.Count(); n != 1+config.ParticleCount+1 {
		t.Fatalf("effects=%d", n)
	}
	r.effects.Update(config.RingDuration)
	if len(r.ecs.Rings) != 0 {
		t.Fatalf("ring outlived its duration")
	}
	r.effects.Update(time.Second)
	if n := r.effects.Count(); n != 0 {
		t.Fatalf("effects left=%d", n)
	}
}

func TestRegisterHitShowsComboText(t *testing.T) {
	r := newRig(t)
	score := NewScoreSystem(r.ecs, r.events, r.sched, r.effects, 1500*time.Millisecond)
	score.RegisterHit(1, 0, 0)
	if len(r.ecs.FloatTexts) != 1 {
		t.Fatalf("first hit texts=%d, want 1", len(r.ecs.FloatTexts))
	}
	r.sched.Advance(200 * time.Millisecond)
	st := score.RegisterHit(2, 0, 0)
	if st.Combo != 2 || len(r.ecs.FloatTexts) != 3 {
		t.Fatalf("combo=%d texts=%d, want 2/3", st.Combo, len(r.ecs.FloatTexts))
	}
	found := false
	for _, ft := range r.ecs.FloatTexts {
		if ft.Text == "×2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing ×2 text")
	}
	if st.ComboPop != config.ComboPopLife {
		t.Fatalf("combo pop=%v", st.ComboPop)
	}
}
