package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/paddleball/config"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestEnemyScoresWhenBallLeavesRightEdge(t *testing.T) {
	e := newTestCourt(t, 1)
	inProgress(e)
	b := ball(t, e)
	b.Position = dmath.NewVec2(799, 225)
	b.AngleDeg = 0

	setKeys(e, false, false)
	step(e, 0.01)

	round := GetOrCreateRound(e)
	if round.EnemyScore != 1 || round.PlayerScore != 0 {
		t.Fatalf("scores = player %d enemy %d, want 0 and 1", round.PlayerScore, round.EnemyScore)
	}
	if b.Position != dmath.NewVec2(400, 225) {
		t.Fatalf("ball position = %v, want screen center", b.Position)
	}
	if b.AngleDeg != 180 {
		t.Fatalf("ball angle = %f, want 180", b.AngleDeg)
	}
	if round.State != cfg.RoundWaitToStart {
		t.Fatalf("state = %s, want %s", round.State, cfg.RoundWaitToStart)
	}
	if got := label(t, e, cfg.PaddleEnemy).Text; got != "1" {
		t.Fatalf("enemy label = %q, want %q", got, "1")
	}
	if got := label(t, e, cfg.PaddlePlayer).Text; got != "0" {
		t.Fatalf("player label = %q, want %q", got, "0")
	}
}

func TestPlayerScoresWhenBallLeavesLeftEdge(t *testing.T) {
	e := newTestCourt(t, 1)
	inProgress(e)
	b := ball(t, e)
	b.Position = dmath.NewVec2(1, 225)
	b.AngleDeg = 180

	setKeys(e, false, false)
	step(e, 0.01)

	round := GetOrCreateRound(e)
	if round.PlayerScore != 1 || round.EnemyScore != 0 {
		t.Fatalf("scores = player %d enemy %d, want 1 and 0", round.PlayerScore, round.EnemyScore)
	}
	if b.Position != cfg.C.Center() {
		t.Fatalf("ball position = %v, want screen center", b.Position)
	}
	// 180 + 180 reduces to 0
	if b.AngleDeg != 0 {
		t.Fatalf("ball angle = %f, want 0", b.AngleDeg)
	}
	if round.State != cfg.RoundWaitToStart {
		t.Fatalf("state = %s, want %s", round.State, cfg.RoundWaitToStart)
	}
}

func TestScoringFrameStillRunsLaterSystems(t *testing.T) {
	e := newTestCourt(t, 1)
	inProgress(e)
	b := ball(t, e)
	b.Position = dmath.NewVec2(799, 225)
	b.AngleDeg = 360 // reset adds 180, the wall bounce system must reduce it

	setKeys(e, false, false)
	step(e, 0.01)

	if b.AngleDeg != 180 {
		t.Fatalf("angle = %f, want 540 reduced to 180 on the scoring frame", b.AngleDeg)
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name     string
		start    dmath.Vec2
		angle    float64
		wantY    float64
		minAngle float64
		maxAngle float64
	}{
		// 449 + 700*0.01 = 456, nudged back by 8
		{name: "bottom", start: dmath.NewVec2(400, 449), angle: 90, wantY: 448, minAngle: -100, maxAngle: -80},
		// 1 - 7 = -6, nudged back by 8
		{name: "top", start: dmath.NewVec2(400, 1), angle: -90, wantY: 2, minAngle: 80, maxAngle: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestCourt(t, 7)
			inProgress(e)
			b := ball(t, e)
			b.Position = tc.start
			b.AngleDeg = tc.angle

			setKeys(e, false, false)
			step(e, 0.01)

			if math.Abs(b.Position.Y-tc.wantY) > 1e-9 {
				t.Fatalf("ball y = %f, want %f", b.Position.Y, tc.wantY)
			}
			if b.AngleDeg < tc.minAngle || b.AngleDeg > tc.maxAngle {
				t.Fatalf("ball angle = %f, want within [%f, %f]", b.AngleDeg, tc.minAngle, tc.maxAngle)
			}
		})
	}
}

func TestProjectileIntegration(t *testing.T) {
	e := newTestCourt(t, 1)
	b := ball(t, e)
	b.Position = dmath.NewVec2(400, 225)
	b.AngleDeg = 30
	GetOrCreateFrame(e).Delta = 0.1

	UpdateProjectile(e)

	wantX := 400 + 70*math.Cos(math.Pi/6)
	wantY := 225 + 70*math.Sin(math.Pi/6)
	if math.Abs(b.Position.X-wantX) > 1e-9 || math.Abs(b.Position.Y-wantY) > 1e-9 {
		t.Fatalf("ball = %v, want (%f, %f)", b.Position, wantX, wantY)
	}
}

func TestNormalizeAngleKeepsSign(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 0, want: 0},
		{in: 359, want: 359},
		{in: 360, want: 0},
		{in: 540, want: 180},
		{in: -190, want: -190},
		{in: -370, want: -10},
		{in: 725.5, want: 5.5},
	}

	for _, tc := range tests {
		if got := normalizeAngle(tc.in); got != tc.want {
			t.Errorf("normalizeAngle(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}
