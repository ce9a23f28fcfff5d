package systems

import (
	"testing"

	cfg "github.com/automoto/paddleball/config"
)

func TestPlayerPaddleMovesUpOneFrame(t *testing.T) {
	e := newTestCourt(t, 1)
	inProgress(e)
	playerPaddle(t, e).Position.Y = 200

	setKeys(e, true, false)
	step(e, 1.0/60)

	want := 200 - 550.0/60
	if got := playerPaddle(t, e).Position.Y; !near(got, want) {
		t.Fatalf("player y after one frame = %f, want %f", got, want)
	}
}

func TestPlayerPaddleUpWinsOverDown(t *testing.T) {
	e := newTestCourt(t, 1)
	inProgress(e)
	playerPaddle(t, e).Position.Y = 200

	setKeys(e, true, true)
	step(e, 0.1)

	if got := playerPaddle(t, e).Position.Y; !near(got, 145) {
		t.Fatalf("player y with both keys held = %f, want 145", got)
	}
}

func TestPlayerPaddleClamped(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		up    bool
		down  bool
		want  float64
	}{
		{name: "top", start: 3, up: true, want: 0},
		{name: "bottom", start: 395, down: true, want: float64(cfg.C.Height) - cfg.Paddle.Height},
		{name: "inside", start: 100, down: true, want: 100 + cfg.Paddle.Speed*0.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestCourt(t, 1)
			inProgress(e)
			playerPaddle(t, e).Position.Y = tc.start

			setKeys(e, tc.up, tc.down)
			step(e, 0.1)

			if got := playerPaddle(t, e).Position.Y; !near(got, tc.want) {
				t.Fatalf("player y = %f, want %f", got, tc.want)
			}
		})
	}
}

func TestPlayerPaddleIdleWithoutInput(t *testing.T) {
	e := newTestCourt(t, 1)
	inProgress(e)
	start := playerPaddle(t, e).Position

	for i := 0; i < 30; i++ {
		setKeys(e, false, false)
		step(e, 1.0/60)
	}

	if got := playerPaddle(t, e).Position; got != start {
		t.Fatalf("player paddle moved without input: %v -> %v", start, got)
	}
}

func TestEnemyPaddleDeadZone(t *testing.T) {
	tests := []struct {
		name  string
		ballY float64
		want  float64
	}{
		// paddle at y=200 has its center at 225
		{name: "inside upper edge", ballY: 235, want: 200},
		{name: "inside lower edge", ballY: 215, want: 200},
		{name: "center", ballY: 225, want: 200},
		{name: "below", ballY: 236, want: 200 + cfg.Paddle.Speed*0.01},
		{name: "above", ballY: 214, want: 200 - cfg.Paddle.Speed*0.01},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestCourt(t, 1)
			inProgress(e)
			enemyPaddle(t, e).Position.Y = 200
			ball(t, e).Position.Y = tc.ballY
			GetOrCreateFrame(e).Delta = 0.01

			UpdateEnemyPaddle(e)

			if got := enemyPaddle(t, e).Position.Y; !near(got, tc.want) {
				t.Fatalf("enemy y = %f, want %f", got, tc.want)
			}
		})
	}
}

func TestEnemyPaddleClamped(t *testing.T) {
	e := newTestCourt(t, 1)
	enemyPaddle(t, e).Position.Y = 1
	ball(t, e).Position.Y = 0
	GetOrCreateFrame(e).Delta = 0.1

	UpdateEnemyPaddle(e)

	if got := enemyPaddle(t, e).Position.Y; got != 0 {
		t.Fatalf("enemy y = %f, want clamped to 0", got)
	}
}
