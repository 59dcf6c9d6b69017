package types

import "testing"

func TestParseObstacleShape(t *testing.T) {
	tests := []struct {
		in      string
		want    ObstacleShape
		wantErr bool
	}{
		{"", ShapePolygon, false},
		{"polygon", ShapePolygon, false},
		{"ball", ShapeBall, false},
		{"circle", ShapePolygon, true},
	}
	for _, tt := range tests {
		got, err := ParseObstacleShape(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseObstacleShape(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseObstacleShape(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePathMode(t *testing.T) {
	if m, err := ParsePathMode("bounce"); err != nil || m != PathBounce {
		t.Errorf("bounce: got %v, %v", m, err)
	}
	if m, err := ParsePathMode(""); err != nil || m != PathLoop {
		t.Errorf("empty: got %v, %v", m, err)
	}
	if _, err := ParsePathMode("pingpong"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestBallStateRemaining(t *testing.T) {
	remaining := map[BallState]bool{
		BallWaiting:  true,
		BallReady:    true,
		BallInFlight: true,
		BallSettled:  false,
		BallConsumed: false,
	}
	for state, want := range remaining {
		if got := state.Remaining(); got != want {
			t.Errorf("%v.Remaining(): got %v, want %v", state, got, want)
		}
	}
}

func TestEntityKindIsSolid(t *testing.T) {
	for _, k := range []EntityKind{KindBorder, KindObstacle, KindMovingObstacle} {
		if !k.IsSolid() {
			t.Errorf("%v should be solid", k)
		}
	}
	for _, k := range []EntityKind{KindTarget, KindBall, KindDecoration, KindUnknown} {
		if k.IsSolid() {
			t.Errorf("%v should not be solid", k)
		}
	}
}
