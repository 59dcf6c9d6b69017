package app

import (
	"strings"
	"testing"

	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/game"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/types"
)

func testView() view {
	return newView(config.ArenaConfig{Width: 200, Height: 300, BorderWidth: 6}, 2)
}

func TestScreenSize(t *testing.T) {
	w, h := testView().screenSize()
	if w != 400 || h != 600 {
		t.Errorf("screenSize: got %dx%d, want 400x600", w, h)
	}
}

// TestCoordinateRoundTrip 屏幕与竞技场坐标互转，y 轴翻转
func TestCoordinateRoundTrip(t *testing.T) {
	v := testView()
	tests := []struct {
		name   string
		sx, sy int
		want   geom.Point
	}{
		{"左上角", 0, 0, geom.Pt(0, 300)},
		{"左下角", 0, 600, geom.Pt(0, 0)},
		{"中心", 200, 300, geom.Pt(100, 150)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := v.toArena(tt.sx, tt.sy)
			if p != tt.want {
				t.Errorf("toArena(%d, %d): got %v, want %v", tt.sx, tt.sy, p, tt.want)
			}
			x, y := v.toScreen(p)
			if x != float32(tt.sx) || y != float32(tt.sy) {
				t.Errorf("toScreen(%v): got (%v, %v), want (%d, %d)", p, x, y, tt.sx, tt.sy)
			}
		})
	}
}

func TestTriangleFan(t *testing.T) {
	points := geom.RectQuad(10, 20, 30, 60)
	bounds, _ := geom.ComputeAABB(points)
	draw := level.DrawRecord{Vertices: points, Bounds: bounds}

	vertices, indices := testView().triangleFan(draw, 16, 16)
	if len(vertices) != 4 {
		t.Fatalf("vertices: got %d, want 4", len(vertices))
	}
	if len(indices) != 6 {
		t.Fatalf("indices: got %d, want 6", len(indices))
	}
	for i, vx := range vertices {
		if vx.SrcX < 0 || vx.SrcX > 16 || vx.SrcY < 0 || vx.SrcY > 16 {
			t.Errorf("vertex %d source (%v, %v) outside texture", i, vx.SrcX, vx.SrcY)
		}
		if vx.ColorA != 1 {
			t.Errorf("vertex %d alpha: got %v, want 1", i, vx.ColorA)
		}
	}

	// 退化的包围盒（隐藏的速度箭头）不绘制
	degenerate := level.DrawRecord{Vertices: []geom.Point{{}, {}, {}, {}}}
	if _, idx := testView().triangleFan(degenerate, 16, 16); len(idx) != 0 {
		t.Errorf("degenerate draw: got %d indices, want 0", len(idx))
	}
}

func TestSortByLayer(t *testing.T) {
	draws := []level.DrawRecord{
		{Layer: 3, Texture: 1},
		{Layer: 0, Texture: 2},
		{Layer: 3, Texture: 3},
		{Layer: 1, Texture: 4},
	}
	sorted := sortByLayer(draws)
	want := []types.TextureHandle{2, 4, 1, 3}
	for i, d := range sorted {
		if d.Texture != want[i] {
			t.Errorf("sorted[%d]: got texture %d, want %d", i, d.Texture, want[i])
		}
	}
	if draws[0].Texture != 1 {
		t.Error("sortByLayer must not reorder its input")
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name    string
		outcome types.Outcome
		want    string
	}{
		{"进行中", types.OutcomePlaying, "score 100"},
		{"过关", types.OutcomeSuccess, "final 150"},
		{"失败", types.OutcomeFailure, "FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := statusLine(game.Frame{LevelName: "1-1", Score: 100, FinalScore: 150, Outcome: tt.outcome}, 0, false)
			if !strings.Contains(line, tt.want) {
				t.Errorf("statusLine: got %q, want it to contain %q", line, tt.want)
			}
		})
	}

	if line := statusLine(game.Frame{LevelName: "1-1"}, 300, true); !strings.Contains(line, "best 300") {
		t.Errorf("statusLine with best: got %q", line)
	}
	if line := statusLine(game.Frame{LevelName: "1-1"}, 0, false); strings.Contains(line, "best") {
		t.Errorf("statusLine without best: got %q", line)
	}
}
