package geom

import (
	"errors"
	"testing"
)

// TestComputeAABB 测试包围盒计算
func TestComputeAABB(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   AABB
	}{
		{
			name:   "单点",
			points: []Point{{X: 3, Y: -2}},
			want:   AABB{MinX: 3, MaxX: 3, MinY: -2, MaxY: -2},
		},
		{
			name:   "矩形",
			points: RectQuad(10, 20, 30, 40),
			want:   AABB{MinX: 10, MaxX: 30, MinY: 20, MaxY: 40},
		},
		{
			name:   "负坐标三角形",
			points: []Point{{X: -5, Y: 1}, {X: 7, Y: -9}, {X: 0, Y: 12}},
			want:   AABB{MinX: -5, MaxX: 7, MinY: -9, MaxY: 12},
		},
		{
			name:   "大于旧实现初始值的坐标",
			points: []Point{{X: 400, Y: 500}, {X: 450, Y: 520}},
			want:   AABB{MinX: 400, MaxX: 450, MinY: 500, MaxY: 520},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeAABB(tt.points)
			if err != nil {
				t.Fatalf("ComputeAABB() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputeAABB(): got %+v, want %+v", got, tt.want)
			}
			if got.MinX > got.MaxX || got.MinY > got.MaxY {
				t.Errorf("bounds inverted: %+v", got)
			}
			for _, p := range tt.points {
				if !got.Contains(p) {
					t.Errorf("point %+v outside %+v", p, got)
				}
			}
		})
	}
}

// TestComputeAABBEmpty 空顶点集合返回 ErrInvalidGeometry
func TestComputeAABBEmpty(t *testing.T) {
	_, err := ComputeAABB(nil)
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("got %v, want ErrInvalidGeometry", err)
	}
}

// TestTranslateRoundTrip 平移后反向平移应回到原值
func TestTranslateRoundTrip(t *testing.T) {
	boxes := []AABB{
		{MinX: 0, MaxX: 16, MinY: 16, MaxY: 32},
		{MinX: -4.5, MaxX: 3.25, MinY: 100, MaxY: 140.5},
	}
	deltas := []Point{{X: 0, Y: 0}, {X: 1, Y: -1}, {X: 0.5, Y: 2.25}, {X: -12, Y: 7}}

	for _, box := range boxes {
		for _, d := range deltas {
			got := box.Translate(d.X, d.Y).Translate(-d.X, -d.Y)
			if got != box {
				t.Errorf("round trip of %+v by %+v: got %+v", box, d, got)
			}
		}
	}
}

// TestIntersectsSymmetric 重叠测试对称
func TestIntersectsSymmetric(t *testing.T) {
	boxes := []AABB{
		{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10},
		{MinX: 10, MaxX: 20, MinY: 0, MaxY: 10},
		{MinX: 5, MaxX: 6, MinY: 5, MaxY: 6},
		{MinX: 11, MaxX: 12, MinY: 11, MaxY: 12},
		{MinX: -3, MaxX: 1, MinY: 9, MaxY: 30},
	}
	for _, a := range boxes {
		for _, b := range boxes {
			if a.Intersects(b) != b.Intersects(a) {
				t.Errorf("Intersects not symmetric for %+v and %+v", a, b)
			}
		}
	}

	if !boxes[0].Intersects(boxes[1]) {
		t.Error("touching edges should intersect")
	}
	if boxes[0].Intersects(boxes[3]) {
		t.Error("disjoint boxes should not intersect")
	}
}

// TestPointReflect 测试反射
func TestPointReflect(t *testing.T) {
	v := Pt(3, -10)
	got := v.Reflect(Pt(0, 1))
	if got != Pt(3, 10) {
		t.Errorf("Reflect: got %+v, want (3, 10)", got)
	}
}

// TestCircleQuad 测试圆形外接正方形
func TestCircleQuad(t *testing.T) {
	box, err := ComputeAABB(CircleQuad(Pt(100, 24), 8))
	if err != nil {
		t.Fatalf("ComputeAABB() error = %v", err)
	}
	want := AABB{MinX: 92, MaxX: 108, MinY: 16, MaxY: 32}
	if box != want {
		t.Errorf("got %+v, want %+v", box, want)
	}
	if box.Center() != Pt(100, 24) {
		t.Errorf("Center: got %+v", box.Center())
	}
}
