package geom

import "errors"

// ErrInvalidGeometry 顶点集合为空，无法计算包围盒
var ErrInvalidGeometry = errors.New("invalid geometry: empty point set")

// AABB 轴对齐包围盒
//
// 不变量：MinX <= MaxX 且 MinY <= MaxY。
// 实体移动时通过 Translate 增量平移，不重新扫描顶点。
type AABB struct {
	MinX float32
	MaxX float32
	MinY float32
	MaxY float32
}

// ComputeAABB 扫描一次顶点集合，计算包围盒
//
// 参数：
//   - points: 多边形顶点集合
//
// 返回：
//   - AABB: 包含所有顶点的最小包围盒
//   - error: 顶点集合为空时返回 ErrInvalidGeometry
func ComputeAABB(points []Point) (AABB, error) {
	if len(points) == 0 {
		return AABB{}, ErrInvalidGeometry
	}

	box := AABB{
		MinX: points[0].X,
		MaxX: points[0].X,
		MinY: points[0].Y,
		MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		if p.X < box.MinX {
			box.MinX = p.X
		}
		if p.X > box.MaxX {
			box.MaxX = p.X
		}
		if p.Y < box.MinY {
			box.MinY = p.Y
		}
		if p.Y > box.MaxY {
			box.MaxY = p.Y
		}
	}
	return box, nil
}

// Translate 四条边同时平移 (dx, dy)，O(1)
func (b AABB) Translate(dx, dy float32) AABB {
	return AABB{
		MinX: b.MinX + dx,
		MaxX: b.MaxX + dx,
		MinY: b.MinY + dy,
		MaxY: b.MaxY + dy,
	}
}

// Intersects 重叠测试（边界接触也算重叠），用作宽相位过滤
func (b AABB) Intersects(o AABB) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Contains 点是否在包围盒内（含边界）
func (b AABB) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Center 包围盒中心
func (b AABB) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Width 宽度
func (b AABB) Width() float32 {
	return b.MaxX - b.MinX
}

// Height 高度
func (b AABB) Height() float32 {
	return b.MaxY - b.MinY
}
