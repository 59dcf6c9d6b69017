package components

import "github.com/gonewx/burgerball/pkg/geom"

// BodyComponent 所有关卡实体共享的形状组件：顶点 + 包围盒
//
// 顶点和包围盒只能通过 Translate 一起移动，保证碰撞检测用的包围盒
// 始终与实体当前位置一致。
type BodyComponent struct {
	Vertices []geom.Point // 多边形顶点（竞技场坐标）
	Bounds   geom.AABB    // 由顶点计算出的包围盒
}

// NewBodyComponent 复制顶点并计算包围盒
//
// 返回：
//   - error: 顶点为空时返回 geom.ErrInvalidGeometry
func NewBodyComponent(points []geom.Point) (*BodyComponent, error) {
	bounds, err := geom.ComputeAABB(points)
	if err != nil {
		return nil, err
	}
	vertices := make([]geom.Point, len(points))
	copy(vertices, points)
	return &BodyComponent{Vertices: vertices, Bounds: bounds}, nil
}

// Translate 平移顶点和包围盒
func (b *BodyComponent) Translate(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	geom.TranslatePoints(b.Vertices, dx, dy)
	b.Bounds = b.Bounds.Translate(dx, dy)
}

// MoveCenterTo 将包围盒中心移动到 p
func (b *BodyComponent) MoveCenterTo(p geom.Point) {
	d := p.Sub(b.Bounds.Center())
	b.Translate(d.X, d.Y)
}

// Center 包围盒中心（球的位置即为此值）
func (b *BodyComponent) Center() geom.Point {
	return b.Bounds.Center()
}

// SetVertices 整体替换顶点（仅用于不参与物理的界面元素，如旋转的速度箭头）
func (b *BodyComponent) SetVertices(points []geom.Point) error {
	bounds, err := geom.ComputeAABB(points)
	if err != nil {
		return err
	}
	b.Vertices = append(b.Vertices[:0], points...)
	b.Bounds = bounds
	return nil
}
