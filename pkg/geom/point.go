// Package geom 提供二维几何基础类型
//
// 包含点（向量）和轴对齐包围盒（AABB）两种值类型，以及物理系统需要的少量向量运算。
// 这个包不依赖任何其他业务包。
//
// 坐标系：竞技场坐标，原点在左下角，Y 轴向上（与渲染层的屏幕坐标相反）。
package geom

import "math"

// Point 二维点或向量（单精度）
type Point struct {
	X float32
	Y float32
}

// Pt 构造一个点
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add 向量加法
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub 向量减法
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale 标量乘法
func (p Point) Scale(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot 点积
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Len 向量长度
func (p Point) Len() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// IsZero 是否为零向量
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Reflect 以单位法线 n 反射向量 p
//
//	r = p - 2(p·n)n
func (p Point) Reflect(n Point) Point {
	d := 2 * p.Dot(n)
	return Point{X: p.X - d*n.X, Y: p.Y - d*n.Y}
}

// TranslatePoints 原地平移顶点集合
func TranslatePoints(points []Point, dx, dy float32) {
	for i := range points {
		points[i].X += dx
		points[i].Y += dy
	}
}

// CircleQuad 生成圆形实体使用的正方形顶点（左上、左下、右下、右上）
//
// 球、幽灵球、选择圈等圆形贴图都用一个外接正方形承载，
// 顶点顺序与渲染层的三角形索引约定一致。
func CircleQuad(center Point, radius float32) []Point {
	return []Point{
		{X: center.X - radius, Y: center.Y + radius},
		{X: center.X - radius, Y: center.Y - radius},
		{X: center.X + radius, Y: center.Y - radius},
		{X: center.X + radius, Y: center.Y + radius},
	}
}

// RectQuad 由左下角和右上角生成矩形顶点（左上、左下、右下、右上）
func RectQuad(minX, minY, maxX, maxY float32) []Point {
	return []Point{
		{X: minX, Y: maxY},
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
	}
}
