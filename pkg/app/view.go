package app

import (
	"fmt"
	"math"
	"sort"

	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/game"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// view 竞技场坐标（y 向上）与屏幕坐标（y 向下）之间的换算
type view struct {
	arena config.ArenaConfig
	scale float32
}

func newView(arena config.ArenaConfig, scale float32) view {
	return view{arena: arena, scale: scale}
}

// screenSize 逻辑屏幕尺寸
func (v view) screenSize() (int, int) {
	return int(math.Ceil(float64(v.arena.Width * v.scale))),
		int(math.Ceil(float64(v.arena.Height * v.scale)))
}

// toScreen 竞技场坐标转屏幕坐标
func (v view) toScreen(p geom.Point) (float32, float32) {
	return p.X * v.scale, (v.arena.Height - p.Y) * v.scale
}

// toArena 屏幕像素转竞技场坐标
func (v view) toArena(x, y int) geom.Point {
	return geom.Pt(float32(x)/v.scale, v.arena.Height-float32(y)/v.scale)
}

// triangleFan 把凸多边形绘制记录转成以第一个顶点为中心的三角扇
//
// 贴图按包围盒拉伸：包围盒左上角对应贴图 (0, 0)。
// 少于 3 个顶点或包围盒退化时返回空。
func (v view) triangleFan(draw level.DrawRecord, texW, texH int) ([]ebiten.Vertex, []uint16) {
	n := len(draw.Vertices)
	w, h := draw.Bounds.Width(), draw.Bounds.Height()
	if n < 3 || w <= 0 || h <= 0 {
		return nil, nil
	}

	vertices := make([]ebiten.Vertex, n)
	for i, p := range draw.Vertices {
		dx, dy := v.toScreen(p)
		vertices[i] = ebiten.Vertex{
			DstX:   dx,
			DstY:   dy,
			SrcX:   (p.X - draw.Bounds.MinX) / w * float32(texW),
			SrcY:   (draw.Bounds.MaxY - p.Y) / h * float32(texH),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	indices := make([]uint16, 0, 3*(n-2))
	for i := 1; i+1 < n; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	return vertices, indices
}

// sortByLayer 按渲染层稳定排序，同层保持构建顺序
func sortByLayer(draws []level.DrawRecord) []level.DrawRecord {
	sorted := make([]level.DrawRecord, len(draws))
	copy(sorted, draws)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Layer < sorted[j].Layer
	})
	return sorted
}

// statusLine 屏幕左上角的文字，hasBest 时附带本关最高分
func statusLine(f game.Frame, best int, hasBest bool) string {
	line := fmt.Sprintf("%s  score %d  balls %d", f.LevelName, f.Score, f.BallsLeft)
	if hasBest {
		line += fmt.Sprintf("  best %d", best)
	}
	switch f.Outcome {
	case types.OutcomeSuccess:
		line += fmt.Sprintf("\nCLEAR! final %d  [N] next  [R] retry", f.FinalScore)
	case types.OutcomeFailure:
		line += "\nFAILED  [R] retry"
	}
	return line
}
