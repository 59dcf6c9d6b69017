package main

import (
	"sort"

	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/game"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/types"
)

// 每种实体在终端里的字符
const (
	glyphEmpty    = ' '
	glyphBorder   = '#'
	glyphObstacle = '='
	glyphRound    = 'O'
	glyphMover    = '~'
	glyphTarget   = '@'
	glyphBall     = 'o'
	glyphGhost    = '.'
	glyphArrow    = '+'
)

// grid 竞技场按终端字符格栅格化的结果，rows[0] 是竞技场顶部
type grid struct {
	cols, rows int
	cells      [][]rune
	kinds      [][]types.EntityKind
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows}
	g.cells = make([][]rune, rows)
	g.kinds = make([][]types.EntityKind, rows)
	for r := range g.cells {
		g.cells[r] = make([]rune, cols)
		g.kinds[r] = make([]types.EntityKind, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = glyphEmpty
		}
	}
	return g
}

// rasterizer 竞技场坐标到字符格的映射
type rasterizer struct {
	arena      config.ArenaConfig
	cols, rows int
}

// cell 竞技场坐标所在的字符格，超出范围时 ok 为 false
func (rz rasterizer) cell(p geom.Point) (col, row int, ok bool) {
	col = int(p.X / rz.arena.Width * float32(rz.cols))
	row = int((rz.arena.Height - p.Y) / rz.arena.Height * float32(rz.rows))
	if col == rz.cols && p.X == rz.arena.Width {
		col--
	}
	if row == rz.rows && p.Y == 0 {
		row--
	}
	ok = col >= 0 && col < rz.cols && row >= 0 && row < rz.rows
	return col, row, ok
}

// center 字符格中心的竞技场坐标
func (rz rasterizer) center(col, row int) geom.Point {
	return geom.Pt(
		(float32(col)+0.5)/float32(rz.cols)*rz.arena.Width,
		rz.arena.Height-(float32(row)+0.5)/float32(rz.rows)*rz.arena.Height,
	)
}

// rasterize 把一帧画到字符格上
//
// 按渲染层从低到高绘制，后画的覆盖先画的。记分牌和横幅只在状态栏显示，这里跳过。
func rasterize(f game.Frame, arena config.ArenaConfig, cols, rows int) *grid {
	g := newGrid(cols, rows)
	rz := rasterizer{arena: arena, cols: cols, rows: rows}

	draws := make([]level.DrawRecord, len(f.Draws))
	copy(draws, f.Draws)
	sort.SliceStable(draws, func(i, j int) bool { return draws[i].Layer < draws[j].Layer })

	for _, d := range draws {
		if !d.Visible {
			continue
		}
		switch d.Kind {
		case types.KindBorder:
			fillBox(g, rz, d, glyphBorder)
		case types.KindObstacle, types.KindMovingObstacle:
			glyph := glyphObstacle
			if d.Kind == types.KindMovingObstacle {
				glyph = glyphMover
			}
			if d.Shape == types.ShapeBall {
				glyph = glyphRound
			}
			fillBox(g, rz, d, glyph)
		case types.KindTarget:
			plot(g, rz, d.Bounds.Center(), glyphTarget, d.Kind)
		case types.KindBall:
			plot(g, rz, d.Bounds.Center(), glyphBall, d.Kind)
		case types.KindDecoration:
			switch d.Role {
			case types.HUDGhostBall:
				plot(g, rz, d.Bounds.Center(), glyphGhost, d.Kind)
			case types.HUDVelocityArrow:
				drawArrow(g, rz, d)
			}
		}
	}
	return g
}

// fillBox 填充包围盒内中心落在盒里的字符格
func fillBox(g *grid, rz rasterizer, d level.DrawRecord, glyph rune) {
	minCol, minRow, _ := rz.cell(geom.Pt(d.Bounds.MinX, d.Bounds.MaxY))
	maxCol, maxRow, _ := rz.cell(geom.Pt(d.Bounds.MaxX, d.Bounds.MinY))
	filled := false
	for row := max(minRow, 0); row <= min(maxRow, rz.rows-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, rz.cols-1); col++ {
			if d.Bounds.Contains(rz.center(col, row)) {
				g.cells[row][col] = glyph
				g.kinds[row][col] = d.Kind
				filled = true
			}
		}
	}
	// 比字符格还小的物体至少占一格
	if !filled {
		plot(g, rz, d.Bounds.Center(), glyph, d.Kind)
	}
}

func plot(g *grid, rz rasterizer, p geom.Point, glyph rune, kind types.EntityKind) {
	if col, row, ok := rz.cell(p); ok {
		g.cells[row][col] = glyph
		g.kinds[row][col] = kind
	}
}

// drawArrow 沿箭头中线（底边中点到顶边中点）画点
func drawArrow(g *grid, rz rasterizer, d level.DrawRecord) {
	if len(d.Vertices) != 4 || d.Bounds.Width() == 0 {
		return
	}
	base := d.Vertices[1].Add(d.Vertices[2]).Scale(0.5)
	tip := d.Vertices[0].Add(d.Vertices[3]).Scale(0.5)
	const steps = 16
	for i := 1; i <= steps; i++ {
		p := base.Add(tip.Sub(base).Scale(float32(i) / steps))
		plot(g, rz, p, glyphArrow, types.KindDecoration)
	}
}

// lines 每行一个字符串
func (g *grid) lines() []string {
	out := make([]string, g.rows)
	for r, row := range g.cells {
		out[r] = string(row)
	}
	return out
}
