package systems

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/types"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// stubTextures 每个图片ID返回固定句柄
type stubTextures struct{}

func (stubTextures) Texture(imageID string) (types.TextureHandle, error) {
	return types.TextureHandle(len(imageID)), nil
}

// square 以 (cx, cy) 为中心、边长 2*half 的正方形
func square(cx, cy, half float32) []config.Point {
	return []config.Point{
		{X: cx - half, Y: cy + half},
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
	}
}

// newTestLevel 装配关卡，mutate 可修改默认游戏配置
func newTestLevel(t *testing.T, def *config.LevelConfig, mutate func(*config.GameConfig)) (*config.GameConfig, *level.Level) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if def.Chapter == 0 {
		def.Chapter = 1
	}
	lvl, err := level.Assemble(ecs.NewEntityManager(), &cfg, def, stubTextures{})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	return &cfg, lvl
}

func ballOf(t *testing.T, lvl *level.Level, i int) (*components.BallComponent, *components.BodyComponent) {
	t.Helper()
	ball, ok := ecs.GetComponent[*components.BallComponent](lvl.EntityManager, lvl.Balls[i])
	if !ok {
		t.Fatalf("ball %d missing BallComponent", i)
	}
	body, _ := ecs.GetComponent[*components.BodyComponent](lvl.EntityManager, lvl.Balls[i])
	return ball, body
}

func visible(lvl *level.Level, id ecs.EntityID) bool {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](lvl.EntityManager, id)
	return ok && sprite.Visible
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func approxPt(a, b geom.Point) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}
