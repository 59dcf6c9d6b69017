// playfield 在终端里查看和试玩关卡
//
// 交互模式使用 tcell 绘制竞技场，方向键调整拖拽向量，空格发射；
// -headless 模式不打开终端界面，按固定速度发射每个球并打印结果，便于检查关卡数据。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/game"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

var (
	dataDir  = flag.String("data", ".", "目录，包含 data/game.yaml 和 data/levels/")
	levelID  = flag.String("level", "", "关卡ID（如 1-2），默认第一关")
	file     = flag.String("file", "", "headless 模式下模拟单个关卡文件（不必在关卡目录中）")
	headless = flag.Bool("headless", false, "不打开终端界面，直接模拟并打印结果")
	launch   = flag.String("launch", "0,5", "headless 模式下每个球的发射速度 \"vx,vy\"")
	maxTicks = flag.Int("ticks", 3000, "headless 模式下最多模拟的帧数")
	cols     = flag.Int("cols", 50, "headless 模式下输出的列数")
	rows     = flag.Int("rows", 40, "headless 模式下输出的行数")
	verbose  = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, catalog, err := loadData(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load data: %v\n", err)
		os.Exit(1)
	}

	campaign := game.NewCampaign(&cfg, catalog, game.NewResourceManager(), nil)
	if err := campaign.Start(*levelID); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start level: %v\n", err)
		os.Exit(1)
	}

	if *headless {
		v, err := parseVector(*launch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -launch: %v\n", err)
			os.Exit(2)
		}
		session, err := headlessSession(&cfg, campaign, *file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
			os.Exit(1)
		}
		result := simulate(session, v, *maxTicks)
		printResult(os.Stdout, result, cfg.Arena, *cols, *rows)
		if result.Frame.Outcome != types.OutcomeSuccess {
			os.Exit(1)
		}
		return
	}

	viewer, err := newViewer(&cfg, campaign)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()
	viewer.run()
}

// loadData 从目录加载游戏配置和关卡目录
func loadData(dir string) (config.GameConfig, *config.LevelCatalog, error) {
	cfg, err := config.LoadGameConfig(filepath.Join(dir, "data", "game.yaml"))
	if err != nil {
		return config.GameConfig{}, nil, err
	}
	catalog, err := config.LoadLevelCatalog(os.DirFS(dir), "data/levels")
	if err != nil {
		return config.GameConfig{}, nil, err
	}
	return cfg, catalog, nil
}

// parseVector 解析 "x,y"
func parseVector(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("want \"x,y\", got %q", s)
	}
	var xy [2]float32
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return geom.Point{}, fmt.Errorf("coordinate %d: %w", i, err)
		}
		xy[i] = float32(v)
	}
	return geom.Pt(xy[0], xy[1]), nil
}

// headlessSession 指定了关卡文件时单独装配该关卡，否则使用战役当前关卡
func headlessSession(cfg *config.GameConfig, campaign *game.Campaign, file string) (*game.Session, error) {
	if file == "" {
		return campaign.Session()
	}
	def, err := config.LoadLevelConfig(file)
	if err != nil {
		return nil, err
	}
	return game.NewSession(cfg, def, game.NewResourceManager())
}

// result headless 模拟结果
type result struct {
	Frame    game.Frame
	Launches int
}

// simulate 每当有球待发射时以速度 v 发射，直到结局确定或达到帧数上限
func simulate(session *game.Session, v geom.Point, maxTicks int) result {
	launches := 0
	for session.Ticks() < maxTicks && session.Outcome() == types.OutcomePlaying {
		if _, ok := session.Level().ReadyBall(); ok {
			if err := session.LaunchWithVelocity(v); err == nil {
				launches++
			}
		}
		session.Tick()
	}
	return result{Frame: session.Frame(), Launches: launches}
}

// printResult 打印结局和最后一帧的竞技场
func printResult(w io.Writer, r result, arena config.ArenaConfig, cols, rows int) {
	f := r.Frame
	fmt.Fprintf(w, "level %s (%s)\n", f.LevelID, f.LevelName)
	fmt.Fprintf(w, "outcome %v after %d ticks, %d launches\n", f.Outcome, f.Tick, r.Launches)
	fmt.Fprintf(w, "score %d, final score %d, balls left %d\n", f.Score, f.FinalScore, f.BallsLeft)
	for _, line := range rasterize(f, arena, cols, rows).lines() {
		fmt.Fprintln(w, line)
	}
}
