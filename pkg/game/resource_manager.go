package game

import (
	"fmt"
	"hash/fnv"
	"image/color"

	"github.com/gonewx/burgerball/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// placeholderSize 占位贴图边长（像素），绘制时由三角形顶点拉伸
const placeholderSize = 16

// ResourceManager maps image IDs to opaque texture handles and owns the
// ebiten images behind them.
//
// Handles are handed out in request order starting from 1, so the same
// sequence of Texture calls always yields the same handles. Images are
// created lazily on first Image call, which keeps handle allocation usable
// before the ebiten game loop has started (tests, headless tools).
//
// Level art is not packaged with the game: every image ID resolves to a
// solid placeholder whose colour is derived from the ID.
//
// Not thread-safe; use it from the game loop goroutine only.
type ResourceManager struct {
	handles map[string]types.TextureHandle
	ids     []string // ids[h-1] is the image ID of handle h
	images  map[types.TextureHandle]*ebiten.Image
}

// NewResourceManager creates an empty ResourceManager.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		handles: make(map[string]types.TextureHandle),
		images:  make(map[types.TextureHandle]*ebiten.Image),
	}
}

// Texture returns the handle for imageID, allocating one on first use.
//
// Returns an error for an empty image ID.
func (rm *ResourceManager) Texture(imageID string) (types.TextureHandle, error) {
	if imageID == "" {
		return 0, fmt.Errorf("empty image ID")
	}
	if h, ok := rm.handles[imageID]; ok {
		return h, nil
	}
	rm.ids = append(rm.ids, imageID)
	h := types.TextureHandle(len(rm.ids))
	rm.handles[imageID] = h
	return h, nil
}

// ImageID returns the image ID a handle was allocated for.
func (rm *ResourceManager) ImageID(h types.TextureHandle) (string, bool) {
	if h == 0 || int(h) > len(rm.ids) {
		return "", false
	}
	return rm.ids[h-1], true
}

// Color returns the placeholder colour of a handle.
func (rm *ResourceManager) Color(h types.TextureHandle) color.RGBA {
	id, ok := rm.ImageID(h)
	if !ok {
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	return PlaceholderColor(id)
}

// Image returns the ebiten image for a handle, creating it on first use.
// Unknown handles return nil.
func (rm *ResourceManager) Image(h types.TextureHandle) *ebiten.Image {
	if img, ok := rm.images[h]; ok {
		return img
	}
	if _, ok := rm.ImageID(h); !ok {
		return nil
	}
	img := ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(rm.Color(h))
	rm.images[h] = img
	return img
}

// PlaceholderColor derives a stable, fully opaque colour from an image ID.
func PlaceholderColor(imageID string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(imageID))
	sum := h.Sum32()
	// 保持足够亮度，避免与黑色背景混在一起
	return color.RGBA{
		R: uint8(sum>>16) | 0x40,
		G: uint8(sum>>8) | 0x40,
		B: uint8(sum) | 0x40,
		A: 255,
	}
}
