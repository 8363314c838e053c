package ui

import (
	"caneat/asset"
	"caneat/config"
	"caneat/game"
	"caneat/ui/scene"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	backgroundColor = rl.NewColor(0x46, 0x9C, 0x15, 255)
	foodColor       = rl.NewColor(0xFF, 0xFA, 0xEB, 255)
	headColor       = rl.NewColor(0x7A, 0xC3, 0x46, 255)
	bodyColor       = rl.NewColor(0x90, 0xCD, 0x65, 255)
	letterbox       = rl.Black
)

const (
	borderPadding = 10
	minFontSize   = 12
)

// textureSlot holds the texture for one sprite kind and the reference it was
// requested from. Results for any other reference are stale.
type textureSlot struct {
	ref    string
	tex    rl.Texture2D
	loaded bool
}

type Renderer struct {
	loader *asset.Loader
	logger *log.Logger
	slots  map[scene.Kind]*textureSlot
}

func NewRenderer(loader *asset.Loader, logger *log.Logger) *Renderer {
	return &Renderer{
		loader: loader,
		logger: logger,
		slots: map[scene.Kind]*textureSlot{
			scene.Background: {},
			scene.Food:       {},
			scene.Head:       {},
			scene.Body:       {},
		},
	}
}

func refFor(cfg config.GameConfig, k scene.Kind) string {
	switch k {
	case scene.Background:
		return cfg.BackgroundImageURL
	case scene.Food:
		return cfg.GrainImageURL
	case scene.Head:
		return cfg.HeadImageURL
	case scene.Body:
		return cfg.BodyImageURL
	default:
		return ""
	}
}

// Apply requests every image whose reference changed. The old texture is
// dropped at once, so the fallback shows until the new one arrives.
func (r *Renderer) Apply(cfg config.GameConfig) {
	for kind, slot := range r.slots {
		ref := refFor(cfg, kind)
		if ref == slot.ref {
			continue
		}
		r.unload(slot)
		slot.ref = ref
		if ref != "" {
			r.loader.Request(kind.String(), ref)
		}
	}
}

// Accept uploads a finished fetch. It reports false for results that are not
// images, are stale, or failed to decode.
func (r *Renderer) Accept(res asset.Result) bool {
	kind, ok := kindFor(res.Key)
	if !ok {
		return false
	}
	slot := r.slots[kind]
	if res.Ref != slot.ref || res.Err != nil || len(res.Data) == 0 {
		return false
	}

	img := rl.LoadImageFromMemory(asset.Ext(res.Ref), res.Data, int32(len(res.Data)))
	if img == nil || img.Width == 0 || img.Height == 0 {
		r.logger.Warn("Image decode failed, keeping fallback", "asset", res.Key, "ref", res.Ref)
		return false
	}
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if tex.ID == 0 {
		r.logger.Warn("Texture upload failed, keeping fallback", "asset", res.Key)
		return false
	}

	r.unload(slot)
	slot.tex = tex
	slot.loaded = true
	r.logger.Debug("Texture ready", "asset", res.Key, "width", tex.Width, "height", tex.Height)
	return true
}

func kindFor(key string) (scene.Kind, bool) {
	for _, k := range []scene.Kind{scene.Background, scene.Food, scene.Head, scene.Body} {
		if k.String() == key {
			return k, true
		}
	}
	return 0, false
}

func (r *Renderer) ready() scene.Ready {
	return scene.Ready{
		Background: r.slots[scene.Background].loaded,
		Food:       r.slots[scene.Food].loaded,
		Head:       r.slots[scene.Head].loaded,
		Body:       r.slots[scene.Body].loaded,
	}
}

// Draw renders one frame: board sprites in order, then the HUD.
func (r *Renderer) Draw(snap game.Snapshot, hud scene.HUD) {
	rl.BeginDrawing()
	rl.ClearBackground(letterbox)

	sc := scene.Build(snap, rl.GetScreenWidth(), rl.GetScreenHeight(), r.ready())
	for _, s := range sc.Sprites {
		r.drawSprite(sc, s)
	}
	r.drawHUD(sc, hud)

	rl.EndDrawing()
}

func (r *Renderer) drawSprite(sc scene.Scene, s scene.Sprite) {
	dest := rl.NewRectangle(s.X, s.Y, s.W, s.H)
	origin := rl.Vector2{X: s.W / 2, Y: s.H / 2}

	if !s.Fallback {
		tex := r.slots[s.Kind].tex
		src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		rl.DrawTexturePro(tex, src, dest, origin, s.Rotation, rl.White)
		return
	}

	switch s.Kind {
	case scene.Background:
		rl.DrawRectanglePro(dest, origin, 0, backgroundColor)
	case scene.Food:
		rl.DrawCircleV(rl.Vector2{X: s.X, Y: s.Y}, sc.FoodRadius(), foodColor)
	case scene.Head:
		rl.DrawRectanglePro(dest, origin, s.Rotation, headColor)
	case scene.Body:
		rl.DrawRectanglePro(dest, origin, s.Rotation, bodyColor)
	}
}

func (r *Renderer) drawHUD(sc scene.Scene, hud scene.HUD) {
	fontSize := max(int32(sc.Surface/25), minFontSize)
	x := int32(sc.OriginX) + borderPadding
	y := int32(sc.OriginY) + borderPadding

	rl.DrawText(hud.Header, x, y, fontSize, rl.White)

	if hud.Prompt != "" {
		promptSize := fontSize + fontSize/2
		w := rl.MeasureText(hud.Prompt, promptSize)
		px := int32(sc.OriginX+sc.Surface/2) - w/2
		py := int32(sc.OriginY+sc.Surface/2) - promptSize/2
		rl.DrawRectangle(int32(sc.OriginX), py-borderPadding, int32(sc.Surface), promptSize+2*borderPadding, rl.Fade(rl.Black, 0.6))
		rl.DrawText(hud.Prompt, px, py, promptSize, rl.Yellow)
	}

	small := max(fontSize*2/3, minFontSize)
	rl.DrawText(hud.Footer, x, int32(sc.OriginY+sc.Surface)-small-borderPadding, small, rl.Fade(rl.White, 0.8))
}

func (r *Renderer) unload(slot *textureSlot) {
	if slot.loaded {
		rl.UnloadTexture(slot.tex)
	}
	slot.tex = rl.Texture2D{}
	slot.loaded = false
}

// Unload releases every texture. Call before closing the window.
func (r *Renderer) Unload() {
	for _, slot := range r.slots {
		r.unload(slot)
	}
}
