package sdl2

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/pennyengine/penny/pkg/penny/constants"
	"github.com/pennyengine/penny/pkg/penny/internal/icons"
	"github.com/pennyengine/penny/pkg/penny/ui"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// PointerSource reports the last known pointer position.
type PointerSource interface {
	Pointer() ui.Vec2
}

type SurfaceOptions struct {
	FontPath        string
	SpriteSheetPath string
}

// Surface draws the UI with the SDL renderer. It implements ui.Surface and
// input.Cursor. Missing assets are logged once and drawing degrades to flat
// colors without text.
type Surface struct {
	window   *Window
	renderer *sdl.Renderer
	pointer  PointerSource
	log      *slog.Logger

	fontPath string
	fonts    map[int]*ttf.Font
	noFont   bool
	sheet    *sdl.Texture

	text    *textureCache[*sdl.Texture]
	icons   *textureCache[*sdl.Texture]
	badIcon map[string]bool
}

func NewSurface(w *Window, pointer PointerSource, opts SurfaceOptions, log *slog.Logger) *Surface {
	s := &Surface{
		window:   w,
		renderer: w.Renderer(),
		pointer:  pointer,
		log:      log,
		fontPath: opts.FontPath,
		fonts:    map[int]*ttf.Font{},
		text:     newTextureCache[*sdl.Texture](textCacheSize),
		icons:    newTextureCache[*sdl.Texture](iconCacheSize),
		badIcon:  map[string]bool{},
	}

	if opts.FontPath == "" {
		log.Warn("No font configured; text will not be drawn")
		s.noFont = true
	} else if s.font(constants.DefaultFontSize) == nil {
		s.noFont = true
	}

	if opts.SpriteSheetPath != "" {
		sheet, err := img.LoadTexture(s.renderer, opts.SpriteSheetPath)
		if err != nil {
			log.Error("Failed to load sprite sheet", "path", opts.SpriteSheetPath, "error", err)
		} else {
			s.sheet = sheet
		}
	}

	return s
}

func (s *Surface) Resolution() (int, int) {
	w, h := s.window.RenderSize()
	return int(w), int(h)
}

func (s *Surface) PointerPosition() ui.Vec2 {
	if s.pointer == nil {
		return ui.Vec2{}
	}
	return s.pointer.Pointer()
}

func (s *Surface) SetCursorVisible(visible bool) {
	toggle := sdl.DISABLE
	if visible {
		toggle = sdl.ENABLE
	}
	if _, err := sdl.ShowCursor(toggle); err != nil {
		s.log.Warn("Failed to change cursor visibility", "visible", visible, "error", err)
	}
}

// Clear fills the frame with c.
func (s *Surface) Clear(c ui.Color) {
	s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	s.renderer.Clear()
}

func (s *Surface) Present() {
	s.window.Present()
}

func (s *Surface) FillRect(r ui.Rect, c ui.Color) {
	if c.A == 0 {
		return
	}
	rect := toSDLRect(r)
	s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	s.renderer.FillRect(&rect)
}

func (s *Surface) StrokeRect(r ui.Rect, c ui.Color, thickness float32) {
	if c.A == 0 {
		return
	}
	rects := strokeRects(toSDLRect(r), int32(math.Round(float64(thickness))))
	if len(rects) == 0 {
		return
	}
	s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	s.renderer.FillRects(rects)
}

func (s *Surface) DrawText(text string, at ui.Vec2, size float32, c ui.Color, align constants.TextAlign) {
	if text == "" || c.A == 0 {
		return
	}
	px := fontPixels(size)
	tex, w, h := s.textTexture(text, px)
	if tex == nil {
		return
	}

	tex.SetColorMod(c.R, c.G, c.B)
	tex.SetAlphaMod(c.A)
	dst := sdl.Rect{
		X: alignX(align, int32(math.Round(float64(at.X))), w),
		Y: int32(math.Round(float64(at.Y))) - h/2,
		W: w,
		H: h,
	}
	s.renderer.Copy(tex, nil, &dst)
}

func (s *Surface) MeasureText(text string, size float32) ui.Vec2 {
	f := s.font(fontPixels(size))
	if f == nil {
		return ui.Vec2{Y: size}
	}
	if text == "" {
		return ui.Vec2{Y: float32(f.Height())}
	}
	w, h, err := f.SizeUTF8(text)
	if err != nil {
		return ui.Vec2{Y: size}
	}
	return ui.Vec2{X: float32(w), Y: float32(h)}
}

func (s *Surface) DrawIcon(name string, r ui.Rect, c ui.Color) bool {
	rect := toSDLRect(r)
	if rect.W <= 0 || rect.H <= 0 || s.badIcon[name] {
		return false
	}

	key := fmt.Sprintf("%s@%dx%d", name, rect.W, rect.H)
	tex, ok := s.icons.Get(key)
	if !ok {
		var err error
		tex, err = s.iconTexture(name, rect.W, rect.H)
		if err != nil {
			s.log.Warn("Icon unavailable", "icon", name, "error", err)
			s.badIcon[name] = true
			return false
		}
		s.icons.Set(key, tex)
	}

	tex.SetColorMod(c.R, c.G, c.B)
	tex.SetAlphaMod(c.A)
	s.renderer.Copy(tex, nil, &rect)
	return true
}

func (s *Surface) DrawSprite(src, dst ui.Rect) bool {
	if s.sheet == nil {
		return false
	}
	from, to := toSDLRect(src), toSDLRect(dst)
	return s.renderer.Copy(s.sheet, &from, &to) == nil
}

// Close releases fonts, cached textures and the sprite sheet.
func (s *Surface) Close() {
	s.text.Destroy()
	s.icons.Destroy()
	for _, f := range s.fonts {
		f.Close()
	}
	s.fonts = map[int]*ttf.Font{}
	if s.sheet != nil {
		s.sheet.Destroy()
		s.sheet = nil
	}
}

func (s *Surface) font(px int) *ttf.Font {
	if s.noFont {
		return nil
	}
	if f, ok := s.fonts[px]; ok {
		return f
	}
	f, err := ttf.OpenFont(s.fontPath, px)
	if err != nil {
		s.log.Error("Failed to load font", "path", s.fontPath, "size", px, "error", err)
		s.noFont = true
		return nil
	}
	s.fonts[px] = f
	return f
}

func (s *Surface) textTexture(text string, px int) (*sdl.Texture, int32, int32) {
	key := fmt.Sprintf("%d|%s", px, text)
	if tex, ok := s.text.Get(key); ok {
		_, _, w, h, err := tex.Query()
		if err == nil {
			return tex, w, h
		}
	}

	f := s.font(px)
	if f == nil {
		return nil, 0, 0
	}
	// Rendered white so the color mod can tint it.
	surf, err := f.RenderUTF8Blended(text, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		s.log.Warn("Failed to render text", "text", text, "error", err)
		return nil, 0, 0
	}
	defer surf.Free()

	tex, err := s.renderer.CreateTextureFromSurface(surf)
	if err != nil {
		s.log.Warn("Failed to create text texture", "error", err)
		return nil, 0, 0
	}
	s.text.Set(key, tex)
	return tex, surf.W, surf.H
}

func (s *Surface) iconTexture(name string, w, h int32) (*sdl.Texture, error) {
	rgba, err := icons.Rasterize(name, int(w), int(h))
	if err != nil {
		return nil, err
	}

	surf, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surf.Free()

	pixels := surf.Pixels()
	rowBytes := int(w) * 4
	for y := 0; y < int(h); y++ {
		copy(pixels[y*int(surf.Pitch):y*int(surf.Pitch)+rowBytes], rgba.Pix[y*rgba.Stride:y*rgba.Stride+rowBytes])
	}

	tex, err := s.renderer.CreateTextureFromSurface(surf)
	if err != nil {
		return nil, err
	}
	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		s.log.Debug("Icon texture without blending", "icon", name, "error", err)
	}
	return tex, nil
}

func fontPixels(size float32) int {
	return max(1, int(math.Round(float64(size))))
}

func toSDLRect(r ui.Rect) sdl.Rect {
	x, y := math.Round(float64(r.X)), math.Round(float64(r.Y))
	return sdl.Rect{
		X: int32(x),
		Y: int32(y),
		W: int32(math.Round(float64(r.X+r.W)) - x),
		H: int32(math.Round(float64(r.Y+r.H)) - y),
	}
}

// strokeRects splits an outline of width t drawn inside r into four bars.
func strokeRects(r sdl.Rect, t int32) []sdl.Rect {
	if t <= 0 || r.W <= 0 || r.H <= 0 {
		return nil
	}
	if 2*t >= r.W || 2*t >= r.H {
		return []sdl.Rect{r}
	}
	return []sdl.Rect{
		{X: r.X, Y: r.Y, W: r.W, H: t},
		{X: r.X, Y: r.Y + r.H - t, W: r.W, H: t},
		{X: r.X, Y: r.Y + t, W: t, H: r.H - 2*t},
		{X: r.X + r.W - t, Y: r.Y + t, W: t, H: r.H - 2*t},
	}
}

func alignX(align constants.TextAlign, x, w int32) int32 {
	switch align {
	case constants.TextAlignCenter:
		return x - w/2
	case constants.TextAlignRight:
		return x - w
	default:
		return x
	}
}
