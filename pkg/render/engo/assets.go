// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/opd-ai/go-darts/pkg/logging"
)

const fontURL = "darts/gomono.ttf"

// AssetManager hands out the drawables used by the scene. Everything is
// generated in code, the only file is the embedded Go Mono font.
type AssetManager struct {
	font *common.Font
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{}
}

// Preload registers the font bytes with engo's file loader
func (am *AssetManager) Preload() error {
	if err := engo.Files.LoadReaderData(fontURL, bytes.NewReader(gomono.TTF)); err != nil {
		return logging.WrapError(err, "failed to preload font", "url", fontURL)
	}
	return nil
}

// LoadAssets builds the font atlas. It must run after Preload.
func (am *AssetManager) LoadAssets() error {
	font := &common.Font{
		URL:  fontURL,
		FG:   color.White,
		Size: 18,
	}
	if err := font.CreatePreloaded(); err != nil {
		return logging.WrapError(err, "failed to create font", "url", fontURL)
	}
	am.font = font
	return nil
}

// HasFont reports whether text can be drawn
func (am *AssetManager) HasFont() bool {
	return am.font != nil
}

// Text returns a text drawable, or nil when the font failed to load
func (am *AssetManager) Text(s string) common.Drawable {
	if am.font == nil {
		return nil
	}
	return common.Text{Font: am.font, Text: s}
}

// DartSprite is the dart body: a slim triangle pointing along +x
func (am *AssetManager) DartSprite() common.Drawable {
	return common.Triangle{
		TriangleType: common.TriangleIsosceles,
		BorderWidth:  1,
		BorderColor:  color.RGBA{40, 40, 40, 255},
	}
}

// BoardSprite is one target board
func (am *AssetManager) BoardSprite(ring color.Color) common.Drawable {
	return common.Circle{
		BorderWidth: 6,
		BorderColor: ring,
	}
}

// DotSprite is a trajectory preview dot
func (am *AssetManager) DotSprite() common.Drawable {
	return common.Circle{}
}

// BandSprite is the rubber band drawn while aiming
func (am *AssetManager) BandSprite() common.Drawable {
	return common.Rectangle{}
}

// FloorSprite is the line the dart lands on
func (am *AssetManager) FloorSprite() common.Drawable {
	return common.Rectangle{}
}
