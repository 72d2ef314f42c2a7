package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Manager reads game assets from a directory tree.
type Manager struct {
	fsys fs.FS
}

func NewManager(fsys fs.FS) *Manager {
	return &Manager{fsys: fsys}
}

// DecodeImage reads and decodes a PNG or JPEG file.
func (m *Manager) DecodeImage(name string) (image.Image, error) {
	fileData, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read image %q: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", name, err)
	}
	return img, nil
}

// LoadImage loads a required sprite into VRAM.
func (m *Manager) LoadImage(name string) (*ebiten.Image, error) {
	img, err := m.DecodeImage(name)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// DecodeSequence decodes every file in names, in order. Files that fail are
// logged and left out.
func (m *Manager) DecodeSequence(names []string) []image.Image {
	frames := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := m.DecodeImage(name)
		if err != nil {
			log.Printf("skipping frame: %v", err)
			continue
		}
		frames = append(frames, img)
	}
	return frames
}

// LoadSequence is DecodeSequence uploaded to VRAM. The result may be empty.
func (m *Manager) LoadSequence(names []string) []*ebiten.Image {
	decoded := m.DecodeSequence(names)
	frames := make([]*ebiten.Image, len(decoded))
	for i, img := range decoded {
		frames[i] = ebiten.NewImageFromImage(img)
	}
	return frames
}

// LoadFont parses a TrueType or OpenType font.
func (m *Manager) LoadFont(name string) (*text.GoTextFaceSource, error) {
	fileData, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", name, err)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", name, err)
	}
	return src, nil
}

// PortalFrameNames lists portal01.png .. portalNN.png.
func PortalFrameNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("portal%02d.png", i+1)
	}
	return names
}

// BackgroundNames lists background1.jpg .. backgroundN.jpg.
func BackgroundNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("background%d.jpg", i+1)
	}
	return names
}
