// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package assets finds shader sources and images for the demos in one
// or more packd sources, such as a packr box or a kar archive.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"

	// registered image formats
	_ "image/jpeg"
	_ "image/png"

	"github.com/gobuffalo/packd"
	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrNotFound is returned when no source holds a requested asset
var ErrNotFound = errors.New("asset not found")

// NewLoader creates a loader searching sources in the given order
func NewLoader(sources ...packd.Finder) *Loader {
	return &Loader{
		sources: sources,
		images:  make(map[string]image.Image),
	}
}

// Loader reads assets from its sources and keeps decoded images.
// It is safe for concurrent use.
type Loader struct {
	sources []packd.Finder

	// MaxImageSize downscales decoded images whose larger side
	// exceeds it, zero keeps every image as it is
	MaxImageSize int

	mu     sync.Mutex
	images map[string]image.Image
}

// Bytes returns the contents of the named asset from the first source
// that has it.
func (l *Loader) Bytes(name string) ([]byte, error) {
	for _, src := range l.sources {
		if h, ok := src.(packd.Haser); ok && !h.Has(name) {
			continue
		}
		b, err := src.Find(name)
		if err != nil {
			continue
		}
		return b, nil
	}
	return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
}

// String returns the named asset as a string, as used for shaders
func (l *Loader) String(name string) (string, error) {
	b, err := l.Bytes(name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// List returns the names of all assets of sources that can list them
func (l *Loader) List() []string {
	seen := make(map[string]bool)
	var names []string
	for _, src := range l.sources {
		lister, ok := src.(packd.Lister)
		if !ok {
			continue
		}
		for _, name := range lister.List() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Image decodes the named image, or returns it from the cache
// if it was decoded before.
func (l *Loader) Image(name string) (image.Image, error) {
	l.mu.Lock()
	img, ok := l.images[name]
	l.mu.Unlock()
	if ok {
		return img, nil
	}

	img, err := l.decode(name)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.images[name] = img
	l.mu.Unlock()
	return img, nil
}

func (l *Loader) decode(name string) (image.Image, error) {
	b, err := l.Bytes(name)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("image.Decode(%s): %w", name, err)
	}

	size := img.Bounds().Size()
	if l.MaxImageSize > 0 && (size.X > l.MaxImageSize || size.Y > l.MaxImageSize) {
		img = downscale(img, l.MaxImageSize)
		log.WithFields(log.Fields{
			"image": name,
			"from":  size,
			"to":    img.Bounds().Size(),
		}).Debug("Downscaled oversized image")
	}
	log.WithFields(log.Fields{"image": name, "format": format}).Debug("Decoded image")
	return img, nil
}

// downscale fits img into a limit x limit square keeping its aspect ratio
func downscale(img image.Image, limit int) image.Image {
	size := img.Bounds().Size()
	w, h := limit, limit
	if size.X > size.Y {
		h = size.Y * limit / size.X
	} else {
		w = size.X * limit / size.Y
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Preload decodes the named images concurrently so that mounting a
// demo does not stall on decoding. The first error is returned after
// every decode has finished.
func (l *Loader) Preload(names ...string) error {
	var (
		wg   sync.WaitGroup
		errs = make([]error, len(names))
	)
	for idx, name := range names {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()
			_, errs[idx] = l.Image(name)
		}(idx, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
