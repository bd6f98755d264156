package main

import (
	"log"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/glamour"
)

// maxCacheEntries bounds the markdown render cache.
const maxCacheEntries = 64

// mdRenderer wraps glamour with a width-aware render cache so re-renders
// while the sheet animates stay cheap.
type mdRenderer struct {
	mu        sync.Mutex
	renderer  *glamour.TermRenderer
	lastWidth int
	cache     map[uint64]string
}

func newMDRenderer() *mdRenderer {
	return &mdRenderer{cache: make(map[uint64]string)}
}

// Render renders markdown to a styled string at the given width, falling
// back to the raw text when glamour fails.
func (r *mdRenderer) Render(content string, width int) string {
	if width < 20 || content == "" {
		return content
	}

	key := r.cacheKey(content, width)

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := r.getOrCreate(width)
	if err != nil {
		log.Printf("glamour renderer error: %v", err)
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		log.Printf("glamour render error: %v", err)
		return content
	}
	rendered = strings.TrimRight(rendered, "\n")

	if len(r.cache) >= maxCacheEntries {
		r.cache = make(map[uint64]string)
	}
	r.cache[key] = rendered
	return rendered
}

func (r *mdRenderer) getOrCreate(width int) (*glamour.TermRenderer, error) {
	if r.renderer != nil && r.lastWidth == width {
		return r.renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.renderer = renderer
	r.lastWidth = width
	return renderer, nil
}

func (r *mdRenderer) cacheKey(content string, width int) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(content)
	_, _ = h.Write([]byte{0, byte(width), byte(width >> 8)})
	return h.Sum64()
}
