package main

import "testing"

func TestCacheKeyVariesByContentAndWidth(t *testing.T) {
	r := newMDRenderer()

	base := r.cacheKey("# hello", 80)
	if r.cacheKey("# hello", 80) != base {
		t.Error("same content and width produced different keys")
	}
	if r.cacheKey("# hello", 81) == base {
		t.Error("width change did not change the key")
	}
	if r.cacheKey("# goodbye", 80) == base {
		t.Error("content change did not change the key")
	}
	// The width must not collide with content bytes.
	if r.cacheKey("# hello\x00P", 0) == base {
		t.Error("width folded ambiguously into the key")
	}
}

func TestRenderFallsBackBelowMinWidth(t *testing.T) {
	r := newMDRenderer()
	if got := r.Render("# raw", 10); got != "# raw" {
		t.Errorf("narrow render = %q, want raw passthrough", got)
	}
	if got := r.Render("", 80); got != "" {
		t.Errorf("empty render = %q, want empty", got)
	}
}

func TestRenderCachesPerWidth(t *testing.T) {
	r := newMDRenderer()
	first := r.Render("# title", 60)
	if second := r.Render("# title", 60); second != first {
		t.Error("repeated render not served from cache")
	}
	if len(r.cache) != 1 {
		t.Errorf("cache entries = %d, want 1", len(r.cache))
	}
	r.Render("# title", 40)
	if len(r.cache) != 2 {
		t.Errorf("cache entries = %d, want one per width", len(r.cache))
	}
}
