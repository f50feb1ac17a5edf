package navigation

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultScrollThreshold is the offset past which the bar counts as scrolled.
	DefaultScrollThreshold = 50
	// DefaultFallbackDelay is waited when a viewport cannot report readiness.
	DefaultFallbackDelay = 100 * time.Millisecond
	// DefaultReadyTimeout caps the wait for a destination page to mount.
	DefaultReadyTimeout = 2 * time.Second
)

// Viewport is the surface the bar drives.
type Viewport interface {
	// ListenScroll registers fn for scroll offsets and returns its remover.
	ListenScroll(fn func(offset float64)) (remove func())
	// Navigate transitions to href. The returned channel is closed once the
	// destination has mounted; nil means readiness cannot be observed.
	Navigate(href string) <-chan struct{}
	// ScrollTo smooth-scrolls to the element with id and reports whether it
	// exists.
	ScrollTo(id string) bool
}

// Options tunes a Bar. Zero values select the defaults.
type Options struct {
	ScrollThreshold float64
	FallbackDelay   time.Duration
	ReadyTimeout    time.Duration
}

func (o Options) withDefaults() Options {
	if o.ScrollThreshold <= 0 {
		o.ScrollThreshold = DefaultScrollThreshold
	}
	if o.FallbackDelay <= 0 {
		o.FallbackDelay = DefaultFallbackDelay
	}
	if o.ReadyTimeout <= 0 {
		o.ReadyTimeout = DefaultReadyTimeout
	}
	return o
}

// Bar holds one navigation bar's state. State exists only while mounted.
type Bar struct {
	viewport Viewport
	opts     Options

	mu           sync.Mutex
	mounted      bool
	menuOpen     bool
	scrolled     bool
	removeScroll func()

	pending sync.WaitGroup
}

// NewBar returns an unmounted bar bound to viewport.
func NewBar(viewport Viewport, opts Options) *Bar {
	return &Bar{viewport: viewport, opts: opts.withDefaults()}
}

// Mount starts observing scroll. Mounting a mounted bar does nothing.
func (b *Bar) Mount() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.mounted {
		return
	}
	b.mounted = true
	b.menuOpen = false
	b.scrolled = false
	b.removeScroll = b.viewport.ListenScroll(b.observeScroll)
}

// Unmount stops observing scroll and resets state.
func (b *Bar) Unmount() {
	b.mu.Lock()
	remove := b.removeScroll
	b.mounted = false
	b.menuOpen = false
	b.scrolled = false
	b.removeScroll = nil
	b.mu.Unlock()

	if remove != nil {
		remove()
	}
}

func (b *Bar) observeScroll(offset float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.mounted {
		return
	}
	b.scrolled = offset > b.opts.ScrollThreshold
}

// Scrolled reports whether the viewport is past the scroll threshold.
func (b *Bar) Scrolled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scrolled
}

// MenuOpen reports whether the mobile menu is open.
func (b *Bar) MenuOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.menuOpen
}

// ToggleMenu flips the mobile menu and returns the new state.
func (b *Bar) ToggleMenu() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.mounted {
		return false
	}
	b.menuOpen = !b.menuOpen
	return b.menuOpen
}

// Activate closes the menu and carries out the action for t at loc. A
// deferred scroll runs in the background until the destination mounts or
// ctx ends; missing scroll targets are ignored.
func (b *Bar) Activate(ctx context.Context, t Target, loc Location) Action {
	b.mu.Lock()
	b.menuOpen = false
	b.mu.Unlock()

	action := Resolve(t, loc)
	if action.Navigate == "" {
		if action.ScrollTo != "" {
			b.viewport.ScrollTo(action.ScrollTo)
		}
		return action
	}

	ready := b.viewport.Navigate(action.Navigate)
	if action.AfterMount && action.ScrollTo != "" {
		fragment := action.ScrollTo
		b.pending.Go(func() {
			if b.awaitMount(ctx, ready) {
				b.viewport.ScrollTo(fragment)
			}
		})
	}
	return action
}

// Wait blocks until deferred scrolls finish.
func (b *Bar) Wait() {
	b.pending.Wait()
}

func (b *Bar) awaitMount(ctx context.Context, ready <-chan struct{}) bool {
	if ctx.Err() != nil {
		return false
	}
	if ready == nil {
		timer := time.NewTimer(b.opts.FallbackDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
			return true
		case <-ctx.Done():
			return false
		}
	}

	timer := time.NewTimer(b.opts.ReadyTimeout)
	defer timer.Stop()
	select {
	case <-ready:
		return true
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
