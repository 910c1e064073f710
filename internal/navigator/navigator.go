// Package navigator holds the cursor into a catalog and the view state
// derived from it.
//
// The Navigator is the single owner of mutable navigation state. Every
// change recomputes the ViewState from scratch out of Catalog[Cursor], so a
// reader never observes a half-updated snapshot.
package navigator

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/imagexplorer/internal/catalog"
	"github.com/muurk/imagexplorer/internal/logging"
)

// ViewState is what the presentation renders.
type ViewState struct {
	Title   catalog.TextRef
	Image   catalog.ImageRef
	Loading bool

	Index int // cursor the state was derived from
	Count int // catalog length
}

// Navigator advances a cursor through a catalog.Provider with wrap-around.
type Navigator struct {
	provider catalog.Provider
	count    int

	mu     sync.Mutex
	cursor int
	state  ViewState
	subs   map[int]chan ViewState
	nextID int
}

// New creates a navigator over provider and initializes it. It panics if
// the provider cannot serve index 0, which only happens with an empty
// provider (a configuration error).
func New(provider catalog.Provider) *Navigator {
	n := &Navigator{
		provider: provider,
		count:    len(provider.All()),
		subs:     make(map[int]chan ViewState),
	}
	if err := n.Initialize(); err != nil {
		panic(err)
	}
	return n
}

// Initialize resets the cursor to 0 and derives the view state from the
// first item.
func (n *Navigator) Initialize() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	state, err := n.derive(0)
	if err != nil {
		return err
	}

	n.cursor = 0
	n.publish(state)
	return nil
}

// Advance moves the cursor to the next item, wrapping after the last one,
// and returns the new view state.
func (n *Navigator) Advance() (ViewState, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	from := n.cursor
	to := n.provider.NextIndex(from)

	state, err := n.derive(to)
	if err != nil {
		return n.state, err
	}

	n.cursor = to
	n.publish(state)
	logging.LogAdvance(from, to, n.count)

	return state, nil
}

// State returns the current view state.
func (n *Navigator) State() ViewState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Cursor returns the current index.
func (n *Navigator) Cursor() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cursor
}

// Subscribe returns a channel that receives the current view state and then
// every later one. The channel holds at most one pending snapshot; a slow
// reader skips intermediate states and sees only the newest. Call cancel to
// unsubscribe, which closes the channel.
func (n *Navigator) Subscribe() (<-chan ViewState, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	ch := make(chan ViewState, 1)
	ch <- n.state
	n.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// derive builds the view state for index. Caller holds n.mu.
func (n *Navigator) derive(index int) (ViewState, error) {
	item, err := n.provider.At(index)
	if err != nil {
		logging.Error("Cursor points outside catalog",
			zap.Int("index", index),
			zap.Int("count", n.count),
			zap.Error(err),
		)
		return ViewState{}, fmt.Errorf("failed to derive view state: %w", err)
	}

	return ViewState{
		Title:   item.Title,
		Image:   item.Image,
		Loading: false,
		Index:   index,
		Count:   n.count,
	}, nil
}

// publish stores state and hands it to subscribers. Caller holds n.mu.
func (n *Navigator) publish(state ViewState) {
	n.state = state

	for _, ch := range n.subs {
		// Drop a pending stale snapshot so the send never blocks.
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}
