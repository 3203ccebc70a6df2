// Package cart holds the shopping cart engine: an ordered set of lines keyed
// by item identity plus customization, with merge-on-add semantics and
// customization-aware pricing. One engine is constructed per session and
// writes its full state through a SnapshotStore after every mutation.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/giridhar-narapusetty/Sunnycafe/internal/cart/store"
	"github.com/giridhar-narapusetty/Sunnycafe/internal/domain"
)

type Engine struct {
	sessionID string
	store     store.SnapshotStore
	log       logrus.FieldLogger
	lines     []domain.CartLine
}

// NewEngine builds the engine for a session and rehydrates any previously
// saved cart. A missing or unreadable snapshot never fails construction: the
// session just starts with an empty cart.
func NewEngine(ctx context.Context, s store.SnapshotStore, sessionID string, log logrus.FieldLogger) *Engine {
	e := &Engine{
		sessionID: sessionID,
		store:     s,
		log:       log.WithField("session", sessionID),
	}

	lines, err := s.Load(ctx, sessionID)
	switch {
	case err == nil:
		e.lines = lines
	case errors.Is(err, store.ErrSnapshotNotFound):
		// first visit
	default:
		e.log.WithError(err).Warn("could not restore cart, starting empty")
	}
	return e
}

// AddItem merges into an existing line when the item id and the full
// customization payload match, otherwise appends a new line with quantity 1.
// Availability is the catalog's problem, not checked here.
func (e *Engine) AddItem(ctx context.Context, item domain.MenuItem, customization *domain.Customization) error {
	if customization.IsZero() {
		customization = nil
	}

	if i := e.indexOfConfig(item.ID, customization); i >= 0 {
		e.lines[i].Quantity++
		e.lines[i].LineTotal = LineTotal(e.lines[i].Item, e.lines[i].Quantity, e.lines[i].Customization)
	} else {
		line := domain.CartLine{
			Item:          item,
			Quantity:      1,
			Customization: customization.Clone(),
		}
		line.LineTotal = LineTotal(item, 1, line.Customization)
		e.lines = append(e.lines, line)
	}
	return e.persist(ctx)
}

// UpdateQuantity applies a delta to the line's quantity, clamping at 1.
// Decrementing never removes a line; RemoveLine is the only path to zero.
// Unknown keys are a no-op.
func (e *Engine) UpdateQuantity(ctx context.Context, key string, delta int) error {
	i := e.indexOf(key)
	if i < 0 {
		return nil
	}

	qty := e.lines[i].Quantity + delta
	if qty < 1 {
		qty = 1
	}
	if qty == e.lines[i].Quantity {
		return nil
	}
	e.lines[i].Quantity = qty
	e.lines[i].LineTotal = LineTotal(e.lines[i].Item, qty, e.lines[i].Customization)
	return e.persist(ctx)
}

// RemoveLine deletes the line unconditionally. Removing an absent key is fine.
func (e *Engine) RemoveLine(ctx context.Context, key string) error {
	i := e.indexOf(key)
	if i < 0 {
		return nil
	}
	e.lines = append(e.lines[:i], e.lines[i+1:]...)
	return e.persist(ctx)
}

// Clear empties the cart and drops the stored snapshot.
func (e *Engine) Clear(ctx context.Context) error {
	e.lines = nil
	if err := e.store.Delete(ctx, e.sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Total is the sum of all line totals.
func (e *Engine) Total() float64 {
	var total float64
	for _, l := range e.lines {
		total += l.LineTotal
	}
	return total
}

// ItemCount is the sum of all line quantities (the navbar badge number).
func (e *Engine) ItemCount() int {
	var count int
	for _, l := range e.lines {
		count += l.Quantity
	}
	return count
}

// Lines returns detached copies in insertion order.
func (e *Engine) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(e.lines))
	for i, l := range e.lines {
		out[i] = l.Clone()
	}
	return out
}

func (e *Engine) indexOf(key string) int {
	for i := range e.lines {
		if e.lines[i].Key() == key {
			return i
		}
	}
	return -1
}

// indexOfConfig is the merge target lookup: same item id and structurally
// equal customization payload.
func (e *Engine) indexOfConfig(itemID string, c *domain.Customization) int {
	ck := c.CanonicalKey()
	for i := range e.lines {
		if e.lines[i].Item.ID == itemID && e.lines[i].Customization.CanonicalKey() == ck {
			return i
		}
	}
	return -1
}

func (e *Engine) persist(ctx context.Context) error {
	if err := e.store.Save(ctx, e.sessionID, e.lines); err != nil {
		// The in-memory cart stays valid; the caller decides whether a lost
		// snapshot is worth surfacing.
		e.log.WithError(err).Error("failed to persist cart snapshot")
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
