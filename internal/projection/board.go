package projection

import (
	"fmt"
	"strings"
)

// Board is the explicit slot table: an ordered mapping from slot id to the
// slot's fixed display parameters. It replaces the "three ambient named
// output regions" shape with configuration the host constructs once and
// hands to the renderer.
type Board struct {
	slots []SlotConfig
}

// SlotView pairs a slot with the fragments the latest projection pass
// produced for it. A snapshot replaces the previous one atomically; views
// are never patched in place.
type SlotView struct {
	Slot      SlotConfig
	Fragments []Fragment
}

// NewBoard validates the slot table and returns a Board. Slot ids must be
// non-empty and unique; a board needs at least one slot. Subtitles are
// required because every fragment carries one.
func NewBoard(slots []SlotConfig) (*Board, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("projection: board needs at least one slot")
	}
	seen := make(map[string]struct{}, len(slots))
	cloned := make([]SlotConfig, len(slots))
	for i, slot := range slots {
		slot.ID = strings.TrimSpace(slot.ID)
		slot.Subtitle = strings.TrimSpace(slot.Subtitle)
		slot.Accent = strings.TrimSpace(slot.Accent)
		if slot.ID == "" {
			return nil, fmt.Errorf("projection: slot %d: id is required", i)
		}
		if slot.Subtitle == "" {
			return nil, fmt.Errorf("projection: slot %s: subtitle is required", slot.ID)
		}
		if _, ok := seen[slot.ID]; ok {
			return nil, fmt.Errorf("projection: duplicate slot id %s", slot.ID)
		}
		seen[slot.ID] = struct{}{}
		cloned[i] = slot
	}
	return &Board{slots: cloned}, nil
}

// Slots returns the slot table in configuration order.
func (b *Board) Slots() []SlotConfig {
	if b == nil {
		return nil
	}
	out := make([]SlotConfig, len(b.slots))
	copy(out, b.slots)
	return out
}

// Slot looks up a single slot by id.
func (b *Board) Slot(id string) (SlotConfig, bool) {
	if b == nil {
		return SlotConfig{}, false
	}
	for _, slot := range b.slots {
		if slot.ID == id {
			return slot, true
		}
	}
	return SlotConfig{}, false
}

// Snapshot projects the selection through every slot and returns the full
// set of per-slot views, in slot order. Each call recomputes everything
// from scratch; callers drop the previous snapshot on the floor.
func (b *Board) Snapshot(selection Selection) []SlotView {
	if b == nil {
		return nil
	}
	views := make([]SlotView, len(b.slots))
	for i, slot := range b.slots {
		views[i] = SlotView{
			Slot:      slot,
			Fragments: Project(selection, slot),
		}
	}
	return views
}

// State reports the projector state for a selection. It lives on Board
// only for caller convenience; the answer does not depend on the slots.
func (b *Board) State(selection Selection) State {
	return StateOf(selection)
}
