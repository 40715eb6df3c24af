// internal/projection/projection.go
//
// The projector is the heart of boxboard: it turns the user's current
// selection into the view fragments each display slot shows. It is a pure
// derivation — every pass regenerates the full output and the previous
// output is discarded wholesale. Nothing here knows how fragments end up
// on screen; that belongs to the rendering boundary (the TUI).

package projection

// Selection is the ordered list of labels the user has currently chosen.
// Order is owned by the input widget; the projector only reads it. A nil
// selection means the same thing as an empty one. Duplicate labels are
// legal and produce duplicate fragments.
type Selection []string

// SlotConfig carries the fixed display parameters of one output region.
// Slots are defined at configuration time and never change at runtime.
type SlotConfig struct {
	// ID identifies the slot inside a Board.
	ID string

	// Subtitle is stamped onto every fragment the slot produces
	// (e.g. "Box 1").
	Subtitle string

	// Accent is the color hint the rendering boundary uses for this
	// slot's fragments. The projector treats it as opaque.
	Accent string
}

// Fragment is the immutable view description derived from one
// (label, slot) pair. Fragments are created during a projection pass,
// consumed once by the renderer, and discarded.
type Fragment struct {
	Slot  string // owning slot id
	Value string // the selected label, passed through untouched
	Label string // the slot's fixed subtitle
}

// State describes the projector's two-state machine.
type State int

const (
	// StateAwaitingSelection means the selection is empty and no
	// fragments exist. Hosts use this to hide the output regions.
	StateAwaitingSelection State = iota

	// StateRendered means the selection is non-empty and every slot
	// carries one fragment per selected label.
	StateRendered
)

// StateOf reports which state a selection puts the projector in.
func StateOf(selection Selection) State {
	if len(selection) == 0 {
		return StateAwaitingSelection
	}
	return StateRendered
}

// Project derives the fragment sequence for a single slot. The result has
// exactly one fragment per selected label, in selection order, each
// stamped with the slot's subtitle. An empty or nil selection yields no
// fragments and no error; that is the guard state, not a failure.
//
// Project is pure: same inputs, same output, no retained state. It is
// invoked once per slot and slots do not observe each other.
func Project(selection Selection, slot SlotConfig) []Fragment {
	if len(selection) == 0 {
		return nil
	}
	fragments := make([]Fragment, len(selection))
	for i, label := range selection {
		fragments[i] = Fragment{
			Slot:  slot.ID,
			Value: label,
			Label: slot.Subtitle,
		}
	}
	return fragments
}
