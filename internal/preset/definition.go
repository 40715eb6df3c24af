package preset

import (
	"fmt"
	"strings"

	"github.com/kingrea/boxboard/internal/projection"
)

// Definition describes one board preset: the catalog of labels the picker
// offers and the slot table the board renders into.
//
// The struct mirrors the on-disk schema under .boxboard/presets/*.yaml and
// is intentionally narrow so the app can validate a preset before wiring
// it into the running board.
type Definition struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Choices     []Choice   `yaml:"choices"`
	Slots       []SlotSpec `yaml:"slots"`
}

// Choice is one selectable catalog entry. Code is the label that flows
// through the projector untouched; Name is what the picker displays.
type Choice struct {
	Code string `yaml:"code"`
	Name string `yaml:"name,omitempty"`
}

// SlotSpec declares one output region of the board.
type SlotSpec struct {
	ID       string `yaml:"id"`
	Subtitle string `yaml:"subtitle"`
	Accent   string `yaml:"accent,omitempty"`
}

// Normalized returns a trimmed, copy-on-write variant of the definition.
func (def Definition) Normalized() Definition {
	clone := Definition{
		ID:          strings.TrimSpace(def.ID),
		Name:        strings.TrimSpace(def.Name),
		Description: strings.TrimSpace(def.Description),
	}
	if len(def.Choices) > 0 {
		clone.Choices = make([]Choice, len(def.Choices))
		for i, choice := range def.Choices {
			clone.Choices[i] = Choice{
				Code: strings.TrimSpace(choice.Code),
				Name: strings.TrimSpace(choice.Name),
			}
		}
	}
	if len(def.Slots) > 0 {
		clone.Slots = make([]SlotSpec, len(def.Slots))
		for i, slot := range def.Slots {
			clone.Slots[i] = SlotSpec{
				ID:       strings.TrimSpace(slot.ID),
				Subtitle: strings.TrimSpace(slot.Subtitle),
				Accent:   strings.TrimSpace(slot.Accent),
			}
		}
	}
	return clone
}

// Validate ensures the preset is well-formed: id present, a non-empty
// catalog with unique codes, and a slot table the projector will accept.
func (def Definition) Validate() error {
	normalized := def.Normalized()
	if normalized.ID == "" {
		return fmt.Errorf("preset: id is required")
	}
	if len(normalized.Choices) == 0 {
		return fmt.Errorf("preset %s: at least one choice is required", normalized.ID)
	}
	seen := make(map[string]struct{}, len(normalized.Choices))
	for i, choice := range normalized.Choices {
		if choice.Code == "" {
			return fmt.Errorf("preset %s: choices[%d]: code is required", normalized.ID, i)
		}
		if _, ok := seen[choice.Code]; ok {
			return fmt.Errorf("preset %s: duplicate choice code %s", normalized.ID, choice.Code)
		}
		seen[choice.Code] = struct{}{}
	}
	if _, err := normalized.Board(); err != nil {
		return fmt.Errorf("preset %s: %w", normalized.ID, err)
	}
	return nil
}

// Board builds the projection slot table declared by the preset. The
// projector owns slot validation, so malformed slot specs surface here.
func (def Definition) Board() (*projection.Board, error) {
	slots := make([]projection.SlotConfig, len(def.Slots))
	for i, spec := range def.Slots {
		slots[i] = projection.SlotConfig{
			ID:       spec.ID,
			Subtitle: spec.Subtitle,
			Accent:   spec.Accent,
		}
	}
	return projection.NewBoard(slots)
}

// DisplayName returns the human title for menus, falling back to the id.
func (def Definition) DisplayName() string {
	if name := strings.TrimSpace(def.Name); name != "" {
		return name
	}
	return strings.TrimSpace(def.ID)
}

// ChoiceName resolves a catalog code to its display name, falling back to
// the code itself for labels injected from outside the catalog.
func (def Definition) ChoiceName(code string) string {
	for _, choice := range def.Choices {
		if choice.Code == code {
			if choice.Name != "" {
				return choice.Name
			}
			break
		}
	}
	return code
}
