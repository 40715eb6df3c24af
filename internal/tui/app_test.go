package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/boxboard/internal/config"
	"github.com/kingrea/boxboard/internal/preset"
)

var errDiscovery = errors.New("preset scan failed")

func fruitPreset() preset.Definition {
	return preset.Definition{
		ID:   "fruit",
		Name: "Fruit Stand",
		Choices: []preset.Choice{
			{Code: "APL", Name: "Apples"},
			{Code: "PEA", Name: "Pears"},
		},
		Slots: []preset.SlotSpec{
			{ID: "box-1", Subtitle: "Crate 1"},
			{ID: "box-2", Subtitle: "Crate 2"},
		},
	}
}

func newTestApp(t *testing.T, projectDir string, opts ...AppOption) *App {
	t.Helper()
	if err := config.InitBoxboardDir(projectDir); err != nil {
		t.Fatalf("init boxboard dir: %v", err)
	}
	discovery := func(*config.Config) ([]preset.Definition, error) {
		return []preset.Definition{preset.Builtin(), fruitPreset()}, nil
	}
	baseOpts := []AppOption{WithPresetDiscovery(discovery)}
	baseOpts = append(baseOpts, opts...)
	app, err := NewApp(projectDir, baseOpts...)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app
}

func pressKey(t *testing.T, app *App, msg tea.KeyMsg) *App {
	t.Helper()
	model, _ := app.Update(msg)
	next, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type: %T", model)
	}
	return next
}

func pressRune(t *testing.T, app *App, r rune) *App {
	t.Helper()
	return pressKey(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func pressSpace(t *testing.T, app *App) *App {
	t.Helper()
	return pressKey(t, app, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
}

func TestToggleBuildsOrderedSelection(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	app = pressSpace(t, app) // CH
	app = pressRune(t, app, 'j')
	app = pressSpace(t, app) // JP
	if got := []string(app.selection); len(got) != 2 || got[0] != "CH" || got[1] != "JP" {
		t.Fatalf("selection = %v, want [CH JP]", got)
	}

	// Toggling an earlier entry off keeps the rest in order.
	app = pressRune(t, app, 'k')
	app = pressSpace(t, app)
	if got := []string(app.selection); len(got) != 1 || got[0] != "JP" {
		t.Fatalf("selection = %v, want [JP]", got)
	}
}

func TestBoardHiddenUntilSelection(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	view := app.View()
	if strings.Contains(view, "Box 1") {
		t.Fatalf("board panels should be hidden while selection is empty")
	}
	if !strings.Contains(view, "boxes will appear") {
		t.Fatalf("awaiting hint missing from view:\n%s", view)
	}

	app = pressSpace(t, app)
	view = app.View()
	for _, want := range []string{"Box 1", "Box 2", "Box 3", "CH"} {
		if !strings.Contains(view, want) {
			t.Fatalf("rendered view missing %q", want)
		}
	}
}

func TestViewFollowsSelectionOrder(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	app = pressRune(t, app, 'j')
	app = pressSpace(t, app) // JP first
	app = pressRune(t, app, 'k')
	app = pressSpace(t, app) // then CH
	board := app.renderBoardArea(90)
	jp := strings.Index(board, "Japan")
	ch := strings.Index(board, "Switzerland")
	if jp < 0 || ch < 0 {
		t.Fatalf("board area missing choice names:\n%s", board)
	}
	if jp > ch {
		t.Fatalf("board reordered fragments: Japan at %d, Switzerland at %d", jp, ch)
	}
}

func TestClearSelection(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	app = pressSpace(t, app)
	app = pressRune(t, app, 'c')
	if len(app.selection) != 0 {
		t.Fatalf("selection not cleared: %v", app.selection)
	}
	if strings.Contains(app.View(), "Box 1") {
		t.Fatalf("board should return to guard state after clear")
	}
}

func TestEnterTogglesLikeSpace(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	app = pressKey(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if len(app.selection) != 1 {
		t.Fatalf("enter should toggle the highlighted choice, selection = %v", app.selection)
	}
}

func TestPresetSelectorAppliesAndPersists(t *testing.T) {
	projectDir := t.TempDir()
	app := newTestApp(t, projectDir)
	app = pressRune(t, app, 'p')
	if app.state != statePresetSelect {
		t.Fatalf("expected preset selector state, got %d", app.state)
	}

	// Highlight the fruit preset and confirm.
	for i, def := range app.presets {
		if def.ID == "fruit" {
			app.presetMenu.Select(i)
		}
	}
	app = pressKey(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.state != stateBrowse {
		t.Fatalf("expected return to browse state, got %d", app.state)
	}
	if app.active.ID != "fruit" {
		t.Fatalf("active preset = %s, want fruit", app.active.ID)
	}
	if len(app.selection) != 0 {
		t.Fatalf("selection should reset on preset switch, got %v", app.selection)
	}

	reloaded, err := config.NewConfig(projectDir)
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if reloaded.Preset() != "fruit" {
		t.Fatalf("preset did not persist, got %s", reloaded.Preset())
	}
}

func TestPresetSelectorEscCancels(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	app = pressSpace(t, app)
	app = pressRune(t, app, 'p')
	app = pressKey(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.state != stateBrowse {
		t.Fatalf("esc should cancel preset selection")
	}
	if app.active.ID != preset.BuiltinID {
		t.Fatalf("cancelled selection must keep active preset, got %s", app.active.ID)
	}
	if len(app.selection) != 1 {
		t.Fatalf("cancelled selection must keep the current selection, got %v", app.selection)
	}
}

func TestLogPanelToggle(t *testing.T) {
	app := newTestApp(t, t.TempDir())
	if !app.showLog {
		t.Fatalf("log panel should start enabled by config default")
	}
	app = pressKey(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'L'}})
	if app.showLog {
		t.Fatalf("L should hide the log panel")
	}
	if strings.Contains(app.View(), "LOG ·") {
		t.Fatalf("log panel rendered while hidden")
	}
}

func TestDiscoveryFailureFallsBackToBuiltin(t *testing.T) {
	projectDir := t.TempDir()
	if err := config.InitBoxboardDir(projectDir); err != nil {
		t.Fatalf("init boxboard dir: %v", err)
	}
	broken := func(*config.Config) ([]preset.Definition, error) {
		return nil, errDiscovery
	}
	app, err := NewApp(projectDir, WithPresetDiscovery(broken))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if app.active.ID != preset.BuiltinID {
		t.Fatalf("expected builtin fallback, got %s", app.active.ID)
	}
}
