// internal/tui/app.go
//
// This is the main TUI for boxboard. It uses bubbletea, which follows
// The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen
//
// The model deliberately holds no derived view state. The board panels are
// re-projected from the current selection on every View pass, so a change
// to the selection replaces the previous output wholesale.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/boxboard/internal/config"
	"github.com/kingrea/boxboard/internal/logbook"
	"github.com/kingrea/boxboard/internal/preset"
	"github.com/kingrea/boxboard/internal/projection"
)

// appState represents which "screen" we're on
type appState int

const (
	stateBrowse       appState = iota // Picker plus board panels
	statePresetSelect                 // Preset picker before swapping the board
)

// PresetDiscovery resolves the presets offered by the selector.
type PresetDiscovery func(cfg *config.Config) ([]preset.Definition, error)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithPresetDiscovery overrides how the app finds board presets.
func WithPresetDiscovery(discover PresetDiscovery) AppOption {
	return func(a *App) {
		if discover != nil {
			a.discover = discover
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state    appState
	config   *config.Config
	logbook  *logbook.Logbook
	discover PresetDiscovery

	// Active board
	presets []preset.Definition
	active  preset.Definition
	board   *projection.Board

	// The selection is the single upstream value everything derives from.
	// cursor tracks the highlighted catalog row, not the selection.
	selection projection.Selection
	cursor    int

	// UI components
	presetMenu list.Model
	showLog    bool
	statusMsg  string

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// presetOption implements list.Item for the preset selector.
type presetOption struct {
	def preset.Definition
}

func (o presetOption) Title() string { return o.def.DisplayName() }

func (o presetOption) Description() string {
	if desc := strings.TrimSpace(o.def.Description); desc != "" {
		return fmt.Sprintf("%s · ID: %s", desc, o.def.ID)
	}
	return fmt.Sprintf("ID: %s", o.def.ID)
}

func (o presetOption) FilterValue() string { return o.def.ID }

func (o presetOption) ID() string { return o.def.ID }

// NewApp creates a new App instance
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	logPath := filepath.Join(cfg.LogsDir(), "board.log")
	lb, err := logbook.New(logPath)
	if err == nil {
		lb.Info("Session opened · preset: %s", cfg.Preset())
	}

	presetMenu := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	presetMenu.Title = "Select Board Preset"
	presetMenu.SetShowStatusBar(false)
	presetMenu.SetFilteringEnabled(false)

	app := &App{
		state:      stateBrowse,
		config:     cfg,
		logbook:    lb,
		discover:   defaultPresetDiscovery,
		presetMenu: presetMenu,
		showLog:    cfg.LogPanelEnabled(),
		statusMsg:  "Space toggles a choice · p switches presets",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}

	presets, err := app.discover(cfg)
	if err != nil {
		// A broken preset file should not take the whole board down.
		app.logbook.Warn("Preset discovery failed: %v", err)
		app.statusMsg = fmt.Sprintf("Preset discovery failed: %v", err)
		presets = []preset.Definition{preset.Builtin()}
	}
	app.presets = presets
	if err := app.activatePresetByID(cfg.Preset()); err != nil {
		app.logbook.Warn("Preset %s unavailable, using %s: %v", cfg.Preset(), preset.BuiltinID, err)
		if err := app.activatePreset(preset.Builtin()); err != nil {
			return nil, err
		}
	}
	app.refreshPresetMenu()
	return app, nil
}

func defaultPresetDiscovery(cfg *config.Config) ([]preset.Definition, error) {
	return preset.Discover(cfg.PresetsDir())
}

// activatePresetByID switches the board to a discovered preset.
func (a *App) activatePresetByID(id string) error {
	target := strings.TrimSpace(id)
	for _, def := range a.presets {
		if def.ID == target {
			return a.activatePreset(def)
		}
	}
	return fmt.Errorf("tui: preset %s not found", target)
}

// activatePreset rebuilds the board from a preset definition. The current
// selection belongs to the old catalog, so it is cleared rather than
// migrated; the next projection pass starts from the guard state.
func (a *App) activatePreset(def preset.Definition) error {
	board, err := def.Board()
	if err != nil {
		return err
	}
	a.active = def
	a.board = board
	a.selection = nil
	a.cursor = 0
	a.logbook.Info("Board · preset %s active (%d choices, %d slots)",
		def.ID, len(def.Choices), len(def.Slots))
	return nil
}

func (a *App) refreshPresetMenu() {
	items := make([]list.Item, len(a.presets))
	selected := 0
	for i, def := range a.presets {
		items[i] = presetOption{def: def}
		if def.ID == a.active.ID {
			selected = i
		}
	}
	a.presetMenu.SetItems(items)
	if len(items) > 0 {
		a.presetMenu.Select(selected)
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.presetMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-10))
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == stateBrowse {
				return a, tea.Quit
			}
		case "esc":
			if a.state == statePresetSelect {
				a.state = stateBrowse
				a.statusMsg = "Preset switch cancelled"
				return a, nil
			}
		case "p":
			if a.state == stateBrowse {
				return a.beginPresetSelection()
			}
		case "L":
			a.showLog = !a.showLog
			return a, nil
		case "c":
			if a.state == stateBrowse {
				a.clearSelection()
				return a, nil
			}
		case "up", "k":
			if a.state == stateBrowse {
				if a.cursor > 0 {
					a.cursor--
				}
				return a, nil
			}
		case "down", "j":
			if a.state == stateBrowse {
				if a.cursor < len(a.active.Choices)-1 {
					a.cursor++
				}
				return a, nil
			}
		case " ":
			if a.state == stateBrowse {
				a.toggleCursorChoice()
				return a, nil
			}
		case "enter":
			switch a.state {
			case stateBrowse:
				a.toggleCursorChoice()
				return a, nil
			case statePresetSelect:
				return a.confirmPresetSelection()
			}
		}
	}

	if a.state == statePresetSelect {
		var cmd tea.Cmd
		a.presetMenu, cmd = a.presetMenu.Update(msg)
		return a, cmd
	}
	return a, nil
}

// toggleCursorChoice flips the highlighted catalog entry in or out of the
// selection. Toggling on appends, so selection order is choice order.
func (a *App) toggleCursorChoice() {
	if a.cursor < 0 || a.cursor >= len(a.active.Choices) {
		return
	}
	code := a.active.Choices[a.cursor].Code
	if idx := a.selectionIndex(code); idx >= 0 {
		a.selection = append(a.selection[:idx], a.selection[idx+1:]...)
		a.statusMsg = fmt.Sprintf("Removed %s (%d selected)", code, len(a.selection))
		a.logbook.Info("Selection · removed %s → %v", code, []string(a.selection))
		return
	}
	a.selection = append(a.selection, code)
	a.statusMsg = fmt.Sprintf("Added %s (%d selected)", code, len(a.selection))
	a.logbook.Info("Selection · added %s → %v", code, []string(a.selection))
}

func (a *App) clearSelection() {
	if len(a.selection) == 0 {
		a.statusMsg = "Selection already empty"
		return
	}
	a.selection = nil
	a.statusMsg = "Selection cleared"
	a.logbook.Info("Selection · cleared")
}

// selectionIndex returns the position of code in the selection, or -1.
func (a *App) selectionIndex(code string) int {
	for i, label := range a.selection {
		if label == code {
			return i
		}
	}
	return -1
}

func (a *App) beginPresetSelection() (tea.Model, tea.Cmd) {
	a.state = statePresetSelect
	if a.width > 0 && a.height > 0 {
		a.presetMenu.SetSize(max(0, a.width-6), max(0, a.height-10))
	}
	a.refreshPresetMenu()
	a.statusMsg = "Select a preset to load"
	return a, nil
}

func (a *App) confirmPresetSelection() (tea.Model, tea.Cmd) {
	item, ok := a.presetMenu.SelectedItem().(presetOption)
	if !ok {
		a.statusMsg = "Preset selection unavailable"
		return a, nil
	}
	a.state = stateBrowse
	if item.ID() == a.active.ID {
		a.statusMsg = fmt.Sprintf("Preset %s already active", item.ID())
		return a, nil
	}
	if err := a.activatePreset(item.def); err != nil {
		a.statusMsg = fmt.Sprintf("Preset switch failed: %v", err)
		a.logbook.Error("Preset switch failed: %v", err)
		return a, nil
	}
	if err := a.config.SetPreset(item.ID()); err != nil {
		a.statusMsg = fmt.Sprintf("Preset saved for this session only: %v", err)
		a.logbook.Warn("Persist preset: %v", err)
		return a, nil
	}
	a.statusMsg = fmt.Sprintf("Preset %s active", item.ID())
	return a, nil
}
