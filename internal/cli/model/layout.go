// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/snapshot"
	"github.com/bnema/workbench/internal/logging"
	"github.com/bnema/workbench/internal/ui/mainloop"
)

const (
	// A terminal cell stands for cellWidth x cellHeight pixels of the container.
	cellWidth  = 10
	cellHeight = 20

	resizeStep          = 20
	defaultPollInterval = 2 * time.Second
	resizeKey           = "resize"

	// Lines below the preview: summary, status and help.
	footerLines = 6
)

// selectableParts are the parts the grow and shrink keys can act on.
var selectableParts = []entity.Part{
	entity.PartSideBar,
	entity.PartEditor,
	entity.PartPanel,
	entity.PartAuxiliaryBar,
}

var panelCycle = []entity.Position{
	entity.PositionBottom,
	entity.PositionRight,
	entity.PositionTop,
	entity.PositionLeft,
}

var alignmentCycle = []entity.PanelAlignment{
	entity.AlignmentLeft,
	entity.AlignmentCenter,
	entity.AlignmentRight,
	entity.AlignmentJustify,
}

// LayoutModelConfig holds the dependencies of the layout playground.
type LayoutModelConfig struct {
	Workbench *cli.Workbench
	// Settings, when set, refreshes the preview on config file changes.
	Settings     port.Configuration
	PollInterval time.Duration
	// AutoSave, when set, is told about every layout change.
	AutoSave *snapshot.Service
}

// LayoutModel is the Bubble Tea model for the interactive layout playground.
// Every key applies one layout operation and the preview is redrawn from the
// resulting grid.
type LayoutModel struct {
	// UI components
	help     help.Model
	keys     styles.LayoutKeyMap
	renderer *styles.LayoutRenderer

	// State
	selected   int
	showTree   bool
	showHelp   bool
	width      int
	height     int
	lastAction string
	err        error

	// Dependencies
	ctx          context.Context
	theme        *styles.Theme
	wb           *cli.Workbench
	coalescer    *mainloop.Coalescer
	changes      chan struct{}
	listeners    []func()
	pollInterval time.Duration
}

// NewLayoutModel creates the playground over an opened workbench.
func NewLayoutModel(ctx context.Context, theme *styles.Theme, cfg LayoutModelConfig) LayoutModel {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating layout model")

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	m := LayoutModel{
		help:         styles.NewStyledHelp(theme),
		keys:         styles.DefaultLayoutKeyMap(),
		renderer:     styles.NewLayoutRenderer(theme),
		selected:     1,
		width:        80,
		height:       24,
		ctx:          ctx,
		theme:        theme,
		wb:           cfg.Workbench,
		coalescer:    mainloop.NewCoalescer(cfg.Workbench.Post),
		changes:      make(chan struct{}, 1),
		pollInterval: interval,
	}

	autosave := cfg.AutoSave
	m.listeners = append(m.listeners, cfg.Workbench.Layout.OnDidChangeLayout(func(context.Context, entity.LayoutEvent) {
		if autosave != nil {
			autosave.MarkDirty()
		}
		m.signal()
	}))
	if cfg.Settings != nil {
		m.listeners = append(m.listeners, cfg.Settings.OnDidChangeConfiguration(func(context.Context, entity.ConfigurationChange) {
			m.signal()
		}))
	}
	return m
}

// Close unregisters the listeners and drops pending resizes.
func (m LayoutModel) Close() {
	for _, remove := range m.listeners {
		remove()
	}
	m.coalescer.Destroy()
}

// Init implements tea.Model.
func (m LayoutModel) Init() tea.Cmd {
	return tea.Batch(m.waitForChange(), m.schedulePoll())
}

// layoutChangedMsg is sent after the layout changed, from any source.
type layoutChangedMsg struct{}

// layoutAppliedMsg is sent when a key action has been applied.
type layoutAppliedMsg struct {
	action string
	err    error
}

// pollTickMsg asks for a storage poll.
type pollTickMsg struct{}

// storagePolledMsg is sent once another process's profile changes were read.
type storagePolledMsg struct {
	err error
}

func (m LayoutModel) signal() {
	select {
	case m.changes <- struct{}{}:
	default:
	}
}

func (m LayoutModel) waitForChange() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return nil
		}
		return layoutChangedMsg{}
	}
}

func (m LayoutModel) schedulePoll() tea.Cmd {
	return tea.Tick(m.pollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (m LayoutModel) poll() tea.Msg {
	err := m.wb.Storage.PollChanges(m.ctx, entity.ScopeProfile)
	if err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("failed to poll layout storage")
	}
	return storagePolledMsg{err: err}
}

// Update implements tea.Model.
func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case layoutChangedMsg:
		return m, m.waitForChange()

	case layoutAppliedMsg:
		m.lastAction = msg.action
		m.err = msg.err
		return m, nil

	case pollTickMsg:
		return m, m.poll

	case storagePolledMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		return m, m.schedulePoll()
	}

	return m, nil
}

func (m LayoutModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	size := m.containerSize()
	wb := m.wb
	m.coalescer.Post(m.ctx, resizeKey, func(ctx context.Context) {
		if err := wb.Resize(ctx, size); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to resize layout")
		}
	})
	return m, nil
}

// containerSize maps the preview area of the terminal to container pixels.
func (m LayoutModel) containerSize() entity.Dimension {
	cols, rows := m.previewSize()
	return entity.Dimension{Width: cols * cellWidth, Height: rows * cellHeight}
}

func (m LayoutModel) previewSize() (cols, rows int) {
	rows = m.height - footerLines
	if m.showTree {
		rows /= 2
	}
	return max(m.width, 2), max(rows, 2)
}

func (m LayoutModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	layout := m.wb.Layout

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Tree):
		m.showTree = !m.showTree
		return m, nil

	case key.Matches(msg, m.keys.NextPart):
		m.selected = m.nextSelectable()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSideBar):
		return m, m.toggle(entity.PartSideBar)
	case key.Matches(msg, m.keys.TogglePanel):
		return m, m.toggle(entity.PartPanel)
	case key.Matches(msg, m.keys.ToggleAuxiliaryBar):
		return m, m.toggle(entity.PartAuxiliaryBar)
	case key.Matches(msg, m.keys.ToggleStatusBar):
		return m, m.toggle(entity.PartStatusBar)
	case key.Matches(msg, m.keys.ToggleActivityBar):
		return m, m.toggle(entity.PartActivityBar)

	case key.Matches(msg, m.keys.MoveSideBar):
		next := layout.SideBarPosition().Opposite()
		return m, m.apply("side bar "+next.String(), func(ctx context.Context) error {
			return layout.SetSideBarPosition(ctx, next)
		})

	case key.Matches(msg, m.keys.CyclePanel):
		next := nextPosition(layout.PanelPosition())
		return m, m.apply("panel "+next.String(), func(ctx context.Context) error {
			return layout.SetPanelPosition(ctx, next)
		})

	case key.Matches(msg, m.keys.CycleAlignment):
		next := nextAlignment(layout.PanelAlignment())
		return m, m.apply("panel aligned "+string(next), func(ctx context.Context) error {
			return layout.SetPanelAlignment(ctx, next)
		})

	case key.Matches(msg, m.keys.MaximizePanel):
		return m, m.apply("panel maximize toggled", layout.ToggleMaximizedPanel)

	case key.Matches(msg, m.keys.MaximizeAuxiliary):
		return m, m.apply("auxiliary bar maximize toggled", layout.ToggleMaximizedAuxiliaryBar)

	case key.Matches(msg, m.keys.Zen):
		return m, m.apply("zen mode toggled", layout.ToggleZenMode)

	case key.Matches(msg, m.keys.Center):
		centered := !layout.IsMainEditorLayoutCentered()
		return m, m.apply(fmt.Sprintf("editor centered: %t", centered), func(ctx context.Context) error {
			return layout.CenterMainEditorLayout(ctx, centered)
		})

	case key.Matches(msg, m.keys.Grow):
		return m, m.resizeSelected(resizeStep)
	case key.Matches(msg, m.keys.Shrink):
		return m, m.resizeSelected(-resizeStep)
	}

	return m, nil
}

func (m LayoutModel) toggle(part entity.Part) tea.Cmd {
	layout := m.wb.Layout
	return m.apply("toggled "+part.ShortName(), func(ctx context.Context) error {
		return layout.TogglePart(ctx, part)
	})
}

func (m LayoutModel) resizeSelected(delta int) tea.Cmd {
	part := selectableParts[m.selected]
	dw, dh := resizeDelta(part, m.wb.Layout.PanelPosition(), delta)
	layout := m.wb.Layout
	return m.apply(fmt.Sprintf("resized %s by %+d", part.ShortName(), delta), func(ctx context.Context) error {
		return layout.ResizePart(ctx, part, dw, dh)
	})
}

// apply runs fn off the update loop and reports the outcome.
func (m LayoutModel) apply(action string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		err := fn(ctx)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("action", action).Msg("layout action failed")
		}
		return layoutAppliedMsg{action: action, err: err}
	}
}

func (m LayoutModel) nextSelectable() int {
	for step := 1; step <= len(selectableParts); step++ {
		i := (m.selected + step) % len(selectableParts)
		if m.wb.Layout.IsVisible(selectableParts[i]) {
			return i
		}
	}
	return m.selected
}

// resizeDelta grows a part along the axis it can be resized on.
func resizeDelta(part entity.Part, panel entity.Position, delta int) (dw, dh int) {
	switch part {
	case entity.PartSideBar, entity.PartAuxiliaryBar:
		return delta, 0
	case entity.PartPanel:
		if panel.IsHorizontal() {
			return 0, delta
		}
		return delta, 0
	default:
		return delta, delta
	}
}

func nextPosition(current entity.Position) entity.Position {
	for i, p := range panelCycle {
		if p == current {
			return panelCycle[(i+1)%len(panelCycle)]
		}
	}
	return entity.PositionBottom
}

func nextAlignment(current entity.PanelAlignment) entity.PanelAlignment {
	for i, a := range alignmentCycle {
		if a == current {
			return alignmentCycle[(i+1)%len(alignmentCycle)]
		}
	}
	return entity.AlignmentCenter
}

// View implements tea.Model.
func (m LayoutModel) View() string {
	layout := m.wb.Layout
	cols, rows := m.previewSize()

	var sb strings.Builder
	sb.WriteString(m.renderer.RenderPreview(m.wb.Rects(), layout.Container(), cols, rows))
	sb.WriteString("\n")

	if m.showTree {
		if desc, err := layout.GridSnapshot(); err == nil {
			sb.WriteString(m.renderer.RenderTree(desc))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(m.renderer.RenderSummary(m.summary()))
	sb.WriteString("\n")

	switch {
	case m.err != nil:
		sb.WriteString(m.renderer.RenderError(m.err))
		sb.WriteString("\n")
	case m.lastAction != "":
		sb.WriteString(m.renderer.RenderApplied(m.lastAction))
		sb.WriteString("\n")
	}

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m LayoutModel) summary() styles.LayoutSummary {
	layout := m.wb.Layout
	s := styles.LayoutSummary{
		Container:      layout.Container(),
		SideBar:        layout.SideBarPosition(),
		Panel:          layout.PanelPosition(),
		Alignment:      layout.PanelAlignment(),
		PanelMaximized: layout.IsPanelMaximized(),
		AuxiliaryMaxed: layout.IsAuxiliaryBarMaximized(),
		ZenMode:        layout.IsZenModeActive(),
		EditorCentered: layout.IsMainEditorLayoutCentered(),
		Classes:        layout.LayoutClasses(),
	}

	for _, part := range entity.AllParts() {
		if layout.HasFocus(part) {
			s.Focused = part
			s.HasFocusedPart = true
			break
		}
	}

	part := selectableParts[m.selected]
	if layout.IsVisible(part) {
		s.SelectedPart = part
		s.HasSelectedPart = true
		s.SelectedPartSize = layout.GetSize(part)
	}
	return s
}
