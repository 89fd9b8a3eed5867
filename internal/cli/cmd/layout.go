package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/cli/model"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/snapshot"
	"github.com/bnema/workbench/internal/logging"
)

const (
	defaultPreviewCols = 80
	defaultPreviewRows = 24
	stateTableWidth    = 80
)

var (
	layoutReset   bool
	layoutEmpty   bool
	showJSON      bool
	showTree      bool
	previewCols   int
	previewRows   int
	stateJSON     bool
	resetYes      bool
	resetProfile  bool
	tuiPollPeriod time.Duration
	tuiAutoSave   time.Duration
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and change the workbench layout",
	Long: `Inspect and change the stored workbench layout.

Each subcommand restores the layout of the selected workspace and profile,
applies one operation and saves the result. Parts can be named by their
short name: titlebar, banner, activitybar, sidebar, editor, panel,
auxiliarybar, statusbar.`,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.PersistentFlags().BoolVar(&layoutReset, "reset", false, "start from the default layout instead of the stored one")
	layoutCmd.PersistentFlags().BoolVar(&layoutEmpty, "empty", false, "open an empty window (no folder)")
}

// withWorkbench opens the workbench, runs fn and saves the layout when fn
// succeeds. The returned action is printed as a confirmation.
func withWorkbench(fn func(ctx context.Context, wb *cli.Workbench) (string, error)) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := app.Ctx()
	wb, err := app.OpenWorkbench(ctx, cli.WorkbenchOptions{
		Size:  WindowSize(),
		Reset: layoutReset,
		Empty: layoutEmpty,
	})
	if err != nil {
		return err
	}

	action, err := fn(ctx, wb)
	closeErr := wb.Close(ctx)
	if err != nil {
		return err
	}
	if closeErr != nil {
		return fmt.Errorf("save layout: %w", closeErr)
	}

	if action != "" {
		fmt.Println(styles.NewLayoutRenderer(app.Theme).RenderApplied(action))
	}
	return nil
}

func parsePartArg(arg string) (entity.Part, error) {
	part, err := entity.ParsePart(arg)
	if err != nil {
		return "", fmt.Errorf("%w (want one of: titlebar, banner, activitybar, sidebar, editor, panel, auxiliarybar, statusbar)", err)
	}
	return part, nil
}

// layout show
var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Draw the current layout",
	Long: `Draw the parts of the current layout scaled to the terminal, followed by
a one-line summary. Use --tree to print the grid descriptor or --json for
machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runLayoutShow,
}

func init() {
	layoutCmd.AddCommand(layoutShowCmd)
	layoutShowCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	layoutShowCmd.Flags().BoolVar(&showTree, "tree", false, "print the grid tree")
	layoutShowCmd.Flags().IntVar(&previewCols, "cols", defaultPreviewCols, "preview width in columns")
	layoutShowCmd.Flags().IntVar(&previewRows, "rows", defaultPreviewRows, "preview height in rows")
}

// layoutView is the JSON form of a layout.
type layoutView struct {
	Container      entity.Dimension       `json:"container"`
	SideBar        string                 `json:"sideBar"`
	Panel          string                 `json:"panel"`
	PanelAlignment string                 `json:"panelAlignment"`
	PanelMaximized bool                   `json:"panelMaximized"`
	AuxiliaryMaxed bool                   `json:"auxiliaryBarMaximized"`
	ZenMode        bool                   `json:"zenMode"`
	EditorCentered bool                   `json:"editorCentered"`
	Visible        map[string]bool        `json:"visible"`
	Rects          map[string]entity.Rect `json:"rects"`
	Classes        []string               `json:"classes"`
	Grid           entity.GridDescriptor  `json:"grid"`
}

func runLayoutShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	return withWorkbench(func(_ context.Context, wb *cli.Workbench) (string, error) {
		layout := wb.Layout
		desc, err := layout.GridSnapshot()
		if err != nil {
			return "", fmt.Errorf("snapshot grid: %w", err)
		}

		if showJSON {
			return "", outputLayoutJSON(wb, desc)
		}

		renderer := styles.NewLayoutRenderer(app.Theme)
		fmt.Println(renderer.RenderPreview(wb.Rects(), layout.Container(), previewCols, previewRows))
		fmt.Println(renderer.RenderSummary(layoutSummary(wb)))
		if showTree {
			fmt.Println()
			fmt.Println(renderer.RenderTree(desc))
		}
		return "", nil
	})
}

func outputLayoutJSON(wb *cli.Workbench, desc entity.GridDescriptor) error {
	layout := wb.Layout
	view := layoutView{
		Container:      layout.Container(),
		SideBar:        layout.SideBarPosition().String(),
		Panel:          layout.PanelPosition().String(),
		PanelAlignment: string(layout.PanelAlignment()),
		PanelMaximized: layout.IsPanelMaximized(),
		AuxiliaryMaxed: layout.IsAuxiliaryBarMaximized(),
		ZenMode:        layout.IsZenModeActive(),
		EditorCentered: layout.IsMainEditorLayoutCentered(),
		Visible:        make(map[string]bool),
		Rects:          make(map[string]entity.Rect),
		Classes:        layout.LayoutClasses(),
		Grid:           desc,
	}
	for _, part := range entity.AllParts() {
		view.Visible[part.ShortName()] = layout.IsVisible(part)
	}
	for part, rect := range wb.Rects() {
		view.Rects[part.ShortName()] = rect
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

func layoutSummary(wb *cli.Workbench) styles.LayoutSummary {
	layout := wb.Layout
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
	return s
}

// layout hide / reveal / toggle
var layoutHideCmd = &cobra.Command{
	Use:   "hide <part>",
	Short: "Hide a part",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setPartHidden(args[0], true)
	},
}

var layoutRevealCmd = &cobra.Command{
	Use:     "reveal <part>",
	Aliases: []string{"show-part"},
	Short:   "Show a hidden part",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setPartHidden(args[0], false)
	},
}

var layoutToggleCmd = &cobra.Command{
	Use:   "toggle <part>",
	Short: "Toggle the visibility of a part",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		part, err := parsePartArg(args[0])
		if err != nil {
			return err
		}
		return withWorkbench(func(ctx context.Context, wb *cli.Workbench) (string, error) {
			if err := wb.Layout.TogglePart(ctx, part); err != nil {
				return "", err
			}
			return visibilityAction(part, wb.Layout.IsVisible(part)), nil
		})
	},
}

func init() {
	layoutCmd.AddCommand(layoutHideCmd, layoutRevealCmd, layoutToggleCmd)
}

func setPartHidden(arg string, hidden bool) error {
	part, err := parsePartArg(arg)
	if err != nil {
		return err
	}
	return withWorkbench(func(ctx context.Context, wb *cli.Workbench) (string, error) {
		if err := wb.Layout.SetPartHidden(ctx, part, hidden); err != nil {
			return "", err
		}
		return visibilityAction(part, wb.Layout.IsVisible(part)), nil
	})
}

func visibilityAction(part entity.Part, visible bool) string {
	if visible {
		return part.ShortName() + " is visible"
	}
	return part.ShortName() + " is hidden"
}

// layout sidebar
var layoutSideBarCmd = &cobra.Command{
	Use:       "sidebar <left|right>",
	Short:     "Move the side bar",
	Long:      `Move the primary side bar to the left or right. The auxiliary bar takes the other side.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"left", "right"},
	RunE: func(_ *cobra.Command, args []string) error {
		position, err := entity.ParsePosition(args[0])
		if err != nil {
			return err
		}
		if position.IsHorizontal() {
			return fmt.Errorf("%w: the side bar can only be placed left or right", entity.ErrInvalidPosition)
		}
		return withWorkbench(func(ctx context.Context, wb *cli.Workbench) (string, error) {
			if err := wb.Layout.SetSideBarPosition(ctx, position); err != nil {
				return "", err
			}
			return "side bar moved " + position.String(), nil
		})
	},
}

// layout panel
var layoutPanelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Change the panel position or alignment",
}

var layoutPanelPositionCmd = &cobra.Command{
	Use:       "position <bottom|top|left|right>",
	Short:     "Move the panel",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bottom", "top", "left", "right"},
	RunE: func(_ *cobra.Command, args []string) error {
		position, err := entity.ParsePosition(args[0])
		if err != nil {
			return err
		}
		return withWorkbench(func(ctx context.Context, wb *cli.Workbench) (string, error) {
			if err := wb.Layout.SetPanelPosition(ctx, position); err != nil {
				return "", err
			}
			return "panel moved " + position.String(), nil
		})
	},
}

var layoutPanelAlignCmd = &cobra.Command{
	Use:       "align <left|center|right|justify>",
	Short:     "Align a horizontal panel with the side bars",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"left", "center", "right", "justify"},
	RunE: func(_ *cobra.Command, args []string) error {
		alignment, err := entity.ParsePanelAlignment(args[0])
		if err != nil {
			return err
		}
		return withWorkbench(func(ctx context.Context, wb *cli.Workbench) (string, error) {
			if err := wb.Layout.SetPanelAlignment(ctx, alignment); err != nil {
				return "", err
			}
			return "panel aligned " + string(alignment), nil
		})
	},
}

func init() {
	layoutCmd.AddCommand(layoutSideBarCmd, layoutPanelCmd)
	layoutPanelCmd.AddCommand(layoutPanelPositionCmd, layoutPanelAlignCmd)
}

// layout maximize
var layoutMaximizeCmd = &cobra.Command{
	Use:       "maximize <panel|auxiliarybar>",
	Short:     "Toggle the maximized panel or auxiliary bar",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"panel", "auxiliarybar"},
	RunE: func(_ *cobra.Command, args []string) error {
		part, err := parsePartArg(args[0])
		if err != nil {
			return err
		}
		return withWorkbench(func(ctx context.Context, wb *cli.Workbench) (string, error) {
			layout := wb.Layout
			switch part {
			case entity.PartPanel:
				if err := layout.ToggleMaximizedPanel(ctx); err != nil {
					return "", err
				}
				return fmt.Sprintf("panel maximized: %t", layout.IsPanelMaximized()), nil
			case entity.PartAuxiliaryBar:
				if err := layout.ToggleMaximizedAuxiliaryBar(ctx); err != nil {
					return "", err
				}
				return fmt.Sprintf("auxiliary bar maximized: %t", layout.IsAuxiliaryBarMaximized()), nil
			default:
				return "", fmt.Errorf("%s cannot be maximized", part.ShortName())
			}
		})
	},
}

// layout zen
var layoutZenCmd = &cobra.Command{
	Use:   "zen",
	Short: "Toggle zen mode",
	Long: `Toggle zen mode. Which parts zen mode hides is read from the [zenMode]
section of the config file.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withWorkbench(func(ctx context.Context, wb *cli.Workbench) (string, error) {
			if err := wb.Layout.ToggleZenMode(ctx); err != nil {
				return "", err
			}
			return fmt.Sprintf("zen mode: %t", wb.Layout.IsZenModeActive()), nil
		})
	},
}

// layout center
var layoutCenterCmd = &cobra.Command{
	Use:       "center [on|off]",
	Short:     "Center the main editor layout",
	Long:      `Center the main editor layout. Without an argument the current state is toggled.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(_ *cobra.Command, args []string) error {
		return withWorkbench(func(ctx context.Context, wb *cli.Workbench) (string, error) {
			active := !wb.Layout.IsMainEditorLayoutCentered()
			if len(args) == 1 {
				var err error
				if active, err = parseOnOff(args[0]); err != nil {
					return "", err
				}
			}
			if err := wb.Layout.CenterMainEditorLayout(ctx, active); err != nil {
				return "", err
			}
			return fmt.Sprintf("editor centered: %t", wb.Layout.IsMainEditorLayoutCentered()), nil
		})
	},
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return strconv.ParseBool(s)
	}
}

func init() {
	layoutCmd.AddCommand(layoutMaximizeCmd, layoutZenCmd, layoutCenterCmd)
}

// layout resize
var layoutResizeCmd = &cobra.Command{
	Use:   "resize <part> <dw> <dh>",
	Short: "Grow or shrink a part by a pixel delta",
	Long: `Grow or shrink a part. Side bars only change in width and the panel
only along its own axis.

Examples:
  workbench layout resize sidebar 40 0
  workbench layout resize panel 0 -- -60`,
	Args: cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		part, err := parsePartArg(args[0])
		if err != nil {
			return err
		}
		dw, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid width delta %q: %w", args[1], err)
		}
		dh, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid height delta %q: %w", args[2], err)
		}

		return withWorkbench(func(ctx context.Context, wb *cli.Workbench) (string, error) {
			if err := wb.Layout.ResizePart(ctx, part, dw, dh); err != nil {
				return "", err
			}
			size := wb.Layout.GetSize(part)
			return fmt.Sprintf("%s is %dx%d", part.ShortName(), size.Width, size.Height), nil
		})
	},
}

// layout focus
var layoutFocusCmd = &cobra.Command{
	Use:   "focus <part>",
	Short: "Move keyboard focus to a part",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		part, err := parsePartArg(args[0])
		if err != nil {
			return err
		}
		return withWorkbench(func(ctx context.Context, wb *cli.Workbench) (string, error) {
			if err := wb.Layout.FocusPart(ctx, part); err != nil {
				return "", err
			}
			return fmt.Sprintf("focus on %s: %t", part.ShortName(), wb.Layout.HasFocus(part)), nil
		})
	},
}

func init() {
	layoutCmd.AddCommand(layoutResizeCmd, layoutFocusCmd)
}

// layout state
var layoutStateCmd = &cobra.Command{
	Use:   "state",
	Short: "List the layout state keys and their values",
	Args:  cobra.NoArgs,
	RunE:  runLayoutState,
}

func init() {
	layoutCmd.AddCommand(layoutStateCmd)
	layoutStateCmd.Flags().BoolVar(&stateJSON, "json", false, "output as JSON")
}

func runLayoutState(_ *cobra.Command, _ []string) error {
	app := GetApp()
	return withWorkbench(func(_ context.Context, wb *cli.Workbench) (string, error) {
		state := wb.Layout.State()

		if stateJSON {
			out := make(map[string]any, len(state))
			for k, v := range state {
				if s, ok := v.(fmt.Stringer); ok {
					out[k] = s.String()
					continue
				}
				out[k] = v
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return "", enc.Encode(out)
		}

		rows := styles.StateRows(state)
		table := styles.NewStyledTable(app.Theme, styles.StateTableColumns(), rows, stateTableWidth, len(rows)+1)
		fmt.Println(table.View())
		return "", nil
	})
}

// layout reset
var layoutResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored layout",
	Long: `Delete the stored layout of the workspace. With --profile the layout
shared by every workspace of the profile is deleted too. Settings kept in the
config file are not touched.`,
	Args: cobra.NoArgs,
	RunE: runLayoutReset,
}

func init() {
	layoutCmd.AddCommand(layoutResetCmd)
	layoutResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation prompt")
	layoutResetCmd.Flags().BoolVar(&resetProfile, "profile-wide", false, "also reset the profile layout")
}

func runLayoutReset(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewLayoutRenderer(app.Theme)

	if !resetYes {
		details := fmt.Sprintf("workspace %q", app.WorkspaceID())
		if resetProfile {
			details += fmt.Sprintf(" and profile %q", app.ProfileID())
		}
		confirm := styles.NewConfirm(app.Theme, "Reset the stored layout?").WithDetails(details)
		final, err := tea.NewProgram(confirmProgram{confirm: confirm}).Run()
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if result, ok := final.(confirmProgram); !ok || !result.confirm.Result() {
			return nil
		}
	}

	if err := app.ResetLayout(app.Ctx(), resetProfile); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderApplied("layout reset for workspace " + app.WorkspaceID()))
	return nil
}

// confirmProgram runs a ConfirmModel on its own.
type confirmProgram struct {
	confirm styles.ConfirmModel
}

func (m confirmProgram) Init() tea.Cmd {
	return nil
}

func (m confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if m.confirm.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m confirmProgram) View() string {
	if m.confirm.Done() {
		return ""
	}
	return m.confirm.View()
}

// layout tui
var layoutTUICmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive layout playground",
	Long: `Open an interactive preview of the layout. Keys toggle parts, move the
side bar and panel, maximize parts and resize the selected part. Changes made
by other workbench processes and edits of the config file show up live.
The layout is saved on exit.`,
	Args: cobra.NoArgs,
	RunE: runLayoutTUI,
}

func init() {
	layoutCmd.AddCommand(layoutTUICmd)
	layoutTUICmd.Flags().DurationVar(&tuiPollPeriod, "poll", 2*time.Second, "how often to look for layout changes of other processes")
	layoutTUICmd.Flags().DurationVar(&tuiAutoSave, "autosave", 5*time.Second, "save the layout this long after the last change")
}

func runLayoutTUI(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	if err := app.Manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config file changes will not be picked up")
	}

	return withWorkbench(func(ctx context.Context, wb *cli.Workbench) (string, error) {
		autosave := snapshot.NewService(wb.Layout, tuiAutoSave)
		autosave.Start(ctx)
		autosave.SetReady()
		defer func() {
			if err := autosave.Stop(ctx); err != nil {
				log.Error().Err(err).Msg("failed to save layout on exit")
			}
		}()

		m := model.NewLayoutModel(ctx, app.Theme, model.LayoutModelConfig{
			Workbench:    wb,
			Settings:     app.Settings,
			PollInterval: tuiPollPeriod,
			AutoSave:     autosave,
		})
		defer m.Close()

		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return "", fmt.Errorf("layout playground: %w", err)
		}
		return "layout saved", nil
	})
}
