package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/infrastructure/config"
)

var (
	configYes        bool
	schemaJSON       bool
	schemaJSONSchema bool
	schemaSection    string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View configuration status, list the available settings and migrate old config files.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and database paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file status and migration availability",
	Long:  `Display the config file path and check if any new settings are available.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigStatus,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration as loaded: defaults merged with the config file,
legacy settings rewritten and environment overrides applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List every setting with its type and default",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to config file",
	Long: `Compares your config file with available defaults, adds any missing settings
and drops settings that are no longer read.

Existing settings are never modified. Legacy settings are rewritten to their
current form before the comparison.`,
	Args: cobra.NoArgs,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configStatusCmd, configShowCmd, configSchemaCmd, configMigrateCmd)
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
	configSchemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "output the key list as JSON")
	configSchemaCmd.Flags().BoolVar(&schemaJSONSchema, "json-schema", false, "output the JSON schema of the config file")
	configSchemaCmd.Flags().StringVarP(&schemaSection, "section", "s", "", "only list one section (title or key prefix, e.g. zenMode)")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Println(renderer.RenderPath("config", app.Manager.GetConfigFile()))
	fmt.Println(renderer.RenderPath("database", app.DBPath()))
	fmt.Println(renderer.RenderPath("workspace", app.WorkspaceID()))
	fmt.Println(renderer.RenderPath("profile", app.ProfileID()))
	return nil
}

// runConfigStatus shows config file path and migration status.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	configFile := app.Manager.GetConfigFile()

	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Println(renderer.RenderNoConfigFile(configFile))
		return nil
	}

	uc, err := newMigrateUseCase(configFile)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	result, err := uc.Check(app.Ctx(), usecase.CheckConfigMigrationInput{})
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if !result.NeedsMigration {
		fmt.Println(renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(configFile, len(result.MissingKeys), len(result.DeprecatedKeys)))
	fmt.Println(renderer.RenderMigrateHint())
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	enc := toml.NewEncoder(os.Stdout)
	enc.SetIndentTables(true)
	if err := enc.Encode(app.Manager.Get()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if schemaJSONSchema {
		data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: schemaSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if schemaJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}

	fmt.Println(renderer.Render(out.Keys))
	return nil
}

func newMigrateUseCase(configFile string) (*usecase.MigrateConfigUseCase, error) {
	migrator, err := config.NewMigrator(configFile)
	if err != nil {
		return nil, err
	}
	return usecase.NewMigrateConfigUseCase(migrator), nil
}

// runConfigMigrate runs the migration with optional confirmation.
func runConfigMigrate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	configFile := app.Manager.GetConfigFile()

	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Println(renderer.RenderNoConfigFile(configFile))
		return nil
	}

	migrator, err := config.NewMigrator(configFile)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	uc := usecase.NewMigrateConfigUseCase(migrator)

	ctx := app.Ctx()
	result, err := uc.Check(ctx, usecase.CheckConfigMigrationInput{})
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if !result.NeedsMigration {
		fmt.Println(renderer.RenderUpToDate(configFile))
		return nil
	}

	pending, err := migrator.CheckMigration()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderConfigInfo(configFile, len(result.MissingKeys), len(result.DeprecatedKeys)))
	fmt.Println(renderer.RenderDiff(config.NewDiffFormatter(migrator).FormatMigrationAsDiff(pending)))

	removed := len(result.DeprecatedKeys)
	if configYes {
		return executeMigration(ctx, uc, renderer, removed)
	}

	return runMigrateWithConfirmation(ctx, uc, renderer, app.Theme, removed)
}

// executeMigration performs the actual migration.
func executeMigration(ctx context.Context, uc *usecase.MigrateConfigUseCase, renderer *styles.ConfigRenderer, removed int) error {
	result, err := uc.Execute(ctx, usecase.MigrateConfigInput{})
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderMigrationSuccess(len(result.AddedKeys), removed, result.ConfigFile))
	return nil
}

// migrateState represents the current state of the migrate confirmation.
type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateModel is the bubbletea model for the migrate confirmation.
type migrateModel struct {
	ctx      context.Context
	spinner  spinner.Model
	renderer *styles.ConfigRenderer
	confirm  styles.ConfirmModel
	state    migrateState
	uc       *usecase.MigrateConfigUseCase
	removed  int

	result   string
	err      error
	quitting bool
}

// migrateResultMsg is sent when the migration completes.
type migrateResultMsg struct {
	output *usecase.MigrateConfigOutput
	err    error
}

func newMigrateModel(
	ctx context.Context,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	uc *usecase.MigrateConfigUseCase,
	removed int,
) migrateModel {
	return migrateModel{
		ctx:      ctx,
		spinner:  styles.NewSpinner(theme),
		renderer: renderer,
		confirm:  styles.NewConfirm(theme, "Apply these changes to the config file?"),
		state:    migrateStateConfirm,
		uc:       uc,
		removed:  removed,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.result = m.renderer.RenderMigrationSuccess(len(msg.output.AddedKeys), m.removed, msg.output.ConfigFile)
		return m, tea.Quit
	}

	if m.state == migrateStateConfirm {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)

		if m.confirm.Done() {
			if m.confirm.Result() {
				m.state = migrateStateRunning
				return m, m.runMigration()
			}
			m.quitting = true
			return m, tea.Quit
		}

		return m, cmd
	}

	return m, nil
}

func (m migrateModel) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		return m.renderer.RenderError(m.err)
	}

	switch m.state {
	case migrateStateRunning:
		return m.spinner.View() + " Migrating config..."
	case migrateStateDone:
		return m.result
	default:
		return m.confirm.View()
	}
}

func (m migrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		result, err := m.uc.Execute(m.ctx, usecase.MigrateConfigInput{})
		return migrateResultMsg{output: result, err: err}
	}
}

// runMigrateWithConfirmation runs the migrate with an interactive confirmation dialog.
func runMigrateWithConfirmation(
	ctx context.Context,
	uc *usecase.MigrateConfigUseCase,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	removed int,
) error {
	m := newMigrateModel(ctx, renderer, theme, uc, removed)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}
