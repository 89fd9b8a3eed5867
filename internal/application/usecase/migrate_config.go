package usecase

import (
	"context"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/logging"
)

// CheckConfigMigrationInput holds the input for checking config migration.
type CheckConfigMigrationInput struct{}

// CheckConfigMigrationOutput holds the result of the migration check.
type CheckConfigMigrationOutput struct {
	// NeedsMigration is true if there are missing or deprecated keys.
	NeedsMigration bool
	// MissingKeys contains info about each missing key.
	MissingKeys []port.KeyInfo
	// DeprecatedKeys lists keys that are no longer read.
	DeprecatedKeys []string
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigInput holds the input for migrating config.
type MigrateConfigInput struct{}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// AddedKeys contains the keys that were added.
	AddedKeys []string
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigUseCase brings a user settings file up to date with the current defaults.
type MigrateConfigUseCase struct {
	migrator port.ConfigMigrator
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{migrator: migrator}
}

// Check reports whether the user config is missing default keys or carries deprecated ones.
func (uc *MigrateConfigUseCase) Check(ctx context.Context, _ CheckConfigMigrationInput) (*CheckConfigMigrationOutput, error) {
	log := logging.FromContext(ctx)

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		log.Warn().Err(err).Msg("config migration check failed")
		return nil, err
	}

	if result == nil || (len(result.MissingKeys) == 0 && len(result.DeprecatedKeys) == 0) {
		log.Debug().Msg("config is up to date, no migration needed")
		return &CheckConfigMigrationOutput{}, nil
	}

	keyInfos := make([]port.KeyInfo, 0, len(result.MissingKeys))
	for _, key := range result.MissingKeys {
		keyInfos = append(keyInfos, uc.migrator.GetKeyInfo(key))
	}

	log.Debug().
		Int("missing_keys", len(result.MissingKeys)).
		Int("deprecated_keys", len(result.DeprecatedKeys)).
		Str("config_file", result.ConfigFile).
		Msg("config migration check completed")

	return &CheckConfigMigrationOutput{
		NeedsMigration: true,
		MissingKeys:    keyInfos,
		DeprecatedKeys: result.DeprecatedKeys,
		ConfigFile:     result.ConfigFile,
	}, nil
}

// Execute adds missing default keys and drops deprecated keys from the user's config file.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context, _ MigrateConfigInput) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		return nil, err
	}
	if result == nil {
		log.Debug().Msg("no migration needed")
		return &MigrateConfigOutput{}, nil
	}

	added, err := uc.migrator.Migrate()
	if err != nil {
		log.Error().Err(err).Msg("config migration failed")
		return nil, err
	}

	log.Info().
		Int("added_keys", len(added)).
		Str("config_file", result.ConfigFile).
		Msg("config migration completed")

	return &MigrateConfigOutput{
		AddedKeys:  added,
		ConfigFile: result.ConfigFile,
	}, nil
}
