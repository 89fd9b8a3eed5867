package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/application/port/mocks"
	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/headless"
)

// stateConfig returns a configuration mock serving settings. The returned
// pointer receives the configuration listener registered by Load.
func stateConfig(
	t *testing.T,
	settings entity.WorkbenchSettings,
) (*mocks.MockConfiguration, *func(context.Context, entity.ConfigurationChange)) {
	t.Helper()

	var listener func(context.Context, entity.ConfigurationChange)
	config := mocks.NewMockConfiguration(t)
	config.EXPECT().Settings().RunAndReturn(func() entity.WorkbenchSettings { return settings }).Maybe()
	config.EXPECT().OnDidChangeConfiguration(mock.Anything).
		RunAndReturn(func(fn func(context.Context, entity.ConfigurationChange)) func() {
			listener = fn
			return func() { listener = nil }
		}).Maybe()
	return config, &listener
}

func folderWindow() usecase.LoadOptions {
	return usecase.LoadOptions{
		Container:      entity.Dimension{Width: 1200, Height: 800},
		WorkbenchState: entity.WorkbenchFolder,
	}
}

func TestLayoutStateModel_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh storage gets dynamic defaults", func(t *testing.T) {
		// Arrange
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		m := usecase.NewLayoutStateModel(headless.NewMemoryStorage(nil), config)

		// Act
		require.NoError(t, m.Load(ctx, folderWindow()))

		// Assert
		assert.False(t, usecase.GetRuntimeValue(m, entity.KeySideBarHidden))
		assert.False(t, usecase.GetRuntimeValue(m, entity.KeyAuxiliaryBarHidden))
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeyPanelHidden))
		assert.False(t, usecase.GetRuntimeValue(m, entity.KeyEditorHidden))
		assert.False(t, usecase.GetRuntimeValue(m, entity.KeyActivityBarHidden))
		assert.Equal(t, entity.PositionBottom, usecase.GetRuntimeValue(m, entity.KeyPanelPosition))
		assert.Equal(t, entity.AlignmentCenter, usecase.GetRuntimeValue(m, entity.KeyPanelAlignment))
		assert.Equal(t, 300, usecase.GetInitializationValue(m, entity.KeySideBarSize))
		assert.Equal(t, 300, usecase.GetInitializationValue(m, entity.KeyAuxiliaryBarSize))
		assert.Equal(t, 266, usecase.GetInitializationValue(m, entity.KeyPanelSize))
	})

	t.Run("narrow new workspace shrinks the side bars", func(t *testing.T) {
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		m := usecase.NewLayoutStateModel(headless.NewMemoryStorage(nil), config)

		require.NoError(t, m.Load(ctx, usecase.LoadOptions{
			Container:      entity.Dimension{Width: 800, Height: 600},
			WorkbenchState: entity.WorkbenchFolder,
		}))

		assert.Equal(t, 200, usecase.GetInitializationValue(m, entity.KeySideBarSize))
		assert.Equal(t, 200, usecase.GetInitializationValue(m, entity.KeyAuxiliaryBarSize))
		assert.Equal(t, 200, usecase.GetInitializationValue(m, entity.KeyPanelSize))
	})

	t.Run("empty window hides the side bars", func(t *testing.T) {
		// Arrange
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		storage := headless.NewMemoryStorage(map[entity.StorageScope]map[string]string{
			entity.ScopeApplication: {"telemetry.firstSession": "false"},
		})
		m := usecase.NewLayoutStateModel(storage, config)

		// Act
		require.NoError(t, m.Load(ctx, usecase.LoadOptions{
			Container:      entity.Dimension{Width: 1200, Height: 800},
			WorkbenchState: entity.WorkbenchEmpty,
		}))

		// Assert
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeySideBarHidden))
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeyAuxiliaryBarHidden))
	})

	t.Run("web without remote hides the auxiliary bar", func(t *testing.T) {
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		m := usecase.NewLayoutStateModel(headless.NewMemoryStorage(nil), config)

		opts := folderWindow()
		opts.IsWeb = true
		require.NoError(t, m.Load(ctx, opts))

		assert.True(t, usecase.GetRuntimeValue(m, entity.KeyAuxiliaryBarHidden))
	})

	t.Run("stored values are read and bad ones ignored", func(t *testing.T) {
		// Arrange
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		top, err := entity.KeyPanelPosition.Encode(entity.PositionTop)
		require.NoError(t, err)
		storage := headless.NewMemoryStorage(map[entity.StorageScope]map[string]string{
			entity.ScopeWorkspace: {
				entity.KeySideBarHidden.StorageKey(): "true",
				entity.KeyEditorHidden.StorageKey():  "not-a-bool",
				entity.KeyPanelPosition.StorageKey(): top,
			},
			entity.ScopeProfile: {
				entity.KeySideBarSize.StorageKey(): "420",
			},
		})
		m := usecase.NewLayoutStateModel(storage, config)

		// Act
		require.NoError(t, m.Load(ctx, folderWindow()))

		// Assert
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeySideBarHidden))
		assert.False(t, usecase.GetRuntimeValue(m, entity.KeyEditorHidden))
		assert.Equal(t, entity.PositionTop, usecase.GetRuntimeValue(m, entity.KeyPanelPosition))
		assert.Equal(t, 420, usecase.GetInitializationValue(m, entity.KeySideBarSize))
		assert.Equal(t, 266, usecase.GetInitializationValue(m, entity.KeyPanelSize))
	})

	t.Run("reset ignores stored values", func(t *testing.T) {
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		storage := headless.NewMemoryStorage(map[entity.StorageScope]map[string]string{
			entity.ScopeWorkspace: {entity.KeySideBarHidden.StorageKey(): "true"},
		})
		m := usecase.NewLayoutStateModel(storage, config)

		opts := folderWindow()
		opts.ResetLayout = true
		require.NoError(t, m.Load(ctx, opts))

		assert.False(t, usecase.GetRuntimeValue(m, entity.KeySideBarHidden))
	})

	t.Run("legacy settings win over stored values", func(t *testing.T) {
		// Arrange
		settings := entity.DefaultWorkbenchSettings()
		settings.ActivityBarLocation = entity.ActivityBarLocationHidden
		settings.StatusBarVisible = false
		settings.SideBarLocation = entity.PositionRight
		config, _ := stateConfig(t, settings)
		storage := headless.NewMemoryStorage(map[entity.StorageScope]map[string]string{
			entity.ScopeWorkspace: {
				entity.KeyActivityBarHidden.StorageKey(): "false",
				entity.KeyStatusBarHidden.StorageKey():   "false",
			},
		})
		m := usecase.NewLayoutStateModel(storage, config)

		// Act
		require.NoError(t, m.Load(ctx, folderWindow()))

		// Assert
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeyActivityBarHidden))
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeyStatusBarHidden))
		assert.Equal(t, entity.PositionRight, usecase.GetRuntimeValue(m, entity.KeySideBarPosition))
	})

	t.Run("editor and panel are not both hidden on startup", func(t *testing.T) {
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		storage := headless.NewMemoryStorage(map[entity.StorageScope]map[string]string{
			entity.ScopeWorkspace: {
				entity.KeyEditorHidden.StorageKey(): "true",
				entity.KeyPanelHidden.StorageKey():  "true",
			},
		})
		m := usecase.NewLayoutStateModel(storage, config)

		require.NoError(t, m.Load(ctx, folderWindow()))

		assert.False(t, usecase.GetRuntimeValue(m, entity.KeyEditorHidden))
	})

	t.Run("maximized auxiliary bar by default in a new workspace", func(t *testing.T) {
		// Arrange
		settings := entity.DefaultWorkbenchSettings()
		settings.AuxiliaryBarVisibility = entity.AuxiliaryBarMaximized
		settings.AuxiliaryBarConfigured = true
		config, _ := stateConfig(t, settings)
		m := usecase.NewLayoutStateModel(headless.NewMemoryStorage(nil), config)

		// Act
		require.NoError(t, m.Load(ctx, folderWindow()))

		// Assert
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeyAuxiliaryBarWasLastMaximized))
		assert.False(t, usecase.GetRuntimeValue(m, entity.KeyAuxiliaryBarHidden))
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeySideBarHidden))
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeyEditorHidden))
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeyPanelHidden))
		assert.Equal(t, 300, usecase.GetRuntimeValue(m, entity.KeyAuxiliaryBarLastNonMaximizedSize))
		assert.Equal(t, entity.PartVisibility{
			SideBarVisible:      true,
			EditorVisible:       true,
			AuxiliaryBarVisible: true,
		}, usecase.GetRuntimeValue(m, entity.KeyAuxiliaryBarLastNonMaximizedVisibility))
	})

	t.Run("storage errors fall back to defaults", func(t *testing.T) {
		// Arrange
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		storage := mocks.NewMockStorage(t)
		locked := errors.New("database is locked")
		storage.EXPECT().IsNew(mock.Anything, mock.Anything).Return(false, locked)
		storage.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return("", false, locked)
		storage.EXPECT().OnDidChangeValue(entity.ScopeProfile, mock.Anything).Return(func() {})
		m := usecase.NewLayoutStateModel(storage, config)

		// Act
		err := m.Load(ctx, folderWindow())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 300, usecase.GetInitializationValue(m, entity.KeySideBarSize))
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeyPanelHidden))
	})
}

func TestLayoutStateModel_SetRuntimeValue(t *testing.T) {
	ctx := context.Background()

	t.Run("profile keys are written through", func(t *testing.T) {
		// Arrange
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		storage := headless.NewMemoryStorage(nil)
		m := usecase.NewLayoutStateModel(storage, config)
		require.NoError(t, m.Load(ctx, folderWindow()))

		// Act
		usecase.SetRuntimeValue(ctx, m, entity.KeyPanelAlignment, entity.AlignmentRight)
		usecase.SetRuntimeValue(ctx, m, entity.KeySideBarHidden, true)

		// Assert
		assert.Equal(t, "right", storage.Snapshot(entity.ScopeProfile)[entity.KeyPanelAlignment.StorageKey()])
		target, ok := storage.Target(entity.KeyPanelAlignment.StorageKey())
		assert.True(t, ok)
		assert.Equal(t, entity.TargetUser, target)
		assert.NotContains(t, storage.Snapshot(entity.ScopeWorkspace), entity.KeySideBarHidden.StorageKey())

		// Act
		m.Save(ctx, true, false)

		// Assert
		assert.Equal(t, "true", storage.Snapshot(entity.ScopeWorkspace)[entity.KeySideBarHidden.StorageKey()])
	})

	t.Run("legacy keys are mirrored to settings", func(t *testing.T) {
		// Arrange
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		config.EXPECT().UpdateSetting(mock.Anything, entity.SettingStatusBarVisible, false).Return(nil).Once()
		config.EXPECT().UpdateSetting(mock.Anything, entity.SettingActivityBarLocation, "hidden").Return(nil).Once()
		config.EXPECT().UpdateSetting(mock.Anything, entity.SettingActivityBarLocation, nil).Return(nil).Once()
		config.EXPECT().UpdateSetting(mock.Anything, entity.SettingSideBarLocation, "right").
			Return(errors.New("read-only settings")).Once()
		m := usecase.NewLayoutStateModel(headless.NewMemoryStorage(nil), config)
		require.NoError(t, m.Load(ctx, folderWindow()))

		// Act
		usecase.SetRuntimeValue(ctx, m, entity.KeyStatusBarHidden, true)
		usecase.SetRuntimeValue(ctx, m, entity.KeyActivityBarHidden, true)
		usecase.SetRuntimeValue(ctx, m, entity.KeyActivityBarHidden, false)
		usecase.SetRuntimeValue(ctx, m, entity.KeySideBarPosition, entity.PositionRight)

		// Assert
		assert.Equal(t, entity.PositionRight, usecase.GetRuntimeValue(m, entity.KeySideBarPosition))
	})

	t.Run("zen mode keeps ignored keys out of storage and settings", func(t *testing.T) {
		// Arrange
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		storage := headless.NewMemoryStorage(nil)
		m := usecase.NewLayoutStateModel(storage, config)
		require.NoError(t, m.Load(ctx, folderWindow()))

		// Act
		usecase.SetRuntimeValue(ctx, m, entity.KeyZenModeActive, true)
		usecase.SetRuntimeValue(ctx, m, entity.KeyStatusBarHidden, true)
		m.Save(ctx, true, true)

		// Assert
		workspace := storage.Snapshot(entity.ScopeWorkspace)
		assert.Equal(t, "true", workspace[entity.KeyZenModeActive.StorageKey()])
		assert.NotContains(t, workspace, entity.KeyStatusBarHidden.StorageKey())
		assert.NotContains(t, workspace, entity.KeyActivityBarHidden.StorageKey())
		assert.True(t, usecase.GetRuntimeValue(m, entity.KeyStatusBarHidden))
	})
}

func TestLayoutStateModel_ExternalChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("profile values written by another window are applied", func(t *testing.T) {
		// Arrange
		config, _ := stateConfig(t, entity.DefaultWorkbenchSettings())
		storage := headless.NewMemoryStorage(nil)
		m := usecase.NewLayoutStateModel(storage, config)
		require.NoError(t, m.Load(ctx, folderWindow()))

		var changes []entity.StateChange
		m.OnDidChangeState(func(_ context.Context, change entity.StateChange) {
			changes = append(changes, change)
		})

		// Act
		require.NoError(t, storage.Store(ctx, entity.KeyPanelAlignment.StorageKey(), "left",
			entity.ScopeProfile, entity.TargetUser))
		require.NoError(t, storage.Store(ctx, entity.KeyPanelLastNonMaximizedHeight.StorageKey(), "500",
			entity.ScopeProfile, entity.TargetMachine))
		usecase.SetRuntimeValue(ctx, m, entity.KeyPanelAlignment, entity.AlignmentRight)

		// Assert
		require.Len(t, changes, 1)
		assert.Equal(t, entity.KeyPanelAlignment, changes[0].Key)
		assert.Equal(t, entity.AlignmentLeft, changes[0].Value)
		assert.Equal(t, 300, usecase.GetRuntimeValue(m, entity.KeyPanelLastNonMaximizedHeight))
	})

	t.Run("legacy setting edits fire once per change", func(t *testing.T) {
		// Arrange
		settings := entity.DefaultWorkbenchSettings()
		config := mocks.NewMockConfiguration(t)
		config.EXPECT().Settings().RunAndReturn(func() entity.WorkbenchSettings { return settings }).Maybe()
		var listener func(context.Context, entity.ConfigurationChange)
		config.EXPECT().OnDidChangeConfiguration(mock.Anything).
			RunAndReturn(func(fn func(context.Context, entity.ConfigurationChange)) func() {
				listener = fn
				return func() {}
			})
		m := usecase.NewLayoutStateModel(headless.NewMemoryStorage(nil), config)
		require.NoError(t, m.Load(ctx, folderWindow()))
		require.NotNil(t, listener)

		var changes []entity.StateChange
		m.OnDidChangeState(func(_ context.Context, change entity.StateChange) {
			changes = append(changes, change)
		})

		// Act
		settings.StatusBarVisible = false
		change := entity.ConfigurationChange{Keys: []string{entity.SettingStatusBarVisible}}
		listener(ctx, change)
		listener(ctx, change)
		listener(ctx, entity.ConfigurationChange{Keys: []string{entity.SettingEditorShowTabs}})

		// Assert
		require.Len(t, changes, 1)
		assert.Equal(t, entity.KeyStatusBarHidden, changes[0].Key)
		assert.Equal(t, true, changes[0].Value)
		assert.True(t, usecase.GetRuntimeValueFromSetting(m, entity.KeyStatusBarHidden))
	})

	t.Run("close removes listeners", func(t *testing.T) {
		config, listener := stateConfig(t, entity.DefaultWorkbenchSettings())
		m := usecase.NewLayoutStateModel(headless.NewMemoryStorage(nil), config)
		require.NoError(t, m.Load(ctx, folderWindow()))
		require.NotNil(t, *listener)

		m.Close()

		assert.Nil(t, *listener)
	})
}
