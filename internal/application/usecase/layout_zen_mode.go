package usecase

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// IsZenModeActive reports whether zen mode is on.
func (o *LayoutOrchestrator) IsZenModeActive() bool {
	return GetRuntimeValue(o.state, entity.KeyZenModeActive)
}

// ToggleZenMode enters or leaves zen mode.
func (o *LayoutOrchestrator) ToggleZenMode(ctx context.Context) error {
	return o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}
		o.toggleZenMode(ctx, false, false)
		return nil
	})
}

func (o *LayoutOrchestrator) setZenModeActive(ctx context.Context, active bool) {
	SetRuntimeValue(ctx, o.state, entity.KeyZenModeActive, active)
}

// toggleZenMode flips zen mode. When restoring, the exit info persisted by
// the previous session is reused instead of being captured again.
func (o *LayoutOrchestrator) toggleZenMode(ctx context.Context, skipLayout, restoring bool) {
	log := logging.FromContext(ctx)

	var focused entity.Part
	for _, part := range entity.AllParts() {
		if o.HasFocus(part) {
			focused = part
			break
		}
	}

	o.setZenModeActive(ctx, !o.IsZenModeActive())
	if o.zenListener != nil {
		o.zenListener()
		o.zenListener = nil
	}

	settings := o.deps.Config.Settings()
	zen := settings.ZenMode
	exitInfo := GetRuntimeValue(o.state, entity.KeyZenModeExitInfo)
	fullscreen := o.deps.Window.IsFullscreen()
	toggleFullScreen := false

	if o.IsZenModeActive() {
		toggleFullScreen = !fullscreen && zen.FullScreen

		if !restoring {
			exitInfo = entity.ZenModeExitInfo{
				TransitionedToFullScreen:           toggleFullScreen,
				TransitionedToCenteredEditorLayout: !o.IsMainEditorLayoutCentered() && zen.CenterLayout,
				HandleNotificationsDoNotDisturb:    o.deps.Notifications.Filter() == entity.NotificationFilterOff,
				WasVisible: entity.ZenModeWasVisible{
					SideBar:      o.IsVisible(entity.PartSideBar),
					Panel:        o.IsVisible(entity.PartPanel),
					AuxiliaryBar: o.IsVisible(entity.PartAuxiliaryBar),
				},
			}
			SetRuntimeValue(ctx, o.state, entity.KeyZenModeExitInfo, exitInfo)
		}

		o.setPanelHidden(ctx, true, true)
		o.setAuxiliaryBarHidden(ctx, true, true)
		o.setSideBarHidden(ctx, true)

		if zen.HideActivityBar {
			o.setActivityBarHidden(ctx, true)
		}
		if zen.HideStatusBar {
			o.setStatusBarHidden(ctx, true)
		}
		if zen.HideLineNumbers {
			o.deps.EditorGroups.SetLineNumbersHidden(true)
		}
		if zen.ShowTabs != settings.EditorShowTabs {
			o.deps.EditorGroups.EnforceTabsMode(zen.ShowTabs)
		}
		if zen.SilentNotifications && exitInfo.HandleNotificationsDoNotDisturb {
			o.deps.Notifications.SetFilter(entity.NotificationFilterError)
		}
		if zen.CenterLayout {
			o.centerMainEditorLayout(ctx, true, true)
		}

		handleDoNotDisturb := exitInfo.HandleNotificationsDoNotDisturb
		o.zenListener = o.deps.Config.OnDidChangeConfiguration(func(ctx context.Context, change entity.ConfigurationChange) {
			o.dispatch(ctx, func(ctx context.Context) {
				o.onZenModeConfigurationChanged(ctx, change, handleDoNotDisturb)
			})
		})
	} else {
		if exitInfo.WasVisible.Panel {
			o.setPanelHidden(ctx, false, true)
		}
		if exitInfo.WasVisible.AuxiliaryBar {
			o.setAuxiliaryBarHidden(ctx, false, true)
		}
		if exitInfo.WasVisible.SideBar {
			o.setSideBarHidden(ctx, false)
		}
		if !GetRuntimeValueFromSetting(o.state, entity.KeyActivityBarHidden) {
			o.setActivityBarHidden(ctx, false)
		}
		if !GetRuntimeValueFromSetting(o.state, entity.KeyStatusBarHidden) {
			o.setStatusBarHidden(ctx, false)
		}
		if exitInfo.TransitionedToCenteredEditorLayout {
			o.centerMainEditorLayout(ctx, false, true)
		}
		if exitInfo.HandleNotificationsDoNotDisturb {
			o.deps.Notifications.SetFilter(entity.NotificationFilterOff)
		}
		o.deps.EditorGroups.SetLineNumbersHidden(false)
		o.deps.EditorGroups.EnforceTabsMode(settings.EditorShowTabs)

		toggleFullScreen = exitInfo.TransitionedToFullScreen && fullscreen
	}

	if !skipLayout {
		o.relayout()
	}

	if toggleFullScreen {
		if err := o.deps.Window.ToggleFullScreen(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to toggle fullscreen")
		}
	}

	if focused != "" && o.IsVisible(focused) {
		o.deps.Focus.Focus(ctx, focused)
	} else {
		o.focus(ctx)
	}

	active := o.IsZenModeActive()
	log.Debug().Bool("active", active).Bool("restoring", restoring).Msg("zen mode toggled")
	o.fire(ctx, entity.LayoutEvent{Kind: entity.LayoutEventZenModeChanged, Active: active})
}

// onZenModeConfigurationChanged applies zenMode.* edits made while zen mode is on.
func (o *LayoutOrchestrator) onZenModeConfigurationChanged(
	ctx context.Context,
	change entity.ConfigurationChange,
	handleDoNotDisturb bool,
) {
	if !o.IsZenModeActive() {
		return
	}

	settings := o.deps.Config.Settings()
	zen := settings.ZenMode

	if change.Affects(entity.SettingZenModeHideActivityBar) || change.Affects(entity.SettingActivityBarLocation) {
		hidden := zen.HideActivityBar ||
			settings.ActivityBarLocation == entity.ActivityBarLocationTop ||
			settings.ActivityBarLocation == entity.ActivityBarLocationBottom
		o.setActivityBarHidden(ctx, hidden)
	}
	if change.Affects(entity.SettingZenModeHideStatusBar) {
		o.setStatusBarHidden(ctx, zen.HideStatusBar)
	}
	if change.Affects(entity.SettingZenModeCenterLayout) {
		o.centerMainEditorLayout(ctx, zen.CenterLayout, true)
	}
	if change.Affects(entity.SettingZenModeShowTabs) {
		mode := zen.ShowTabs
		if mode == "" {
			mode = entity.EditorTabsMultiple
		}
		o.deps.EditorGroups.EnforceTabsMode(mode)
	}
	if change.Affects(entity.SettingZenModeSilentNotifications) && handleDoNotDisturb {
		filter := entity.NotificationFilterOff
		if zen.SilentNotifications {
			filter = entity.NotificationFilterError
		}
		o.deps.Notifications.SetFilter(filter)
	}
	if change.Affects(entity.SettingZenModeHideLineNumbers) {
		o.deps.EditorGroups.SetLineNumbersHidden(zen.HideLineNumbers)
	}
}

// relayout lays the grid out again over the current container.
func (o *LayoutOrchestrator) relayout() {
	if o.grid == nil {
		return
	}
	container := o.Container()
	o.grid.Layout(container.Width, container.Height)
}
