package port

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
)

// PaneCompositeService manages the view containers shown inside the side
// bar, the panel and the auxiliary bar.
type PaneCompositeService interface {
	// ActivePaneCompositeID returns the open container in location, if any.
	ActivePaneCompositeID(location entity.ViewContainerLocation) (string, bool)

	// LastActivePaneCompositeID returns the container that was open last in location.
	LastActivePaneCompositeID(location entity.ViewContainerLocation) string

	// VisiblePaneCompositeIDs returns the containers that can be shown in location.
	VisiblePaneCompositeIDs(location entity.ViewContainerLocation) []string

	// OpenPaneComposite opens id in location. It reports false when the
	// container could not be opened.
	OpenPaneComposite(ctx context.Context, id string, location entity.ViewContainerLocation, focus bool) (bool, error)

	// HideActivePaneComposite closes whatever is open in location.
	HideActivePaneComposite(ctx context.Context, location entity.ViewContainerLocation)

	// OnDidChangePaneComposites is called after a container opens or closes.
	OnDidChangePaneComposites(fn func(ctx context.Context, location entity.ViewContainerLocation)) func()
}

// ViewContainerRegistry knows which view containers exist and whether they
// have content to show.
type ViewContainerRegistry interface {
	DefaultViewContainerID(location entity.ViewContainerLocation) (string, bool)
	ViewContainerIDs(location entity.ViewContainerLocation) []string
	HasViews(id string) bool
}

// EditorGroupService is the editor part's group model.
type EditorGroupService interface {
	GroupCount() int
	ActiveGroupSize() entity.Dimension
	ResizeActiveGroup(size entity.Dimension)
	Layout() entity.EditorGroupsLayout
	HasMaximizedGroup() bool
	VisibleEditors() []entity.VisibleEditor

	IsLayoutCentered() bool
	CenterLayout(active bool)

	// SetLineNumbersHidden overrides line numbers in every editor; false
	// restores the configured value.
	SetLineNumbersHidden(hidden bool)

	// EnforceTabsMode applies a temporary tabs mode to all groups.
	EnforceTabsMode(mode entity.EditorTabsMode)

	// WhenRestored blocks until the editors of the previous session are restored.
	WhenRestored(ctx context.Context) error

	OnDidChangeEditorGroups(fn func(ctx context.Context, kind entity.EditorGroupEventKind)) func()
}

// WindowHost is the native window around the workbench.
type WindowHost interface {
	IsFullscreen() bool
	ToggleFullScreen(ctx context.Context) error
	DevicePixelRatio() float64
	OnDidChangeFullscreen(fn func(ctx context.Context, fullscreen bool)) func()
}

// PartFocus tracks and moves keyboard focus between parts.
type PartFocus interface {
	HasFocus(part entity.Part) bool
	Focus(ctx context.Context, part entity.Part)
}

// NotificationFilterService controls the do-not-disturb filter.
type NotificationFilterService interface {
	Filter() entity.NotificationFilter
	SetFilter(filter entity.NotificationFilter)
}
