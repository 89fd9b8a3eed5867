package headless

// Workbench bundles the in-memory services a layout orchestrator needs
// besides storage, configuration and the grid.
type Workbench struct {
	Containers    *ViewContainers
	Composites    *PaneComposites
	Editors       *EditorGroups
	Window        *Window
	Focus         *Focus
	Notifications *Notifications
}

// NewWorkbench returns a workbench with the stock view containers and
// restored editors.
func NewWorkbench(devicePixelRatio float64) *Workbench {
	focus := NewFocus()
	containers := NewViewContainers(DefaultViewContainers())
	return &Workbench{
		Containers:    containers,
		Composites:    NewPaneComposites(containers, focus),
		Editors:       NewEditorGroups(true),
		Window:        NewWindow(devicePixelRatio),
		Focus:         focus,
		Notifications: NewNotifications(),
	}
}
