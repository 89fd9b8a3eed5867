package entity

// PartVisibility is the visibility tuple captured before the auxiliary bar
// is maximized and restored when it leaves the maximized state.
type PartVisibility struct {
	SideBarVisible      bool `json:"sideBarVisible"`
	EditorVisible       bool `json:"editorVisible"`
	PanelVisible        bool `json:"panelVisible"`
	AuxiliaryBarVisible bool `json:"auxiliaryBarVisible"`
}

// ZenModeWasVisible records which side parts were shown before zen mode.
type ZenModeWasVisible struct {
	AuxiliaryBar bool `json:"auxiliaryBar"`
	Panel        bool `json:"panel"`
	SideBar      bool `json:"sideBar"`
}

// ZenModeExitInfo is everything zen mode changed that must be undone on exit.
type ZenModeExitInfo struct {
	TransitionedToFullScreen           bool              `json:"transitionedToFullScreen"`
	TransitionedToCenteredEditorLayout bool              `json:"transitionedToCenteredEditorLayout"`
	HandleNotificationsDoNotDisturb    bool              `json:"handleNotificationsDoNotDisturbMode"`
	WasVisible                         ZenModeWasVisible `json:"wasVisible"`
}

// MaximizeTransition is the state of the auxiliary bar maximize state machine.
// Visibility listeners must not react while a transition is in flight.
type MaximizeTransition int

const (
	TransitionStable MaximizeTransition = iota
	TransitionEnteringMaximize
	TransitionExitingMaximize
)

// String implements fmt.Stringer.
func (t MaximizeTransition) String() string {
	switch t {
	case TransitionStable:
		return "stable"
	case TransitionEnteringMaximize:
		return "entering-maximize"
	case TransitionExitingMaximize:
		return "exiting-maximize"
	default:
		return "unknown"
	}
}

// InTransition reports whether a maximize or restore is in progress.
func (t MaximizeTransition) InTransition() bool {
	return t != TransitionStable
}

// NotificationFilter mirrors the notification service do-not-disturb levels.
type NotificationFilter int

const (
	NotificationFilterOff NotificationFilter = iota
	NotificationFilterError
)

// LayoutEventKind enumerates the notifications the layout orchestrator emits.
type LayoutEventKind int

const (
	LayoutEventPartVisibilityChanged LayoutEventKind = iota
	LayoutEventZenModeChanged
	LayoutEventPanelPositionChanged
	LayoutEventPanelAlignmentChanged
	LayoutEventAuxiliaryBarMaximizeChanged
	LayoutEventMainEditorCenteredChanged
	LayoutEventWindowMaximizedChanged
	LayoutEventContainerLayout
)

// String implements fmt.Stringer.
func (k LayoutEventKind) String() string {
	switch k {
	case LayoutEventPartVisibilityChanged:
		return "part-visibility-changed"
	case LayoutEventZenModeChanged:
		return "zen-mode-changed"
	case LayoutEventPanelPositionChanged:
		return "panel-position-changed"
	case LayoutEventPanelAlignmentChanged:
		return "panel-alignment-changed"
	case LayoutEventAuxiliaryBarMaximizeChanged:
		return "auxiliary-bar-maximized-changed"
	case LayoutEventMainEditorCenteredChanged:
		return "main-editor-centered-changed"
	case LayoutEventWindowMaximizedChanged:
		return "window-maximized-changed"
	case LayoutEventContainerLayout:
		return "container-layout"
	default:
		return "unknown"
	}
}

// LayoutEvent is a single notification with the new value attached.
// Only the fields relevant to Kind are set.
type LayoutEvent struct {
	Kind      LayoutEventKind
	Part      Part
	Visible   bool
	Active    bool
	Position  Position
	Alignment PanelAlignment
	WindowID  int
	Dimension Dimension
}
