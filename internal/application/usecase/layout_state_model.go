package usecase

import (
	"context"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// LoadOptions describe the window the layout state is loaded for.
type LoadOptions struct {
	// ResetLayout ignores every stored value and starts from defaults.
	ResetLayout     bool
	Container       entity.Dimension
	WorkbenchState  entity.WorkbenchState
	IsWeb           bool
	RemoteAuthority string
}

// LayoutStateModel is the single source of truth for persisted layout
// preferences. Values are cached in memory; profile scoped runtime keys are
// written through immediately, everything else is flushed by Save.
type LayoutStateModel struct {
	storage port.Storage
	config  port.Configuration

	mu        sync.RWMutex
	cache     map[string]any
	isNew     map[entity.StorageScope]bool
	listeners map[int]func(ctx context.Context, change entity.StateChange)
	nextID    int

	unsubscribe []func()
}

// NewLayoutStateModel creates a state model backed by storage and config.
func NewLayoutStateModel(storage port.Storage, config port.Configuration) *LayoutStateModel {
	return &LayoutStateModel{
		storage:   storage,
		config:    config,
		cache:     make(map[string]any),
		isNew:     make(map[entity.StorageScope]bool),
		listeners: make(map[int]func(ctx context.Context, change entity.StateChange)),
	}
}

// OnDidChangeState registers fn for runtime key changes that did not come
// from a setter (legacy settings edits, another window writing profile state).
func (m *LayoutStateModel) OnDidChangeState(fn func(ctx context.Context, change entity.StateChange)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// Load reads every key from storage, computes dynamic defaults and applies overrides.
func (m *LayoutStateModel) Load(ctx context.Context, opts LoadOptions) error {
	log := logging.FromContext(ctx)
	settings := m.config.Settings()
	tuning := normalizeTuning(settings.Tuning)

	for _, scope := range []entity.StorageScope{entity.ScopeWorkspace, entity.ScopeProfile, entity.ScopeApplication} {
		isNew, err := m.storage.IsNew(ctx, scope)
		if err != nil {
			log.Warn().Err(err).Str("scope", scope.String()).Msg("failed to read storage scope state, assuming new")
			isNew = true
		}
		m.setIsNew(scope, isNew)
	}

	if !opts.ResetLayout {
		for _, key := range entity.AllStateKeys() {
			if v, ok := m.loadKeyFromStorage(ctx, key); ok {
				m.put(key, v)
			}
		}
	}

	// Legacy settings win over stored values.
	m.put(entity.KeyActivityBarHidden, isActivityBarHidden(settings))
	m.put(entity.KeyStatusBarHidden, !settings.StatusBarVisible)
	m.put(entity.KeySideBarPosition, sideBarPositionFromSetting(settings))

	defaults := m.dynamicDefaults(settings, tuning, opts)
	for _, key := range entity.AllStateKeys() {
		if m.has(key) {
			continue
		}
		if v, ok := defaults[key.Name()]; ok {
			m.put(key, v)
			continue
		}
		m.put(key, key.DefaultValue())
	}

	m.applyOverrides(ctx, settings, tuning, opts)

	m.unsubscribe = append(m.unsubscribe,
		m.storage.OnDidChangeValue(entity.ScopeProfile, m.onProfileStorageChange),
		m.config.OnDidChangeConfiguration(m.updateStateFromLegacySettings),
	)

	log.Debug().
		Int("width", opts.Container.Width).
		Int("height", opts.Container.Height).
		Bool("reset", opts.ResetLayout).
		Str("workbench_state", opts.WorkbenchState.String()).
		Msg("layout state loaded")
	return nil
}

// Close removes the storage and configuration listeners.
func (m *LayoutStateModel) Close() {
	for _, fn := range m.unsubscribe {
		if fn != nil {
			fn()
		}
	}
	m.unsubscribe = nil
}

func (m *LayoutStateModel) dynamicDefaults(
	settings entity.WorkbenchSettings,
	tuning entity.LayoutTuning,
	opts LoadOptions,
) map[string]any {
	sideSize := defaultSideBarSize(tuning, opts.Container.Width)

	panelPosition := settings.PanelDefaultLocation
	if stored, ok := m.get(entity.KeyPanelPosition).(entity.Position); ok {
		panelPosition = stored
	}
	panelSize := opts.Container.Width / tuning.PanelWidthDivisor
	if panelPosition.IsHorizontal() {
		panelSize = opts.Container.Height / tuning.PanelHeightDivisor
	}

	return map[string]any{
		entity.KeySideBarSize.Name():        sideSize,
		entity.KeyAuxiliaryBarSize.Name():   sideSize,
		entity.KeySideBarHidden.Name():      opts.WorkbenchState == entity.WorkbenchEmpty,
		entity.KeyAuxiliaryBarHidden.Name(): m.isAuxiliaryBarHiddenByDefault(settings, opts),
		entity.KeyPanelSize.Name():          panelSize,
		entity.KeyPanelPosition.Name():      settings.PanelDefaultLocation,
	}
}

func (m *LayoutStateModel) isAuxiliaryBarHiddenByDefault(settings entity.WorkbenchSettings, opts LoadOptions) bool {
	if opts.IsWeb && opts.RemoteAuthority == "" {
		return true
	}

	// Unless visibility is explicitly configured, do not force the auxiliary
	// bar open when it was empty last time.
	if !settings.AuxiliaryBarConfigured {
		if empty, _ := m.get(entity.KeyAuxiliaryBarEmpty).(bool); empty {
			return true
		}
	}

	if m.scopeIsNew(entity.ScopeApplication) && settings.AuxiliaryBarVisibility != entity.AuxiliaryBarHidden {
		return false
	}

	switch settings.AuxiliaryBarVisibility {
	case entity.AuxiliaryBarHidden:
		return true
	case entity.AuxiliaryBarVisibleInWorkspace, entity.AuxiliaryBarMaximizedInWorkspace:
		return opts.WorkbenchState == entity.WorkbenchEmpty
	default:
		return false
	}
}

func (m *LayoutStateModel) applyOverrides(
	ctx context.Context,
	settings entity.WorkbenchSettings,
	tuning entity.LayoutTuning,
	opts LoadOptions,
) {
	newWorkspace := m.scopeIsNew(entity.ScopeWorkspace)

	if newWorkspace {
		visibility := settings.AuxiliaryBarVisibility
		if visibility == entity.AuxiliaryBarMaximized ||
			(visibility == entity.AuxiliaryBarMaximizedInWorkspace && opts.WorkbenchState != entity.WorkbenchEmpty) {
			m.applyAuxiliaryBarMaximizedOverride(ctx)
		}
	}

	// There must always be a content surface: editor and panel are never both
	// hidden on startup unless the auxiliary bar is maximized.
	if GetRuntimeValue(m, entity.KeyPanelHidden) &&
		GetRuntimeValue(m, entity.KeyEditorHidden) &&
		!GetRuntimeValue(m, entity.KeyAuxiliaryBarWasLastMaximized) {
		SetRuntimeValue(ctx, m, entity.KeyEditorHidden, false)
	}

	if newWorkspace && opts.Container.Width <= tuning.DefaultWorkspaceWindowWidth {
		size := defaultSideBarSize(tuning, opts.Container.Width)
		SetInitializationValue(m, entity.KeySideBarSize, size)
		SetInitializationValue(m, entity.KeyAuxiliaryBarSize, size)
	}
}

func (m *LayoutStateModel) applyAuxiliaryBarMaximizedOverride(ctx context.Context) {
	SetRuntimeValue(ctx, m, entity.KeyAuxiliaryBarLastNonMaximizedVisibility, entity.PartVisibility{
		SideBarVisible:      !GetRuntimeValue(m, entity.KeySideBarHidden),
		EditorVisible:       !GetRuntimeValue(m, entity.KeyEditorHidden),
		PanelVisible:        !GetRuntimeValue(m, entity.KeyPanelHidden),
		AuxiliaryBarVisible: !GetRuntimeValue(m, entity.KeyAuxiliaryBarHidden),
	})
	SetRuntimeValue(ctx, m, entity.KeySideBarHidden, true)
	SetRuntimeValue(ctx, m, entity.KeyPanelHidden, true)
	SetRuntimeValue(ctx, m, entity.KeyEditorHidden, true)
	SetRuntimeValue(ctx, m, entity.KeyAuxiliaryBarHidden, false)
	SetRuntimeValue(ctx, m, entity.KeyAuxiliaryBarLastNonMaximizedSize,
		GetInitializationValue(m, entity.KeyAuxiliaryBarSize))
	SetRuntimeValue(ctx, m, entity.KeyAuxiliaryBarWasLastMaximized, true)
}

// Save flushes every key of the requested scopes. Zen mode ignored keys are
// skipped while zen mode is active so the pre-zen values survive a restart.
func (m *LayoutStateModel) Save(ctx context.Context, workspace, profile bool) {
	zen := GetRuntimeValue(m, entity.KeyZenModeActive)
	for _, key := range entity.AllStateKeys() {
		if !(workspace && key.Scope() == entity.ScopeWorkspace) && !(profile && key.Scope() == entity.ScopeProfile) {
			continue
		}
		if zen && key.IsRuntime() && key.ZenModeIgnore() {
			continue
		}
		m.saveKeyToStorage(ctx, key)
	}
}

// Value returns the cached value of any key, for inspection tools.
func (m *LayoutStateModel) Value(key entity.StateKey) any {
	return m.get(key)
}

// GetRuntimeValue returns the cached value of a runtime key.
func GetRuntimeValue[T comparable](m *LayoutStateModel, key *entity.RuntimeKey[T]) T {
	return key.Cast(m.get(key))
}

// GetRuntimeValueFromSetting re-reads the legacy setting mirrored by key
// before returning it. Keys without a mirror behave like GetRuntimeValue.
func GetRuntimeValueFromSetting[T comparable](m *LayoutStateModel, key *entity.RuntimeKey[T]) T {
	settings := m.config.Settings()
	switch entity.StateKey(key) {
	case entity.KeyActivityBarHidden:
		m.put(key, isActivityBarHidden(settings))
	case entity.KeyStatusBarHidden:
		m.put(key, !settings.StatusBarVisible)
	case entity.KeySideBarPosition:
		m.put(key, sideBarPositionFromSetting(settings))
	}
	return GetRuntimeValue(m, key)
}

// SetRuntimeValue caches value and persists it when the key is profile scoped.
func SetRuntimeValue[T comparable](ctx context.Context, m *LayoutStateModel, key *entity.RuntimeKey[T], value T) {
	m.setRuntimeValue(ctx, key, value, true)
}

// GetInitializationValue returns the cached value of an initialization key.
func GetInitializationValue[T comparable](m *LayoutStateModel, key *entity.InitializationKey[T]) T {
	return key.Cast(m.get(key))
}

// SetInitializationValue caches value; it is persisted by the next Save.
func SetInitializationValue[T comparable](m *LayoutStateModel, key *entity.InitializationKey[T], value T) {
	m.put(key, value)
}

func (m *LayoutStateModel) setRuntimeValue(ctx context.Context, key entity.StateKey, value any, mirror bool) {
	m.put(key, value)

	zen, _ := m.get(entity.KeyZenModeActive).(bool)
	if zen && key.ZenModeIgnore() {
		return
	}
	if key.Scope() == entity.ScopeProfile {
		m.saveKeyToStorage(ctx, key)
	}
	if mirror {
		m.updateLegacySettingsFromState(ctx, key, value)
	}
}

// setRuntimeValueAndFire is used for changes coming from outside the layout;
// it only notifies when the value actually changed.
func (m *LayoutStateModel) setRuntimeValueAndFire(ctx context.Context, key entity.StateKey, value any) {
	if m.get(key) == value {
		return
	}
	m.setRuntimeValue(ctx, key, value, false)
	m.fire(ctx, entity.StateChange{Key: key, Value: value})
}

func (m *LayoutStateModel) updateLegacySettingsFromState(ctx context.Context, key entity.StateKey, value any) {
	var (
		setting  string
		newValue any
	)

	switch key {
	case entity.KeyActivityBarHidden:
		setting = entity.SettingActivityBarLocation
		if hidden, _ := value.(bool); hidden {
			newValue = string(entity.ActivityBarLocationHidden)
		}
	case entity.KeyStatusBarHidden:
		setting = entity.SettingStatusBarVisible
		hidden, _ := value.(bool)
		newValue = !hidden
	case entity.KeySideBarPosition:
		setting = entity.SettingSideBarLocation
		if p, ok := value.(entity.Position); ok {
			newValue = p.String()
		}
	default:
		return
	}

	if err := m.config.UpdateSetting(ctx, setting, newValue); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("setting", setting).Msg("failed to update legacy setting")
	}
}

func (m *LayoutStateModel) updateStateFromLegacySettings(ctx context.Context, change entity.ConfigurationChange) {
	settings := m.config.Settings()

	if change.Affects(entity.SettingActivityBarLocation) || change.Affects(entity.SettingActivityBarVisible) {
		m.setRuntimeValueAndFire(ctx, entity.KeyActivityBarHidden, isActivityBarHidden(settings))
	}
	if change.Affects(entity.SettingStatusBarVisible) {
		m.setRuntimeValueAndFire(ctx, entity.KeyStatusBarHidden, !settings.StatusBarVisible)
	}
	if change.Affects(entity.SettingSideBarLocation) {
		m.setRuntimeValueAndFire(ctx, entity.KeySideBarPosition, sideBarPositionFromSetting(settings))
	}
}

func (m *LayoutStateModel) onProfileStorageChange(ctx context.Context, storageKey string) {
	for _, key := range entity.AllStateKeys() {
		if !key.IsRuntime() || key.Scope() != entity.ScopeProfile || key.Target() != entity.TargetUser {
			continue
		}
		if key.StorageKey() != storageKey {
			continue
		}

		value, ok := m.loadKeyFromStorage(ctx, key)
		if !ok {
			value = key.DefaultValue()
		}
		if m.get(key) != value {
			m.put(key, value)
			m.fire(ctx, entity.StateChange{Key: key, Value: value})
		}
	}
}

func (m *LayoutStateModel) saveKeyToStorage(ctx context.Context, key entity.StateKey) {
	log := logging.FromContext(ctx)

	value := m.get(key)
	if value == nil {
		if err := m.storage.Remove(ctx, key.StorageKey(), key.Scope()); err != nil {
			log.Warn().Err(err).Str("key", key.StorageKey()).Msg("failed to remove layout state")
		}
		return
	}

	encoded, err := key.EncodeValue(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key.StorageKey()).Msg("failed to encode layout state")
		return
	}
	if err := m.storage.Store(ctx, key.StorageKey(), encoded, key.Scope(), key.Target()); err != nil {
		log.Warn().Err(err).Str("key", key.StorageKey()).Msg("failed to store layout state")
	}
}

func (m *LayoutStateModel) loadKeyFromStorage(ctx context.Context, key entity.StateKey) (any, bool) {
	log := logging.FromContext(ctx)

	raw, ok, err := m.storage.Get(ctx, key.StorageKey(), key.Scope())
	if err != nil {
		log.Warn().Err(err).Str("key", key.StorageKey()).Msg("failed to read layout state")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	// Remember that this scope had previous state.
	m.setIsNew(key.Scope(), false)

	value, err := key.DecodeValue(raw)
	if err != nil {
		log.Debug().Err(err).Str("key", key.StorageKey()).Str("value", raw).Msg("ignoring unparsable layout state")
		return nil, false
	}
	return value, true
}

func (m *LayoutStateModel) fire(ctx context.Context, change entity.StateChange) {
	m.mu.RLock()
	listeners := make([]func(context.Context, entity.StateChange), 0, len(m.listeners))
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	m.mu.RUnlock()

	for _, fn := range listeners {
		fn(ctx, change)
	}
}

func (m *LayoutStateModel) get(key entity.StateKey) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cache[key.Name()]
}

func (m *LayoutStateModel) has(key entity.StateKey) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.cache[key.Name()]
	return ok
}

func (m *LayoutStateModel) put(key entity.StateKey, value any) {
	m.mu.Lock()
	m.cache[key.Name()] = value
	m.mu.Unlock()
}

func (m *LayoutStateModel) scopeIsNew(scope entity.StorageScope) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isNew[scope]
}

func (m *LayoutStateModel) setIsNew(scope entity.StorageScope, isNew bool) {
	m.mu.Lock()
	m.isNew[scope] = isNew
	m.mu.Unlock()
}

func isActivityBarHidden(settings entity.WorkbenchSettings) bool {
	if settings.ActivityBarVisible != nil {
		return !*settings.ActivityBarVisible
	}
	return settings.ActivityBarLocation != entity.ActivityBarLocationDefault
}

func sideBarPositionFromSetting(settings entity.WorkbenchSettings) entity.Position {
	if settings.SideBarLocation == entity.PositionRight {
		return entity.PositionRight
	}
	return entity.PositionLeft
}

func defaultSideBarSize(tuning entity.LayoutTuning, width int) int {
	return min(tuning.DefaultSideBarSize, width/tuning.SideBarWidthDivisor)
}

func normalizeTuning(t entity.LayoutTuning) entity.LayoutTuning {
	d := entity.DefaultLayoutTuning()
	if t.DefaultSideBarSize <= 0 {
		t.DefaultSideBarSize = d.DefaultSideBarSize
	}
	if t.SideBarWidthDivisor <= 0 {
		t.SideBarWidthDivisor = d.SideBarWidthDivisor
	}
	if t.PanelHeightDivisor <= 0 {
		t.PanelHeightDivisor = d.PanelHeightDivisor
	}
	if t.PanelWidthDivisor <= 0 {
		t.PanelWidthDivisor = d.PanelWidthDivisor
	}
	if t.DefaultWorkspaceWindowWidth <= 0 {
		t.DefaultWorkspaceWindowWidth = d.DefaultWorkspaceWindowWidth
	}
	return t
}
