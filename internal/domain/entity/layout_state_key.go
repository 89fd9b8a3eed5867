package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// StorageKeyPrefix is prepended to every layout state key name when persisted.
const StorageKeyPrefix = "workbench."

// StorageScope selects where a persisted value lives.
type StorageScope int

const (
	// ScopeApplication values are shared by every profile and workspace.
	ScopeApplication StorageScope = -1
	// ScopeProfile values follow the user profile across workspaces.
	ScopeProfile StorageScope = 0
	// ScopeWorkspace values belong to a single workspace.
	ScopeWorkspace StorageScope = 1
)

// String implements fmt.Stringer.
func (s StorageScope) String() string {
	switch s {
	case ScopeApplication:
		return "application"
	case ScopeProfile:
		return "profile"
	case ScopeWorkspace:
		return "workspace"
	default:
		return "unknown"
	}
}

// StorageTarget tells whether a value is a user preference (synced) or
// machine specific.
type StorageTarget int

const (
	TargetUser StorageTarget = iota
	TargetMachine
)

// String implements fmt.Stringer.
func (t StorageTarget) String() string {
	if t == TargetUser {
		return "user"
	}
	return "machine"
}

// Codec converts a typed state value to and from its stored string form.
type Codec[T any] interface {
	Encode(v T) (string, error)
	Decode(s string) (T, error)
}

// BoolCodec stores booleans as "true"/"false".
type BoolCodec struct{}

func (BoolCodec) Encode(v bool) (string, error) { return strconv.FormatBool(v), nil }
func (BoolCodec) Decode(s string) (bool, error) { return strconv.ParseBool(s) }

// IntCodec stores integers in base 10.
type IntCodec struct{}

func (IntCodec) Encode(v int) (string, error) { return strconv.Itoa(v), nil }
func (IntCodec) Decode(s string) (int, error) { return strconv.Atoi(s) }

// PositionCodec stores a Position as its numeric value.
type PositionCodec struct{}

func (PositionCodec) Encode(v Position) (string, error) { return strconv.Itoa(int(v)), nil }

func (PositionCodec) Decode(s string) (Position, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return PositionLeft, err
	}
	p := Position(n)
	if !p.Valid() {
		return PositionLeft, fmt.Errorf("%w: %d", ErrInvalidPosition, n)
	}
	return p, nil
}

// AlignmentCodec stores a PanelAlignment as its name.
type AlignmentCodec struct{}

func (AlignmentCodec) Encode(v PanelAlignment) (string, error) { return string(v), nil }
func (AlignmentCodec) Decode(s string) (PanelAlignment, error) { return ParsePanelAlignment(s) }

// JSONCodec stores structured values as JSON objects.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(v T) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSONCodec[T]) Decode(s string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return v, err
	}
	return v, nil
}

// StateKey is the type-erased view of a layout state key, used by the state
// model to iterate, load and save every key uniformly.
type StateKey interface {
	Name() string
	StorageKey() string
	Scope() StorageScope
	Target() StorageTarget
	IsRuntime() bool
	ZenModeIgnore() bool
	DefaultValue() any
	EncodeValue(v any) (string, error)
	DecodeValue(s string) (any, error)
}

type stateKey[T comparable] struct {
	name          string
	scope         StorageScope
	target        StorageTarget
	defaultValue  T
	codec         Codec[T]
	runtime       bool
	zenModeIgnore bool
}

func (k *stateKey[T]) Name() string          { return k.name }
func (k *stateKey[T]) StorageKey() string    { return StorageKeyPrefix + k.name }
func (k *stateKey[T]) Scope() StorageScope   { return k.scope }
func (k *stateKey[T]) Target() StorageTarget { return k.target }
func (k *stateKey[T]) IsRuntime() bool       { return k.runtime }
func (k *stateKey[T]) ZenModeIgnore() bool   { return k.zenModeIgnore }
func (k *stateKey[T]) DefaultValue() any     { return k.defaultValue }

// Default returns the static default. Dynamic defaults are computed by the state model.
func (k *stateKey[T]) Default() T { return k.defaultValue }

// Encode serializes a typed value with the key's codec.
func (k *stateKey[T]) Encode(v T) (string, error) { return k.codec.Encode(v) }

// Decode parses a stored value with the key's codec.
func (k *stateKey[T]) Decode(s string) (T, error) { return k.codec.Decode(s) }

func (k *stateKey[T]) EncodeValue(v any) (string, error) {
	tv, ok := v.(T)
	if !ok {
		return "", fmt.Errorf("state key %s: unexpected value type %T", k.name, v)
	}
	return k.codec.Encode(tv)
}

func (k *stateKey[T]) DecodeValue(s string) (any, error) {
	v, err := k.codec.Decode(s)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Cast converts a cached value to T, falling back to the default.
func (k *stateKey[T]) Cast(v any) T {
	if tv, ok := v.(T); ok {
		return tv
	}
	return k.defaultValue
}

// RuntimeKey is a state key read and written throughout the session.
type RuntimeKey[T comparable] struct {
	stateKey[T]
}

// InitializationKey is a state key consulted when the grid is first built.
type InitializationKey[T comparable] struct {
	stateKey[T]
}

// KeyOption customizes a state key at registration.
type KeyOption func(*keyOptions)

type keyOptions struct {
	zenModeIgnore bool
}

// WithZenModeIgnore marks a runtime key as not persisted while zen mode is active.
func WithZenModeIgnore() KeyOption {
	return func(o *keyOptions) { o.zenModeIgnore = true }
}

// NewRuntimeKey declares a runtime state key.
func NewRuntimeKey[T comparable](
	name string, scope StorageScope, target StorageTarget, def T, codec Codec[T], opts ...KeyOption,
) *RuntimeKey[T] {
	var o keyOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &RuntimeKey[T]{stateKey[T]{
		name:          name,
		scope:         scope,
		target:        target,
		defaultValue:  def,
		codec:         codec,
		runtime:       true,
		zenModeIgnore: o.zenModeIgnore,
	}}
}

// NewInitializationKey declares an initialization-only state key.
func NewInitializationKey[T comparable](
	name string, scope StorageScope, target StorageTarget, def T, codec Codec[T],
) *InitializationKey[T] {
	return &InitializationKey[T]{stateKey[T]{
		name:         name,
		scope:        scope,
		target:       target,
		defaultValue: def,
		codec:        codec,
	}}
}

// DefaultSideBarSize is the static default width for side bars and panels.
const DefaultSideBarSize = 300

// Layout state keys.
var (
	KeyMainEditorCentered = NewRuntimeKey("editor.centered", ScopeWorkspace, TargetMachine, false, BoolCodec{})

	KeyZenModeActive   = NewRuntimeKey("zenMode.active", ScopeWorkspace, TargetMachine, false, BoolCodec{})
	KeyZenModeExitInfo = NewRuntimeKey("zenMode.exitInfo", ScopeWorkspace, TargetMachine,
		ZenModeExitInfo{}, JSONCodec[ZenModeExitInfo]{})

	KeySideBarSize = NewInitializationKey("sideBar.size", ScopeProfile, TargetMachine,
		DefaultSideBarSize, IntCodec{})
	KeyAuxiliaryBarSize = NewInitializationKey("auxiliaryBar.size", ScopeProfile, TargetMachine,
		DefaultSideBarSize, IntCodec{})
	KeyPanelSize = NewInitializationKey("panel.size", ScopeProfile, TargetMachine,
		DefaultSideBarSize, IntCodec{})

	KeyPanelLastNonMaximizedHeight = NewRuntimeKey("panel.lastNonMaximizedHeight", ScopeProfile, TargetMachine,
		DefaultSideBarSize, IntCodec{})
	KeyPanelLastNonMaximizedWidth = NewRuntimeKey("panel.lastNonMaximizedWidth", ScopeProfile, TargetMachine,
		DefaultSideBarSize, IntCodec{})
	KeyPanelWasLastMaximized = NewRuntimeKey("panel.wasLastMaximized", ScopeWorkspace, TargetMachine,
		false, BoolCodec{})

	KeyAuxiliaryBarWasLastMaximized = NewRuntimeKey("auxiliaryBar.wasLastMaximized", ScopeWorkspace, TargetMachine,
		false, BoolCodec{})
	KeyAuxiliaryBarLastNonMaximizedSize = NewRuntimeKey("auxiliaryBar.lastNonMaximizedSize", ScopeProfile,
		TargetMachine, DefaultSideBarSize, IntCodec{})
	KeyAuxiliaryBarLastNonMaximizedVisibility = NewRuntimeKey("auxiliaryBar.lastNonMaximizedVisibility",
		ScopeWorkspace, TargetMachine, PartVisibility{}, JSONCodec[PartVisibility]{})
	KeyAuxiliaryBarEmpty = NewInitializationKey("auxiliaryBar.empty", ScopeProfile, TargetMachine,
		false, BoolCodec{})

	KeySideBarPosition = NewRuntimeKey("sideBar.position", ScopeWorkspace, TargetMachine,
		PositionLeft, PositionCodec{})
	KeyPanelPosition = NewRuntimeKey("panel.position", ScopeWorkspace, TargetMachine,
		PositionBottom, PositionCodec{})
	KeyPanelAlignment = NewRuntimeKey("panel.alignment", ScopeProfile, TargetUser,
		AlignmentCenter, AlignmentCodec{})

	KeyActivityBarHidden = NewRuntimeKey("activityBar.hidden", ScopeWorkspace, TargetMachine,
		false, BoolCodec{}, WithZenModeIgnore())
	KeySideBarHidden      = NewRuntimeKey("sideBar.hidden", ScopeWorkspace, TargetMachine, false, BoolCodec{})
	KeyEditorHidden       = NewRuntimeKey("editor.hidden", ScopeWorkspace, TargetMachine, false, BoolCodec{})
	KeyPanelHidden        = NewRuntimeKey("panel.hidden", ScopeWorkspace, TargetMachine, true, BoolCodec{})
	KeyAuxiliaryBarHidden = NewRuntimeKey("auxiliaryBar.hidden", ScopeWorkspace, TargetMachine, true, BoolCodec{})
	KeyStatusBarHidden    = NewRuntimeKey("statusBar.hidden", ScopeWorkspace, TargetMachine,
		false, BoolCodec{}, WithZenModeIgnore())
)

// AllStateKeys returns the closed set of layout state keys in declaration order.
func AllStateKeys() []StateKey {
	return []StateKey{
		KeyMainEditorCentered,
		KeyZenModeActive,
		KeyZenModeExitInfo,
		KeySideBarSize,
		KeyAuxiliaryBarSize,
		KeyPanelSize,
		KeyPanelLastNonMaximizedHeight,
		KeyPanelLastNonMaximizedWidth,
		KeyPanelWasLastMaximized,
		KeyAuxiliaryBarWasLastMaximized,
		KeyAuxiliaryBarLastNonMaximizedSize,
		KeyAuxiliaryBarLastNonMaximizedVisibility,
		KeyAuxiliaryBarEmpty,
		KeySideBarPosition,
		KeyPanelPosition,
		KeyPanelAlignment,
		KeyActivityBarHidden,
		KeySideBarHidden,
		KeyEditorHidden,
		KeyPanelHidden,
		KeyAuxiliaryBarHidden,
		KeyStatusBarHidden,
	}
}

// LookupStateKey finds a key by its name or storage key.
func LookupStateKey(name string) (StateKey, bool) {
	for _, k := range AllStateKeys() {
		if k.Name() == name || k.StorageKey() == name {
			return k, true
		}
	}
	return nil, false
}

// StateChange is emitted by the state model whenever a runtime key changes
// because of something other than a direct setter call.
type StateChange struct {
	Key   StateKey
	Value any
}
