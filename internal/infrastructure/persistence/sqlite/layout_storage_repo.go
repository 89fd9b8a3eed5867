package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

var _ port.Storage = (*LayoutStorageRepository)(nil)

var storageScopes = []entity.StorageScope{
	entity.ScopeApplication,
	entity.ScopeProfile,
	entity.ScopeWorkspace,
}

const (
	queryGetValue = `SELECT value FROM layout_storage WHERE scope = ? AND owner_id = ? AND key = ?`

	queryListValues = `SELECT key, value FROM layout_storage WHERE scope = ? AND owner_id = ?`

	queryUpsertValue = `INSERT INTO layout_storage (scope, owner_id, key, value, target, updated_at)
VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(scope, owner_id, key) DO UPDATE SET
    value = excluded.value,
    target = excluded.target,
    updated_at = excluded.updated_at`

	queryDeleteValue = `DELETE FROM layout_storage WHERE scope = ? AND owner_id = ? AND key = ?`

	queryDeleteOwner = `DELETE FROM layout_storage WHERE scope = ? AND owner_id = ?`

	queryScopeExists = `SELECT COUNT(*) FROM layout_scope_meta WHERE scope = ? AND owner_id = ?`

	queryTouchScope = `INSERT OR IGNORE INTO layout_scope_meta (scope, owner_id) VALUES (?, ?)`
)

// LayoutStorageRepository stores layout state in SQLite, one row per key.
// Application rows are shared by everyone, profile rows by every workspace of
// a profile and workspace rows by a single workspace.
type LayoutStorageRepository struct {
	db          *sql.DB
	workspaceID string
	profileID   string

	mu sync.Mutex
	// isNew is decided once when the repository is opened.
	isNew map[entity.StorageScope]bool
	// known mirrors the rows last seen per scope; PollChanges diffs against it.
	known    map[entity.StorageScope]map[string]string
	watchers map[entity.StorageScope]map[int]func(ctx context.Context, key string)
	nextID   int
}

// NewLayoutStorageRepository opens the rows of workspaceID and profileID.
// A scope that never held a row before this call reports IsNew.
func NewLayoutStorageRepository(
	ctx context.Context,
	db *sql.DB,
	workspaceID, profileID string,
) (*LayoutStorageRepository, error) {
	if db == nil {
		return nil, errors.New("layout storage requires a database")
	}

	r := &LayoutStorageRepository{
		db:          db,
		workspaceID: workspaceID,
		profileID:   profileID,
		isNew:       make(map[entity.StorageScope]bool),
		known:       make(map[entity.StorageScope]map[string]string),
		watchers:    make(map[entity.StorageScope]map[int]func(ctx context.Context, key string)),
	}

	for _, scope := range storageScopes {
		name, owner := r.owner(scope)

		var count int
		if err := db.QueryRowContext(ctx, queryScopeExists, name, owner).Scan(&count); err != nil {
			return nil, fmt.Errorf("check %s scope: %w", name, err)
		}
		r.isNew[scope] = count == 0

		if _, err := db.ExecContext(ctx, queryTouchScope, name, owner); err != nil {
			return nil, fmt.Errorf("register %s scope: %w", name, err)
		}

		values, err := r.list(ctx, scope)
		if err != nil {
			return nil, err
		}
		r.known[scope] = values
	}

	logging.FromContext(ctx).Debug().
		Str("workspace", workspaceID).
		Str("profile", profileID).
		Bool("new_workspace", r.isNew[entity.ScopeWorkspace]).
		Msg("layout storage opened")

	return r, nil
}

// Get returns the stored value for key in scope.
func (r *LayoutStorageRepository) Get(ctx context.Context, key string, scope entity.StorageScope) (string, bool, error) {
	name, owner := r.owner(scope)

	var value string
	err := r.db.QueryRowContext(ctx, queryGetValue, name, owner, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s/%s: %w", name, key, err)
	}
	return value, true, nil
}

// IsNew reports whether scope held nothing when the repository was opened.
func (r *LayoutStorageRepository) IsNew(_ context.Context, scope entity.StorageScope) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isNew[scope], nil
}

// Store upserts value and notifies the scope watchers when it changed.
func (r *LayoutStorageRepository) Store(
	ctx context.Context,
	key, value string,
	scope entity.StorageScope,
	target entity.StorageTarget,
) error {
	name, owner := r.owner(scope)

	if _, err := r.db.ExecContext(ctx, queryUpsertValue, name, owner, key, value, int(target)); err != nil {
		return fmt.Errorf("store %s/%s: %w", name, key, err)
	}

	r.mu.Lock()
	old, had := r.known[scope][key]
	r.remember(scope, key, value)
	r.mu.Unlock()

	if !had || old != value {
		r.notify(ctx, scope, key)
	}
	return nil
}

// Remove deletes key from scope.
func (r *LayoutStorageRepository) Remove(ctx context.Context, key string, scope entity.StorageScope) error {
	name, owner := r.owner(scope)

	res, err := r.db.ExecContext(ctx, queryDeleteValue, name, owner, key)
	if err != nil {
		return fmt.Errorf("remove %s/%s: %w", name, key, err)
	}

	r.mu.Lock()
	delete(r.known[scope], key)
	r.mu.Unlock()

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		r.notify(ctx, scope, key)
	}
	return nil
}

// Clear removes every row of scope for the current owner.
func (r *LayoutStorageRepository) Clear(ctx context.Context, scope entity.StorageScope) error {
	name, owner := r.owner(scope)

	if _, err := r.db.ExecContext(ctx, queryDeleteOwner, name, owner); err != nil {
		return fmt.Errorf("clear %s: %w", name, err)
	}

	r.mu.Lock()
	removed := sortedKeys(r.known[scope])
	r.known[scope] = make(map[string]string)
	r.mu.Unlock()

	for _, key := range removed {
		r.notify(ctx, scope, key)
	}
	return nil
}

// Snapshot returns every value stored in scope.
func (r *LayoutStorageRepository) Snapshot(ctx context.Context, scope entity.StorageScope) (map[string]string, error) {
	return r.list(ctx, scope)
}

// OnDidChangeValue registers fn for changes in scope. The returned function
// removes it.
func (r *LayoutStorageRepository) OnDidChangeValue(
	scope entity.StorageScope,
	fn func(ctx context.Context, key string),
) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	if r.watchers[scope] == nil {
		r.watchers[scope] = make(map[int]func(ctx context.Context, key string))
	}
	r.watchers[scope][id] = fn

	return func() {
		r.mu.Lock()
		delete(r.watchers[scope], id)
		r.mu.Unlock()
	}
}

// PollChanges re-reads scope and notifies watchers of every key another
// writer added, changed or removed since the last look.
func (r *LayoutStorageRepository) PollChanges(ctx context.Context, scope entity.StorageScope) error {
	current, err := r.list(ctx, scope)
	if err != nil {
		return err
	}

	r.mu.Lock()
	previous := r.known[scope]
	r.known[scope] = current
	r.mu.Unlock()

	changed := make(map[string]struct{})
	for key, value := range current {
		if old, ok := previous[key]; !ok || old != value {
			changed[key] = struct{}{}
		}
	}
	for key := range previous {
		if _, ok := current[key]; !ok {
			changed[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(changed))
	for key := range changed {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if len(keys) > 0 {
		logging.FromContext(ctx).Debug().
			Str("scope", scope.String()).
			Strs("keys", keys).
			Msg("external layout storage change")
	}
	for _, key := range keys {
		r.notify(ctx, scope, key)
	}
	return nil
}

func (r *LayoutStorageRepository) list(ctx context.Context, scope entity.StorageScope) (map[string]string, error) {
	name, owner := r.owner(scope)

	rows, err := r.db.QueryContext(ctx, queryListValues, name, owner)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", name, err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", name, err)
	}
	return values, nil
}

// owner maps scope to its stored scope name and owner id.
func (r *LayoutStorageRepository) owner(scope entity.StorageScope) (name, owner string) {
	switch scope {
	case entity.ScopeWorkspace:
		return scope.String(), r.workspaceID
	case entity.ScopeProfile:
		return scope.String(), r.profileID
	default:
		return entity.ScopeApplication.String(), ""
	}
}

// remember must be called with r.mu held.
func (r *LayoutStorageRepository) remember(scope entity.StorageScope, key, value string) {
	if r.known[scope] == nil {
		r.known[scope] = make(map[string]string)
	}
	r.known[scope][key] = value
}

func (r *LayoutStorageRepository) notify(ctx context.Context, scope entity.StorageScope, key string) {
	r.mu.Lock()
	ids := make([]int, 0, len(r.watchers[scope]))
	for id := range r.watchers[scope] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(context.Context, string), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, r.watchers[scope][id])
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(ctx, key)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range maps.Keys(m) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
