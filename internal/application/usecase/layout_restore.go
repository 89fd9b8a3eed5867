package usecase

import (
	"context"
	"fmt"
	"maps"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/logging"
)

// Restore brings back the previous session: zen mode and the centered
// editor are reapplied, then the view containers of the visible side parts
// are reopened while waiting for the editors to be restored.
func (o *LayoutOrchestrator) Restore(ctx context.Context) error {
	log := logging.FromContext(ctx)

	var initialized bool
	err := o.run(ctx, func(ctx context.Context) error {
		if o.grid == nil {
			return nil
		}
		initialized = true

		if o.IsZenModeActive() {
			// Leaving the flag on makes the toggle below exit zen mode.
			o.setZenModeActive(ctx, !o.deps.Config.Settings().ZenMode.Restore)
			o.toggleZenMode(ctx, false, true)
		}
		if GetRuntimeValue(o.state, entity.KeyMainEditorCentered) {
			o.centerMainEditorLayout(ctx, true, true)
		}
		return nil
	})
	if err != nil || !initialized {
		return err
	}

	o.mu.RLock()
	containers := maps.Clone(o.containersToRestore)
	o.mu.RUnlock()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := o.deps.EditorGroups.WhenRestored(gctx); err != nil {
			return fmt.Errorf("failed to wait for editor restore: %w", err)
		}
		o.mu.Lock()
		o.editorsRestored = true
		o.mu.Unlock()
		return nil
	})
	for location, id := range containers {
		g.Go(func() error {
			return o.run(gctx, func(ctx context.Context) error {
				if !o.openViewContainer(ctx, location, id, false) {
					log.Debug().Str("location", location.String()).Str("id", id).Msg("no view container restored")
				}
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return o.run(ctx, func(ctx context.Context) error {
		if o.IsPanelMaximized() || o.IsAuxiliaryBarMaximized() {
			o.focus(ctx)
		}
		log.Info().
			Bool("zen_mode", o.IsZenModeActive()).
			Int("containers", len(containers)).
			Msg("layout restored")
		return nil
	})
}

// ContainerToRestore returns the view container Initialize picked for location.
func (o *LayoutOrchestrator) ContainerToRestore(location entity.ViewContainerLocation) (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	id, ok := o.containersToRestore[location]
	return id, ok
}
