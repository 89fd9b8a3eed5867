package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every entry logged through ctx with a component name.
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithPart tags every entry logged through ctx with a workbench part.
func WithPart(ctx context.Context, part string) context.Context {
	return withStr(ctx, "part", part)
}

// WithScope tags every entry logged through ctx with the workspace and
// profile whose layout is in use. Empty ids are left out.
func WithScope(ctx context.Context, workspaceID, profileID string) context.Context {
	lc := FromContext(ctx).With()
	if workspaceID != "" {
		lc = lc.Str("workspace", workspaceID)
	}
	if profileID != "" {
		lc = lc.Str("profile", profileID)
	}
	return WithContext(ctx, lc.Logger())
}

func withStr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}
