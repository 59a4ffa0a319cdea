package cli

import (
	"context"

	"github.com/thenoetrevino/adflow/internal/app"
)

type appKey struct{}

type optionsKey struct{}

// WithApp makes every command run against a. The caller keeps ownership
// and closes it.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// WithOptions records how GetCLIFromContext should open the application.
func WithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

// GetCLIFromContext returns a CLI for the running command, reusing an
// injected app when there is one.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, borrowed: true}, nil
	}
	opts, _ := ctx.Value(optionsKey{}).(Options)
	return NewCLI(ctx, opts)
}
