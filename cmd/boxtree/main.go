// Command boxtree loads layout documents, lays them out and renders them.
//
// Usage:
//
//	boxtree layout menu.yaml               Print every node's rectangle
//	boxtree layout --format json menu.hcl  Same, as JSON
//	boxtree render menu.yaml -o menu.png   Render to a PNG
//	boxtree render --mode cells menu.toml  Render as terminal text
//	boxtree watch menu.yaml                Re-layout whenever the file changes
//	boxtree version                        Print version information
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-boxtree/internal/observability"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		observability.GetLogger().Error("command failed", zap.Error(err))
		observability.Sync()
		os.Exit(1)
	}
	observability.Sync()
}
