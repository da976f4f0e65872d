package mcp

import (
	"context"
	"os"
	"time"

	"github.com/austencloud/tka-studio-sub013/internal/logging"
)

// WatchParent monitors for parent process death in a background
// goroutine. When the parent PID changes (the editor disconnected or
// restarted its extension host), it calls cancelFn so the server shuts
// down instead of lingering as a zombie.
//
// This must NOT read from stdin: the MCP SDK's StdioTransport owns
// stdin exclusively, and stealing bytes here would corrupt the JSON-RPC
// stream.
//
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	ppid := os.Getppid()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(2 * time.Second):
				if os.Getppid() != ppid {
					logging.New("mcp").Warn("parent process died, shutting down", "was_pid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
