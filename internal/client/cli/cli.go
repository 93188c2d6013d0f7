// Package cli implements the client commands. Each command works against
// the local store first; the network is only involved through the sync
// engine.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/kinetrack/kinetrack/internal/client/data"
	"github.com/kinetrack/kinetrack/internal/client/sync"
)

// App bundles the wired client components the commands operate on.
type App struct {
	Data   *data.Service
	Engine *sync.Engine
	Out    io.Writer
	UserID string
}

// NewApp creates the command surface. Output defaults to stdout.
func NewApp(dataService *data.Service, engine *sync.Engine, userID string, out io.Writer) *App {
	if out == nil {
		out = os.Stdout
	}
	return &App{
		Data:   dataService,
		Engine: engine,
		UserID: userID,
		Out:    out,
	}
}

// PrintUsage prints command help.
func PrintUsage() {
	fmt.Println("KineTrack client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  kinetrack [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  add <type> <json>   Record a measurement (types: pose_analysis, rom_measurement)")
	fmt.Println("  list                List local measurements with sync status")
	fmt.Println("  status              Show sync engine state")
	fmt.Println("  sync                Force a sync pass now")
	fmt.Println("  retry               Reset failed measurements and sync")
	fmt.Println("  prune               Delete old synced measurements")
	fmt.Println("  watch               Stream measurement list changes")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -server URL         Server base URL")
	fmt.Println("  -db PATH            Local database path")
	fmt.Println("  -user ID            User id")
	fmt.Println("  -token TOKEN        Access token")
	fmt.Println("  -version            Show version information")
}
