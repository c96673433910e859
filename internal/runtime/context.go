// Package runtime provides the application runtime context for Fittrack.
package runtime

import (
	"os"

	"fittrack/internal/model"
	"fittrack/internal/output"
	"fittrack/internal/storage"
	"fittrack/internal/store"
)

// Context holds the application runtime context: the database, the state
// store, and the repositories and formatters commands work with.
type Context struct {
	DB        *storage.DB
	Store     *store.Store
	Formatter *output.Formatter

	// Repositories
	SnapshotRepo *storage.SnapshotRepo
	WeightRepo   *storage.WeightRepo
	SessionRepo  *storage.SessionRepo

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context: opens the database, loads the last
// state snapshot into a fresh store, and subscribes the snapshot repo so
// every transition is persisted.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("FITTRACK_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	snapshotRepo := storage.NewSnapshotRepo(db)
	weightRepo := storage.NewWeightRepo(db)
	sessionRepo := storage.NewSessionRepo(db)

	// Saved state merges over defaults, so snapshots written by older
	// versions with missing fields still load.
	st := store.New(model.DefaultState())
	if saved, ok := snapshotRepo.Load(); ok {
		st.Dispatch(store.Initialize{
			Workouts:       saved.Workouts,
			Goals:          saved.Goals,
			CurrentWorkout: saved.CurrentWorkout,
			Theme:          saved.Theme,
		})
	}
	st.Subscribe(snapshotRepo.Listener())

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:           db,
		Store:        st,
		Formatter:    formatter,
		SnapshotRepo: snapshotRepo,
		WeightRepo:   weightRepo,
		SessionRepo:  sessionRepo,
		Debug:        opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
