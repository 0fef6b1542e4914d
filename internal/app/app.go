package app

// App is the context shared by CLI commands: the resolved configuration and
// the dependency graph built from it.
type App struct {
	Config Config
	*Wire
}

// New resolves the dependency graph for cfg using streams for console I/O.
func New(cfg Config, streams IO) (*App, error) {
	w, err := NewWire(cfg, streams)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Wire: w}, nil
}
