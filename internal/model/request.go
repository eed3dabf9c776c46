package model

// Default worker bounds for the JSX transpile pool.
const (
	DefaultMinWorkers = 5
	DefaultMaxWorkers = 10
)

// Options are the switches that alter how commands run.
type Options struct {
	Ava             bool
	Jest            bool
	JSX             bool
	JSXTest         bool
	MinWorkers      int
	MaxWorkers      int
	Webpack         bool
	Site            bool
	UpdateSnapshots bool
	Debug           bool
}

// DefaultOptions returns the documented option defaults.
func DefaultOptions() Options {
	return Options{
		MinWorkers: DefaultMinWorkers,
		MaxWorkers: DefaultMaxWorkers,
	}
}

// Request is a single pkgwrap invocation: what to run and how.
type Request struct {
	Commands map[Command]bool
	Options  Options
}

// NewRequest creates a request for the given commands.
func NewRequest(options Options, commands ...Command) Request {
	req := Request{
		Commands: make(map[Command]bool, len(commands)),
		Options:  options,
	}

	for _, c := range commands {
		req.Commands[c] = true
	}

	return req
}

// Has reports whether the command was requested.
func (r Request) Has(c Command) bool {
	return r.Commands[c]
}

// Empty reports whether no command was requested.
func (r Request) Empty() bool {
	for _, requested := range r.Commands {
		if requested {
			return false
		}
	}

	return true
}

// Ordered returns the requested commands in pipeline order.
func (r Request) Ordered() []Command {
	ordered := make([]Command, 0, len(r.Commands))

	for _, c := range Pipeline {
		if r.Has(c) {
			ordered = append(ordered, c)
		}
	}

	return ordered
}
