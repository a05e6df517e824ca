package slideshow

// Event is one input to the controller. The set of events is closed: only
// the types in this file implement it.
type Event interface {
	isEvent()
	String() string
}

// Next moves to the following image
type Next struct{}

// Prev moves to the preceding image
type Prev struct{}

// Select jumps to the image with the given file name
type Select struct {
	Name string
}

// TogglePause pauses a running timer or resumes a paused one
type TogglePause struct{}

// Reset restarts the timer without changing the image
type Reset struct{}

// Tick marks the passage of time while the timer is running
type Tick struct{}

// Exit ends the session
type Exit struct{}

func (Next) isEvent()        {}
func (Prev) isEvent()        {}
func (Select) isEvent()      {}
func (TogglePause) isEvent() {}
func (Reset) isEvent()       {}
func (Tick) isEvent()        {}
func (Exit) isEvent()        {}

func (Next) String() string        { return "next" }
func (Prev) String() string        { return "prev" }
func (e Select) String() string    { return "select:" + e.Name }
func (TogglePause) String() string { return "toggle-pause" }
func (Reset) String() string       { return "reset" }
func (Tick) String() string        { return "tick" }
func (Exit) String() string        { return "exit" }
