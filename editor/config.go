package editor

import "time"

// Config configures a Session. Zero values select the defaults.
type Config struct {
	// Display dimensions in character cells, including the two rows
	// reserved for the status and message bars.
	Rows, Cols int

	// TabStop is the render width of a tab character. Default 8.
	TabStop int

	// QuitConfirm is the number of extra Ctrl-Q presses required to
	// quit with unsaved changes. Default 3.
	QuitConfirm int

	// StatusExpiry is how long a status message stays on the message
	// bar. Default 5s.
	StatusExpiry time.Duration

	// Version is shown in the welcome banner on an empty buffer.
	Version string
}

func (c Config) withDefaults() Config {
	if c.TabStop <= 0 {
		c.TabStop = 8
	}
	if c.QuitConfirm <= 0 {
		c.QuitConfirm = 3
	}
	if c.StatusExpiry <= 0 {
		c.StatusExpiry = 5 * time.Second
	}
	return c
}
