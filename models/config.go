package models

import "io"

// Config carries the settings shared by every command.
type Config struct {
	Color   bool
	Output  io.Writer
	Rules   Rules
	Verbose bool
}
