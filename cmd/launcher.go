package cmd

import (
	"fmt"
	"os"
	"strings"
)

type command struct {
	name, desc string
	main       func(args []string)
}

var commands = make(map[string]*command)
var order []string
var pad int

func Register(name, desc string, main func(args []string)) {
	if len(name) > pad {
		pad = len(name)
	}
	commands[name] = &command{name, desc, main}
	order = append(order, name)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Commands:")
	fstr := fmt.Sprintf("%%-%ds | %%s\n", pad)
	for _, name := range order {
		cmd := commands[name]
		fmt.Fprintf(os.Stderr, fstr, cmd.name, cmd.desc)
	}
	fmt.Fprintf(os.Stderr, "\nExample: %s report -code firmware.map\n\n", os.Args[0])
}

// Main dispatches to a registered command. A bare map-file argument runs
// the report command, so `picomap firmware.map` works like the report
// subcommand with default sorting.
func Main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	name := os.Args[1]
	if cmd, ok := commands[name]; ok {
		args := append([]string{strings.Join(os.Args[:2], " ")}, os.Args[2:]...)
		cmd.main(args)
		return
	}
	if _, err := os.Stat(name); err == nil {
		if cmd, ok := commands["report"]; ok {
			args := append([]string{os.Args[0] + " report"}, os.Args[1:]...)
			cmd.main(args)
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Command '%s' not found.\n\n", name)
	usage()
	os.Exit(1)
}
