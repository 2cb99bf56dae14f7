package main

import (
	"github.com/zsdotkr/picomap/cmd"

	_ "github.com/zsdotkr/picomap/cmd/repl"
	_ "github.com/zsdotkr/picomap/cmd/report"
)

func main() { cmd.Main() }
