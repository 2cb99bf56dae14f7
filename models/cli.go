package models

import (
	"flag"
	"fmt"
	"os"
)

// PrintFlags renders a flag set as aligned columns, the default value in
// parentheses between name and description.
func PrintFlags(fs *flag.FlagSet) {
	var flags []*flag.Flag
	wname, wdef := 0, 0
	fs.VisitAll(func(f *flag.Flag) {
		flags = append(flags, f)
		if len(f.Name) > wname {
			wname = len(f.Name)
		}
		if len(f.DefValue) > wdef {
			wdef = len(f.DefValue)
		}
	})
	for _, f := range flags {
		def := ""
		if f.DefValue != "" && f.DefValue != "false" {
			def = "(" + f.DefValue + ")"
		}
		fmt.Fprintf(os.Stderr, "  -%-*s %-*s %s\n", wname, f.Name, wdef+2, def, f.Usage)
	}
}
