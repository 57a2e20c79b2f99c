package display

import (
	"fmt"
	"os"

	"github.com/backmassage/stillreel/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____  _   _ _ _ ____            _
/ ___|| |_(_) | |  _ \ ___  ___| |
\___ \| __| | | | |_) / _ \/ _ \ |
 ___) | |_| | | |  _ <  __/  __/ |
|____/ \__|_|_|_|_| \_\___|\___|_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
