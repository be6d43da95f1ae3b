package cmd

import (
	"fmt"
	"io"

	"github.com/PolarWolf314/gkms/internal/ui"

	"github.com/common-nighthawk/go-figure"
)

// PrintBanner writes the gkms banner and a pointer to the help text.
func PrintBanner(w io.Writer) {
	banner := figure.NewFigure("gkms", "small", true)
	fmt.Fprint(w, ui.Success.Sprint(banner.String()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Encrypt, decrypt and create keys with Google Cloud KMS.")
	fmt.Fprintln(w, ui.Hint("Run "+ui.Command.Sprint("gkms --help")+" to see available commands."))
}
