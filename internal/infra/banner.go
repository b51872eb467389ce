package infra

import (
	"fmt"
	"io"
)

// ANSI Color Codes
const (
	ColorReset = "\033[0m"
	ColorGreen = "\033[32m"
	ColorCyan  = "\033[36m"
)

// PrintBanner displays the startup banner with the listen address.
func PrintBanner(w io.Writer, cfg *Config) {
	color := ColorCyan

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s###########################################################%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#                                                         #%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#               📈 Crypto Quote Dashboard                 #%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#                                                         #%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s#   ADDR:    %-44s #%s\n", color, "http://"+cfg.Server.Addr, ColorReset)
	fmt.Fprintf(w, "%s#   REFRESH: %-44s #%s\n", color, cfg.RefreshInterval(), ColorReset)
	fmt.Fprintf(w, "%s#   VERSION: %-44s #%s\n", color, cfg.App.Version, ColorReset)
	fmt.Fprintf(w, "%s#                                                         #%s\n", color, ColorReset)
	fmt.Fprintf(w, "%s###########################################################%s\n", ColorGreen, ColorReset)
	fmt.Fprintln(w)
}
