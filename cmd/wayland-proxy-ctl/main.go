// Command wayland-proxy-ctl drives the proxy's crash forensics from the
// command line.
//
// The proxy keeps recent log history in a bounded in-memory ring and
// listens on a per-display control socket; any line written to that
// socket makes it append the retained history to its dump file. This
// tool writes that line.
//
// Usage:
//
//	wayland-proxy-ctl <command> [flags]
//
// Commands:
//
//	dump     Ask the proxy to dump its in-memory log ring now
//	path     Print the control socket path for a display
//	shell    Interactive operator console
//
// Examples:
//
//	# Dump the default display's proxy
//	wayland-proxy-ctl dump
//
//	# Dump a specific display, with a reason recorded in the log
//	wayland-proxy-ctl dump -display wayland-1 -reason "before restart"
//
//	# Where is the control socket?
//	wayland-proxy-ctl path -display wayland-1
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/josteink/wayland-proxy-virtwl/pkg/ctl"
)

const usage = `wayland-proxy-ctl - Wayland proxy crash-forensics control

Usage:
  wayland-proxy-ctl <command> [flags]

Commands:
  dump     Ask the proxy to dump its in-memory log ring now
  path     Print the control socket path for a display
  shell    Interactive operator console

Use "wayland-proxy-ctl <command> -help" for more information about a command.
`

// defaultReason is recorded by the proxy when no -reason is given.
const defaultReason = "dump requested by wayland-proxy-ctl"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "dump":
		runDump(args)
	case "path":
		runPath(args)
	case "shell":
		runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `wayland-proxy-ctl dump - Ask the proxy to dump its log ring now

Usage:
  wayland-proxy-ctl dump [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	display := fs.String("display", "", "Display name (default: $WAYLAND_DISPLAY, then wayland-0)")
	socket := fs.String("socket", "", "Control socket path (overrides -display)")
	reason := fs.String("reason", defaultReason, "Reason recorded in the dumped log")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	path, err := resolveSocket(*socket, *display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := ctl.Send(path, *reason); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("dump requested via %s\n", path)
}

func runPath(args []string) {
	fs := flag.NewFlagSet("path", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `wayland-proxy-ctl path - Print the control socket path for a display

Usage:
  wayland-proxy-ctl path [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	display := fs.String("display", "", "Display name (default: $WAYLAND_DISPLAY, then wayland-0)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	path, err := resolveSocket("", *display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(path)
}

// resolveSocket picks the control socket path: an explicit -socket wins,
// then -display, then $WAYLAND_DISPLAY, then the wayland-0 default.
func resolveSocket(socket, display string) (string, error) {
	if socket != "" {
		return socket, nil
	}
	if display == "" {
		display = os.Getenv("WAYLAND_DISPLAY")
	}
	if display == "" {
		display = "wayland-0"
	}
	return ctl.SocketPath(display)
}
