package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/josteink/wayland-proxy-virtwl/pkg/ctl"
)

func runShell(args []string) {
	fs := flag.NewFlagSet("shell", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `wayland-proxy-ctl shell - Interactive operator console

Usage:
  wayland-proxy-ctl shell [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	display := fs.String("display", "", "Display name (default: $WAYLAND_DISPLAY, then wayland-0)")
	socket := fs.String("socket", "", "Control socket path (overrides -display)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: shell requires a terminal (use 'dump' for scripting)")
		os.Exit(1)
	}

	path, err := resolveSocket(*socket, *display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sh, err := newShell(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sh.run()
}

// shell is the interactive console. Each command writes one line to the
// proxy's control socket, so the console works against a live proxy only.
type shell struct {
	socket string
	rl     *readline.Instance
}

func newShell(socket string) (*shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "wayland-proxy> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &shell{socket: socket, rl: rl}, nil
}

func (s *shell) run() {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		rest := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "dump", "d":
			s.cmdDump(rest)

		case "path", "p":
			fmt.Fprintln(s.rl.Stdout(), s.socket)

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *shell) cmdDump(args []string) {
	reason := defaultReason
	if len(args) > 0 {
		reason = strings.Join(args, " ")
	}

	if err := ctl.Send(s.socket, reason); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "dump failed: %v\n", err)
		return
	}

	fmt.Fprintln(s.rl.Stdout(), "dump requested")
}

func (s *shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
Wayland proxy control:
  dump [reason]  - Append the proxy's retained log history to its dump file
  path           - Print the control socket path in use
  help           - Show this help
  exit           - Leave the shell`)
}
