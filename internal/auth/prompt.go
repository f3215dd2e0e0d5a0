package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// PromptPassword reads one password line from stdin with terminal echo
// suppressed, restoring the terminal state on every exit path including an
// interrupt mid-read. The prompt names the account so the operator knows
// which password is being asked for.
func PromptPassword(user string) (string, error) {
	fd := int(os.Stdin.Fd())

	fmt.Fprintf(os.Stderr, "Password for %s: ", user)

	if !term.IsTerminal(fd) {
		// Piped input: no echo to suppress, just read the line.
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		fmt.Fprintln(os.Stderr)
		return strings.TrimRight(line, "\r\n"), nil
	}

	state, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("terminal state: %w", err)
	}

	// A signal during the read would leave the terminal with echo off;
	// restore it before dying.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case <-sigCh:
			_ = term.Restore(fd, state)
			fmt.Fprintln(os.Stderr)
			os.Exit(130)
		case <-done:
		}
	}()
	defer func() {
		close(done)
		signal.Stop(sigCh)
		_ = term.Restore(fd, state)
		fmt.Fprintln(os.Stderr)
	}()

	pw, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}
