package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/vocanote"
)

var _ vocanote.Notifier = (*Notifier)(nil)

// Notifier prints success messages to stdout and alerts to stderr.
type Notifier struct {
	stdout io.Writer
	stderr io.Writer
}

// NewNotifier creates a Notifier writing to the given streams.
func NewNotifier(stdout, stderr io.Writer) *Notifier {
	return &Notifier{stdout: stdout, stderr: stderr}
}

// Success prints msg to stdout.
func (n *Notifier) Success(msg string) {
	fmt.Fprintln(n.stdout, msg)
}

// Alert prints msg to stderr.
func (n *Notifier) Alert(msg string) {
	fmt.Fprintf(n.stderr, "alert: %s\n", msg)
}
