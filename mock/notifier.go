package mock

import "github.com/fwojciec/vocanote"

var _ vocanote.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of vocanote.Notifier.
type Notifier struct {
	SuccessFn func(msg string)
	AlertFn   func(msg string)
}

func (n *Notifier) Success(msg string) {
	n.SuccessFn(msg)
}

func (n *Notifier) Alert(msg string) {
	n.AlertFn(msg)
}
