package util

import (
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
)

type FatalErrorHandler struct {
	ContinueOnError bool
}

func NewErrorHandler(continueOnError bool) *FatalErrorHandler {
	return &FatalErrorHandler{
		ContinueOnError: continueOnError,
	}
}

// Handle logs err and returns nil when processing may go on with the next
// file. Otherwise it returns err wrapped with the message, to be returned
// from the command.
func (h *FatalErrorHandler) Handle(err error, format string, args ...interface{}) error {
	if h.ContinueOnError {
		log.Errorf(err, format, args...)
		return nil
	}

	return karma.Format(err, format, args...)
}
