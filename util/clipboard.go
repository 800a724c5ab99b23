package util

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/mdtypeset/typeset/session"
)

var ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")

// SystemClipboard writes to the clipboard of the desktop session.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}

	return clipboard.WriteAll(text)
}

// Clipboard is used by the render command for --copy.
var Clipboard session.Clipboard = SystemClipboard{}
