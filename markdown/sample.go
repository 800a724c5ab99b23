package markdown

import (
	_ "embed"
)

// Sample is the demo article a new session starts with.
//
//go:embed sample.md
var Sample string
