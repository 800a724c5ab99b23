// Package session owns the editing state: the current text and settings.
// Every mutation goes through it and recomputes both outputs before it
// returns.
package session

import (
	"github.com/mdtypeset/typeset/markdown"
	"github.com/mdtypeset/typeset/settings"
	"github.com/mdtypeset/typeset/stylesheet"
	"github.com/reconquest/pkg/log"
)

const (
	StatusCopied     = "copied"
	StatusCopyFailed = "copy failed"
)

// Clipboard receives the rendered fragment on Copy.
type Clipboard interface {
	WriteAll(text string) error
}

type Session struct {
	text     string
	model    *settings.Model
	pipeline *markdown.Pipeline

	html   string
	css    string
	status string
}

// New starts a session with text and initial settings and renders it once.
func New(text string, initial settings.Settings, opts markdown.Options) *Session {
	return NewWithPipeline(text, initial, markdown.NewPipeline(opts))
}

func NewWithPipeline(text string, initial settings.Settings, pipeline *markdown.Pipeline) *Session {
	session := &Session{
		text:     text,
		model:    settings.NewModel(initial),
		pipeline: pipeline,
	}

	session.recompute()

	return session
}

// SetText replaces the document and returns the new fragment.
func (s *Session) SetText(text string) string {
	s.text = text
	s.recompute()

	return s.html
}

// Update merges patch into the current settings.
func (s *Session) Update(patch settings.Patch) settings.Settings {
	current := s.model.Set(patch)
	s.recompute()

	return current
}

// ApplyPreset sets the accent color.
func (s *Session) ApplyPreset(color string) settings.Settings {
	current := s.model.ApplyPreset(color)
	s.recompute()

	return current
}

func (s *Session) Text() string {
	return s.text
}

func (s *Session) Settings() settings.Settings {
	return s.model.Get()
}

// HTML returns the last successfully rendered fragment.
func (s *Session) HTML() string {
	return s.html
}

// Stylesheet returns the exported stylesheet for the current settings.
func (s *Session) Stylesheet() string {
	return s.css
}

// Status is the result of the last copy. It is cleared by any mutation.
func (s *Session) Status() string {
	return s.status
}

// Copy writes the current fragment to clipboard. A failure is reported
// through the return value and Status only; there is no retry.
func (s *Session) Copy(clipboard Clipboard) bool {
	err := clipboard.WriteAll(s.html)
	if err != nil {
		log.Errorf(err, "unable to write html to clipboard")
		s.status = StatusCopyFailed
		return false
	}

	log.Debugf(nil, "copied %d bytes of html to clipboard", len(s.html))
	s.status = StatusCopied

	return true
}

func (s *Session) recompute() {
	current := s.model.Get()

	s.status = ""
	s.html = s.pipeline.Update(s.text, current)

	css, err := stylesheet.Export(current)
	if err != nil {
		log.Errorf(err, "unable to export stylesheet, keeping previous one")
		return
	}

	s.css = css
}
