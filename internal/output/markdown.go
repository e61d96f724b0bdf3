package output

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown text (the glossary, phase notes) to the
// terminal using Glamour, wrapping to the given width. Pass 0 for width to
// use Glamour's default (80).
//
// With color enabled the style follows the terminal background; otherwise
// the plain "notty" style is used so piped output has no escape codes.
func RenderMarkdown(w io.Writer, content string, width int) error {
	if content == "" {
		return nil
	}

	opts := []glamour.TermRendererOption{glamour.WithEmoji()}
	if colorEnabled() {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, rendered)
	return err
}
