package output

import (
	"io"
)

// ViewWriter is the interface for writing game views to output.
// Different implementations handle different formats (JSON, text).
type ViewWriter interface {
	// WriteView writes a single view to the output.
	WriteView(v *GameView) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error
}

// TextWriter writes views as board diagrams.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteView writes the diagram and status line of v.
func (tw *TextWriter) WriteView(v *GameView) error {
	s, err := RenderView(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(tw.w, s)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// JSONWriter writes each view as an indented JSON document.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteView writes v immediately.
func (jw *JSONWriter) WriteView(v *GameView) error {
	return WriteJSON(jw.w, v)
}

// Flush is a no-op; views are written immediately.
func (jw *JSONWriter) Flush() error {
	return nil
}

// NewWriter returns the writer for format, "json" or "text".
func NewWriter(w io.Writer, format string) (ViewWriter, bool) {
	switch format {
	case "", "json":
		return NewJSONWriter(w), true
	case "text":
		return NewTextWriter(w), true
	}
	return nil, false
}
