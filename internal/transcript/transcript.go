package transcript

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/smart-home/internal/config"
	"github.com/oshokin/smart-home/internal/event"
)

// Writer is an event sink that may fail to write.
type Writer interface {
	event.Sink
	// Err returns the first write error, if any.
	Err() error
}

// errUnknownFormat is returned by New for an unsupported format.
var errUnknownFormat = errors.New("unknown transcript format")

// New returns the renderer for format writing to w.
//
//nolint:ireturn // Callers only need the sink and its error.
func New(format string, w io.Writer) (Writer, error) {
	switch format {
	case config.FormatText, "":
		return NewText(w), nil
	case config.FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

// sticky remembers the first error.
type sticky struct {
	err error
	mu  sync.Mutex
}

func (s *sticky) failed() bool {
	return s.err != nil
}

func (s *sticky) keep(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Err returns the first write error.
func (s *sticky) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Text renders messages line by line.
type Text struct {
	sticky

	// w receives the transcript.
	w io.Writer
	// started is set after the first section header.
	started bool
}

// NewText creates a text renderer.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// Emit implements event.Sink.
func (t *Text) Emit(e event.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failed() {
		return
	}

	if e.Kind == event.KindSection {
		if t.started {
			if _, err := io.WriteString(t.w, "\n"); err != nil {
				t.keep(fmt.Errorf("write transcript: %w", err))

				return
			}
		}

		t.started = true
	}

	if _, err := fmt.Fprintln(t.w, e.Message); err != nil {
		t.keep(fmt.Errorf("write transcript: %w", err))
	}
}

// JSON renders one object per line.
type JSON struct {
	sticky

	// w receives the transcript.
	w io.Writer
	// options controls protojson output.
	options protojson.MarshalOptions
}

// NewJSON creates a JSON-lines renderer.
func NewJSON(w io.Writer) *JSON {
	return &JSON{
		w: w,
		options: protojson.MarshalOptions{
			EmitUnpopulated: true,
		},
	}
}

// Emit implements event.Sink.
func (j *JSON) Emit(e event.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.failed() {
		return
	}

	data, err := Encode(e, j.options)
	if err != nil {
		j.keep(err)

		return
	}

	data = append(data, '\n')
	if _, err := j.w.Write(data); err != nil {
		j.keep(fmt.Errorf("write transcript: %w", err))
	}
}

// Encode marshals e as a protobuf Struct in JSON form.
func Encode(e event.Event, options protojson.MarshalOptions) ([]byte, error) {
	msg, err := structpb.NewStruct(map[string]any{
		"id":        e.ID.String(),
		"kind":      string(e.Kind),
		"source":    e.Source,
		"message":   e.Message,
		"timestamp": e.Timestamp.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("build event struct: %w", err)
	}

	data, err := options.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode event: %w", err)
	}

	return data, nil
}
