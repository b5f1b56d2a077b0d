// Package opc pushes the engine's brightness frames to an
// OpenPixelControl server such as a fadecandy board. It is an output
// stage: a read-only consumer of the frames, polling them at its own
// cadence, entirely outside the engine's control flow.
package opc

import (
	"bytes"
	"time"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	goopc "github.com/kellydunn/go-opc"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/cwbudde/algo-led/led/frame"
	"github.com/cwbudde/algo-led/led/level"
)

type rgb struct {
	r, g, b uint8
}

// ramp is a per-level color lookup from dark to a full-brightness hue.
type ramp [level.Steps]rgb

func newRamp(hex string) (ramp, errors.Error) {
	var rp ramp
	top, errGo := colorful.Hex(hex)
	if errGo != nil {
		return rp, errors.Wrap(errGo).With("color", hex).With("stack", stack.Trace().TrimRuntime())
	}
	dark, _ := colorful.Hex("#000000")
	for i := range rp {
		c := dark.BlendLab(top, float64(i)/float64(level.Max))
		rp[i].r, rp[i].g, rp[i].b = c.RGB255()
	}
	return rp, nil
}

// Default full-brightness colors: warm white for the strip, one hue
// per color-LED channel.
var (
	DefaultStripColor    = "#FFB24D"
	DefaultChannelColors = []string{"#FF3030", "#30FF30", "#3060FF", "#FFFFFF"}
)

// Sink converts two frames into one OPC channel of pixels: the strip
// outputs first, the color channels after them.
type Sink struct {
	oc    *goopc.Client
	strip *frame.Frame
	color *frame.Frame

	stripRamp ramp
	chanRamps []ramp
}

// NewSink connects to an OPC server ("host:port") and returns a Sink
// rendering the given frames.
func NewSink(server string, strip, color *frame.Frame) (*Sink, errors.Error) {
	s, err := newSink(strip, color)
	if err != nil {
		return nil, err
	}

	s.oc = goopc.NewClient()
	if errGo := s.oc.Connect("tcp", server); errGo != nil {
		return nil, errors.Wrap(errGo).With("url", server).With("stack", stack.Trace().TrimRuntime())
	}
	return s, nil
}

func newSink(strip, color *frame.Frame) (*Sink, errors.Error) {
	s := &Sink{strip: strip, color: color}

	var err errors.Error
	if s.stripRamp, err = newRamp(DefaultStripColor); err != nil {
		return nil, err
	}
	for i := 0; i < color.Len(); i++ {
		hex := DefaultChannelColors[i%len(DefaultChannelColors)]
		rp, err := newRamp(hex)
		if err != nil {
			return nil, err
		}
		s.chanRamps = append(s.chanRamps, rp)
	}
	return s, nil
}

// message renders the current frame contents into one OPC message on
// channel 0.
func (s *Sink) message() *goopc.Message {
	pixels := s.strip.Len() + s.color.Len()
	m := goopc.NewMessage(0)
	m.SetLength(uint16(pixels * 3))

	for i, v := range s.strip.Snapshot() {
		px := s.stripRamp[v]
		m.SetPixelColor(i, px.r, px.g, px.b)
	}
	base := s.strip.Len()
	for i, v := range s.color.Snapshot() {
		px := s.chanRamps[i][v]
		m.SetPixelColor(base+i, px.r, px.g, px.b)
	}
	return m
}

// Send pushes one rendering of the frames to the server.
func (s *Sink) Send() errors.Error {
	if errGo := s.oc.Send(s.message()); errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}

// Run pushes frames at the refresh cadence until quitC closes,
// skipping sends while the levels are unchanged. Errors are offered to
// errorC without blocking the refresh loop.
func (s *Sink) Run(refresh time.Duration, errorC chan<- errors.Error, quitC <-chan struct{}) {
	last := []byte{}

	for {
		select {
		case <-time.After(refresh):
			levels := snapshotBytes(s.strip, s.color)
			if bytes.Equal(last, levels) {
				continue
			}
			last = levels

			if err := s.Send(); err != nil {
				select {
				case errorC <- err:
				case <-time.After(100 * time.Millisecond):
				}
			}
		case <-quitC:
			return
		}
	}
}

func snapshotBytes(frames ...*frame.Frame) []byte {
	var out []byte
	for _, f := range frames {
		for _, v := range f.Snapshot() {
			out = append(out, byte(v))
		}
	}
	return out
}
