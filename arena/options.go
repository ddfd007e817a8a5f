package arena

import (
	"log"

	"github.com/lixenwraith/ball-arena/engine"
)

// Option configures an Arena at construction
type Option func(*options)

type options struct {
	logger *log.Logger
	player engine.AudioPlayer
	flow   []byte
}

// WithLogger routes the game journal to l; nil keeps log.Default()
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAudio attaches a cue player
func WithAudio(p engine.AudioPlayer) Option {
	return func(o *options) {
		o.player = p
	}
}

// WithFlowGraph replaces the configured game-flow graph
func WithFlowGraph(graph []byte) Option {
	return func(o *options) {
		o.flow = graph
	}
}
