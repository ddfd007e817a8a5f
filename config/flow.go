package config

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed flow.yaml
var defaultFlow []byte

// DefaultFlow returns a copy of the embedded game-flow graph
func DefaultFlow() []byte {
	out := make([]byte, len(defaultFlow))
	copy(out, defaultFlow)
	return out
}

// FlowGraph returns the graph at FlowPath, or the embedded one when unset
func (c *Config) FlowGraph() ([]byte, error) {
	if c.FlowPath == "" {
		return DefaultFlow(), nil
	}
	data, err := os.ReadFile(c.FlowPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read flow graph: %w", err)
	}
	return data, nil
}
