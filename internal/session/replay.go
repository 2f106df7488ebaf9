package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hyperjump/tadoru/internal/tree"
)

// TargetRoot addresses the tree root in a replay step.
const TargetRoot = "root"

// Script is a recorded sequence of expansions, typically loaded from a JSON
// file. Each step picks a target (the root, or a node popped from either
// end of the leaf queue) and expands it with its items.
type Script struct {
	Steps []Step `json:"steps"`
}

// Step is one expansion in a script. Expand is "root" (default), "front" or
// "back".
type Step struct {
	Expand string       `json:"expand,omitempty"`
	Items  []ExpandItem `json:"items"`
}

// ReplayResult reports what a replay did.
type ReplayResult struct {
	Steps      int       `json:"steps"`
	NodesAdded int       `json:"nodes_added"`
	Stats      StatsView `json:"stats"`
}

// LoadScript reads and parses a JSON script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	var script Script
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &script, nil
}

// Replay runs every step of the script against the session, atomically:
// no other session calls interleave, and the first failing step aborts the
// rest. Steps before the failure keep their effect.
func (s *Session) Replay(script *Script) (*ReplayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &ReplayResult{}
	for i, step := range script.Steps {
		var target *tree.Node
		switch step.Expand {
		case TargetRoot, "":
			target = s.tree.Root()
		case EndFront, EndBack:
			n, err := s.popLocked(step.Expand)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			target = n
		default:
			return nil, fmt.Errorf("step %d: unknown expand target %q", i, step.Expand)
		}

		views, err := s.expandLocked(target, step.Items)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		result.Steps++
		result.NodesAdded += len(views)
	}
	result.Stats = s.statsLocked()
	return result, nil
}
