// Package manifest describes hook scenarios in YAML and plays them
// against an event registry.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrHookFailed is returned by hooks with the fail action.
var ErrHookFailed = errors.New("hook failed")

// Action is what a hook does when it runs.
type Action string

const (
	ActionPrint Action = "print"
	ActionStop  Action = "stop"
	ActionFail  Action = "fail"
)

// Op is a registry operation performed by a step.
type Op string

const (
	OpDeclare Op = "declare"
	OpTrigger Op = "trigger"
	OpDetach  Op = "detach"
	OpRemove  Op = "remove"
)

// Hook is a handler attached to an event by the manifest.
type Hook struct {
	Event   string
	ID      string
	Action  Action
	Message string
	Args    []any
}

// Label names the hook in output: its id, or its position for anonymous hooks.
func (h Hook) Label(index int) string {
	if h.ID != "" {
		return h.ID
	}
	return fmt.Sprintf("#%d", index)
}

// Step is one registry operation run after the hooks are attached.
// ID is only used by detach.
type Step struct {
	Op    Op
	Event string
	ID    string
}

// Manifest is a parsed hook scenario.
type Manifest struct {
	Events []string
	Hooks  []Hook
	Steps  []Step
}

type yamlManifest struct {
	Events []string   `yaml:"events" validate:"dive,required"`
	Hooks  []yamlHook `yaml:"hooks" validate:"dive"`
	Steps  []yamlStep `yaml:"steps" validate:"dive"`
}

type yamlHook struct {
	Event   string `yaml:"event" validate:"required"`
	ID      string `yaml:"id,omitempty" validate:"omitempty,max=64"`
	Action  string `yaml:"action,omitempty" validate:"omitempty,oneof=print stop fail"`
	Message string `yaml:"message,omitempty"`
	Args    []any  `yaml:"args,omitempty"`
}

type yamlStep struct {
	Op    string `yaml:"op" validate:"required,oneof=declare trigger detach remove"`
	Event string `yaml:"event" validate:"required"`
	ID    string `yaml:"id,omitempty"`
}

var validate = validator.New()

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a manifest document.
func Parse(data []byte) (*Manifest, error) {
	var ym yamlManifest
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := validate.Struct(&ym); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return convertYAMLManifest(&ym), nil
}

func convertYAMLManifest(ym *yamlManifest) *Manifest {
	m := &Manifest{
		Events: ym.Events,
		Hooks:  make([]Hook, len(ym.Hooks)),
		Steps:  make([]Step, len(ym.Steps)),
	}
	for i, yh := range ym.Hooks {
		action := Action(yh.Action)
		if action == "" {
			action = ActionPrint
		}
		m.Hooks[i] = Hook{
			Event:   yh.Event,
			ID:      yh.ID,
			Action:  action,
			Message: yh.Message,
			Args:    yh.Args,
		}
	}
	for i, ys := range ym.Steps {
		m.Steps[i] = Step{Op: Op(ys.Op), Event: ys.Event, ID: ys.ID}
	}
	return m
}
