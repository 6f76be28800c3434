// Package script runs the tengo caption hooks that react to day rollover,
// checkpoint stops, and tour completion.
package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/cityfolio/prefabs"
)

// DefaultScript is the hook script loaded when none is named.
const DefaultScript = "city_events.tengo"

const hookDispatchScript = `
if __hook == "day" {
	__caption = on_day(__day)
} else if __hook == "checkpoint" {
	__caption = on_checkpoint(__ordinal, __title)
} else if __hook == "finish" {
	__caption = on_finish(__day)
}
`

// Runtime is a compiled hook script. The script must define on_day(day),
// on_checkpoint(ordinal, title), and on_finish(day), each returning the
// caption string to show ("" leaves the caption alone).
type Runtime struct {
	compiled *tengo.Compiled
}

// Load compiles the named hook script from prefabs.
func Load(name string) (*Runtime, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultScript
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return New(src)
}

// New compiles hook source.
func New(src []byte) (*Runtime, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + hookDispatchScript))
	_ = script.Add("__hook", "")
	_ = script.Add("__day", 0)
	_ = script.Add("__ordinal", 0)
	_ = script.Add("__title", "")
	_ = script.Add("__caption", "")

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}

	return &Runtime{compiled: compiled}, nil
}

// OnDay runs the on_day hook.
func (r *Runtime) OnDay(day int) (string, error) {
	return r.run("day", day, 0, "")
}

// OnCheckpoint runs the on_checkpoint hook. ordinal is zero-based.
func (r *Runtime) OnCheckpoint(ordinal int, title string) (string, error) {
	return r.run("checkpoint", 0, ordinal, title)
}

// OnFinish runs the on_finish hook.
func (r *Runtime) OnFinish(day int) (string, error) {
	return r.run("finish", day, 0, "")
}

func (r *Runtime) run(hook string, day, ordinal int, title string) (string, error) {
	if r == nil || r.compiled == nil {
		return "", fmt.Errorf("script: nil runtime")
	}
	if err := r.compiled.Set("__hook", hook); err != nil {
		return "", err
	}
	if err := r.compiled.Set("__day", day); err != nil {
		return "", err
	}
	if err := r.compiled.Set("__ordinal", ordinal); err != nil {
		return "", err
	}
	if err := r.compiled.Set("__title", title); err != nil {
		return "", err
	}
	if err := r.compiled.Set("__caption", ""); err != nil {
		return "", err
	}
	if err := r.compiled.Run(); err != nil {
		return "", fmt.Errorf("script: run %s hook: %w", hook, err)
	}
	return strings.TrimSpace(r.compiled.Get("__caption").String()), nil
}
