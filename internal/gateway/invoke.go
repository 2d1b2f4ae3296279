package gateway

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnknownTool      = errors.New("gateway: unknown tool")
	ErrInvalidArguments = errors.New("gateway: invalid arguments")
)

type args map[string]string

func (a args) get(name string) string { return a[name] }

// Invoke dispatches a tool by name with named arguments.
//
// Unknown tools and malformed arguments (a missing required argument, a
// non-string value) are faults, not results: they indicate a broken caller.
// Arguments the tool does not declare are ignored.
func (g *Gateway) Invoke(ctx context.Context, tool string, raw map[string]any) (Result, error) {
	spec, ok := Lookup(tool)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownTool, tool)
	}
	a, err := decodeArgs(spec, raw)
	if err != nil {
		return Result{}, err
	}
	return spec.call(g, ctx, a)
}

func decodeArgs(spec ToolSpec, raw map[string]any) (args, error) {
	out := make(args, len(spec.Params))
	for _, p := range spec.Params {
		v, present := raw[p.Name]
		if present && v != nil {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s: argument %q must be a string, got %T", ErrInvalidArguments, spec.Name, p.Name, v)
			}
			out[p.Name] = s
			continue
		}
		if p.Required {
			return nil, fmt.Errorf("%w: %s: missing required argument %q", ErrInvalidArguments, spec.Name, p.Name)
		}
		if p.Default != "" {
			out[p.Name] = p.Default
		}
	}
	return out, nil
}
