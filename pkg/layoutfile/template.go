package layoutfile

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
)

// resolver flattens template inheritance, memoising each template.
type resolver struct {
	templates map[string]*NodeSpec
	resolved  map[string]*NodeSpec
	visiting  []string
}

func newResolver(templates map[string]*NodeSpec) *resolver {
	return &resolver{
		templates: templates,
		resolved:  make(map[string]*NodeSpec, len(templates)),
	}
}

// template returns the named template with its own ancestors applied.
func (r *resolver) template(name string) (*NodeSpec, error) {
	if t, ok := r.resolved[name]; ok {
		return t, nil
	}
	for i, v := range r.visiting {
		if v == name {
			chain := append(append([]string{}, r.visiting[i:]...), name)
			return nil, fmt.Errorf("%s: %w", strings.Join(chain, " -> "), ErrTemplateCycle)
		}
	}

	spec, ok := r.templates[name]
	if !ok || spec == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTemplate)
	}
	if len(spec.Children) > 0 {
		return nil, fmt.Errorf("template %q has children: %w", name, ErrInvalidValue)
	}

	r.visiting = append(r.visiting, name)
	defer func() { r.visiting = r.visiting[:len(r.visiting)-1] }()

	t, err := r.apply(spec)
	if err != nil {
		return nil, err
	}
	r.resolved[name] = t
	return t, nil
}

// apply returns spec merged over its template. Set fields of spec win; the
// result never aliases the template.
func (r *resolver) apply(spec *NodeSpec) (*NodeSpec, error) {
	if spec.Template == "" {
		return spec, nil
	}
	base, err := r.template(spec.Template)
	if err != nil {
		return nil, err
	}

	merged := &NodeSpec{}
	if err := copier.CopyWithOption(merged, base, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy template %q: %w", spec.Template, err)
	}
	if err := copier.CopyWithOption(merged, spec, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("apply template %q: %w", spec.Template, err)
	}
	merged.ID = spec.ID
	merged.Template = ""
	return merged, nil
}
