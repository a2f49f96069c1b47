package summary

import (
	"regexp"

	"github.com/viant/linkology"
)

type (
	//Func renders a one-line summary of a handle
	Func func(h linkology.Handle, config linkology.Config) string

	//Binding associates a type-name pattern with a summary provider
	Binding struct {
		Pattern   *regexp.Regexp
		Summarize Func
	}

	//Registry is a static, ordered table of bindings constructed once by
	//the host integration layer; lookup returns the first match
	Registry struct {
		bindings []Binding
	}
)

// NewRegistry creates a registry from an explicit binding table.
func NewRegistry(bindings []Binding) *Registry {
	return &Registry{bindings: bindings}
}

// Lookup returns the first provider whose pattern matches the type name.
func (r *Registry) Lookup(typeName string) (Func, bool) {
	for _, binding := range r.bindings {
		if binding.Pattern.MatchString(typeName) {
			return binding.Summarize, true
		}
	}
	return nil, false
}

// DefaultBindings returns the binding table for the common container type
// naming conventions.
func DefaultBindings() []Binding {
	return []Binding{
		{Pattern: regexp.MustCompile(`^(Custom|My)?(Linked)?List<.*>$`), Summarize: Linear},
		{Pattern: regexp.MustCompile(`^(Custom|My)?Stack<.*>$`), Summarize: Linear},
		{Pattern: regexp.MustCompile(`^(Custom|My)?Queue<.*>$`), Summarize: Linear},
		{Pattern: regexp.MustCompile(`^(Custom|My)?(Binary)?Tree<.*>$`), Summarize: Tree},
		{Pattern: regexp.MustCompile(`^(Custom|My)?(Graph)?Node<.*>$`), Summarize: GraphNode},
	}
}
