package libcmd

import "slices"

// registry maps every hand and anonymous hand of a command's options to the owning option.
type registry map[string]*Option

// Conflict records a name claimed by more than one option of the same command. Winner is the option
// the name resolves to during parsing.
type Conflict struct {
	Name     string
	Previous *Option
	Winner   *Option
}

// newRegistry builds the lookup for opts. Construction never fails: when two options claim the same
// name, the one inserted last wins and the collision is reported. Options that were not built with
// a constructor have nothing to bind to and are skipped, as nil options are.
func newRegistry(opts []*Option) (registry, []Conflict) {
	r := make(registry)
	var conflicts []Conflict
	for _, opt := range opts {
		if opt == nil || opt.value == nil {
			continue
		}
		for _, name := range opt.Names() {
			if prev, ok := r[name]; ok && prev != opt {
				conflicts = append(conflicts, Conflict{Name: name, Previous: prev, Winner: opt})
			}
			r[name] = opt
		}
	}
	return r, conflicts
}

func (r registry) lookup(name string) (*Option, bool) {
	opt, ok := r[name]
	return opt, ok
}

// names returns the registered names in sorted order.
func (r registry) names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
