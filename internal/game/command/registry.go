package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/aventura/internal/i18n"
)

// Registry maps verbs and aliases to Command definitions.
type Registry struct {
	order  []*Command
	byWord map[string]*Command
}

// NewRegistry creates a Registry populated with the given commands.
//
// Precondition: No word may be used twice, as a name or as an alias.
// Postcondition: Returns a Registry or an error naming the first collision.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{byWord: make(map[string]*Command)}
	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Name == "" {
			return nil, fmt.Errorf("command %d has no name", i)
		}
		if cmd.Handler == HandlerMove && !cmd.Direction.IsStandard() {
			return nil, fmt.Errorf("movement command %q has invalid direction %q", cmd.Name, cmd.Direction)
		}
		for _, word := range append([]string{cmd.Name}, cmd.Aliases...) {
			if prev, taken := r.byWord[word]; taken {
				return nil, fmt.Errorf("duplicate word %q: used by %q and %q", word, prev.Name, cmd.Name)
			}
			r.byWord[word] = cmd
		}
		r.order = append(r.order, cmd)
	}
	return r, nil
}

// DefaultRegistry creates a Registry with all built-in commands.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a command by name or alias.
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(word string) (*Command, bool) {
	cmd, ok := r.byWord[word]
	return cmd, ok
}

// Commands returns all registered commands in registration order.
func (r *Registry) Commands() []*Command {
	return append([]*Command(nil), r.order...)
}

// CommandsByCategory returns commands grouped by category.
func (r *Registry) CommandsByCategory() map[string][]*Command {
	categories := make(map[string][]*Command)
	for _, cmd := range r.order {
		categories[cmd.Category] = append(categories[cmd.Category], cmd)
	}
	return categories
}

// HelpText lists every command by category with its aliases and description.
func (r *Registry) HelpText() string {
	cats := r.CommandsByCategory()
	lines := []string{i18n.T(i18n.HelpHeader)}
	for _, cat := range Categories {
		cmds := cats[cat]
		if len(cmds) == 0 {
			continue
		}
		lines = append(lines, i18n.T(i18n.HelpCategory+cat))
		for _, cmd := range cmds {
			desc := ""
			if cmd.Help != "" {
				desc = i18n.T(cmd.Help)
			}
			lines = append(lines, i18n.T(i18n.HelpEntry, usageLine(cmd), desc))
		}
	}
	return strings.Join(lines, "\n")
}

// Verbs returns the canonical verb of every command, in registration order.
func (r *Registry) Verbs() []string {
	cmds := r.Commands()
	verbs := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		verbs = append(verbs, cmd.Name)
	}
	return verbs
}

// usageLine renders "pegar [item] (take, get)".
func usageLine(cmd *Command) string {
	var b strings.Builder
	b.WriteString(cmd.Name)
	if cmd.NeedsTarget {
		b.WriteString(" ")
		b.WriteString(i18n.T(i18n.HelpTarget))
	}
	if len(cmd.Aliases) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(cmd.Aliases, ", "))
		b.WriteString(")")
	}
	return b.String()
}
