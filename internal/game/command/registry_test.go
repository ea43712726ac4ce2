package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/aventura/internal/game/world"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Len(t, r.Commands(), len(BuiltinCommands()))
	assert.Equal(t, "norte", r.Commands()[0].Name)
}

func TestResolve_AllMovementDirections(t *testing.T) {
	r := DefaultRegistry()
	cases := map[string]world.Direction{
		"norte": world.North, "n": world.North, "north": world.North,
		"sul": world.South, "s": world.South, "south": world.South,
		"leste": world.East, "l": world.East, "east": world.East, "e": world.East,
		"oeste": world.West, "o": world.West, "west": world.West, "w": world.West,
		"cima": world.Up, "c": world.Up, "subir": world.Up, "up": world.Up,
		"baixo": world.Down, "b": world.Down, "descer": world.Down, "down": world.Down,
	}
	for word, dir := range cases {
		cmd, ok := r.Resolve(word)
		require.True(t, ok, "word %q not found", word)
		assert.Equal(t, HandlerMove, cmd.Handler)
		assert.Equal(t, dir, cmd.Direction, "word %q", word)
	}
}

func TestResolve_OtherCommands(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		input   string
		handler string
	}{
		{"pegar", HandlerTake},
		{"take", HandlerTake},
		{"get", HandlerTake},
		{"largar", HandlerDrop},
		{"drop", HandlerDrop},
		{"usar", HandlerUse},
		{"use", HandlerUse},
		{"olhar", HandlerLook},
		{"ver", HandlerLook},
		{"inventario", HandlerInventory},
		{"i", HandlerInventory},
		{"ajuda", HandlerHelp},
		{"?", HandlerHelp},
		{"sair", HandlerQuit},
		{"exit", HandlerQuit},
	}
	for _, tt := range tests {
		cmd, ok := r.Resolve(tt.input)
		require.True(t, ok, "input %q not found", tt.input)
		assert.Equal(t, tt.handler, cmd.Handler, "input %q wrong handler", tt.input)
		assert.NotEqual(t, HandlerMove, cmd.Handler)
	}
}

func TestResolve_NotFound(t *testing.T) {
	_, ok := DefaultRegistry().Resolve("dançar")
	assert.False(t, ok)
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "test", Handler: "a"},
		{Name: "test", Handler: "b"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate word")
}

func TestNewRegistry_AliasCollidesWithName(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "t", Handler: "a"},
		{Name: "test", Aliases: []string{"t"}, Handler: "b"},
	})
	assert.Error(t, err)
}

func TestNewRegistry_MovementNeedsDirection(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "voar", Handler: HandlerMove}})
	assert.Error(t, err)
}

func TestCommandsByCategory(t *testing.T) {
	cats := DefaultRegistry().CommandsByCategory()
	assert.Len(t, cats[CategoryMovement], 6)
	assert.Len(t, cats[CategoryItems], 4)
	assert.Len(t, cats[CategorySystem], 3)
	for cat := range cats {
		assert.Contains(t, Categories, cat)
	}
}

func TestHelpText(t *testing.T) {
	text := DefaultRegistry().HelpText()
	lines := strings.Split(text, "\n")

	assert.Equal(t, "Comandos disponíveis:", lines[0])
	assert.Equal(t, "Movimento:", lines[1])
	assert.Contains(t, lines[2], "norte (n, north)")
	assert.Contains(t, lines[2], "- Move o jogador nessa direção.")
	assert.Contains(t, text, "Itens:")
	assert.Contains(t, text, "pegar [item] (take, get)")
	assert.Contains(t, text, "inventario (inventário, inv, i)")
	assert.Contains(t, text, "Sistema:")
	assert.Contains(t, text, "sair (quit, exit)")
	assert.Less(t, strings.Index(text, "Movimento:"), strings.Index(text, "Itens:"))
	assert.Less(t, strings.Index(text, "Itens:"), strings.Index(text, "Sistema:"))
	// header, three category titles, one line per command
	assert.Len(t, lines, 1+len(Categories)+len(BuiltinCommands()))
}

func TestHelpText_CustomRegistry(t *testing.T) {
	r, err := NewRegistry([]Command{{Name: "dançar", Category: CategorySystem, Handler: HandlerLook}})
	require.NoError(t, err)
	text := r.HelpText()
	assert.NotContains(t, text, "Movimento:")
	assert.Contains(t, text, "  dançar")
}

func TestVerbs(t *testing.T) {
	verbs := DefaultRegistry().Verbs()
	assert.Len(t, verbs, len(BuiltinCommands()))
	assert.Equal(t, "norte", verbs[0])
	assert.Contains(t, verbs, "usar")
	assert.NotContains(t, verbs, "use", "aliases are not listed")
}

func TestPropertyAllAliasesResolveToCanonical(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := DefaultRegistry()
		cmds := r.Commands()
		cmd := cmds[rapid.IntRange(0, len(cmds)-1).Draw(t, "cmd_idx")]

		resolved, ok := r.Resolve(cmd.Name)
		if !ok || resolved.Name != cmd.Name {
			t.Fatalf("canonical name %q did not resolve to itself", cmd.Name)
		}
		for _, alias := range cmd.Aliases {
			aliasResolved, ok := r.Resolve(alias)
			if !ok {
				t.Fatalf("alias %q did not resolve", alias)
			}
			if aliasResolved.Name != cmd.Name {
				t.Fatalf("alias %q resolved to %q, expected %q", alias, aliasResolved.Name, cmd.Name)
			}
		}
	})
}
