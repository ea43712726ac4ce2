package loop_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/aventura/internal/game/command"
	"github.com/cory-johannsen/aventura/internal/game/dice"
	"github.com/cory-johannsen/aventura/internal/game/loop"
	"github.com/cory-johannsen/aventura/internal/game/session"
	"github.com/cory-johannsen/aventura/internal/game/world"
)

type recordingRenderer struct {
	clears   int
	messages []string
	turns    []session.Snapshot
}

func (r *recordingRenderer) Clear() { r.clears++ }

func (r *recordingRenderer) Message(lines ...string) {
	r.messages = append(r.messages, lines...)
}

func (r *recordingRenderer) Turn(snap session.Snapshot) {
	r.turns = append(r.turns, snap)
}

func (r *recordingRenderer) said(s string) bool {
	for _, m := range r.messages {
		if strings.Contains(m, s) {
			return true
		}
	}
	return false
}

// scriptedReader replays lines, then reports io.EOF.
type scriptedReader struct {
	lines   []string
	prompts []string
}

func (s *scriptedReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

const mapYAML = `
main: hall
exit: garden
max_items: 1
rooms:
  hall:
    description: Um salão.
    items:
      key: Uma chave.
    north: crypt
    east:
      room: garden
      locked: true
    use:
      - item: key
        description: O portão range.
        action:
          type: unlock
          direction: east
          room: garden
  crypt:
    description: Frio.
    south: hall
    monster:
      name: wraith
      description: Uma figura translúcida.
      defeat_item: torch
  garden:
    description: Ar livre!
`

func newDriver(t *testing.T, lines []string, opts loop.Options) (*loop.Driver, *session.Session, *recordingRenderer, *scriptedReader) {
	t.Helper()
	m, err := world.LoadMapFromBytes([]byte(mapYAML), dice.NewFixedSource(0))
	require.NoError(t, err)
	sess, err := session.New(m.Graph, m.MaxItems)
	require.NoError(t, err)
	interp := command.NewInterpreter(sess, command.DefaultRegistry(), zap.NewNop())
	r := &recordingRenderer{}
	in := &scriptedReader{lines: lines}
	return loop.NewDriver(sess, interp, r, in, opts, zap.NewNop()), sess, r, in
}

func TestRun_Victory(t *testing.T) {
	d, sess, r, in := newDriver(t, []string{"", "pegar key", "usar key", "leste", ""}, loop.Options{ClearScreen: true})

	out, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Won, out)
	assert.Equal(t, session.Won, sess.Outcome())

	assert.True(t, r.said("--- Aventura RPG Iniciada! ---"))
	assert.True(t, r.said("Você pode carregar no máximo 1 itens."))
	assert.True(t, r.said("PARABÉNS"))
	require.Len(t, r.turns, 4)
	assert.Equal(t, "Você pegou 'key'.", r.turns[1].Feedback)
	assert.Equal(t, "garden", r.turns[3].Room.ID)
	// Intro clear plus one per turn after the first.
	assert.Equal(t, 4, r.clears)
	assert.Equal(t, "Pressione ENTER para começar...", in.prompts[0])
	assert.Equal(t, "Pressione ENTER para finalizar o jogo...", in.prompts[len(in.prompts)-1])
}

func TestRun_NoClearScreen(t *testing.T) {
	d, _, r, _ := newDriver(t, []string{"", "olhar", "sair"}, loop.Options{})

	_, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, r.clears)
}

func TestRun_Loss(t *testing.T) {
	d, sess, r, _ := newDriver(t, []string{"", "pegar key", "norte", "usar key", "sul"}, loop.Options{})

	out, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Lost, out)
	assert.Equal(t, session.Lost, sess.Outcome())
	assert.True(t, r.said("wraith te derrotou!"))
	assert.True(t, r.said("FIM DE JOGO"))
}

func TestRun_Quit(t *testing.T) {
	d, _, r, in := newDriver(t, []string{"", "sair", "norte"}, loop.Options{})

	out, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Quit, out)
	assert.True(t, r.said("Encerrando o jogo. Até a próxima!"))
	assert.Equal(t, []string{"norte"}, in.lines, "nothing is read after quitting")
}

func TestRun_EndOfInputQuits(t *testing.T) {
	d, sess, _, _ := newDriver(t, []string{""}, loop.Options{})

	out, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Quit, out)
	assert.Equal(t, session.Quit, sess.Outcome())
}

func TestRun_Cancelled(t *testing.T) {
	d, _, _, _ := newDriver(t, []string{"", "olhar"}, loop.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := d.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, session.Quit, out)
}

func TestRun_HelpPauses(t *testing.T) {
	d, _, r, in := newDriver(t, []string{"", "ajuda", "", "sair"}, loop.Options{ClearScreen: true})

	out, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Quit, out)

	assert.True(t, r.said("Comandos disponíveis:"))
	assert.Contains(t, in.prompts, "Pressione ENTER para voltar ao jogo...")
	require.Len(t, r.turns, 2)
	assert.Empty(t, r.turns[1].Feedback, "help is not repeated above the next turn")
	// Intro, help screen, second turn.
	assert.Equal(t, 3, r.clears)
}

func TestRun_HelpPauseEndOfInput(t *testing.T) {
	d, sess, _, _ := newDriver(t, []string{"", "ajuda"}, loop.Options{})

	out, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Quit, out)
	assert.Equal(t, session.Quit, sess.Outcome())
}

func TestRun_WinsAtTurnZero(t *testing.T) {
	g, err := world.NewGraph([]world.RoomDef{{ID: "out"}}, "out", "out")
	require.NoError(t, err)
	sess, err := session.New(g, 2)
	require.NoError(t, err)
	r := &recordingRenderer{}
	d := loop.NewDriver(sess, command.NewInterpreter(sess, command.DefaultRegistry(), zap.NewNop()),
		r, &scriptedReader{lines: []string{"", ""}}, loop.Options{}, zap.NewNop())

	out, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Won, out)
	assert.Len(t, r.turns, 1)
}
