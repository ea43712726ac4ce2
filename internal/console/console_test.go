package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/aventura/internal/config"
	"github.com/cory-johannsen/aventura/internal/game/inventory"
	"github.com/cory-johannsen/aventura/internal/game/session"
	"github.com/cory-johannsen/aventura/internal/game/world"
)

func plainRenderer(buf *bytes.Buffer) *Renderer {
	return NewRenderer(buf, config.ColorNever)
}

func TestRoomText(t *testing.T) {
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	text := r.RoomText(session.RoomView{
		ID:          "biblioteca",
		Description: "Estantes até o teto.",
		Exits: []session.ExitView{
			{Direction: world.South, Target: "salao_principal"},
			{Direction: world.Up, Target: "torre", Locked: true},
		},
		Items: []inventory.Item{{Name: "livro", Description: "Um livro antigo."}},
	})

	assert.Contains(t, text, "Local atual: Biblioteca")
	assert.Contains(t, text, "Estantes até o teto.")
	assert.Contains(t, text, "Saídas: Sul -> Salao Principal, Cima -> Torre (trancada)")
	assert.Contains(t, text, "Itens na sala: livro (Um livro antigo.)")
	assert.Contains(t, text, strings.Repeat("=", defaultWidth))
	assert.NotContains(t, text, "\033[")
}

func TestRoomText_EmptyRoom(t *testing.T) {
	var buf bytes.Buffer
	text := plainRenderer(&buf).RoomText(session.RoomView{ID: "cela"})

	assert.Contains(t, text, "Você está preso!")
	assert.Contains(t, text, "Não há itens aqui.")
}

func TestRoomText_Monster(t *testing.T) {
	var buf bytes.Buffer
	text := plainRenderer(&buf).RoomText(session.RoomView{
		ID:      "cripta",
		Monster: &session.MonsterView{Name: "wraith", Description: "Uma figura translúcida."},
	})
	assert.Contains(t, text, "Cuidado! wraith está aqui: Uma figura translúcida.")
}

func TestInventoryText(t *testing.T) {
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	assert.Contains(t, r.InventoryText(session.InventoryView{MaxItems: 2}), "Seu inventário está vazio")

	text := r.InventoryText(session.InventoryView{
		Items:    []inventory.Item{{Name: "key", Description: "Uma chave."}},
		MaxItems: 2,
	})
	assert.Contains(t, text, "Você tem: key (Uma chave.) (1/2 itens)")
}

func TestTurn_PrintsFeedbackFirst(t *testing.T) {
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	r.Turn(session.Snapshot{
		Room:      session.RoomView{ID: "hall"},
		Inventory: session.InventoryView{MaxItems: 1},
		Feedback:  "Você pegou 'key'.",
	})
	out := buf.String()
	assert.Less(t, strings.Index(out, "Você pegou 'key'."), strings.Index(out, "Local atual: Hall"))
}

func TestClear_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	plainRenderer(&buf).Clear()
	assert.Empty(t, buf.String())
}

func TestMessage_SkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	plainRenderer(&buf).Message("a", "", "b")
	assert.Equal(t, "\na\n\nb\n", buf.String())
}

func TestColorAlways(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.ColorAlways)
	assert.True(t, r.colorOn)

	r = NewRenderer(&buf, config.ColorAuto)
	assert.False(t, r.colorOn, "a buffer is not a terminal")
}

func TestLineReader(t *testing.T) {
	var prompts bytes.Buffer
	lr := NewLineReader(strings.NewReader("  pegar key \nnorte\n"), &prompts)
	ctx := context.Background()

	line, err := lr.ReadLine(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "pegar key", line)

	line, err = lr.ReadLine(ctx, "> ")
	require.NoError(t, err)
	assert.Equal(t, "norte", line)

	_, err = lr.ReadLine(ctx, "> ")
	assert.True(t, errors.Is(err, io.EOF))
	_, err = lr.ReadLine(ctx, "> ")
	assert.True(t, errors.Is(err, io.EOF))

	assert.Equal(t, "> > > > ", prompts.String())

	select {
	case <-lr.done:
	case <-time.After(time.Second):
		t.Fatal("reader goroutine still running after end of input")
	}
}

func TestLineReader_ReadsOnlyOnRequest(t *testing.T) {
	pr, pw := io.Pipe()
	lr := NewLineReader(pr, io.Discard)

	written := make(chan error, 1)
	go func() {
		_, err := io.WriteString(pw, "norte\n")
		written <- err
	}()
	line, err := lr.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "norte", line)
	require.NoError(t, <-written)

	// Nothing is requested now, so a second write finds no reader.
	go func() {
		_, err := io.WriteString(pw, "sul\n")
		written <- err
	}()
	select {
	case <-written:
		t.Fatal("input read without a pending ReadLine")
	case <-time.After(50 * time.Millisecond):
	}

	line, err = lr.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "sul", line)
	require.NoError(t, <-written)
	require.NoError(t, pw.Close())
}

func TestLineReader_KeepsLineAcrossCancel(t *testing.T) {
	pr, pw := io.Pipe()
	lr := NewLineReader(pr, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := lr.ReadLine(ctx, "")
	require.True(t, errors.Is(err, context.DeadlineExceeded))

	go func() { _, _ = io.WriteString(pw, "olhar\n") }()
	line, err := lr.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "olhar", line)
	require.NoError(t, pw.Close())
}

func TestLineReader_Close(t *testing.T) {
	lr := NewLineReader(strings.NewReader("norte\n"), io.Discard)
	require.NoError(t, lr.Close())
	require.NoError(t, lr.Close())

	_, err := lr.ReadLine(context.Background(), "")
	assert.True(t, errors.Is(err, ErrClosed))
}

func TestLineReader_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	lr := NewLineReader(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := lr.ReadLine(ctx, "")
	assert.True(t, errors.Is(err, context.Canceled))
}
