package protocol

import (
	"encoding/json"
	"testing"

	"github.com/dekarrin/playingsim/deck"
	"github.com/dekarrin/playingsim/klondike"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdNames(t *testing.T) {
	for cmd, name := range CmdNames {
		assert.Equal(t, name, cmd.String())
		assert.Equal(t, cmd, NameToCmd[name])
	}
}

func TestViewOf(t *testing.T) {
	g, err := klondike.NewGame(klondike.Options{Deck: deck.New()})
	require.NoError(t, err)

	v := ViewOf(g.State(), g.Turns())

	require.Len(t, v.Piles, 7)
	assert.Equal(t, []string{"AC"}, v.Piles[0].Shown)
	assert.Equal(t, 0, v.Piles[0].FaceDown)
	assert.Equal(t, []string{"7S"}, v.Piles[6].Shown)
	assert.Equal(t, 6, v.Piles[6].FaceDown)

	assert.Equal(t, []string{"8C"}, v.Hand)
	assert.Equal(t, 23, v.StockCount)
	assert.Equal(t, 1, v.WasteCount)
	assert.Equal(t, 1, v.CurrentPass)
	assert.Equal(t, 1, v.DrawCount)

	for _, suit := range deck.Suits {
		assert.Equal(t, "", v.Foundations[suit.String()])
	}

	assert.NotEmpty(t, v.Moves)
	assert.Equal(t, "draw from stock", v.Moves[0])
	assert.Equal(t, "indeterminate", v.Dead)
	assert.False(t, v.Won)
	assert.Equal(t, 0, v.Turns)
}

func TestViewOfSerialises(t *testing.T) {
	g, err := klondike.NewGame(klondike.Options{Deck: deck.New()})
	require.NoError(t, err)

	data, err := json.Marshal(OutboundMessage{
		GameID:  "abc",
		Command: State,
		View:    ViewOf(g.State(), 0),
	})
	require.NoError(t, err)

	var got OutboundMessage
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, State, got.Command)
	require.NotNil(t, got.View)
	assert.Equal(t, []string{"8C"}, got.View.Hand)
}
