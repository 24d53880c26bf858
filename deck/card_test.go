package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitColor(t *testing.T) {
	tt := []struct {
		suit  Suit
		color Color
	}{
		{Clubs, Black},
		{Spades, Black},
		{Diamonds, Red},
		{Hearts, Red},
	}

	for _, tc := range tt {
		t.Run(tc.suit.String(), func(t *testing.T) {
			assert.Equal(t, tc.color, tc.suit.Color())
			assert.Equal(t, tc.color == Black, tc.suit.Black())
			assert.Equal(t, tc.color == Red, tc.suit.Red())
		})
	}
}

func TestRankArithmetic(t *testing.T) {
	// adjacency checks in the game rules rely on rank arithmetic
	assert.Equal(t, Two, Ace+1)
	assert.Equal(t, Queen, King-1)
	assert.Equal(t, NewCard(Ace+1, Hearts), NewCard(Two, Hearts))
}

func TestCardString(t *testing.T) {
	tt := []struct {
		card Card
		code string
		name string
	}{
		{NewCard(Ace, Clubs), "AC", "Ace of Clubs"},
		{NewCard(Ten, Diamonds), "10D", "Ten of Diamonds"},
		{NewCard(Queen, Hearts), "QH", "Queen of Hearts"},
		{NewCard(King, Spades), "KS", "King of Spades"},
		{NewCard(Seven, Clubs), "7C", "Seven of Clubs"},
	}

	for _, tc := range tt {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.card.String())
			assert.Equal(t, tc.name, tc.card.Name())
		})
	}
}

func TestParse(t *testing.T) {
	tt := []struct {
		code    string
		want    Card
		wantErr bool
	}{
		{code: "AC", want: NewCard(Ace, Clubs)},
		{code: "1C", want: NewCard(Ace, Clubs)},
		{code: "10D", want: NewCard(Ten, Diamonds)},
		{code: "TD", want: NewCard(Ten, Diamonds)},
		{code: "kh", want: NewCard(King, Hearts)},
		{code: " JS ", want: NewCard(Jack, Spades)},
		{code: "XX", wantErr: true},
		{code: "5", wantErr: true},
		{code: "5X", wantErr: true},
		{code: "", wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.code, func(t *testing.T) {
			got, err := Parse(tc.code)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrBadCardCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, c := range New() {
		got, err := Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestLess(t *testing.T) {
	assert.True(t, NewCard(Two, Spades).Less(NewCard(Three, Clubs)))
	assert.True(t, NewCard(Five, Clubs).Less(NewCard(Five, Diamonds)))
	assert.False(t, NewCard(Five, Diamonds).Less(NewCard(Five, Clubs)))
	assert.False(t, NewCard(King, Clubs).Less(NewCard(Queen, Spades)))
}
