package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "ace of spades", input: "As", want: Card{Rank: Ace, Suit: Spades}},
		{name: "ten of diamonds lowercase", input: "td", want: Card{Rank: Ten, Suit: Diamonds}},
		{name: "mixed case", input: "Kh", want: Card{Rank: King, Suit: Hearts}},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "wrong length", input: "Ass", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll("AsKsQsJsTs")
	require.NoError(t, err)
	want := []Card{
		{Rank: Ace, Suit: Spades},
		{Rank: King, Suit: Spades},
		{Rank: Queen, Suit: Spades},
		{Rank: Jack, Suit: Spades},
		{Rank: Ten, Suit: Spades},
	}
	assert.Equal(t, want, got)

	_, err = ParseAll("Ah2")
	require.Error(t, err)
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "As", Card{Rank: Ace, Suit: Spades}.String())
	assert.Equal(t, "Td", Card{Rank: Ten, Suit: Diamonds}.String())
	assert.Equal(t, "2c", Card{Rank: Two, Suit: Clubs}.String())
}

func TestEqualityByBothFields(t *testing.T) {
	a := Card{Rank: Ace, Suit: Spades}
	b := Card{Rank: Ace, Suit: Hearts}
	c := Card{Rank: Ace, Suit: Spades}
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
}
