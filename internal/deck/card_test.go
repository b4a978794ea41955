package deck

import "testing"

func TestBlackjackValue(t *testing.T) {
	tests := []struct {
		card     string
		expected int
	}{
		{"As", 11},
		{"2h", 2},
		{"9d", 9},
		{"Tc", 10},
		{"Js", 10},
		{"Qh", 10},
		{"Kd", 10},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			c := MustParseCards(tt.card)[0]
			if got := c.BlackjackValue(); got != tt.expected {
				t.Errorf("BlackjackValue() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestRankOrder(t *testing.T) {
	if got := MustParseCards("As")[0].RankOrder(); got != 1 {
		t.Errorf("Ace RankOrder() = %d, want 1", got)
	}
	if got := MustParseCards("Ks")[0].RankOrder(); got != 13 {
		t.Errorf("King RankOrder() = %d, want 13", got)
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "10♥"},
		{NewCard(Diamonds, Queen), "Q♦"},
		{NewCard(Clubs, Two), "2♣"},
	}

	for _, tt := range tests {
		if got := tt.card.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestIsRed(t *testing.T) {
	if !NewCard(Hearts, Five).IsRed() {
		t.Error("hearts should be red")
	}
	if !NewCard(Diamonds, Five).IsRed() {
		t.Error("diamonds should be red")
	}
	if NewCard(Spades, Five).IsRed() {
		t.Error("spades should not be red")
	}
	if NewCard(Clubs, Five).IsRed() {
		t.Error("clubs should not be red")
	}
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "blackjack hand",
			input: "AsKh",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
			},
		},
		{
			name:  "case insensitive",
			input: "tDqC",
			expected: []Card{
				{Suit: Diamonds, Rank: Ten},
				{Suit: Clubs, Rank: Queen},
			},
		},
		{
			name:    "invalid rank",
			input:   "Xs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "Ax",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
