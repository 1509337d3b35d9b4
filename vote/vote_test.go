package vote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	tests := []struct {
		name     string
		ballot   Ballot
		member   string
		dir      Direction
		wantUp   []string
		wantDown []string
	}{
		{
			name:     "first upvote",
			ballot:   Ballot{},
			member:   "a",
			dir:      Up,
			wantUp:   []string{"a"},
			wantDown: []string{},
		},
		{
			name:     "first downvote",
			ballot:   Ballot{},
			member:   "a",
			dir:      Down,
			wantUp:   []string{},
			wantDown: []string{"a"},
		},
		{
			name:     "retract upvote",
			ballot:   Ballot{Upvotes: []string{"a"}},
			member:   "a",
			dir:      Up,
			wantUp:   []string{},
			wantDown: nil,
		},
		{
			name:     "retract downvote",
			ballot:   Ballot{Downvotes: []string{"a"}},
			member:   "a",
			dir:      Down,
			wantUp:   nil,
			wantDown: []string{},
		},
		{
			name:     "switch up to down",
			ballot:   Ballot{Upvotes: []string{"a"}},
			member:   "a",
			dir:      Down,
			wantUp:   []string{},
			wantDown: []string{"a"},
		},
		{
			name:     "switch down to up",
			ballot:   Ballot{Downvotes: []string{"a"}},
			member:   "a",
			dir:      Up,
			wantUp:   []string{"a"},
			wantDown: []string{},
		},
		{
			name:     "other voters untouched",
			ballot:   Ballot{Upvotes: []string{"b"}, Downvotes: []string{"c"}},
			member:   "a",
			dir:      Up,
			wantUp:   []string{"b", "a"},
			wantDown: []string{"c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := tt.ballot.Toggle(tt.member, tt.dir)
			assert.Equal(t, tt.wantUp, next.Upvotes)
			assert.Equal(t, tt.wantDown, next.Downvotes)
		})
	}
}

// A member never ends up in both sets, whatever sequence of presses arrives.
func TestToggleExclusivity(t *testing.T) {
	sequence := []struct {
		member string
		dir    Direction
	}{
		{"a", Up}, {"a", Down}, {"b", Down}, {"a", Down},
		{"a", Up}, {"b", Up}, {"c", Down}, {"b", Up},
	}

	b := Ballot{}
	for _, press := range sequence {
		b = b.Toggle(press.member, press.dir)
		for _, m := range b.Upvotes {
			assert.NotContains(t, b.Downvotes, m)
		}
	}
}

func TestToggleIdempotentRetraction(t *testing.T) {
	before := Ballot{Upvotes: []string{"x"}, Downvotes: []string{"y"}}

	once := before.Toggle("a", Up)
	twice := once.Toggle("a", Up)

	assert.ElementsMatch(t, before.Upvotes, twice.Upvotes)
	assert.ElementsMatch(t, before.Downvotes, twice.Downvotes)
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	original := Ballot{Upvotes: []string{"a", "b"}, Downvotes: []string{"c"}}

	original.Toggle("c", Up)
	original.Toggle("a", Up)

	assert.Equal(t, []string{"a", "b"}, original.Upvotes)
	assert.Equal(t, []string{"c"}, original.Downvotes)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		ballot Ballot
		want   int
	}{
		{"empty", Ballot{}, 0},
		{"positive", Ballot{Upvotes: []string{"a", "b", "c"}, Downvotes: []string{"d"}}, 2},
		{"negative", Ballot{Upvotes: []string{"a"}, Downvotes: []string{"b", "c"}}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ballot.Score())

			up, down := tt.ballot.Counts()
			assert.Equal(t, tt.want, up-down)
		})
	}
}
