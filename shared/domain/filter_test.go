package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostFilterMatch(t *testing.T) {
	cat := "Climate"
	p := Post{Title: "Plastic-free campus", Body: "Let's ban single-use bottles", Category: &cat}

	tests := []struct {
		name   string
		filter PostFilter
		want   bool
	}{
		{"empty filter", PostFilter{}, true},
		{"all category", PostFilter{Category: "All"}, true},
		{"category case-insensitive", PostFilter{Category: "climate"}, true},
		{"other category", PostFilter{Category: "Health"}, false},
		{"query in title", PostFilter{Query: "CAMPUS"}, true},
		{"query in body", PostFilter{Query: "bottles"}, true},
		{"query missing", PostFilter{Query: "water"}, false},
		{"category and query", PostFilter{Category: "Climate", Query: "ban"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(p))
		})
	}

	assert.False(t, PostFilter{Category: "Climate"}.Match(Post{Title: "x"}), "uncategorised post")
}

func TestTeamFilterMatch(t *testing.T) {
	desc := "Building a water-quality sensor"
	team := Team{Name: "Hydro Hackers", Description: &desc, Interests: []string{"IoT", "Sustainability"}}

	assert.True(t, TeamFilter{}.Match(team))
	assert.True(t, TeamFilter{Interest: "All"}.Match(team))
	assert.True(t, TeamFilter{Interest: "iot"}.Match(team))
	assert.False(t, TeamFilter{Interest: "AI"}.Match(team))
	assert.True(t, TeamFilter{Query: "hydro"}.Match(team))
	assert.True(t, TeamFilter{Query: "sensor"}.Match(team))
	assert.False(t, TeamFilter{Query: "robot"}.Match(team))

	team.Description = nil
	assert.False(t, TeamFilter{Query: "sensor"}.Match(team))
}
