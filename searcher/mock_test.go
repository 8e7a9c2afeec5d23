package searcher

import "gametree/game"

// mockRules plays an explicit tree: states are node names, moves are child
// indices, nodes listed in terminal are finished games.
type mockRules struct {
	children map[string][]string
	terminal map[string]game.Score
	evals    map[string]game.Score
}

func (m mockRules) InitialState() string {
	return "root"
}

func (m mockRules) Moves(state string, player game.Player) []int {
	if _, ok := m.terminal[state]; ok {
		return nil
	}
	moves := make([]int, len(m.children[state]))
	for i := range moves {
		moves[i] = i
	}
	return moves
}

func (m mockRules) Play(state string, move int, player game.Player) string {
	return m.children[state][move]
}

func (m mockRules) IsTerminal(state string) (bool, game.Score) {
	score, ok := m.terminal[state]
	return ok, score
}

func (m mockRules) Evaluate(state string) game.Score {
	return m.evals[state]
}

// textbookTree is the classic three by three example: Max picks a with value 3,
// and alpha-beta prunes the last two leaves under b.
func textbookTree() mockRules {
	return mockRules{
		children: map[string][]string{
			"root": {"a", "b", "c"},
			"a":    {"a1", "a2", "a3"},
			"b":    {"b1", "b2", "b3"},
			"c":    {"c1", "c2", "c3"},
		},
		terminal: map[string]game.Score{
			"a1": 3, "a2": 12, "a3": 8,
			"b1": 2, "b2": 4, "b3": 6,
			"c1": 14, "c2": 5, "c3": 2,
		},
	}
}
