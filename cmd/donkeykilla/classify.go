package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/strength"
	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))
)

// ClassifyCmd reports the category, best five cards and score of a hand.
type ClassifyCmd struct {
	Hole  string `arg:"" help:"Hole cards, e.g. 'AhKh'"`
	Board string `arg:"" optional:"" help:"Community cards, e.g. 'QhJhTh'"`
}

func (c *ClassifyCmd) Run() error {
	hole, err := poker.ParseCards(c.Hole)
	if err != nil {
		return fmt.Errorf("hole cards: %w", err)
	}
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	cards := append(hole[:len(hole):len(hole)], board...)
	if dup := duplicate(cards); dup != "" {
		return fmt.Errorf("card %s appears twice", dup)
	}

	category, best, err := poker.BestHand(cards)
	if err != nil {
		return err
	}

	printRow("Category", category.String())
	printRow("Best five", formatCards(best))
	printRow("Score", fmt.Sprintf("%.3f", strength.Heuristic{}.Score(context.Background(), hole, board)))
	if len(hole) == 2 {
		printRow("Preflop", string(poker.CategorizeHoleCards(hole[0], hole[1])))
	}
	if desc, err := poker.Describe(cards); err == nil {
		printRow("Described", desc)
	}
	return nil
}

func printRow(label, value string) {
	fmt.Println(labelStyle.Render(label) + valueStyle.Render(value))
}

func formatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}

func duplicate(cards []poker.Card) string {
	seen := make(map[poker.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return c.String()
		}
		seen[c] = true
	}
	return ""
}
