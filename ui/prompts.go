package ui

import (
	"fmt"
	"strings"

	"github.com/hotpile/uno/card"
	"github.com/hotpile/uno/card/color"
)

const drawLabel = "*"

func PromptString(message string) string {
	for {
		Println(message)
		var input string
		_, err := fmt.Scanln(&input)
		if err != nil {
			Println("Invalid text input")
			continue
		}
		return input
	}
}

func promptInteger(message string) int {
	for {
		Println(message)
		var input int
		_, err := fmt.Scanln(&input)
		if err != nil {
			Println("Invalid number input")
			continue
		}
		return input
	}
}

func promptLowercaseString(message string) string {
	input := PromptString(message)
	return strings.ToLower(input)
}

func promptUppercaseString(message string) string {
	input := PromptString(message)
	return strings.ToUpper(input)
}

// PromptCardSelection labels each playable hand index with a letter
// and asks for one, or for '*' to draw from the pile instead. It
// returns the chosen hand index, or drew=true.
func PromptCardSelection(hand []card.Card, legalIndexes []int) (index int, drew bool) {
	runeSequence := runeSequence{}
	cardOptions := make(map[string]int, len(legalIndexes))

	cardSelectionLines := []string{fmt.Sprintf("Select a card to play, or '%s' to draw:", drawLabel)}
	for _, legalIndex := range legalIndexes {
		label := string(runeSequence.next())
		cardOptions[label] = legalIndex
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s (enter %s)", hand[legalIndex], label))
	}
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	for {
		selectedLabel := promptUppercaseString(cardSelectionMessage)
		if selectedLabel == drawLabel {
			return 0, true
		}
		selectedIndex, found := cardOptions[selectedLabel]
		if !found {
			Printfln("No card assigned to '%s'", selectedLabel)
			continue
		}
		return selectedIndex, false
	}
}

func PromptColor() color.Color {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	for {
		colorName := promptLowercaseString(colorMessage)
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor
	}
}

func PromptIntegerInRange(minimum int, maximum int, message string) int {
	for {
		input := promptInteger(message)
		if input < minimum || input > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input
	}
}
