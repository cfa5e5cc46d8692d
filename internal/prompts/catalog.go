// Package prompts holds the static catalog of guided-exercise writing prompts.
package prompts

import "journal-service/internal/domain/entity"

var catalog = []entity.Prompt{
	{
		ID:    "three-good-things",
		Title: "Three good things",
		Text:  "Write down three things that went well today, however small, and what made them possible.",
	},
	{
		ID:    "letter-to-a-friend",
		Title: "Letter to a friend",
		Text:  "Describe your day as if you were writing to a close friend who genuinely wants to know how you are.",
	},
	{
		ID:    "body-check-in",
		Title: "Body check-in",
		Text:  "Where in your body do you feel today's mood? Describe the sensation without judging it.",
	},
	{
		ID:    "future-self",
		Title: "A note from your future self",
		Text:  "Imagine yourself a year from now looking back at today. What would that person want you to notice?",
	},
	{
		ID:    "one-small-win",
		Title: "One small win",
		Text:  "Name one thing you handled today that you would not have handled as well a year ago.",
	},
	{
		ID:    "unfinished-sentence",
		Title: "Unfinished sentence",
		Text:  "Finish this sentence and keep writing: \"What I really needed today was...\"",
	},
}

// Catalog returns all guided-exercise prompts in presentation order.
func Catalog() []entity.Prompt {
	out := make([]entity.Prompt, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a prompt by its id.
func ByID(id string) (entity.Prompt, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Prompt{}, false
}
