package entity

// Prompt represents a guided-exercise writing prompt from the static catalog.
type Prompt struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}
