package models

// Letter is one alphabet entry in the learning content.
type Letter struct {
	ID            int    `json:"id"`
	Letter        string `json:"letter"`
	LetterLower   string `json:"letterLower"`
	ExampleWord   string `json:"exampleWord"`
	Pronunciation string `json:"pronunciation"`
	AudioURL      string `json:"audioUrl,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

// NumberContent is one counting entry (0-100).
type NumberContent struct {
	ID            int    `json:"id"`
	Value         int    `json:"value"`
	Word          string `json:"word"`
	Pronunciation string `json:"pronunciation"`
	AudioURL      string `json:"audioUrl,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

// Animal is one animal entry with its fun fact and difficulty level.
type Animal struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	NameEnglish string     `json:"nameEnglish"`
	Description string     `json:"description"`
	FunFact     string     `json:"funFact"`
	Difficulty  Difficulty `json:"difficulty"`
	Emoji       string     `json:"emoji"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	AudioURL    string     `json:"audioUrl,omitempty"`
}
