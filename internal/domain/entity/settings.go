package entity

// Settings holds the user's reminder preferences, persisted as a single record.
type Settings struct {
	// ReminderTime is a local wall-clock time in "HH:MM" (24h) format.
	ReminderTime    string `json:"reminder_time"`
	ReminderEnabled bool   `json:"reminder_enabled"`
}

// DefaultSettings returns the settings used when nothing has been persisted yet.
func DefaultSettings() Settings {
	return Settings{
		ReminderTime:    "21:00",
		ReminderEnabled: false,
	}
}
