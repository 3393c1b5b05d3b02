package storage

// Habit is the persisted shape of one habit. Field names match the stored JSON.
type Habit struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Streak         int     `json:"streak"`
	CompletedToday bool    `json:"completedToday"`
	LastCompleted  *string `json:"lastCompleted"`
}

// Stats is the persisted level/XP pair.
type Stats struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
}

// DefaultStats is what a first run starts with.
func DefaultStats() Stats {
	return Stats{Level: 1, XP: 0}
}
