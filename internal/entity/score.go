package entity

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	Name     string `json:"name"`
	Trophies int    `json:"trophies"`
}
