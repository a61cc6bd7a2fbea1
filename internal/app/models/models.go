package models

// Role defines the user role type
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// RoundMode defines how an interview round is conducted
type RoundMode string

const (
	ModeOnline  RoundMode = "Online"
	ModeOffline RoundMode = "Offline"
)

// Difficulty defines the difficulty rating of a round
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// PlacedStatus values. The placed flag is stored as text, not a boolean.
const (
	PlacedYes = "Yes"
	PlacedNo  = "No"
)
