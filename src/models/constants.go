package models

// Role represents an admin account role
type Role string

const (
	// RoleAdmin is a regular administrator
	RoleAdmin Role = "admin"
	// RoleSuperAdmin can manage other admin accounts
	RoleSuperAdmin Role = "super_admin"
)

// Difficulty represents an animal's learning difficulty level
type Difficulty string

const (
	// DifficultyEasy is shown to the youngest learners
	DifficultyEasy Difficulty = "easy"
	// DifficultyMedium is the default level
	DifficultyMedium Difficulty = "medium"
	// DifficultyHard is for advanced learners
	DifficultyHard Difficulty = "hard"
)

// Cache keys, one per resource list (named the way the API names them)
const (
	KeyLetters = "letters"
	KeyNumbers = "numbers"
	KeyAnimals = "animals"
	KeyAdmins  = "admins"
)

// Keys for the dashboard stat queries, refreshed on an interval
const (
	KeyStats    = "stats"
	KeyActivity = "activity"
	KeyLearners = "learners"
)
