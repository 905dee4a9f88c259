package domain

// User represents a registered user. A user belongs to the team that most
// recently added them; the activity flag is global, not team-scoped.
type User struct {
	UserID   string `json:"user_id" db:"user_id"`
	Username string `json:"username" db:"username"`
	TeamName string `json:"team_name" db:"team_name"`
	IsActive bool   `json:"is_active" db:"is_active"`
}
