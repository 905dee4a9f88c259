package domain

// Team represents a named group of users.
type Team struct {
	TeamName string       `json:"team_name"`
	Members  []TeamMember `json:"members"`
}

// TeamMember is a user as seen from within a team. It mirrors the live user
// record, so activity changes are visible on every subsequent team read.
type TeamMember struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}
