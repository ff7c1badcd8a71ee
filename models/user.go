package models

// Purpose represents a user's declared reason for joining
type Purpose string

const (
	PurposeHealing   Purpose = "Healing"
	PurposeGrowth    Purpose = "Growth"
	PurposeDirection Purpose = "Direction"
)

// DefaultTotalSessions is the session quota granted at signup, not client-settable.
const DefaultTotalSessions = 3

// User represents a user entity with its TANA pillar scores and session quota
type User struct {
	ID            string  `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string  `bson:"name" json:"name"`
	Email         string  `bson:"email" json:"email"`
	Purpose       Purpose `bson:"purpose" json:"purpose"`
	Age           *int    `bson:"age,omitempty" json:"age,omitempty"`
	TanaMind      int     `bson:"tana_mind" json:"tana_mind"`
	TanaMoney     int     `bson:"tana_money" json:"tana_money"`
	TanaMeaning   int     `bson:"tana_meaning" json:"tana_meaning"`
	TotalSessions int     `bson:"total_sessions" json:"total_sessions"`
	SessionsUsed  int     `bson:"sessions_used" json:"sessions_used"`
}

// AuthUser is the minimal identity projection attached to authenticated requests
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
