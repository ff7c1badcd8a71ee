package models

import "time"

// Pillar represents one of the three tracked TANA categories
type Pillar string

const (
	PillarMind    Pillar = "Mind"
	PillarMoney   Pillar = "Money"
	PillarMeaning Pillar = "Meaning"
)

// Reflection represents a journal entry tied to a single pillar
type Reflection struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Pillar    Pillar    `bson:"pillar" json:"pillar"`
	EntryText string    `bson:"entry_text" json:"entry_text"`
	Mood      *string   `bson:"mood,omitempty" json:"mood,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
