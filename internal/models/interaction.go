package models

import "time"

// Interaction is one logged AI exchange inside a session. Append-only.
type Interaction struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" bson:"_id" json:"id"`
	SessionID    int64     `gorm:"column:session_id;not null;index" bson:"session_id" json:"sessionId"`
	FeatureTitle string    `gorm:"column:feature_title;type:text" bson:"feature_title" json:"featureTitle"`
	UserInput    string    `gorm:"column:user_input;type:text" bson:"user_input" json:"userInput"`
	AIOutput     string    `gorm:"column:ai_output;type:text" bson:"ai_output" json:"aiOutput"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" bson:"created_at" json:"createdAt"`
}

func (Interaction) TableName() string { return "interactions" }
