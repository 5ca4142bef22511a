package models

import "time"

// Labels used when the client leaves a field blank.
const (
	DefaultUserName = "Pengguna Anonim"
	DefaultCategory = "Umum"
)

// Session is one counseling visit. Rows are never updated or deleted.
type Session struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement" bson:"_id" json:"id"`
	UserName       string    `gorm:"column:user_name;type:text" bson:"user_name" json:"userName"`
	EthnicGroup    string    `gorm:"column:ethnic_group;type:text" bson:"ethnic_group" json:"ethnicGroup"`
	EducationLevel string    `gorm:"column:education_level;type:text" bson:"education_level" json:"educationLevel"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" bson:"created_at" json:"createdAt"`

	Interactions []Interaction `gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" bson:"-" json:"-"`
}

func (Session) TableName() string { return "sessions" }
