package model

import "time"

// User is a dubbing-team member known to the dashboard, upserted from
// task-service assignee data during sync.
type User struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	Name       string    `gorm:"column:name" json:"name"`
	Email      string    `gorm:"column:email" json:"email,omitempty"`
	Role       string    `gorm:"column:role" json:"role,omitempty"`
	AvatarURL  string    `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	Experience string    `gorm:"column:experience_level" json:"experience_level,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "dubbing_users"
}
