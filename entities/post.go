package entities

import (
	"github.com/google/uuid"
)

type Post struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Title    string    `gorm:"size:150" json:"title"`
	Body     string    `gorm:"type:text" json:"body"`
	ImageURL string    `json:"image_url,omitempty"`

	User     *User     `gorm:"foreignKey:UserID"`
	Comments []Comment `gorm:"foreignKey:PostID"`
	Timestamp
}

type Comment struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PostID uuid.UUID `gorm:"type:uuid;index" json:"post_id"`
	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Body   string    `gorm:"type:text" json:"body"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
