package model

type Video struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	URL         string `json:"url" gorm:"not null"`
	ViewsCount  int    `json:"views_count" gorm:"default:0"`
	// Denormalized counter mutated directly on like; can drift from the likes table.
	LikesCount int `json:"likes_count" gorm:"default:0"`

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:VideoID"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:VideoID"`
}
