package model

type Category struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	CategoryName string `json:"category_name" gorm:"uniqueIndex;not null"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:CategoryID"`
}
