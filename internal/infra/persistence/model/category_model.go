package model

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
