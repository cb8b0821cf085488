package model

// swagger:model Category
type Category struct {
	CategoryID   uint   `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	CategoryName string `gorm:"column:category_name;size:100;uniqueIndex;not null" json:"category_name"`
	TimesChosen  int    `gorm:"column:times_chosen;not null;default:0" json:"times_chosen"`
}

func (Category) TableName() string {
	return "categories"
}
