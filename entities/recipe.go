package entities

type Recipe struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Category    string `gorm:"type:varchar(50);not null" json:"category"`
	Image       string `gorm:"type:varchar(200)" json:"image"`
	Ingredients string `gorm:"type:varchar(300);not null" json:"ingredients"`

	Timestamp
}
