package entities

type Order struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Status string `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	// Username is a snapshot of the owner's name when the order was placed.
	Username string `gorm:"type:varchar(80);not null" json:"username"`

	User  *User       `gorm:"foreignKey:UserID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Timestamp
}

type OrderItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	OrderID  uint `gorm:"not null;index" json:"order_id"`
	RecipeID uint `gorm:"not null;index" json:"recipe_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:RESTRICT" json:"recipe,omitempty"`
}
