package entities

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	PasswordHash string  `gorm:"type:varchar(256);not null" json:"-"`
	AvatarURL    *string `gorm:"type:varchar(255)" json:"avatar_url"`

	Orders []Order `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
