package repository

const (
	MethodForm  = "form"
	MethodImage = "image"
)

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(255);not null"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt hash, never plaintext
}

type History struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;index"`
	Method string `gorm:"type:varchar(10);not null"` // form | image
	Input  string `gorm:"type:text;not null"`
	Result string `gorm:"type:text;not null"`
}
