package models

// User is an operator account keyed by username.
type User struct {
	Username     string `gorm:"column:username;type:text;primaryKey"`
	FullName     string `gorm:"column:fullname;not null"`
	PasswordHash string `gorm:"column:password;not null"`
	RoleID       int64  `gorm:"column:role_id;not null;default:1"`
}
