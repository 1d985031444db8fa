package models

import "time"

// Session is a server-side login session addressed by an opaque token.
type Session struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Username      string     `gorm:"column:username;not null;index"`
	SessionToken  string     `gorm:"column:session_token;not null;uniqueIndex"`
	DeviceInfo    string     `gorm:"column:device_info;type:varchar(255);not null"`
	LoginTime     time.Time  `gorm:"column:login_time;autoCreateTime"`
	LastActivity  *time.Time `gorm:"column:last_activity"`
	ExpiresAt     time.Time  `gorm:"column:expires_at;not null"`
	IsActive      bool       `gorm:"column:is_active;not null;default:true"`
	InvalidatedAt *time.Time `gorm:"column:invalidated_at"`
}

func (Session) TableName() string { return "user_sessions" }
