package model

import "time"

// Credential — сохранённая запись пароля (строка таблицы passwords).
type Credential struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id"`
	Name        string     `gorm:"column:name" json:"name"`
	Login       *string    `gorm:"column:login" json:"login,omitempty"`
	Password    string     `gorm:"column:password" json:"password"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	Website     *string    `gorm:"column:website" json:"website,omitempty"`
	UsageCount  int64      `gorm:"column:usage_count" json:"usage_count"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime:false" json:"created_at"`
	LastUsed    *time.Time `gorm:"column:last_used" json:"last_used,omitempty"`
}

// TableName keeps the table name of existing passwords.db files.
func (Credential) TableName() string { return "passwords" }

// ClipboardText returns what gets copied when the entry is used:
// "<login> <password>" when a login is set, the bare password otherwise.
func (c Credential) ClipboardText() string {
	if c.Login != nil && *c.Login != "" {
		return *c.Login + " " + c.Password
	}
	return c.Password
}

// NewCredential — входные данные для вставки новой записи.
type NewCredential struct {
	Name        string
	Password    string
	Login       *string
	Description *string
	Website     *string
}
