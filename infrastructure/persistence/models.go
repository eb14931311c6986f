package persistence

import "time"

// HomeModel represents a housing record in the database. Column names
// keep the original Boston housing dataset abbreviations.
type HomeModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	RM        float64   `gorm:"column:rm;not null"`
	LStat     float64   `gorm:"column:lstat;not null"`
	Dis       float64   `gorm:"column:dis;not null"`
	Tax       float64   `gorm:"column:tax;not null"`
	PTRatio   float64   `gorm:"column:ptratio;not null"`
	Age       float64   `gorm:"column:age;not null"`
	Indus     float64   `gorm:"column:indus;not null"`
	Medv      float64   `gorm:"column:medv;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName returns the table name.
func (HomeModel) TableName() string {
	return "homes"
}
