package models

// Lab uses the caller-supplied lab id as its primary key, so creating a
// lab with an id that is already taken is a uniqueness violation rather
// than an upsert.
type Lab struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"size:100"`
	Type string `gorm:"size:100"`
}
