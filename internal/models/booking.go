package models

// Booking records that a user holds a lab slot on a given date. Date is
// kept as the "YYYY-MM-DD" string the booking form submits.
type Booking struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"index;not null"`
	Name   string `gorm:"size:100"`
	Date   string `gorm:"size:10"`
}
