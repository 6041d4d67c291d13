package models

// PhysicalResource is a piece of lab hardware. The serial number is
// unique across the inventory independently of the resource id.
type PhysicalResource struct {
	ID           uint   `gorm:"primaryKey;autoIncrement:false"`
	Quantity     int    `gorm:"not null"`
	Manufacturer string `gorm:"size:100"`
	Model        string `gorm:"size:100"`
	SerialNumber string `gorm:"uniqueIndex;size:100"`
}

// VirtualResource is a software/VM image available to labs.
type VirtualResource struct {
	ID             uint   `gorm:"primaryKey;autoIncrement:false"`
	Quantity       int    `gorm:"not null"`
	OSManufacturer string `gorm:"size:100"`
	OSVersion      string `gorm:"size:100"`
}
