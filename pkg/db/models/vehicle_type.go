package models

// VehicleType tags products with the class of vehicle they fit.
type VehicleType struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;not null;uniqueIndex"`
}
