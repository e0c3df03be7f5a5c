package directory

// LocationDTO maps rows of the platform's locations table. Master data is
// owned by the surrounding platform; this adapter only reads it.
type LocationDTO struct {
	ID         int64 `gorm:"primaryKey"`
	CustomerID int64
	Name       string
	Address    string
	Latitude   *float64
	Longitude  *float64
}

// TableName returns the database table name for locations.
func (LocationDTO) TableName() string {
	return "locations"
}

// ProductDTO maps rows of the platform's products table. A variant id of
// zero marks the base product without a variant.
type ProductDTO struct {
	ProductID int64 `gorm:"primaryKey"`
	VariantID int64 `gorm:"primaryKey"`
	Name      string
	Barcode   string
}

// TableName returns the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// UserDTO maps rows of the platform's users table.
type UserDTO struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

// TableName returns the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// CustomerDTO maps rows of the platform's customers table.
type CustomerDTO struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

// TableName returns the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}
