package model

const (
	TableName  = "trainers"
	EntityName = "trainer"

	FieldID          = "id"
	FieldName        = "name"
	FieldSport       = "sport"
	FieldCredentials = "credentials"
	FieldBio         = "bio"
	FieldPrice       = "price"
	FieldEmail       = "email"
	FieldPhone       = "phone"
)

type Trainer struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Sport       string  `db:"sport"`
	Credentials string  `db:"credentials"`
	Bio         string  `db:"bio"`
	Price       float64 `db:"price"`
	Email       string  `db:"email"`
	Phone       string  `db:"phone"`
}
