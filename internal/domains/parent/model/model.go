package model

const (
	TableName  = "parents"
	EntityName = "parent"

	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
)

// Parent is identified by the (email, phone) pair. The name is whatever was
// submitted first.
type Parent struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
}
