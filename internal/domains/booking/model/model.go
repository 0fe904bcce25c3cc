package model

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldParentID  = "parent_id"
	FieldTrainerID = "trainer_id"
	FieldDate      = "date"
	FieldTime      = "time"
	FieldNotes     = "notes"
)

// Booking links a parent to a trainer. Date and time are kept as submitted.
type Booking struct {
	ID        int64  `db:"id"`
	ParentID  int64  `db:"parent_id"`
	TrainerID int64  `db:"trainer_id"`
	Date      string `db:"date"`
	Time      string `db:"time"`
	Notes     string `db:"notes"`
}
