package models

// Client represents a row of the clients table.
type Client struct {
	ClientID       string `db:"client_id"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	Email          string `db:"email"`
	Phone          string `db:"phone"`
	IdentityNumber string `db:"identity_number"`
	Address        string `db:"address"`
	City           string `db:"city"`
	Country        string `db:"country"`
	AuditFields
}
