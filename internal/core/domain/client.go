package domain

// Client is a hotel guest on file.
type Client struct {
	ClientID       string `json:"clientID"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	IdentityNumber string `json:"identityNumber"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Country        string `json:"country"`
	AuditFields
}

// FullName returns the display name used on documents and notifications.
func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
