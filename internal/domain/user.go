package domain

// User is resolved from the backend by email at order time. The cart does not
// own it; orders carry a loose UserID reference.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}
