package kernel

// Address holds the optional free-text postal fields attached to a location.
// All fields may be empty: the domain only requires coordinates, the address
// exists for human consumption (tracking pages, courier navigation).
// Address is a plain value object without a constructor guard.
type Address struct {
	Street     string
	City       string
	District   string
	PostalCode string
}

// IsZero reports whether every address field is empty.
func (a Address) IsZero() bool {
	return a == Address{}
}
