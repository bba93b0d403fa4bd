package model

import "fmt"

// Address is the postal address of a platform.
type Address struct {
	City     string
	Street   string
	Building string
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s", a.City, a.Street, a.Building)
}
