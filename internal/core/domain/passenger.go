package domain

import "fmt"

type Passenger struct {
	Name           string
	PassportNumber string
}

func (p Passenger) String() string {
	return fmt.Sprintf("Passenger %s, passport: %s", p.Name, p.PassportNumber)
}
