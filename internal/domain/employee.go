package domain

import "time"

type Employee struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"created_on"`
}
