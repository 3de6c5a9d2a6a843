package domain

import "time"

type Client struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"created_on"`
}
