package models

import "time"

// ContactMessage is a persisted contact-form submission.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	IP        string    `bson:"ip,omitempty" json:"ip,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// ContactRequest is the payload accepted by the contact endpoint. Website is
// a honeypot field: real users never fill it, bots do.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Website string `json:"website"`
}
