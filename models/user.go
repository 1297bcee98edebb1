package models

type Usuario struct {
	ID          int    `json:"id"`
	FirebaseUID string `json:"firebase_uid,omitempty"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
}
