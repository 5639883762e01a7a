package domain

import "time"

// AskRecord is one entry of the flat ask log: every substantive question
// asked, independent of session threading.
type AskRecord struct {
	ID       string    `json:"id"`
	Question string    `json:"question"`
	Date     time.Time `json:"date"`
}
