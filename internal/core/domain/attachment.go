package domain

import "time"

// ExpenseAttachment is a file attached to an expense. Attachments are owned by
// their expense and removed with it.
type ExpenseAttachment struct {
	AttachmentID int64     `json:"attachmentID"`
	ExpenseID    int64     `json:"expenseID"`
	FileURL      string    `json:"fileURL"`
	CreatedAt    time.Time `json:"createdAt"`
}
