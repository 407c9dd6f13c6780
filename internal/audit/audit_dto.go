package audit

import "time"

type EntryResponse struct {
	ID         string  `json:"id"`
	RecordID   string  `json:"recordId"`
	AdminID    string  `json:"adminId"`
	AdminName  string  `json:"adminName,omitempty"`
	AdminEmail string  `json:"adminEmail,omitempty"`
	Action     string  `json:"action"`
	Details    *string `json:"details,omitempty"`
	Timestamp  string  `json:"timestamp"`
}

func mapEntryToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID.String(),
		RecordID:   e.RecordID.String(),
		AdminID:    e.AdminID.String(),
		AdminName:  e.AdminName,
		AdminEmail: e.AdminEmail,
		Action:     e.Action,
		Details:    e.Details,
		Timestamp:  e.Timestamp.UTC().Format(time.RFC3339),
	}
}
