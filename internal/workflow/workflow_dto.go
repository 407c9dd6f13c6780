package workflow

type TransitionRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type TransitionResponse struct {
	RecordID   string `json:"recordId"`
	FromStatus string `json:"fromStatus"`
	Status     string `json:"status"`
	AdminID    string `json:"adminId"`
}
