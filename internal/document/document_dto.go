package document

type UploadResponse struct {
	RecordID string `json:"recordId"`
	Slot     string `json:"slot"`
	Path     string `json:"path"`
}

type DocumentSetResponse struct {
	RecordID string            `json:"recordId"`
	Slots    map[string]string `json:"slots"`
}

func mapSetToResponse(set *DocumentSet) DocumentSetResponse {
	slots := make(map[string]string, len(Slots))
	for _, s := range Slots {
		slots[s] = set.PathFor(s)
	}
	return DocumentSetResponse{
		RecordID: set.RecordID.String(),
		Slots:    slots,
	}
}
