package domain

// EnforceRequest membawa identitas admin yang sudah terautentikasi
// ke pengecekan otorisasi resource/action.
type EnforceRequest struct {
	AdminID  string
	Role     string
	Resource string
	Action   string
}
