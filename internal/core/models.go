package core

type RegisterMessage struct {
	Name     string
	Email    string
	Password string
}

type LoginMessage struct {
	Email    string
	Password string
}

// UserRecord is what callers get back about a user. The password hash never
// leaves the repository layer.
type UserRecord struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Prediction holds the upstream response body verbatim.
type Prediction struct {
	Body []byte
}

type HistoryEntry struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"userId"`
	Method string `json:"method"`
	Input  string `json:"input"`
	Result string `json:"result"`
}
