package inference

// Result carries the upstream response body verbatim plus the extracted
// prediction label, falling back to a sentinel when the field is absent.
type Result struct {
	Body       []byte
	Prediction string
}

type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}
