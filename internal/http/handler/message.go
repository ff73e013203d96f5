package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Caller-facing failure messages. Underlying causes are logged, never exposed.
const (
	msgDuplicateEmail     = "Email already registered."
	msgRegistrationFailed = "Registration failed."
	msgInvalidCredentials = "Invalid credentials."
	msgLoginFailed        = "Login failed."
	msgPredictionFailed   = "Prediction failed."
	msgImagePredictFailed = "Image prediction failed."
	msgPredictionTimeout  = "Prediction timed out."
	msgMissingFileOrUser  = "Missing file or userId"
	msgUploadTooLarge     = "File too large."
	msgHistoryFailed      = "History lookup failed."
	msgMissingUserID      = "Missing or invalid userId"
)

// ErrorResponse is the uniform error envelope for every failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
