package authentications

// Response messages
const (
	MessageAuthenticationAdded  = "Authentication added successfully"
	MessageAccessTokenRefreshed = "Access token refreshed successfully"
	MessageRefreshTokenDeleted  = "Refresh token deleted successfully"
)

// IssueResponseData is returned after a successful login
type IssueResponseData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponseData is returned after a successful refresh.
// The refresh token is not rotated so it is never echoed back.
type RefreshResponseData struct {
	AccessToken string `json:"accessToken"`
}
