package models

// Credentials is the body of an authentication request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RotateSecretRequest is the body of a password change request made by an
// already authenticated account.
type RotateSecretRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

// AccessToken is returned after a successful authentication.
type AccessToken struct {
	AccessToken string `json:"access_token"`
}

// IngestResponse is returned after a protected reading was stored. It echoes
// both resolutions so the caller can see what anonymous clients will get.
type IngestResponse[K SensorKind] struct {
	Protected ProtectedReading[K] `json:"protected"`
	Public    PublicReading[K]    `json:"public"`
}
