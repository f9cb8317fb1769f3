package model

// User is the part of a user document the notifier cares about.
type User struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	FCMToken    *string `json:"fcm_token,omitempty"` // nil when the user has no push channel
}

// Token returns the push token or an empty string.
func (u User) Token() string {
	if u.FCMToken == nil {
		return ""
	}

	return *u.FCMToken
}
