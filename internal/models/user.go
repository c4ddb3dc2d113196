package models

type User struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Nickname    string  `json:"nickname,omitempty"`
	Email       string  `json:"email"`
	Password    string  `json:"-"`
	Avatar      string  `json:"avatar,omitempty"`
	Description string  `json:"description,omitempty"`
	Country     string  `json:"country,omitempty"`
	GoogleID    *string `json:"googleId,omitempty"`
	LoggedInAt  *string `json:"loggedInAt,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}
