package entity

type Session struct {
	UserID      string
	Email       string
	AccessToken string
}
