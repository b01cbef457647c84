package view

import "sns-app/services/timeline/internal/entity"

const AppTitle = "SNS App"

type Header struct {
	Title       string `json:"title"`
	UserInitial string `json:"userInitial"`
	LogoutPath  string `json:"logoutPath"`
}

func NewHeader(session *entity.Session) Header {
	initial := PlaceholderInitial
	if session != nil {
		initial = Initial(session.Email)
	}
	return Header{
		Title:       AppTitle,
		UserInitial: initial,
		LogoutPath:  "/logout",
	}
}
