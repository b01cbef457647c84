package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "sns_flash"

// flashPrompter answers confirmations from the submitted form and carries
// alerts to the next page render in a short-lived cookie.
type flashPrompter struct {
	c         *gin.Context
	confirmed bool
	alerts    []string
}

func newFlashPrompter(c *gin.Context, confirmed bool) *flashPrompter {
	return &flashPrompter{c: c, confirmed: confirmed}
}

func (p *flashPrompter) Alert(message string) {
	p.alerts = append(p.alerts, message)
	p.c.SetCookie(flashCookie, strings.Join(p.alerts, "\n"), 60, "/", "", false, true)
}

func (p *flashPrompter) Confirm(string) bool {
	return p.confirmed
}

// takeFlash returns and clears the alerts left by the previous request.
func takeFlash(c *gin.Context) []string {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return strings.Split(value, "\n")
}
