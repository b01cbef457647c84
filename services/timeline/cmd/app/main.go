package main

import (
	"sns-app/pkg/config"
	app "sns-app/services/timeline/internal/app"

	_ "sns-app/services/timeline/docs" // Swagger docs
)

// @title           SNS Timeline API
// @version         1.0
// @description     JSON surface of the SNS timeline: the viewer's timeline and like toggling
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the auth provider's access token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.AuthAnonKey == "" {
		panic("AUTH_ANON_KEY must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
