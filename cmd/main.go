package main

import "github.com/dfanso/task-pa/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustConnectPostgres()
	defer app.DisconnectPostgres()

	app.MustConnectDiscord()
	defer app.DisconnectDiscord()

	app.MustListenAndServeHTTP()
}
