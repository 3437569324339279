package main

import "github.com/killallgit/jamjot-api/cmd"

// @title           Jamjot API
// @version         1.0.0
// @description     Notes and timestamps on the playlists and tracks of a music catalog
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/jamjot-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer " followed by a token from `jamjot-api token`
func main() {
	cmd.Execute()
}
