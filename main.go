package main

//	@title			Sample Store
//	@version		0.1.0
//	@description	Stores, lists and deletes sample records.

//	@contact.name	Support
//	@contact.url	https://devexchange.nunet.io/
//	@contact.email	support@nunet.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host		localhost:9998
// @BasePath	/api/v1

import (
	"gitlab.com/nunet/sample-store/cmd"
)

func main() {
	// Execute command-line interface; should be the last call in main()
	cmd.Execute()
}
