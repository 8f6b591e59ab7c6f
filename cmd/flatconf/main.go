// flatconf transcodes nested configuration documents to and from flat
// key=value maps.
package main

import "github.com/thirteen37/flatconf/internal/cmd"

func main() {
	cmd.Execute()
}
