package main

import (
	"github.com/jsphweid/voiceleader/cmd"
)

func main() {
	cmd.Execute()
}
