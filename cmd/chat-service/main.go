package main

import (
	"fmt"
	"os"

	"github.com/filingsight/filingsight/services/chat"
)

func main() {
	if err := chat.Command().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
