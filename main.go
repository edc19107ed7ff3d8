package main

import (
	"CheckDiskGo/cmd"
	"CheckDiskGo/internal/pkg/logger"
)

func main() {
	defer logger.Sync()
	cmd.Execute()
}
