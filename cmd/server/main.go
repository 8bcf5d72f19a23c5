package main

import (
	"os"

	"github.com/NurM0hammad/FoxMind-AI/internal/app"
)

// @title          FoxMind AI API
// @version        1.0
// @description    Web chat server proxying conversations to the Gemini API.
// @BasePath       /
func main() {
	os.Exit(app.Run())
}
