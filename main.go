package main

import (
	"log"

	"yashubustudio/surveycloud/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("surveycloud: %v", err)
	}
}
