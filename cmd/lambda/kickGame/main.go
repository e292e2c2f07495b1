package main

import (
	"github.com/pbf-league/huddle/internal/handlers"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	lambda.Start(handlers.KickGameHandler)
}
