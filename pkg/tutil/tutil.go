package tutil

import (
	"os"
	"strings"
)

func IsIntegrationTest() bool {
	testType := os.Getenv("TANKOBON_TEST")
	return strings.ToLower(testType) == "integration"
}
