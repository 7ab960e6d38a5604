package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

func GenerateFileName(prefix, owner, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}
