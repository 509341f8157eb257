package utils

import (
	"strings"
	"testing"
)

func callerOfLogger() string {
	return FileWithLineNum()
}

func TestFileWithLineNum(t *testing.T) {
	if file := callerOfLogger(); !strings.Contains(file, "utils_test.go:") {
		t.Errorf("file line with num should point to the test file, got %v", file)
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"zap", "logrus"}, "zap") {
		t.Errorf("zap should be found")
	}

	if Contains([]string{"zap", "logrus"}, "zerolog") || Contains(nil, "") {
		t.Errorf("zerolog should not be found")
	}
}
