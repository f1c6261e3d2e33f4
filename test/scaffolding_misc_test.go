package test

import (
	"testing"

	"go.uber.org/mock/gomock"
	"wren/test/mocks"
)

// The production code logs with zero or more value arguments after the
// message; the dummy logger must swallow every arity without complaint.
func TestDummyLoggerSwallowsAnyArity(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	setupDummyLogger(mockLogger)

	mockLogger.Info("plain message")
	mockLogger.Infof("no values")
	mockLogger.Infof("one value: %s", "val")
	mockLogger.Infof("two values: %s %d", "val", 2)
	mockLogger.Warnf("value: %v", "val")
	mockLogger.Errorf("values: %s %s %s", "a", "b", "c")
	mockLogger.Debugf("value: %d", 1)
	mockLogger.Printf("value: %d", 1)
}
