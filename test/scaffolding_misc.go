package test

import (
	"go.uber.org/mock/gomock"
	"wren/dal"
	"wren/test/mocks"
)

// The second matcher covers the whole variadic slot, empty or not; with just
// one matcher, gomock rejects multi-argument calls as arity mismatches.
func setupDummyLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func setupDummyMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().ActivityHandled(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ActivityDropped(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().DuplicateActivity(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().NotificationCreated(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PushAttempted().AnyTimes()
	mockMetrics.EXPECT().PushFailed().AnyTimes()
}

func setupFakeTexts(mockTexts *mocks.MockITexts) {
	mockTexts.EXPECT().WithVals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(id string, vals map[string]string) string {
			return fakeTextWithVals(id, vals)
		}).AnyTimes()
}

func fakeTextWithVals(id string, vals map[string]string) string {
	res := id
	for k, v := range vals {
		res += "\n" + k + "\t" + v
	}
	return res
}

// checkEvent matches an audit envelope by event name.
func checkEvent(eventName string) gomock.Matcher {
	return gomock.Cond(func(evt *dal.Event) bool {
		return evt != nil && evt.EventName == eventName && evt.EventId != ""
	})
}
