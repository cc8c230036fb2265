package test

import (
	"go.uber.org/mock/gomock"

	"post_sentinel/test/mocks"
)

func stubLogger(mockLogger *mocks.MockILogger) {
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

func stubMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
	mockMetrics.EXPECT().PollCycleCompleted().AnyTimes()
	mockMetrics.EXPECT().AccountPolled(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().NewPostSaved().AnyTimes()
	mockMetrics.EXPECT().EnrichmentFallback().AnyTimes()
	mockMetrics.EXPECT().AlertSent().AnyTimes()
	mockMetrics.EXPECT().AlertFailed().AnyTimes()
	mockMetrics.EXPECT().FetchThrottled().AnyTimes()
	mockMetrics.EXPECT().MonitoredAccounts(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().EnrichQueueLength(gomock.Any()).AnyTimes()
}

func stubTexts(mockTexts *mocks.MockITexts) {
	mockTexts.EXPECT().WithVals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(id string, vals map[string]string) string {
			return dummyTextWithVals(id, vals)
		}).AnyTimes()
}

func dummyTextWithVals(id string, vals map[string]string) string {
	res := id
	for k, v := range vals {
		res += "\n" + k + "\t" + v
	}
	return res
}
