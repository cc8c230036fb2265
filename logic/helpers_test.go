package logic

import "context"

// No-op doubles for white-box tests in this package; mock-driven tests live
// under test/.

type nopLogger struct{}

func (nopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Debugf(format string, args ...interface{})     {}
func (nopLogger) Info(msg interface{}, keyvals ...interface{})  {}
func (nopLogger) Infof(format string, args ...interface{})      {}
func (nopLogger) Warn(msg interface{}, keyvals ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})      {}
func (nopLogger) Error(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Errorf(format string, args ...interface{})     {}
func (nopLogger) Printf(format string, args ...interface{})     {}

type nopObserver struct{}

func (nopObserver) Finish() {}

type nopMetrics struct{}

func (nopMetrics) ServiceStarted()                   {}
func (nopMetrics) PollCycleCompleted()               {}
func (nopMetrics) AccountPolled(outcome string)      {}
func (nopMetrics) NewPostSaved()                     {}
func (nopMetrics) StartEnrichment() IRequestObserver { return nopObserver{} }
func (nopMetrics) EnrichmentFallback()               {}
func (nopMetrics) AlertSent()                        {}
func (nopMetrics) AlertFailed()                      {}
func (nopMetrics) FetchThrottled()                   {}
func (nopMetrics) MonitoredAccounts(count int)       {}
func (nopMetrics) EnrichQueueLength(length int)      {}

// fixedSessions hands out one canned session and records invalidations.
type fixedSessions struct {
	session     *Session
	invalidated int
	throttled   int
}

func (f *fixedSessions) Acquire(ctx context.Context) (*Session, error) { return f.session, nil }
func (f *fixedSessions) Invalidate(s *Session)                         { f.invalidated++ }
func (f *fixedSessions) ReportThrottled()                              { f.throttled++ }
func (f *fixedSessions) ReportSuccess()                                {}
