package factory

import (
	"time"

	"github.com/courtside/draftboard/internal/dependencies/mocks"
	"github.com/courtside/draftboard/internal/services/session"
	"github.com/courtside/draftboard/internal/storage/memory"
	"github.com/courtside/draftboard/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock    *mocks.MockClock
	MockProvider *mocks.MockProvider
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC))
	mockProvider := mocks.NewMockProvider()

	app := newWithDependencies(store, mockClock, mockProvider, session.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:          app,
		MockClock:    mockClock,
		MockProvider: mockProvider,
	}
}
