package funneling

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"go.uber.org/mock/gomock"
)

var (
	periodStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	testQueryConfig = config.Query{MaxRangeDays: 90}
)

func checkoutFunnel(windowHours int) *domain.FunnelDefinition {
	return &domain.FunnelDefinition{
		ID:       "fnl_checkout",
		TenantID: 7,
		Name:     "Checkout",
		Steps: []domain.FunnelStep{
			{Label: "View", EventType: "view"},
			{Label: "Cart", EventType: "add_to_cart"},
			{Label: "Buy", EventType: "purchase"},
		},
		ConversionWindowHours: windowHours,
	}
}

// sessionsAt gives n sessions, s0..s(n-1), one event each at the given offset.
func sessionsAt(n int, offset time.Duration) map[string][]time.Time {
	out := make(map[string][]time.Time, n)
	for i := 0; i < n; i++ {
		out[fmt.Sprintf("s%d", i)] = []time.Time{periodStart.Add(offset)}
	}
	return out
}

// sessionsFired gives the set of sessions s0..s(n-1).
func sessionsFired(n int) map[string]struct{} {
	out := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		out[fmt.Sprintf("s%d", i)] = struct{}{}
	}
	return out
}

func TestService_CalculateFunnel(t *testing.T) {
	tests := []struct {
		name     string
		funnel   *domain.FunnelDefinition
		setup    func(events *mocks.MockEventRepository)
		validate func(t *testing.T, results []domain.FunnelStepResult)
	}{
		{
			name:   "view, cart, purchase narrows 1000 to 300 to 60",
			funnel: checkoutFunnel(0),
			setup: func(events *mocks.MockEventRepository) {
				events.EXPECT().GetSessionsWithEvent(gomock.Any(), int64(7), "view", periodStart, periodEnd).Return(sessionsFired(1000), nil)
				events.EXPECT().GetSessionsWithEvent(gomock.Any(), int64(7), "add_to_cart", periodStart, periodEnd).Return(sessionsFired(300), nil)
				events.EXPECT().GetSessionsWithEvent(gomock.Any(), int64(7), "purchase", periodStart, periodEnd).Return(sessionsFired(60), nil)
			},
			validate: func(t *testing.T, results []domain.FunnelStepResult) {
				require.Len(t, results, 3)

				assert.Equal(t, domain.FunnelStepResult{Step: 1, Label: "View", EventType: "view", Entered: 1000, Converted: 1000, ConversionRate: 100, DropOffRate: 0}, results[0])
				assert.Equal(t, 1000, results[1].Entered)
				assert.Equal(t, 300, results[1].Converted)
				assert.Equal(t, 30.0, results[1].ConversionRate)
				assert.Equal(t, 70.0, results[1].DropOffRate)
				assert.Equal(t, 300, results[2].Entered)
				assert.Equal(t, 60, results[2].Converted)
				assert.Equal(t, 20.0, results[2].ConversionRate)
			},
		},
		{
			name:   "an empty step short-circuits the rest",
			funnel: checkoutFunnel(0),
			setup: func(events *mocks.MockEventRepository) {
				events.EXPECT().GetSessionsWithEvent(gomock.Any(), int64(7), "view", periodStart, periodEnd).Return(sessionsFired(10), nil)
				events.EXPECT().GetSessionsWithEvent(gomock.Any(), int64(7), "add_to_cart", periodStart, periodEnd).Return(map[string]struct{}{}, nil)
			},
			validate: func(t *testing.T, results []domain.FunnelStepResult) {
				require.Len(t, results, 3)
				assert.Equal(t, 0, results[1].Converted)
				assert.Equal(t, 0, results[2].Entered)
				assert.Equal(t, 0.0, results[2].ConversionRate)
				assert.Equal(t, 100.0, results[2].DropOffRate)
			},
		},
		{
			name:   "store failure yields no steps",
			funnel: checkoutFunnel(0),
			setup: func(events *mocks.MockEventRepository) {
				events.EXPECT().GetSessionsWithEvent(gomock.Any(), int64(7), "view", periodStart, periodEnd).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, results []domain.FunnelStepResult) {
				assert.Empty(t, results)
			},
		},
		{
			name:   "a definition without steps is empty",
			funnel: &domain.FunnelDefinition{TenantID: 7},
			setup:  func(events *mocks.MockEventRepository) {},
			validate: func(t *testing.T, results []domain.FunnelStepResult) {
				assert.NotNil(t, results)
				assert.Empty(t, results)
			},
		},
		{
			name: "a single step is always 100 percent",
			funnel: &domain.FunnelDefinition{TenantID: 7, Steps: []domain.FunnelStep{{Label: "Sign up", EventType: "signup"}}},
			setup: func(events *mocks.MockEventRepository) {
				events.EXPECT().GetSessionsWithEvent(gomock.Any(), int64(7), "signup", periodStart, periodEnd).Return(sessionsFired(4), nil)
			},
			validate: func(t *testing.T, results []domain.FunnelStepResult) {
				require.Len(t, results, 1)
				assert.Equal(t, 4, results[0].Converted)
				assert.Equal(t, 100.0, results[0].ConversionRate)
			},
		},
		{
			name:   "a conversion window reads event times",
			funnel: checkoutFunnel(24),
			setup: func(events *mocks.MockEventRepository) {
				events.EXPECT().GetSessionEventTimes(gomock.Any(), int64(7), "view", periodStart, periodEnd).Return(sessionsAt(10, time.Hour), nil)
				events.EXPECT().GetSessionEventTimes(gomock.Any(), int64(7), "add_to_cart", periodStart, periodEnd).Return(sessionsAt(5, 2*time.Hour), nil)
				events.EXPECT().GetSessionEventTimes(gomock.Any(), int64(7), "purchase", periodStart, periodEnd).Return(sessionsAt(2, time.Hour), nil)
			},
			validate: func(t *testing.T, results []domain.FunnelStepResult) {
				// The purchases happen before the carts, so nobody completes.
				assert.Equal(t, []int{10, 5, 0}, converted(results))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			events := mocks.NewMockEventRepository(ctrl)
			tt.setup(events)

			service := NewService(mocks.NewMockFunnelDefinitionRepository(ctrl), events, testQueryConfig)

			tt.validate(t, service.CalculateFunnel(context.Background(), tt.funnel, periodStart, periodEnd))
		})
	}
}

func TestService_CalculateFunnel_RejectsInvalidRanges(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{name: "empty range", start: periodEnd, end: periodEnd},
		{name: "inverted range", start: periodEnd, end: periodStart},
		{name: "longer than the maximum span", start: periodStart, end: periodStart.AddDate(0, 0, 91)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// No event read is expected.
			service := NewService(mocks.NewMockFunnelDefinitionRepository(ctrl), mocks.NewMockEventRepository(ctrl), testQueryConfig)

			results := service.CalculateFunnel(context.Background(), checkoutFunnel(0), tt.start, tt.end)
			assert.NotNil(t, results)
			assert.Empty(t, results)
		})
	}
}

func TestService_ValidateRange(t *testing.T) {
	service := NewService(nil, nil, testQueryConfig)

	require.NoError(t, service.ValidateRange(periodStart, periodStart.AddDate(0, 0, 90)))

	err := service.ValidateRange(periodStart, periodStart.AddDate(0, 0, 91))
	var funnelErr *FunnelError
	require.ErrorAs(t, err, &funnelErr)
	assert.ErrorIs(t, err, ErrDateRangeTooLarge)
	assert.Equal(t, "VAL_005", funnelErr.Code)

	err = service.ValidateRange(periodEnd, periodStart)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	unbounded := NewService(nil, nil, config.Query{})
	assert.NoError(t, unbounded.ValidateRange(periodStart, periodStart.AddDate(5, 0, 0)))
}

func TestService_GetFunnelSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventRepository(ctrl)
	events.EXPECT().GetSessionsWithEvent(gomock.Any(), int64(7), "view", periodStart, periodEnd).Return(sessionsFired(1000), nil)
	events.EXPECT().GetSessionsWithEvent(gomock.Any(), int64(7), "add_to_cart", periodStart, periodEnd).Return(sessionsFired(300), nil)
	events.EXPECT().GetSessionsWithEvent(gomock.Any(), int64(7), "purchase", periodStart, periodEnd).Return(sessionsFired(60), nil)

	service := NewService(mocks.NewMockFunnelDefinitionRepository(ctrl), events, testQueryConfig)

	summary := service.GetFunnelSummary(context.Background(), checkoutFunnel(0), periodStart, periodEnd)

	assert.Equal(t, "fnl_checkout", summary.FunnelID)
	assert.Equal(t, 1000, summary.TotalEntered)
	assert.Equal(t, 60, summary.TotalConverted)
	assert.Equal(t, 6.0, summary.OverallConversionRate)
}

func TestComputeFunnel_ConversionWindow(t *testing.T) {
	steps := checkoutFunnel(0).Steps
	at := func(hours ...int) []time.Time {
		out := make([]time.Time, 0, len(hours))
		for _, h := range hours {
			out = append(out, periodStart.Add(time.Duration(h)*time.Hour))
		}
		return out
	}

	times := []stepTimes{
		{"in_order": at(0), "out_of_order": at(5), "too_slow": at(0), "second_try": at(0, 30)},
		{"in_order": at(1), "out_of_order": at(2), "too_slow": at(10), "second_try": at(31)},
		{"in_order": at(2), "out_of_order": at(6), "too_slow": at(30), "second_try": at(32)},
	}

	t.Run("zero window only intersects", func(t *testing.T) {
		results := computeFunnel(steps, times, 0)
		assert.Equal(t, []int{4, 4, 4}, converted(results))
	})

	t.Run("positive window enforces order and elapsed time", func(t *testing.T) {
		results := computeFunnel(steps, times, 24*time.Hour)
		// out_of_order stops at step 0; too_slow reaches the cart but not the
		// purchase; second_try succeeds from its later view.
		assert.Equal(t, []int{4, 3, 2}, converted(results))
	})

	t.Run("one event never fills two steps of the same type", func(t *testing.T) {
		repeated := []domain.FunnelStep{
			{Label: "Landing", EventType: "page_view"},
			{Label: "Second page", EventType: "page_view"},
		}
		single := stepTimes{"s1": at(0)}
		twice := stepTimes{"s1": at(0, 1)}

		results := computeFunnel(repeated, []stepTimes{single, single}, 24*time.Hour)
		assert.Equal(t, []int{1, 0}, converted(results))

		results = computeFunnel(repeated, []stepTimes{twice, twice}, 24*time.Hour)
		assert.Equal(t, []int{1, 1}, converted(results))
	})
}

func TestService_CreateFunnel(t *testing.T) {
	tests := []struct {
		name     string
		funnel   *domain.FunnelDefinition
		setup    func(repo *mocks.MockFunnelDefinitionRepository)
		validate func(t *testing.T, funnel *domain.FunnelDefinition, err error)
	}{
		{
			name:   "stores a valid funnel with a generated id",
			funnel: checkoutFunnel(48),
			setup: func(repo *mocks.MockFunnelDefinitionRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, funnel *domain.FunnelDefinition, err error) {
				require.NoError(t, err)
				assert.Len(t, funnel.ID, 12)
			},
		},
		{
			name:   "rejects a funnel without steps",
			funnel: &domain.FunnelDefinition{TenantID: 7, Name: "Empty"},
			setup:  func(repo *mocks.MockFunnelDefinitionRepository) {},
			validate: func(t *testing.T, _ *domain.FunnelDefinition, err error) {
				assert.ErrorIs(t, err, ErrInvalidFunnel)
			},
		},
		{
			name:   "rejects a funnel without tenant",
			funnel: &domain.FunnelDefinition{Name: "No tenant", Steps: checkoutFunnel(0).Steps},
			setup:  func(repo *mocks.MockFunnelDefinitionRepository) {},
			validate: func(t *testing.T, _ *domain.FunnelDefinition, err error) {
				assert.ErrorIs(t, err, ErrInvalidFunnel)
			},
		},
		{
			name:   "store failure is wrapped",
			funnel: checkoutFunnel(0),
			setup: func(repo *mocks.MockFunnelDefinitionRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("unique violation"))
			},
			validate: func(t *testing.T, _ *domain.FunnelDefinition, err error) {
				assert.ErrorIs(t, err, ErrSaveFunnel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockFunnelDefinitionRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, mocks.NewMockEventRepository(ctrl), testQueryConfig)
			funnel, err := service.CreateFunnel(context.Background(), tt.funnel)

			tt.validate(t, funnel, err)
		})
	}
}

func TestService_GetFunnel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFunnelDefinitionRepository(ctrl)
	tenant := int64(7)
	repo.EXPECT().GetByID(gomock.Any(), "missing", &tenant).Return(nil, nil)

	service := NewService(repo, mocks.NewMockEventRepository(ctrl), testQueryConfig)
	_, err := service.GetFunnel(context.Background(), "missing", &tenant)

	var funnelErr *FunnelError
	require.ErrorAs(t, err, &funnelErr)
	assert.ErrorIs(t, err, ErrFunnelNotFound)
}

func converted(results []domain.FunnelStepResult) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Converted
	}
	return out
}
