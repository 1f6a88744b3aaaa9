package cohorting

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/mock/gomock"
)

func TestProperty_RetentionWeekZero(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("week 0 is 100 for members and 0 for an empty cohort", prop.ForAll(
		func(memberCount, weeks int, activeShare int) bool {
			f := newFixture(t)

			members := make([]int64, memberCount)
			for i := range members {
				members[i] = int64(i + 1)
			}
			f.members.EXPECT().RegisteredBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(members, nil)
			active := memberCount * activeShare / 100
			f.events.EXPECT().CountActiveUsers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(active, nil).AnyTimes()

			curve := f.service.BuildRetentionCurve(context.Background(), januaryCohort(), weeks)
			if len(curve) != weeks {
				return false
			}

			if memberCount == 0 {
				for _, pct := range curve {
					if pct != 0 {
						return false
					}
				}
				return true
			}

			if curve[0] != 100.0 {
				return false
			}
			for _, pct := range curve[1:] {
				if pct < 0 || pct > 100 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 300),
		gen.IntRange(1, MaxWeeks),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
