package funneling

import (
	"sort"
	"time"

	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/pkg/utils"
)

// stepTimes maps a session id to the times it fired one step's event type.
type stepTimes map[string][]time.Time

// sessionSet holds the sessions that fired one step's event type.
type sessionSet = map[string]struct{}

// computeFunnel counts, per step, the sessions that reached it.
//
// With a zero window a session reaches step i when it fired every event type
// of steps 0..i somewhere in the period. With a positive window the step
// events must also happen in order, each strictly after the previous matched
// step, and all within window of the step 0 event that opened the attempt.
// One event never satisfies two steps.
func computeFunnel(steps []domain.FunnelStep, times []stepTimes, window time.Duration) []domain.FunnelStepResult {
	if len(steps) == 0 || len(times) != len(steps) {
		return []domain.FunnelStepResult{}
	}

	if window > 0 {
		return stepResults(steps, orderedDepths(times, window))
	}
	return stepResults(steps, intersectionDepths(setsOf(times)))
}

// stepResults turns each session's deepest reached step into per-step counts.
func stepResults(steps []domain.FunnelStep, depths map[string]int) []domain.FunnelStepResult {
	if len(steps) == 0 {
		return []domain.FunnelStepResult{}
	}

	// reached[i] is the number of sessions whose deepest step is at least i.
	reached := make([]int, len(steps))
	for _, depth := range depths {
		for i := 0; i <= depth; i++ {
			reached[i]++
		}
	}

	results := make([]domain.FunnelStepResult, len(steps))
	for i, step := range steps {
		entered := reached[0]
		if i > 0 {
			entered = reached[i-1]
		}

		rate := 100.0
		if i > 0 {
			rate = 0
			if entered > 0 {
				rate = utils.RoundWithTwoDecimalPlace(float64(reached[i]) / float64(entered) * 100)
			}
		}

		results[i] = domain.FunnelStepResult{
			Step:           i + 1,
			Label:          step.Label,
			EventType:      step.EventType,
			Entered:        entered,
			Converted:      reached[i],
			ConversionRate: rate,
			DropOffRate:    utils.RoundWithTwoDecimalPlace(100 - rate),
		}
	}

	return results
}

func setsOf(times []stepTimes) []sessionSet {
	sets := make([]sessionSet, len(times))
	for i, step := range times {
		sets[i] = make(sessionSet, len(step))
		for session, fired := range step {
			if len(fired) > 0 {
				sets[i][session] = struct{}{}
			}
		}
	}
	return sets
}

// intersectionDepths narrows the step 0 session set one step at a time.
func intersectionDepths(sets []sessionSet) map[string]int {
	if len(sets) == 0 {
		return map[string]int{}
	}

	depths := make(map[string]int, len(sets[0]))
	for session := range sets[0] {
		depth := 0
		for i := 1; i < len(sets); i++ {
			if _, ok := sets[i][session]; !ok {
				break
			}
			depth = i
		}
		depths[session] = depth
	}
	return depths
}

// orderedDepths tries every step 0 event of a session as the start of an
// attempt and keeps the deepest one.
func orderedDepths(times []stepTimes, window time.Duration) map[string]int {
	depths := make(map[string]int, len(times[0]))
	for session, anchors := range times[0] {
		if len(anchors) == 0 {
			continue
		}

		perStep := make([][]time.Time, len(times))
		for i := range times {
			perStep[i] = sortedTimes(times[i][session])
		}

		best := 0
		for _, anchor := range perStep[0] {
			depth := walkFrom(anchor, perStep, window)
			if depth > best {
				best = depth
			}
			if best == len(times)-1 {
				break
			}
		}
		depths[session] = best
	}
	return depths
}

// walkFrom greedily matches each later step to its earliest event strictly
// after the previous match and within the window of anchor.
func walkFrom(anchor time.Time, perStep [][]time.Time, window time.Duration) int {
	deadline := anchor.Add(window)
	last := anchor
	depth := 0

	for i := 1; i < len(perStep); i++ {
		idx := sort.Search(len(perStep[i]), func(j int) bool {
			return perStep[i][j].After(last)
		})
		if idx == len(perStep[i]) || perStep[i][idx].After(deadline) {
			break
		}
		last = perStep[i][idx]
		depth = i
	}
	return depth
}

func sortedTimes(in []time.Time) []time.Time {
	out := make([]time.Time, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// summarize reduces step results to first-step entrants and last-step conversions.
func summarize(results []domain.FunnelStepResult) (entered, converted int, rate float64) {
	if len(results) == 0 {
		return 0, 0, 0
	}

	entered = results[0].Entered
	converted = results[len(results)-1].Converted
	if entered > 0 {
		rate = utils.RoundWithTwoDecimalPlace(float64(converted) / float64(entered) * 100)
	}
	return entered, converted, rate
}
