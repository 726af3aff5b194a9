package fallback

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/planflow/planflow/internal/plan"
)

// defaultTimelineWeeks is assumed when the user never mentioned a timeline.
const defaultTimelineWeeks = 8

// DefaultProjectText is used when the conversation held no user turn at all.
const DefaultProjectText = "a general software project"

var timelineRegex = regexp.MustCompile(`(\d+)\s*(month|week|day)`)

// Build deterministically produces a complete project plan from raw user text
// and a reference date. It is a pure function of (text, now): identical inputs
// yield identical plans, and shifting now shifts every task date by the same
// delta. It performs no external calls and cannot fail.
func Build(text string, now time.Time) *plan.ProjectPlan {
	archetype := Classify(text)
	weeks := extractTimelineWeeks(text)
	tmpl := templateFor(archetype)

	p := &plan.ProjectPlan{
		ProjectName:         tmpl.name,
		ExecutiveSummary:    fmt.Sprintf(tmpl.summary, weeks),
		KeyMilestones:       append([]string(nil), tmpl.milestones...),
		TechnologyStack:     append([]plan.TechnologyStackEntry(nil), tmpl.stack...),
		ResourceSuggestions: append([]string(nil), tmpl.resources...),
		Schedule:            buildSchedule(tmpl.tasks, now),
	}

	return p
}

// buildSchedule lays out the template tasks sequentially from now: task k
// starts the day the cumulative duration of tasks 1..k-1 completes, and each
// task after the first depends on its immediate predecessor.
func buildSchedule(tasks []templateTask, now time.Time) plan.Schedule {
	schedule := plan.Schedule{
		Tasks: make([]plan.ScheduleTask, 0, len(tasks)),
		Links: make([]plan.ScheduleLink, 0, len(tasks)),
	}

	offset := 0
	for i, t := range tasks {
		owner := t.owner
		if owner == "" {
			owner = plan.DefaultOwner
		}

		schedule.Tasks = append(schedule.Tasks, plan.ScheduleTask{
			ID:        i + 1,
			Text:      t.text,
			StartDate: now.AddDate(0, 0, offset).Format(plan.DateLayout),
			Duration:  t.duration,
			Progress:  0,
			Owner:     owner,
		})
		offset += t.duration

		if i > 0 {
			schedule.Links = append(schedule.Links, plan.ScheduleLink{
				ID:     i,
				Source: i,
				Target: i + 1,
				Type:   plan.LinkTypeFinishToStart,
			})
		}
	}

	return schedule
}

// extractTimelineWeeks finds the first "<n> month|week|day" mention and
// converts it to weeks: months are four weeks, days divide by seven rounded
// down with a minimum of one week.
func extractTimelineWeeks(text string) int {
	matches := timelineRegex.FindStringSubmatch(strings.ToLower(text))
	if len(matches) < 3 {
		return defaultTimelineWeeks
	}

	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return defaultTimelineWeeks
	}

	switch matches[2] {
	case "month":
		return n * 4
	case "week":
		return n
	case "day":
		weeks := n / 7
		if weeks < 1 {
			weeks = 1
		}
		return weeks
	}

	return defaultTimelineWeeks
}
