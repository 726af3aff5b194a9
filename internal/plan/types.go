// Package plan defines the structured project plan returned by both the
// model-generated path and the local fallback path, along with its JSON
// decoding and shape validation.
package plan

// DateLayout is the ISO 8601 calendar date layout used by schedule tasks.
const DateLayout = "2006-01-02"

// LinkTypeFinishToStart is the only dependency kind produced: the target task
// cannot start before the source task finishes. The "0" encoding matches the
// Gantt wire format consumed by the dashboard frontend.
const LinkTypeFinishToStart = "0"

// DefaultOwner is used for tasks without an assigned role.
const DefaultOwner = "Unassigned"

// TechnologyStackEntry recommends one technology for one component of the
// project.
type TechnologyStackEntry struct {
	Component  string `json:"component"`
	Technology string `json:"technology"`
	Rationale  string `json:"rationale"`
}

// ScheduleTask is a single task on the project timeline. Progress is a
// fraction in [0,1]; synthesized plans always start tasks at 0.
type ScheduleTask struct {
	ID        int     `json:"id"`
	Text      string  `json:"text"`
	StartDate string  `json:"start_date"`
	Duration  int     `json:"duration"`
	Progress  float64 `json:"progress"`
	Owner     string  `json:"owner"`
}

// ScheduleLink is a dependency between two tasks in the same plan.
type ScheduleLink struct {
	ID     int    `json:"id"`
	Source int    `json:"source"`
	Target int    `json:"target"`
	Type   string `json:"type"`
}

// Schedule is the task list plus dependency links forming the project
// timeline. The JSON field names match the Gantt wire format.
type Schedule struct {
	Tasks []ScheduleTask `json:"data"`
	Links []ScheduleLink `json:"links"`
}

// ProjectPlan is the unit returned to the caller. Plans from the external
// model and plans from the fallback builder satisfy identical structural
// invariants and are never mutated after construction.
type ProjectPlan struct {
	ProjectName         string                 `json:"projectName"`
	ExecutiveSummary    string                 `json:"executiveSummary"`
	KeyMilestones       []string               `json:"keyMilestones"`
	TechnologyStack     []TechnologyStackEntry `json:"technologyStack"`
	ResourceSuggestions []string               `json:"resourceSuggestions"`
	Schedule            Schedule               `json:"ganttData"`
}
