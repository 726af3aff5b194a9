package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/planflow/planflow/internal/errors"
)

// Validate checks the structural contract of a ProjectPlan. Any failure
// returns a PlanFlowError naming the offending field path; the fallback chain
// treats such failures as recoverable attempt failures, never fatal.
func (p *ProjectPlan) Validate() error {
	if strings.TrimSpace(p.ProjectName) == "" {
		return errors.NewPlanInvalidError("projectName", "must not be empty")
	}
	if strings.TrimSpace(p.ExecutiveSummary) == "" {
		return errors.NewPlanInvalidError("executiveSummary", "must not be empty")
	}

	// An empty plan is not actionable even if structurally well-formed
	if len(p.TechnologyStack) == 0 {
		return errors.NewPlanInvalidError("technologyStack", "must contain at least one entry")
	}
	for i, entry := range p.TechnologyStack {
		if strings.TrimSpace(entry.Component) == "" {
			return errors.NewPlanInvalidError(fmt.Sprintf("technologyStack[%d].component", i), "must not be empty")
		}
		if strings.TrimSpace(entry.Technology) == "" {
			return errors.NewPlanInvalidError(fmt.Sprintf("technologyStack[%d].technology", i), "must not be empty")
		}
	}

	if len(p.Schedule.Tasks) == 0 {
		return errors.NewPlanInvalidError("ganttData.data", "must contain at least one task")
	}

	taskIDs := make(map[int]bool, len(p.Schedule.Tasks))
	for i, task := range p.Schedule.Tasks {
		path := fmt.Sprintf("ganttData.data[%d]", i)

		if task.ID <= 0 {
			return errors.NewPlanInvalidError(path+".id", fmt.Sprintf("must be a positive integer, got %d", task.ID))
		}
		if taskIDs[task.ID] {
			return errors.NewPlanInvalidError(path+".id", fmt.Sprintf("duplicate task id %d", task.ID))
		}
		taskIDs[task.ID] = true

		if strings.TrimSpace(task.Text) == "" {
			return errors.NewPlanInvalidError(path+".text", "must not be empty")
		}
		if task.Duration < 0 {
			return errors.NewPlanInvalidError(path+".duration", fmt.Sprintf("must be non-negative, got %d", task.Duration))
		}
		if _, err := time.Parse(DateLayout, task.StartDate); err != nil {
			return errors.NewPlanInvalidError(path+".start_date", fmt.Sprintf("must be an ISO 8601 date (YYYY-MM-DD), got %q", task.StartDate))
		}
		if task.Progress < 0 || task.Progress > 1 {
			return errors.NewPlanInvalidError(path+".progress", fmt.Sprintf("must be a fraction in [0,1], got %v", task.Progress))
		}
	}

	for i, link := range p.Schedule.Links {
		path := fmt.Sprintf("ganttData.links[%d]", i)

		if link.ID <= 0 {
			return errors.NewPlanInvalidError(path+".id", fmt.Sprintf("must be a positive integer, got %d", link.ID))
		}
		if !taskIDs[link.Source] {
			return errors.NewPlanInvalidError(path+".source", fmt.Sprintf("references unknown task id %d", link.Source))
		}
		if !taskIDs[link.Target] {
			return errors.NewPlanInvalidError(path+".target", fmt.Sprintf("references unknown task id %d", link.Target))
		}
	}

	return nil
}
