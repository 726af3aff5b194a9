package plan

import (
	"strings"
	"testing"
)

func minimalValidPlan() ProjectPlan {
	return ProjectPlan{
		ProjectName:      "Sample Project",
		ExecutiveSummary: "A small project delivered in two weeks.",
		KeyMilestones:    []string{"Kickoff Complete"},
		TechnologyStack: []TechnologyStackEntry{
			{Component: "Backend", Technology: "Go", Rationale: "Fast, simple deployment"},
		},
		ResourceSuggestions: []string{"1x Developer"},
		Schedule: Schedule{
			Tasks: []ScheduleTask{
				{ID: 1, Text: "Build it", StartDate: "2026-08-31", Duration: 10, Progress: 0, Owner: "Developer"},
			},
		},
	}
}

func TestProjectPlan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProjectPlan)
		wantErr string
	}{
		{
			name:   "minimally valid plan with one task and no links",
			mutate: func(p *ProjectPlan) {},
		},
		{
			name:    "empty project name",
			mutate:  func(p *ProjectPlan) { p.ProjectName = "  " },
			wantErr: "projectName",
		},
		{
			name:    "empty executive summary",
			mutate:  func(p *ProjectPlan) { p.ExecutiveSummary = "" },
			wantErr: "executiveSummary",
		},
		{
			name:    "empty technology stack",
			mutate:  func(p *ProjectPlan) { p.TechnologyStack = nil },
			wantErr: "technologyStack",
		},
		{
			name: "technology entry missing technology",
			mutate: func(p *ProjectPlan) {
				p.TechnologyStack[0].Technology = ""
			},
			wantErr: "technologyStack[0].technology",
		},
		{
			name:    "zero schedule tasks",
			mutate:  func(p *ProjectPlan) { p.Schedule.Tasks = nil },
			wantErr: "ganttData.data",
		},
		{
			name: "non-positive task id",
			mutate: func(p *ProjectPlan) {
				p.Schedule.Tasks[0].ID = 0
			},
			wantErr: "ganttData.data[0].id",
		},
		{
			name: "duplicate task id",
			mutate: func(p *ProjectPlan) {
				p.Schedule.Tasks = append(p.Schedule.Tasks, ScheduleTask{
					ID: 1, Text: "Again", StartDate: "2026-09-01", Duration: 1,
				})
			},
			wantErr: "duplicate task id",
		},
		{
			name: "negative task duration",
			mutate: func(p *ProjectPlan) {
				p.Schedule.Tasks[0].Duration = -3
			},
			wantErr: "ganttData.data[0].duration",
		},
		{
			name: "unparseable start date",
			mutate: func(p *ProjectPlan) {
				p.Schedule.Tasks[0].StartDate = "31/08/2026"
			},
			wantErr: "ganttData.data[0].start_date",
		},
		{
			name: "progress above one",
			mutate: func(p *ProjectPlan) {
				p.Schedule.Tasks[0].Progress = 50
			},
			wantErr: "ganttData.data[0].progress",
		},
		{
			name: "link references non-existent task",
			mutate: func(p *ProjectPlan) {
				p.Schedule.Links = []ScheduleLink{
					{ID: 1, Source: 1, Target: 99, Type: LinkTypeFinishToStart},
				}
			},
			wantErr: "ganttData.links[0].target",
		},
		{
			name: "link with non-positive id",
			mutate: func(p *ProjectPlan) {
				p.Schedule.Links = []ScheduleLink{
					{ID: 0, Source: 1, Target: 1, Type: LinkTypeFinishToStart},
				}
			},
			wantErr: "ganttData.links[0].id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := minimalValidPlan()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to name %q", err, tt.wantErr)
			}
		})
	}
}

func TestProjectPlan_Validate_ZeroDurationAllowed(t *testing.T) {
	p := minimalValidPlan()
	p.Schedule.Tasks[0].Duration = 0

	if err := p.Validate(); err != nil {
		t.Errorf("zero duration should be valid (non-negative), got %v", err)
	}
}
