// Package report renders a project plan as a shareable document, either as a
// standalone HTML page or as a PDF.
package report

import (
	"bytes"
	"html/template"
	"time"

	"github.com/planflow/planflow/internal/errors"
	"github.com/planflow/planflow/internal/plan"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"percent": func(fraction float64) int { return int(fraction * 100) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Plan.ProjectName}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 40px auto; max-width: 800px; color: #1a1a2e; }
h1 { border-bottom: 3px solid #4361ee; padding-bottom: 8px; }
h2 { color: #4361ee; margin-top: 32px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #d0d0e0; padding: 8px 12px; text-align: left; }
th { background: #eef0fb; }
.meta { color: #666; font-size: 0.9em; }
</style>
</head>
<body>
<h1>{{.Plan.ProjectName}}</h1>
<p class="meta">Generated {{.GeneratedAt}}</p>

<h2>Executive Summary</h2>
<p>{{.Plan.ExecutiveSummary}}</p>

<h2>Key Milestones</h2>
<ul>
{{range .Plan.KeyMilestones}}<li>{{.}}</li>
{{end}}</ul>

<h2>Technology Stack</h2>
<table>
<tr><th>Component</th><th>Technology</th><th>Rationale</th></tr>
{{range .Plan.TechnologyStack}}<tr><td>{{.Component}}</td><td>{{.Technology}}</td><td>{{.Rationale}}</td></tr>
{{end}}</table>

<h2>Resource Suggestions</h2>
<ul>
{{range .Plan.ResourceSuggestions}}<li>{{.}}</li>
{{end}}</ul>

<h2>Project Schedule</h2>
<table>
<tr><th>#</th><th>Task</th><th>Start Date</th><th>Duration (days)</th><th>Progress</th><th>Owner</th></tr>
{{range .Plan.Schedule.Tasks}}<tr><td>{{.ID}}</td><td>{{.Text}}</td><td>{{.StartDate}}</td><td>{{.Duration}}</td><td>{{percent .Progress}}%</td><td>{{.Owner}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type htmlData struct {
	Plan        *plan.ProjectPlan
	GeneratedAt string
}

// RenderHTML renders the plan as a standalone HTML page.
func RenderHTML(p *plan.ProjectPlan, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	data := htmlData{Plan: p, GeneratedAt: now.Format("January 2, 2006")}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderTemplate, "rendering HTML report", err)
	}
	return buf.Bytes(), nil
}
