package web

import (
	"html/template"
	"io"

	"go-stat-explorer/internal/model"
	"go-stat-explorer/pkg/utils"
)

// FormValues are the five editable text inputs of the explore form.
// Question, description and unit only feed the export snippet; they
// are never sent to the remote service.
type FormValues struct {
	StatisticID string
	Filter      string
	Question    string
	Description string
	Unit        string
}

// PageData is everything the explore page renders: the current field
// values, the live view state and the snippet preview. Rendering is a
// pure function of this data.
type PageData struct {
	Form    FormValues
	State   model.ExploredData
	Snippet string
}

func (d PageData) Attempted() bool {
	return d.State.State != model.StateEmpty
}

func (d PageData) IsSuccess() bool {
	return d.State.State == model.StateSuccess
}

func (d PageData) IsFailure() bool {
	return d.State.State == model.StateFailure
}

var pageTemplate = template.Must(template.New("explore").Funcs(template.FuncMap{
	"fmtValue": utils.FormatValue,
}).Parse(tmplExplorePage))

// RenderExplorePage writes the full explore page.
func RenderExplorePage(w io.Writer, data PageData) error {
	return pageTemplate.Execute(w, data)
}

const tmplExplorePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Regional Statistics Explorer</title>
<style>
body{background:#0d1117;color:#c9d1d9;font-family:sans-serif;max-width:860px;margin:24px auto;padding:0 16px}
h1{font-size:20px}
form{display:grid;gap:8px;margin-bottom:16px}
label{font-size:12px;color:#8b949e}
input{background:#161b22;border:1px solid #30363d;color:#c9d1d9;padding:6px 8px;border-radius:4px;font-size:13px}
button{background:#21262d;border:1px solid #30363d;color:#c9d1d9;padding:6px 16px;border-radius:4px;cursor:pointer;width:max-content}
table{border-collapse:collapse;margin:12px 0}
td,th{border:1px solid #30363d;padding:6px 12px;font-size:13px}
th{color:#8b949e;text-align:left}
.error{border:1px solid #f85149;border-radius:4px;padding:10px 14px;color:#f85149;white-space:pre-wrap;font-family:monospace;font-size:12px}
.warning{color:#d29922;font-size:12px}
pre.snippet{background:#161b22;border:1px solid #30363d;border-radius:4px;padding:12px;font-size:12px;overflow-x:auto}
</style>
</head>
<body>
<h1>Regional Statistics Explorer</h1>

<form method="POST" action="/explore">
  <label for="statistic-id">Statistic ID</label>
  <input id="statistic-id" name="statisticId" value="{{.Form.StatisticID}}" placeholder="e.g. BEVSTD">
  <label for="filter">Filter</label>
  <input id="filter" name="filter" value="{{.Form.Filter}}" placeholder="e.g. statistics: R12411">
  <label for="question">Question</label>
  <input id="question" name="question" value="{{.Form.Question}}">
  <label for="description">Description</label>
  <input id="description" name="description" value="{{.Form.Description}}">
  <label for="unit">Unit</label>
  <input id="unit" name="unit" value="{{.Form.Unit}}">
  <button type="submit">Explore</button>
</form>

{{if .IsFailure}}
<div class="error">{{.State.Message}}</div>
{{end}}

{{if .IsSuccess}}
<table>
  <tr><th>Region</th><th>Value ({{.State.Year}})</th></tr>
  {{range .State.Values}}
  <tr><td>{{.Name}}</td><td>{{fmtValue .Value}}</td></tr>
  {{end}}
</table>
{{range .State.Warnings}}
<p class="warning">⚠️ {{.}}</p>
{{end}}
{{end}}

{{if .Attempted}}
<h2>Export snippet</h2>
<pre class="snippet">{{.Snippet}}</pre>
{{end}}

</body>
</html>
`
