package render

import (
	"html/template"
	"strings"

	"github.com/five82/reposearch/internal/github"
)

var listTemplate = template.Must(template.New("results").Parse(
	`<h2>Search Results for <em>{{.Query}}</em></h2>` +
		`<div class="repo-list">` +
		`<div class="repo-head"><span class="repo-name">Name</span><span class="repo-owner">Owner</span></div>` +
		`{{range $i, $repo := .Repositories}}` +
		`<a class="repo-info" data-index="{{$i}}">` +
		`<div class="repo">` +
		`<span class="repo-name">{{$repo.Name}}</span>` +
		`<span class="repo-owner">{{$repo.Owner}}</span>` +
		`</div>` +
		`</a>` +
		`{{end}}` +
		`</div>`,
))

var detailTemplate = template.Must(template.New("repoinfo").Parse(
	`<article class="repo-details wrapper">` +
		`<h2>Repository Details for <em>{{.Name}}</em></h2>` +
		`<p>Language: <strong>{{.Language}}</strong></p>` +
		`<p>Owner: <strong>{{.Owner}}</strong></p>` +
		`<p>Followers: <strong>{{.Followers}}</strong></p>` +
		`<p>Description: {{.Description}}</p>` +
		`<a href="{{.URL}}" class="button">GitHub Link</a>` +
		`</article>`,
))

// HTML renders fragments for a page's results and overlay containers.
type HTML struct{}

// List renders the results container markup.
func (HTML) List(resp *github.SearchResponse) string {
	if resp == nil {
		resp = &github.SearchResponse{}
	}
	var b strings.Builder
	if err := listTemplate.Execute(&b, resp); err != nil {
		return ""
	}
	return b.String()
}

// Detail renders the overlay markup for one repository.
func (HTML) Detail(repo github.Repository) string {
	var b strings.Builder
	if err := detailTemplate.Execute(&b, repo); err != nil {
		return ""
	}
	return b.String()
}
