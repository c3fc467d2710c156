package render

import (
	"encoding/json"

	"github.com/five82/reposearch/internal/github"
)

// JSON renders indented JSON, for piping results into other tools.
type JSON struct{}

// List renders the whole response.
func (JSON) List(resp *github.SearchResponse) string {
	if resp == nil {
		resp = &github.SearchResponse{Repositories: []github.Repository{}}
	}
	return marshal(resp)
}

// Detail renders one repository.
func (JSON) Detail(repo github.Repository) string {
	return marshal(repo)
}

func marshal(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}
