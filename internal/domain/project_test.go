package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProjectEmptyListsRoundTrip(t *testing.T) {
	original := Project{ID: 7, Name: "empty", Summary: "s", Stack: "go"}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{"technologies", "collaborators", "repositories", "images"} {
		if !strings.Contains(string(data), `"`+field+`":[]`) {
			t.Errorf("expected %s to encode as [], got %s", field, data)
		}
	}
	if original.Technologies != nil {
		t.Fatalf("marshal must not mutate the source project")
	}

	var decoded Project
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Technologies == nil || decoded.Collaborators == nil || decoded.Repositories == nil || decoded.Images == nil {
		t.Fatalf("expected non-nil lists, got %+v", decoded)
	}
	if len(decoded.Technologies)+len(decoded.Collaborators)+len(decoded.Repositories)+len(decoded.Images) != 0 {
		t.Fatalf("expected zero-length lists, got %+v", decoded)
	}
}

func TestProjectDecodesMissingAndNullLists(t *testing.T) {
	var p Project
	body := `{"id":3,"name":"n","summary":"s","stack":"vue","technologies":null}`
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := Project{
		ID:            3,
		Name:          "n",
		Summary:       "s",
		Stack:         "vue",
		Technologies:  []Technology{},
		Collaborators: []Collaborator{},
		Repositories:  []Repository{},
		Images:        []Image{},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("project mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectWireNames(t *testing.T) {
	body := `{
		"id": 1,
		"name": "Portfolio",
		"summary": "site",
		"description": "long form",
		"stack": "Vue + Go",
		"technologies": [{"name": "Go", "url": "https://go.dev"}],
		"collaborators": [{"name": "Ana", "portfolioUrl": "https://ana.dev"}],
		"repositories": [{"name": "web", "url": "https://example.com/web"}],
		"images": [{"data": "aGVsbG8="}]
	}`

	var p Project
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := Project{
		ID:            1,
		Name:          "Portfolio",
		Summary:       "site",
		Description:   "long form",
		Stack:         "Vue + Go",
		Technologies:  []Technology{{Name: "Go", URL: "https://go.dev"}},
		Collaborators: []Collaborator{{Name: "Ana", PortfolioURL: "https://ana.dev"}},
		Repositories:  []Repository{{Name: "web", URL: "https://example.com/web"}},
		Images:        []Image{{Data: "aGVsbG8="}},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("project mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileOpenEndedEducation(t *testing.T) {
	body := `{"id":1,"name":"N","summary":"S","email":"n@example.com",
		"educations":[{"id":2,"institution":"Uni","degree":"BSc","startYear":2019}]}`

	var p Profile
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Socials == nil || len(p.Socials) != 0 {
		t.Fatalf("expected empty socials, got %#v", p.Socials)
	}
	if len(p.Educations) != 1 || !p.Educations[0].IsOngoing() {
		t.Fatalf("expected one ongoing education, got %+v", p.Educations)
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "endYear") {
		t.Fatalf("open-ended education must omit endYear, got %s", data)
	}
}

func TestPageKindIsManagement(t *testing.T) {
	if PageHome.IsManagement() || PageProject.IsManagement() {
		t.Fatalf("public pages must not be management pages")
	}
	for _, k := range []PageKind{PageManage, PageManageProfile, PageManageProjects, PageManageProject} {
		if !k.IsManagement() || !k.IsValid() {
			t.Fatalf("expected %s to be a valid management page", k)
		}
	}
	if PageNotFound.IsValid() {
		t.Fatalf("not_found is not a routable page")
	}
}

func TestPageDataKeepsEmptyProjectList(t *testing.T) {
	for _, kind := range []PageKind{PageManageProjects, PageHome} {
		data, err := json.Marshal(&PageData{Kind: kind, Projects: []Project{}})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.Contains(string(data), `"projects":[]`) {
			t.Fatalf("%s: expected empty projects list, got %s", kind, data)
		}

		data, err = json.Marshal(PageData{Kind: kind})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.Contains(string(data), `"projects":[]`) {
			t.Fatalf("%s: expected nil list encoded as [], got %s", kind, data)
		}
	}

	data, err := json.Marshal(PageData{Kind: PageProject, Project: &Project{ID: 4, Name: "x"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), `"projects"`) {
		t.Fatalf("detail pages carry no list, got %s", data)
	}
}
