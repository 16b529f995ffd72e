package domain

import "encoding/json"

type PageKind string

const (
	PageHome           PageKind = "home"
	PageProject        PageKind = "project"
	PageManage         PageKind = "manage"
	PageManageProfile  PageKind = "manage_profile"
	PageManageProjects PageKind = "manage_projects"
	PageManageProject  PageKind = "manage_project"
	PageNotFound       PageKind = "not_found"
)

func (k PageKind) String() string {
	return string(k)
}

func (k PageKind) IsValid() bool {
	switch k {
	case PageHome, PageProject, PageManage, PageManageProfile,
		PageManageProjects, PageManageProject:
		return true
	default:
		return false
	}
}

// IsManagement reports whether the page belongs to the authenticated area.
func (k PageKind) IsManagement() bool {
	switch k {
	case PageManage, PageManageProfile, PageManageProjects, PageManageProject:
		return true
	default:
		return false
	}
}

// PageData is what a page loader hands to the view layer.
type PageData struct {
	Kind     PageKind  `json:"kind"`
	Profile  *Profile  `json:"profile,omitempty"`
	Projects []Project `json:"projects,omitempty"`
	Project  *Project  `json:"project,omitempty"`
}

// HasProjectList reports whether the page shows the project list.
func (k PageKind) HasProjectList() bool {
	return k == PageHome || k == PageManageProjects
}

type pageDataJSON PageData

type listPageJSON struct {
	Kind     PageKind  `json:"kind"`
	Profile  *Profile  `json:"profile,omitempty"`
	Projects []Project `json:"projects"`
}

// MarshalJSON writes "projects": [] on list pages even when the backend has
// no projects.
func (d PageData) MarshalJSON() ([]byte, error) {
	if !d.Kind.HasProjectList() {
		return json.Marshal(pageDataJSON(d))
	}
	projects := d.Projects
	if projects == nil {
		projects = []Project{}
	}
	return json.Marshal(listPageJSON{Kind: d.Kind, Profile: d.Profile, Projects: projects})
}
