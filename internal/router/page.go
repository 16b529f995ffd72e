package router

import (
	"fmt"
	"strconv"

	"github.com/kapu/portfolio-client-go/internal/domain"
)

// Page is the typed form of a resolved route. The set of implementations is
// closed: Home, ProjectDetail, Manage, ManageProfile, ManageProjects and
// ManageProject.
type Page interface {
	Kind() domain.PageKind
	isPage()
}

type Home struct{}

type ProjectDetail struct {
	ID int
}

type Manage struct{}

type ManageProfile struct{}

type ManageProjects struct{}

type ManageProject struct {
	ID int
}

func (Home) Kind() domain.PageKind           { return domain.PageHome }
func (ProjectDetail) Kind() domain.PageKind  { return domain.PageProject }
func (Manage) Kind() domain.PageKind         { return domain.PageManage }
func (ManageProfile) Kind() domain.PageKind  { return domain.PageManageProfile }
func (ManageProjects) Kind() domain.PageKind { return domain.PageManageProjects }
func (ManageProject) Kind() domain.PageKind  { return domain.PageManageProject }

func (Home) isPage()           {}
func (ProjectDetail) isPage()  {}
func (Manage) isPage()         {}
func (ManageProfile) isPage()  {}
func (ManageProjects) isPage() {}
func (ManageProject) isPage()  {}

// Page converts the route into its typed variant, parsing the project id.
func (r Route) Page() (Page, error) {
	switch r.Kind {
	case domain.PageHome:
		return Home{}, nil
	case domain.PageProject:
		id, err := r.Params.Int("id")
		if err != nil {
			return nil, err
		}
		return ProjectDetail{ID: id}, nil
	case domain.PageManage:
		return Manage{}, nil
	case domain.PageManageProfile:
		return ManageProfile{}, nil
	case domain.PageManageProjects:
		return ManageProjects{}, nil
	case domain.PageManageProject:
		id, err := r.Params.Int("id")
		if err != nil {
			return nil, err
		}
		return ManageProject{ID: id}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, r.Path)
	}
}

// Path builds the canonical URL path for a page.
func Path(p Page) string {
	switch v := p.(type) {
	case Home:
		return "/"
	case ProjectDetail:
		return "/projects/" + strconv.Itoa(v.ID)
	case Manage:
		return "/manage"
	case ManageProfile:
		return "/manage/profile"
	case ManageProjects:
		return "/manage/projects"
	case ManageProject:
		return "/manage/projects/" + strconv.Itoa(v.ID)
	default:
		return "/"
	}
}
