package adapter

import (
	"fmt"
	"strings"

	"github.com/kapu/portfolio-client-go/internal/constants"
	"github.com/kapu/portfolio-client-go/internal/domain"
	"github.com/kapu/portfolio-client-go/internal/util"
)

// TextFormatter renders page data as plain text for terminals.
type TextFormatter struct {
	indent string
}

func NewTextFormatter(indent string) *TextFormatter {
	if indent == "" {
		indent = "  "
	}
	return &TextFormatter{indent: indent}
}

// FormatPage renders whatever the page loader produced.
func (f *TextFormatter) FormatPage(data *domain.PageData) string {
	if data == nil {
		return "Nothing to show."
	}

	switch data.Kind {
	case domain.PageHome:
		var sb strings.Builder
		sb.WriteString(f.FormatProfile(data.Profile))
		sb.WriteString("\n\n")
		sb.WriteString(f.FormatProjects(data.Projects))
		return sb.String()
	case domain.PageProject, domain.PageManageProject:
		return f.FormatProject(data.Project)
	case domain.PageManageProfile:
		return f.FormatProfile(data.Profile)
	case domain.PageManageProjects:
		return f.FormatProjects(data.Projects)
	case domain.PageManage:
		return "Management\n" + f.indent + "/manage/profile\n" + f.indent + "/manage/projects"
	default:
		return fmt.Sprintf("No page for %s.", data.Kind)
	}
}

func (f *TextFormatter) FormatProfile(profile *domain.Profile) string {
	if profile == nil {
		return "Profile not available."
	}

	var sb strings.Builder
	sb.WriteString(profile.Name)
	if profile.Email != "" {
		sb.WriteString(fmt.Sprintf(" <%s>", profile.Email))
	}
	sb.WriteString("\n")
	if profile.Summary != "" {
		sb.WriteString(f.indent + f.truncate(profile.Summary, constants.StringLimits.Summary) + "\n")
	}

	if len(profile.Socials) > 0 {
		sb.WriteString("\nLinks\n")
		for _, link := range profile.Socials {
			if strings.TrimSpace(link.URL) == "" {
				continue
			}
			sb.WriteString(fmt.Sprintf("%s- %s: %s\n", f.indent, link.Name, link.URL))
		}
	}

	if len(profile.Educations) > 0 {
		sb.WriteString("\nEducation\n")
		for _, edu := range profile.Educations {
			sb.WriteString(fmt.Sprintf("%s- %s, %s (%s)\n", f.indent, edu.Degree, edu.Institution, formatYears(edu)))
		}
	}

	return strings.TrimSpace(sb.String())
}

func (f *TextFormatter) FormatProjects(projects []domain.Project) string {
	if len(projects) == 0 {
		return "No projects yet."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Projects (%d)\n", len(projects)))
	for i, p := range projects {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s#%d %s\n", f.indent, p.ID, p.Name))
		if p.Summary != "" {
			sb.WriteString(f.indent + f.indent + f.truncate(p.Summary, constants.StringLimits.Summary) + "\n")
		}
		if names := technologyNames(p.Technologies); names != "" {
			sb.WriteString(f.indent + f.indent + names + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (f *TextFormatter) FormatProject(p *domain.Project) string {
	if p == nil {
		return "Project not found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("#%d %s\n", p.ID, p.Name))
	if p.Summary != "" {
		sb.WriteString(f.indent + f.truncate(p.Summary, constants.StringLimits.Summary) + "\n")
	}
	if p.Description != "" {
		sb.WriteString("\n" + f.truncate(p.Description, constants.StringLimits.Description) + "\n")
	}
	if p.Stack != "" {
		sb.WriteString(fmt.Sprintf("\nStack: %s\n", p.Stack))
	}
	if names := technologyNames(p.Technologies); names != "" {
		sb.WriteString(fmt.Sprintf("Technologies: %s\n", names))
	}

	if len(p.Repositories) > 0 {
		sb.WriteString("\nRepositories\n")
		for _, repo := range p.Repositories {
			sb.WriteString(fmt.Sprintf("%s- %s: %s\n", f.indent, repo.Name, repo.URL))
		}
	}
	if len(p.Collaborators) > 0 {
		sb.WriteString("\nCollaborators\n")
		for _, c := range p.Collaborators {
			if c.PortfolioURL == "" {
				sb.WriteString(fmt.Sprintf("%s- %s\n", f.indent, c.Name))
				continue
			}
			sb.WriteString(fmt.Sprintf("%s- %s (%s)\n", f.indent, c.Name, c.PortfolioURL))
		}
	}
	if len(p.Images) > 0 {
		sb.WriteString(fmt.Sprintf("\n%d image(s)\n", len(p.Images)))
	}

	return strings.TrimSpace(sb.String())
}

func (f *TextFormatter) truncate(s string, limit int) string {
	return util.TruncateString(strings.TrimSpace(s), limit)
}

func technologyNames(techs []domain.Technology) string {
	names := make([]string, 0, len(techs))
	for _, t := range techs {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return strings.Join(names, ", ")
}

func formatYears(edu domain.Education) string {
	if edu.IsOngoing() {
		return fmt.Sprintf("%d-present", edu.StartYear)
	}
	return fmt.Sprintf("%d-%d", edu.StartYear, *edu.EndYear)
}
