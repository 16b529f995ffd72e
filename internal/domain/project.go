package domain

import "encoding/json"

// Project is an independently addressable portfolio entry. The list endpoint
// may return a summary form with fewer fields populated.
type Project struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Summary       string         `json:"summary"`
	Description   string         `json:"description,omitempty"`
	Stack         string         `json:"stack"`
	Technologies  []Technology   `json:"technologies"`
	Collaborators []Collaborator `json:"collaborators"`
	Repositories  []Repository   `json:"repositories"`
	Images        []Image        `json:"images"`
}

type Technology struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Collaborator struct {
	Name         string `json:"name"`
	PortfolioURL string `json:"portfolioUrl"`
}

type Repository struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Image holds an encoded image payload, either base64 data or a URL.
type Image struct {
	Data string `json:"data"`
}

type projectJSON Project

func (p Project) MarshalJSON() ([]byte, error) {
	p.normalize()
	return json.Marshal(projectJSON(p))
}

func (p *Project) UnmarshalJSON(data []byte) error {
	var raw projectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Project(raw)
	p.normalize()
	return nil
}

// normalize replaces absent lists with empty ones so that they encode as [].
func (p *Project) normalize() {
	if p.Technologies == nil {
		p.Technologies = []Technology{}
	}
	if p.Collaborators == nil {
		p.Collaborators = []Collaborator{}
	}
	if p.Repositories == nil {
		p.Repositories = []Repository{}
	}
	if p.Images == nil {
		p.Images = []Image{}
	}
}
