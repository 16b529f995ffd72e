package domain

import "encoding/json"

// Profile is the portfolio owner's singleton record. It is fetched and replaced
// by path, never created or deleted from the client.
type Profile struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	Summary    string       `json:"summary"`
	Email      string       `json:"email"`
	Socials    []SocialLink `json:"socials"`
	Educations []Education  `json:"educations"`
}

type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Education entries may be open-ended; EndYear is nil while ongoing.
type Education struct {
	ID          int    `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartYear   int    `json:"startYear"`
	EndYear     *int   `json:"endYear,omitempty"`
}

func (e Education) IsOngoing() bool {
	return e.EndYear == nil
}

type profileJSON Profile

func (p Profile) MarshalJSON() ([]byte, error) {
	p.normalize()
	return json.Marshal(profileJSON(p))
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw profileJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Profile(raw)
	p.normalize()
	return nil
}

func (p *Profile) normalize() {
	if p.Socials == nil {
		p.Socials = []SocialLink{}
	}
	if p.Educations == nil {
		p.Educations = []Education{}
	}
}
