package model

import "time"

// ProjectIdea is a team's project proposal. IDs are assigned by the store
// and increase monotonically.
type ProjectIdea struct {
	ID           int64     `db:"id" json:"id"`
	TeamName     string    `db:"team_name" json:"teamName"`
	TeamSize     int       `db:"team_size" json:"teamSize"`
	RepName      string    `db:"rep_name" json:"repName"`
	RepID        string    `db:"rep_id" json:"repId"`
	RepEmail     string    `db:"rep_email" json:"repEmail"`
	OtherMembers string    `db:"other_members" json:"otherMembers"`
	CourseCode   string    `db:"course_code" json:"courseCode"`
	Category     string    `db:"category" json:"category"`
	ProjectType  string    `db:"project_type" json:"projectType"`
	ProjectName  string    `db:"project_name" json:"projectName"`
	Description  string    `db:"description" json:"description"`
	Tools        string    `db:"tools" json:"tools"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// ProjectSummary is the public listing projection of a ProjectIdea. The
// representative's ID and e-mail are not exposed.
type ProjectSummary struct {
	ID           int64     `db:"id" json:"id"`
	TeamName     string    `db:"team_name" json:"teamName"`
	TeamSize     int       `db:"team_size" json:"teamSize"`
	CourseCode   string    `db:"course_code" json:"courseCode"`
	Category     string    `db:"category" json:"category"`
	ProjectType  string    `db:"project_type" json:"projectType"`
	ProjectName  string    `db:"project_name" json:"projectName"`
	RepName      string    `db:"rep_name" json:"repName"`
	Description  string    `db:"description" json:"description"`
	OtherMembers string    `db:"other_members" json:"otherMembers"`
	Tools        string    `db:"tools" json:"tools"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Summary projects p for the public listing.
func (p *ProjectIdea) Summary() *ProjectSummary {
	return &ProjectSummary{
		ID:           p.ID,
		TeamName:     p.TeamName,
		TeamSize:     p.TeamSize,
		CourseCode:   p.CourseCode,
		Category:     p.Category,
		ProjectType:  p.ProjectType,
		ProjectName:  p.ProjectName,
		RepName:      p.RepName,
		Description:  p.Description,
		OtherMembers: p.OtherMembers,
		Tools:        p.Tools,
		CreatedAt:    p.CreatedAt,
	}
}
