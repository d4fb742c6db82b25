package dto

import (
	"change-request-service/internal/domain/models"
	"time"
)

type UserDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		UserType:  string(u.UserType),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserDTOs(users []*models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}

type ProjectDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToProjectDTO(p *models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProjectDTOs(projects []*models.Project) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToProjectDTO(p))
	}
	return out
}

type ChangeRequestDTO struct {
	ID             string      `json:"id"`
	Description    string      `json:"description"`
	ProjectID      string      `json:"projectId"`
	UserID         string      `json:"userId"`
	Project        *ProjectDTO `json:"project,omitempty"`
	User           *UserDTO    `json:"user,omitempty"`
	RequestType    string      `json:"request_type"`
	Status         string      `json:"status"`
	Reason         *string     `json:"reason,omitempty"`
	DeploymentDate *time.Time  `json:"deployment_date,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func ToChangeRequestDTO(cr *models.ChangeRequest) ChangeRequestDTO {
	out := ChangeRequestDTO{
		ID:             cr.ID.String(),
		Description:    cr.Description,
		ProjectID:      cr.ProjectID.String(),
		UserID:         cr.UserID.String(),
		RequestType:    string(cr.RequestType),
		Status:         string(cr.Status),
		Reason:         cr.Reason,
		DeploymentDate: cr.DeploymentDate,
		CreatedAt:      cr.CreatedAt,
		UpdatedAt:      cr.UpdatedAt,
	}
	if cr.Project != nil {
		p := ToProjectDTO(cr.Project)
		out.Project = &p
	}
	if cr.User != nil {
		u := ToUserDTO(cr.User)
		out.User = &u
	}
	return out
}

func ToChangeRequestDTOs(crs []*models.ChangeRequest) []ChangeRequestDTO {
	out := make([]ChangeRequestDTO, 0, len(crs))
	for _, cr := range crs {
		out = append(out, ToChangeRequestDTO(cr))
	}
	return out
}

type UserReportDTO struct {
	User       UserDTO `json:"user"`
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Approved   int     `json:"approved"`
	RolledBack int     `json:"rolledback"`
	Deployed   int     `json:"deployed"`
}

func ToUserReportDTOs(reports []*models.UserReport) []UserReportDTO {
	out := make([]UserReportDTO, 0, len(reports))
	for _, r := range reports {
		out = append(out, UserReportDTO{
			User:       ToUserDTO(&r.User),
			Total:      r.Total,
			Pending:    r.Pending,
			Approved:   r.Approved,
			RolledBack: r.RolledBack,
			Deployed:   r.Deployed,
		})
	}
	return out
}
