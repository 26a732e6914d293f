package model

import "time"

type PortfolioItem struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	Image       string `json:"image" yaml:"image"`
}

// Designer is one entry of the directory.
type Designer struct {
	ID           uint64          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name" validate:"required,notblank"`
	Specialty    string          `json:"specialty" yaml:"specialty" validate:"required,notblank"`
	Location     string          `json:"location" yaml:"location" validate:"required,notblank"`
	Phone        string          `json:"phone" yaml:"phone" validate:"required,notblank"`
	Email        string          `json:"email" yaml:"email" validate:"required,email"`
	Experience   string          `json:"experience" yaml:"experience" validate:"required,notblank"`
	Description  string          `json:"description" yaml:"description" validate:"required,notblank"`
	Services     []string        `json:"services" yaml:"services" validate:"anyfilled"`
	WorkingHours string          `json:"working_hours" yaml:"working_hours" validate:"required,notblank"`
	Image        string          `json:"image" yaml:"image"`
	Rating       float64         `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Portfolio    []PortfolioItem `json:"portfolio" yaml:"portfolio"`
	CreatedAt    time.Time       `json:"created_at" yaml:"-"`
}

// DesignerRequest carries the fields of a new designer. Identity, rating
// and creation time are assigned by the directory.
type DesignerRequest struct {
	Name         string          `json:"name" validate:"required,notblank"`
	Specialty    string          `json:"specialty" validate:"required,notblank"`
	Location     string          `json:"location" validate:"required,notblank"`
	Phone        string          `json:"phone" validate:"required,notblank"`
	Email        string          `json:"email" validate:"required,email"`
	Experience   string          `json:"experience" validate:"required,notblank"`
	Description  string          `json:"description" validate:"required,notblank"`
	Services     []string        `json:"services" validate:"anyfilled"`
	WorkingHours string          `json:"working_hours" validate:"required,notblank"`
	Image        string          `json:"image"`
	Portfolio    []PortfolioItem `json:"portfolio"`
}

// SearchFilters are the transient criteria of the filtered view.
type SearchFilters struct {
	SearchTerm        string `json:"search_term"`
	SelectedSpecialty string `json:"selected_specialty"`
}

type DesignerListResponse struct {
	Items   []Designer    `json:"items"`
	Total   int           `json:"total"`
	Filters SearchFilters `json:"filters"`
}
