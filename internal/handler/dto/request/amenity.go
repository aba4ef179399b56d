package request

import (
	"strings"
)

type CreateAmenityRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Type        string `json:"type" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (r CreateAmenityRequest) TrimmedName() string {
	return strings.TrimSpace(r.Name)
}

type UpdateAmenityRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}
