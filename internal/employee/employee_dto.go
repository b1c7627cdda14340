package employee

import "time"

const dateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	FullName    string `json:"fullName" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email,max=100"`
	DateOfBirth string `json:"dateOfBirth" binding:"required,datetime=2006-01-02,beforetoday"`
	Gender      string `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
	PhoneNumber string `json:"phoneNumber" binding:"required,len=10,number"`
	Active      *bool  `json:"active"`
	Password    string `json:"password" binding:"required,min=6"`
}

// UpdateEmployeeRequest is a partial update: a nil field means "leave
// unchanged". Email is not part of the update surface; it is immutable after
// creation.
type UpdateEmployeeRequest struct {
	FullName    *string `json:"fullName" binding:"omitempty,min=2,max=100"`
	DateOfBirth *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02,beforetoday"`
	Gender      *string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,len=10,number"`
	Active      *bool   `json:"active"`
	Password    *string `json:"password" binding:"omitempty,min=6"`
}

type EmployeeResponse struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	DateOfBirth string    `json:"dateOfBirth"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phoneNumber"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PaginatedEmployeeResponse struct {
	Data         []EmployeeResponse `json:"data"`
	PageNumber   int                `json:"pageNumber"`
	PageSize     int                `json:"pageSize"`
	TotalRecords int64              `json:"totalRecords"`
	TotalPages   int                `json:"totalPages"`
	HasNext      bool               `json:"hasNext"`
	HasPrevious  bool               `json:"hasPrevious"`
}

// ListFilter carries the optional equality/substring filters on the list
// endpoint. Zero value means no filtering.
type ListFilter struct {
	Name   string
	Active *bool
}
