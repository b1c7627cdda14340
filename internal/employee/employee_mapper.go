package employee

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
)

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          empl.ID,
		FullName:    empl.FullName,
		Email:       empl.Email,
		DateOfBirth: empl.DateOfBirth.Format(dateLayout),
		Gender:      string(empl.Gender),
		PhoneNumber: empl.PhoneNumber,
		Active:      empl.Active,
		CreatedAt:   empl.CreatedAt,
		UpdatedAt:   empl.UpdatedAt,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func errorIsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
