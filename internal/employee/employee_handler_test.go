package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"employee-api/internal/employee"
	employeeerrors "employee-api/internal/employee/errors"
	"employee-api/internal/shared/apperror"
	"employee-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEmployeeService struct {
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn  func(ctx context.Context, page, size int, filter employee.ListFilter) (employee.PaginatedEmployeeResponse, error)
	GetByIDFn func(ctx context.Context, id int64) (employee.EmployeeResponse, error)
	UpdateFn  func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, page, size int, filter employee.ListFilter) (employee.PaginatedEmployeeResponse, error) {
	return f.GetAllFn(ctx, page, size, filter)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}

func newRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	h := employee.NewHandler(svc)
	r := gin.New()
	api := r.Group("/api")
	employee.RegisterRoutes(api, h, nil, zap.NewNop())

	return r
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Nguyen Van A", req.FullName)
				assert.Nil(t, req.Active)
				return employee.EmployeeResponse{
					ID:          1,
					FullName:    req.FullName,
					Email:       req.Email,
					DateOfBirth: req.DateOfBirth,
					Gender:      req.Gender,
					PhoneNumber: req.PhoneNumber,
					Active:      true,
				}, nil
			},
		}
		r := newRouter(svc)

		body := `{"fullName":"Nguyen Van A","email":"a@example.com","dateOfBirth":"1995-04-12","gender":"MALE","phoneNumber":"0912345678","password":"secret123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Nguyen Van A")
		assert.NotContains(t, w.Body.String(), "password")
		assert.NotContains(t, w.Body.String(), "hashedPassword")
	})

	t.Run("validation error collects every violated field", func(t *testing.T) {
		called := false
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				called = true
				return employee.EmployeeResponse{}, nil
			},
		}
		r := newRouter(svc)

		// phone too short + dateOfBirth in the future + missing password
		body := `{"fullName":"Nguyen Van A","email":"a@example.com","dateOfBirth":"2999-01-01","gender":"MALE","phoneNumber":"12345"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called, "service must not be reached when validation fails")

		var errBody response.ErrorBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
		assert.Equal(t, "Validation failed", errBody.Message)
		assert.Equal(t, http.StatusBadRequest, errBody.Status)
		assert.NotEmpty(t, errBody.Timestamp)

		joined := strings.Join(errBody.Errors, "\n")
		assert.Contains(t, joined, "phoneNumber")
		assert.Contains(t, joined, "dateOfBirth")
		assert.Contains(t, joined, "password")
	})

	t.Run("unknown gender token is a distinct binding error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called")
				return employee.EmployeeResponse{}, nil
			},
		}
		r := newRouter(svc)

		body := `{"fullName":"Nguyen Van A","email":"a@example.com","dateOfBirth":"1995-04-12","gender":"UNKNOWN","phoneNumber":"0912345678","password":"secret123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "must be one of MALE, FEMALE, OTHER")
		assert.NotContains(t, w.Body.String(), "Gender is required")
	})

	t.Run("duplicate email -> 409 naming the email", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.DuplicateEmail(req.Email)
			},
		}
		r := newRouter(svc)

		body := `{"fullName":"Nguyen Van A","email":"taken@example.com","dateOfBirth":"1995-04-12","gender":"MALE","phoneNumber":"0912345678","password":"secret123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "taken@example.com")
	})

	t.Run("uncategorized failure -> 500 with underlying message", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("connection reset by peer")
			},
		}
		r := newRouter(svc)

		body := `{"fullName":"Nguyen Van A","email":"a@example.com","dateOfBirth":"1995-04-12","gender":"MALE","phoneNumber":"0912345678","password":"secret123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "connection reset by peer")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("defaults page=0 size=4", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, page, size int, filter employee.ListFilter) (employee.PaginatedEmployeeResponse, error) {
				assert.Equal(t, 0, page)
				assert.Equal(t, 4, size)
				assert.Equal(t, employee.ListFilter{}, filter)
				return employee.PaginatedEmployeeResponse{
					Data:         []employee.EmployeeResponse{{ID: 1}},
					PageNumber:   page,
					PageSize:     size,
					TotalRecords: 1,
					TotalPages:   1,
				}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp employee.PaginatedEmployeeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, int64(1), resp.TotalRecords)
	})

	t.Run("query params forwarded", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, page, size int, filter employee.ListFilter) (employee.PaginatedEmployeeResponse, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 10, size)
				assert.Equal(t, "nguyen", filter.Name)
				if assert.NotNil(t, filter.Active) {
					assert.True(t, *filter.Active)
				}
				return employee.PaginatedEmployeeResponse{PageNumber: page, PageSize: size}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/employees?page=2&size=10&name=nguyen&active=true", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative page falls back to default", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, page, size int, filter employee.ListFilter) (employee.PaginatedEmployeeResponse, error) {
				assert.Equal(t, 0, page)
				assert.Equal(t, 4, size)
				return employee.PaginatedEmployeeResponse{}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/employees?page=-3&size=0", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
				assert.Equal(t, int64(12), id)
				return employee.EmployeeResponse{ID: 12, FullName: "Tran B"}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/employees/12", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Tran B")
	})

	t.Run("not found -> 404 naming the id", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.NotFoundByID(id)
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/employees/99", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "99")
	})

	t.Run("non-numeric id -> 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called")
				return employee.EmployeeResponse{}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/employees/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid employee ID")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("partial body forwarded with presence flags", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, int64(3), id)
				if assert.NotNil(t, req.FullName) {
					assert.Equal(t, "Renamed", *req.FullName)
				}
				assert.Nil(t, req.PhoneNumber)
				assert.Nil(t, req.Password)
				return employee.EmployeeResponse{ID: 3, FullName: *req.FullName}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/employees/3", strings.NewReader(`{"fullName":"Renamed"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Renamed")
	})

	t.Run("present field still validated", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called")
				return employee.EmployeeResponse{}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/employees/3", strings.NewReader(`{"phoneNumber":"12345"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "phoneNumber")
	})

	t.Run("not found -> 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.NotFoundByID(id)
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/employees/404", strings.NewReader(`{"fullName":"Renamed"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success -> 204 empty body", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id int64) error {
				assert.Equal(t, int64(6), id)
				return nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/employees/6", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("not found -> 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id int64) error {
				return employeeerrors.NotFoundByID(id)
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/employees/404", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
