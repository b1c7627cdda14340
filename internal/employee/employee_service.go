package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "employee-api/internal/employee/errors"
	"employee-api/internal/events"
	"employee-api/internal/messaging/kafka"
	"employee-api/internal/shared/apperror"
	"employee-api/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, page, size int, filter ListFilter) (PaginatedEmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		// binding sudah memvalidasi format; ini hanya untuk pemanggil non-HTTP
		return EmployeeResponse{}, apperror.Wrap(err, apperror.CodeInvalidInput,
			"dateOfBirth must be a date in 2006-01-02 format", 400)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	empl := &Employee{
		FullName:       req.FullName,
		Email:          req.Email,
		DateOfBirth:    dob,
		Gender:         Gender(req.Gender),
		PhoneNumber:    req.PhoneNumber,
		Active:         active,
		HashedPassword: string(hashed),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.ExistsByEmail(ctx, req.Email)
		if err != nil {
			s.logger.Error("create employee email lookup failed", zap.Error(err))
			return err
		}
		if exists {
			s.logger.Warn("create employee duplicate email", zap.String("email", req.Email))
			return employeeerrors.DuplicateEmail(req.Email)
		}

		if err := qtx.Create(ctx, empl); err != nil {
			s.logger.Error("create employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		if s.outbox != nil {
			event := events.EmployeeCreatedEvent{
				EventType:  "employee_created",
				RequestID:  rid,
				EmployeeID: empl.ID,
				Email:      empl.Email,
				OccurredAt: time.Now().UTC(),
			}
			payload, err := json.Marshal(event)
			if err != nil {
				s.logger.Error("marshal employee_created event failed", zap.Error(err))
				return err
			}
			if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
				ID:            uuid.NewString(),
				RequestID:     rid,
				AggregateType: "employee",
				AggregateID:   idString(empl.ID),
				EventType:     event.EventType,
				Topic:         events.EmployeeLifecycleTopic,
				Payload:       payload,
				Status:        kafka.OutboxStatusPending,
			}); err != nil {
				s.logger.Error("create employee outbox persist failed", zap.Error(err))
				return err
			}
		}

		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, page, size int, filter ListFilter) (PaginatedEmployeeResponse, error) {
	s.logger.Debug("get all employees requested",
		zap.Int("page", page),
		zap.Int("size", size),
	)

	empls, total, err := s.repo.FindPage(ctx, page, size, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return PaginatedEmployeeResponse{}, mapRepositoryError(err)
	}

	totalPages := 0
	if size > 0 {
		// pembulatan ke atas: (total + size - 1) / size
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return PaginatedEmployeeResponse{
		Data:         mapToListResponse(empls),
		PageNumber:   page,
		PageSize:     size,
		TotalRecords: total,
		TotalPages:   totalPages,
		HasNext:      page < totalPages-1,
		HasPrevious:  page > 0,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errorIsNotFound(err) {
			return EmployeeResponse{}, employeeerrors.NotFoundByID(id)
		}
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	var updated Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			if errorIsNotFound(err) {
				return employeeerrors.NotFoundByID(id)
			}
			s.logger.Error("update employee fetch existing failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		// Merge per field: hanya field yang hadir di request yang menimpa
		if req.FullName != nil {
			empl.FullName = *req.FullName
		}
		if req.DateOfBirth != nil {
			dob, err := time.Parse(dateLayout, *req.DateOfBirth)
			if err != nil {
				return apperror.Wrap(err, apperror.CodeInvalidInput,
					"dateOfBirth must be a date in 2006-01-02 format", 400)
			}
			empl.DateOfBirth = dob
		}
		if req.Gender != nil {
			empl.Gender = Gender(*req.Gender)
		}
		if req.PhoneNumber != nil {
			empl.PhoneNumber = *req.PhoneNumber
		}
		if req.Active != nil {
			empl.Active = *req.Active
		}
		if req.Password != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				s.logger.Error("update employee hash password failed", zap.Error(err))
				return err
			}
			empl.HashedPassword = string(hashed)
		}

		if err := qtx.Update(ctx, empl); err != nil {
			s.logger.Error("update employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		updated = *empl
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.Int64("employee_id", id))

	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			if errorIsNotFound(err) {
				return employeeerrors.NotFoundByID(id)
			}
			s.logger.Error("delete employee fetch existing failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		if err := qtx.Delete(ctx, id); err != nil {
			s.logger.Error("delete employee failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}
