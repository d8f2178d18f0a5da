package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bloguser/internal/platform/logger"
	"bloguser/internal/user/metrics"
	"bloguser/internal/user/models"
	"bloguser/pkg/domain"
	dErrors "bloguser/pkg/domain-errors"
	"bloguser/pkg/platform/sentinel"
)

const tracerName = "bloguser/internal/user/service"

// Store is the persistence port for user records. Implementations return
// sentinel.ErrAlreadyExists and sentinel.ErrNotFound for key conflicts and
// misses.
type Store interface {
	Insert(ctx context.Context, id string, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// Service creates, adds and looks up blog users.
type Service struct {
	users   Store
	newID   func() string
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// WithIDGenerator replaces the random id source used by Create.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		s.newID = gen
	}
}

// New constructs a Service.
func New(users Store, opts ...Option) *Service {
	s := &Service{
		users:  users,
		newID:  domain.NewUserID,
		logger: logger.Discard(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create builds a new user record with a fresh id. The record is not added to
// the registry.
func (s *Service) Create(req models.CreateUserRequest) *models.User {
	defer s.observe(metrics.OperationCreate, time.Now())
	req.Normalize()
	if s.metrics != nil {
		s.metrics.IncrementUsersCreated()
	}
	return &models.User{
		ID:   s.newID(),
		Name: req.Name,
		Role: req.Role,
	}
}

// Add stores user under id. The key is independent of user.ID; callers
// normally pass user.ID. Fails with CodeConflict when id is already taken.
func (s *Service) Add(ctx context.Context, id string, user *models.User) error {
	defer s.observe(metrics.OperationAdd, time.Now())
	ctx, span := s.tracer.Start(ctx, "user.Add", trace.WithAttributes(attribute.String("user.id", id)))
	defer span.End()

	err := s.add(ctx, id, user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (s *Service) add(ctx context.Context, id string, user *models.User) error {
	if user == nil {
		return dErrors.New(dErrors.CodeBadRequest, "user is required")
	}

	if err := s.users.Insert(ctx, id, user); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyExists) {
			s.logger.DebugContext(ctx, "user add rejected, id taken", "user_id", id)
			if s.metrics != nil {
				s.metrics.IncrementAddConflicts()
			}
			return dErrors.Wrap(err, dErrors.CodeConflict, "user already exists")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to add user")
	}

	s.logger.DebugContext(ctx, "user added",
		"user_id", id,
		"role", user.Role.String(),
	)
	s.recordAdded(ctx)
	return nil
}

// Get returns the user stored under id. Fails with CodeNotFound when absent.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	defer s.observe(metrics.OperationGet, time.Now())
	ctx, span := s.tracer.Start(ctx, "user.Get", trace.WithAttributes(attribute.String("user.id", id)))
	defer span.End()

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.logger.DebugContext(ctx, "user lookup missed", "user_id", id)
			if s.metrics != nil {
				s.metrics.IncrementLookupMisses()
			}
			err = dErrors.Wrap(err, dErrors.CodeNotFound, "user not found")
		} else {
			err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}

func (s *Service) recordAdded(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementUsersAdded()
	n, err := s.users.Count(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to count users for metrics", "error", err)
		return
	}
	s.metrics.SetRegistrySize(n)
}

func (s *Service) observe(op string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(op, start)
	}
}
