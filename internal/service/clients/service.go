package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	clientsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/clients"
	"github.com/m04kA/SMC-AppointmentService/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create регистрирует нового клиента
// Телефон уникален: повторная регистрация возвращает ErrDuplicatePhone
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: registering client phone=%s", req.Phone)

	if err := validateCreateClient(req); err != nil {
		s.logger.Warn("Create: validation failed for phone=%s: %v", req.Phone, err)
		return nil, err
	}

	var birthDate *time.Time
	if req.BirthDate != nil && *req.BirthDate != "" {
		parsed, err := time.Parse(domain.DateFormat, *req.BirthDate)
		if err != nil {
			s.logger.Warn("Create: invalid birth date %q for phone=%s", *req.BirthDate, req.Phone)
			return nil, fmt.Errorf("%w: invalid birth date format, expected YYYY-MM-DD", ErrInvalidInput)
		}
		birthDate = &parsed
	}

	client, err := s.clientRepo.Create(ctx, req.ToDomainClient(birthDate))
	if err != nil {
		if errors.Is(err, clientsRepo.ErrDuplicatePhone) {
			s.logger.Warn("Create: phone=%s already registered", req.Phone)
			return nil, ErrDuplicatePhone
		}
		s.logger.Error("Create: repository error for phone=%s: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: registered client id=%d phone=%s", client.ID, client.Phone)
	return models.FromDomainClient(client), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClientResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// GetByPhone получает клиента по телефону
func (s *Service) GetByPhone(ctx context.Context, phone string) (*models.ClientResponse, error) {
	client, err := s.clientRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByPhone: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: GetByPhone - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// List возвращает клиентов с опциональным поиском по имени или телефону
func (s *Service) List(ctx context.Context, req *models.ListClientsRequest) (*models.ClientListResponse, error) {
	filter := domain.ClientsFilter{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = domain.DefaultClientsLimit
	}

	clients, err := s.clientRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClientList(clients), nil
}

func validateCreateClient(req *models.CreateClientRequest) error {
	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
