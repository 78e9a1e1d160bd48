package list_clients

import (
	"context"

	clientModels "github.com/m04kA/SMC-AppointmentService/internal/service/clients/models"
)

type ClientService interface {
	List(ctx context.Context, req *clientModels.ListClientsRequest) (*clientModels.ClientListResponse, error)
	GetByPhone(ctx context.Context, phone string) (*clientModels.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
