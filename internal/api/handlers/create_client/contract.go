package create_client

import (
	"context"

	clientModels "github.com/m04kA/SMC-AppointmentService/internal/service/clients/models"
)

type ClientService interface {
	Create(ctx context.Context, req *clientModels.CreateClientRequest) (*clientModels.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
