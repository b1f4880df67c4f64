//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_approve_post_test
package driver_approve_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ApproveDriver(ctx context.Context, id int64, service *entities.ServiceClass, special *bool) (*entities.Driver, error)
}
