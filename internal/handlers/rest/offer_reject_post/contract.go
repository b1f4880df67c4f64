//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_reject_post_test
package offer_reject_post

import (
	"context"

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
	RejectOffer(ctx context.Context, offerID, customerID int64) error
}
