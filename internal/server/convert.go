package server

import (
	"errors"

	"git.appkode.ru/pub/go/failure"

	"dealdesk/internal/domain"
	"dealdesk/internal/domain/entity"
	service "dealdesk/internal/domain/service/deal"
	"dealdesk/pkg/errcodes"
	"dealdesk/pkg/lox"
	"dealdesk/pkg/rest"
)

func newDomainDeal(request rest.CreateDealRequest) entity.Deal {
	return entity.Deal{
		ProductName:   request.ProductName,
		SKU:           request.SKU,
		Size:          request.Size,
		Brand:         request.Brand,
		StartPayout:   request.StartPayout,
		DealID:        request.DealID,
		ImageURL:      request.ImageURL,
		OrderRecordID: request.RecordID,
	}
}

func newRESTCreateDealResponse(posted []service.PostedCard) rest.CreateDealResponse {
	return rest.CreateDealResponse{
		MessageIDs: lox.Map(posted, func(p service.PostedCard) string { return p.MessageID }),
	}
}

// httpError переводит доменные коды в типы ошибок, по которым reply.Error
// выбирает HTTP-статус. Неизвестные коды уходят как есть (в 500).
func httpError(err error) error {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	switch appErr.Code {
	case errcodes.ValidationError, errcodes.InvalidSellerCode, errcodes.InvalidOfferAmount:
		return failure.NewInvalidArgumentError(appErr.Message,
			failure.WithCode(appErr.Code), failure.WithDescription(appErr.Message))
	case errcodes.NotFound, errcodes.SellerNotFound, errcodes.OrderNotFound:
		return failure.NewNotFoundError(appErr.Message,
			failure.WithCode(appErr.Code), failure.WithDescription(appErr.Message))
	case errcodes.DealAlreadyClaimed, errcodes.ClaimInProgress:
		return failure.NewConflictError(appErr.Message,
			failure.WithCode(appErr.Code), failure.WithDescription(appErr.Message))
	case errcodes.Forbidden:
		return failure.NewForbiddenError(appErr.Message,
			failure.WithCode(appErr.Code), failure.WithDescription(appErr.Message))
	default:
		return err
	}
}
