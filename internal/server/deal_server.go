package server

import (
	"context"
	"fmt"
	"net/http"

	"dealdesk/internal/domain/entity"
	service "dealdesk/internal/domain/service/deal"
	"dealdesk/pkg/httpx/reply"
	"dealdesk/pkg/httpx/req"
	"dealdesk/pkg/rest"
)

type dealService interface {
	Publish(ctx context.Context, deal entity.Deal) ([]service.PostedCard, error)
	Disable(ctx context.Context, orderRecordID string) error
	ClaimByOrder(ctx context.Context, orderRecordID, sellerCode string) (*service.ClaimResult, error)
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

func (s DealServer) postV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateDealRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	posted, err := s.dealService.Publish(ctx, newDomainDeal(request))
	if err != nil {
		return httpError(fmt.Errorf("dealService.Publish: %w", err))
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTCreateDealResponse(posted))

	return nil
}

func (s DealServer) postV1DealDisable(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.DisableDealRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err := s.dealService.Disable(ctx, request.RecordID); err != nil {
		return httpError(fmt.Errorf("dealService.Disable: %w", err))
	}

	reply.OK(w)

	return nil
}

func (s DealServer) postV1DealClaim(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ClaimDealRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.dealService.ClaimByOrder(ctx, request.OrderRecordID, request.SellerCode)
	if err != nil {
		return httpError(fmt.Errorf("dealService.ClaimByOrder: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, rest.ClaimDealResponse{
		SellerCode:      result.Seller.Code,
		InventoryRecord: result.Claim.RecordID,
	})

	return nil
}
