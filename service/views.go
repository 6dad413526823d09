package service

import (
	"fmt"
	"math/big"

	"github.com/castshare/libcastshare-go/asset"
	"github.com/castshare/libcastshare-go/ledger"
	"github.com/castshare/libcastshare-go/offering"
)

// GetOffering returns the offering record for the asset.
func (s *Service) GetOffering(kind asset.Kind, id asset.AssetID) (*offering.Offering, error) {
	return s.getOffering(kind, id)
}

// GetInvestments returns the asset's investment records in purchase
// order.
func (s *Service) GetInvestments(kind asset.Kind, id asset.AssetID) ([]*ledger.Investment, error) {
	investments, err := s.store.GetInvestments(kind, id)
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return investments, nil
}

// GetRevenue returns the asset's revenue account.
func (s *Service) GetRevenue(kind asset.Kind, id asset.AssetID) (*ledger.RevenueAccount, error) {
	acct, err := s.store.GetRevenue(kind, id)
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return acct, nil
}

// GetCurrentPrice evaluates the asset's pricing curve at the current
// time. The result is a quote only: it is neither reserved nor
// binding for a later purchase.
func (s *Service) GetCurrentPrice(kind asset.Kind, id asset.AssetID) (*big.Int, error) {
	off, err := s.getOffering(kind, id)
	if err != nil {
		return nil, err
	}
	return off.CurrentPrice(s.nowFn()), nil
}

// GetStreamStatus returns the derived lifecycle phase of a stream
// offering: UPCOMING, PRE_LIVE, or LIVE.
func (s *Service) GetStreamStatus(id asset.AssetID) (offering.StreamStatus, error) {
	off, err := s.getOffering(asset.Stream, id)
	if err != nil {
		return 0, err
	}
	terms, ok := off.Terms.(*offering.StreamTerms)
	if !ok {
		return 0, fmt.Errorf("%w: stream %s has no stream terms", ErrNotFound, id)
	}
	return terms.Status(s.nowFn()), nil
}

// GetPosition summarizes one investor's holdings in the asset.
func (s *Service) GetPosition(kind asset.Kind, id asset.AssetID, investor asset.AccountID) (*ledger.Position, error) {
	investments, err := s.store.GetInvestments(kind, id)
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return ledger.PositionOf(investments, investor), nil
}
