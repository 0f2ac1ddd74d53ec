package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/pkg/logger"
	"github.com/peermart/peermart/internal/pkg/models"
	"github.com/peermart/peermart/services/listings"
)

type listingUC struct {
	cfg  *models.Config
	repo listings.ListingRepo
}

// NewListingUC creates a new listing use case
func NewListingUC(cfg *models.Config, repo listings.ListingRepo) listings.ListingUC {
	return &listingUC{
		cfg:  cfg,
		repo: repo,
	}
}

// CreateListing posts a new listing for the seller
func (uc *listingUC) CreateListing(ctx context.Context, sellerUserID uuid.UUID, req models.CreateListingRequest) (*models.Listing, error) {
	if req.Title == "" {
		return nil, apperrors.InvalidStatus("empty title")
	}
	if req.Price.IsNegative() {
		return nil, apperrors.InvalidStatus("negative price")
	}

	listing, err := uc.repo.CreateListing(ctx, sellerUserID, req)
	if err != nil {
		return nil, err
	}

	logger.Info("Listing created",
		logger.String("listing_id", listing.ListingID.String()),
		logger.String("seller_id", sellerUserID.String()),
	)
	return listing, nil
}

// GetListing retrieves a single listing
func (uc *listingUC) GetListing(ctx context.Context, listingID uuid.UUID) (*models.Listing, error) {
	return uc.repo.GetListing(ctx, listingID)
}

// SearchListings returns listings matching the filter
func (uc *listingUC) SearchListings(ctx context.Context, filter models.ListingFilter) ([]*models.Listing, error) {
	if filter.Status != "" && !models.ValidListingStatus(filter.Status) {
		return nil, apperrors.InvalidStatus(string(filter.Status))
	}
	return uc.repo.SearchListings(ctx, filter)
}

// UpdateListing applies the owner's field changes
func (uc *listingUC) UpdateListing(ctx context.Context, ownerUserID, listingID uuid.UUID, req models.UpdateListingRequest) (*models.Listing, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, apperrors.InvalidStatus("negative price")
	}
	return uc.repo.UpdateListing(ctx, ownerUserID, listingID, req)
}

// UpdateListingStatus validates and applies a status change
func (uc *listingUC) UpdateListingStatus(ctx context.Context, ownerUserID, listingID uuid.UUID, status models.ListingStatus) (*models.Listing, error) {
	if !models.ValidListingStatus(status) {
		return nil, apperrors.InvalidStatus(string(status))
	}
	return uc.repo.UpdateListingStatus(ctx, ownerUserID, listingID, status)
}

// DeleteListing removes the owner's listing
func (uc *listingUC) DeleteListing(ctx context.Context, ownerUserID, listingID uuid.UUID) error {
	if err := uc.repo.DeleteListing(ctx, ownerUserID, listingID); err != nil {
		return err
	}
	logger.Info("Listing deleted",
		logger.String("listing_id", listingID.String()),
		logger.String("seller_id", ownerUserID.String()),
	)
	return nil
}
