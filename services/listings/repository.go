package listings

import (
	"context"

	"github.com/google/uuid"
	"github.com/peermart/peermart/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/peermart/peermart/services/listings ListingRepo

// ListingRepo defines listing persistence
type ListingRepo interface {
	CreateListing(ctx context.Context, sellerUserID uuid.UUID, req models.CreateListingRequest) (*models.Listing, error)
	GetListing(ctx context.Context, listingID uuid.UUID) (*models.Listing, error)
	SearchListings(ctx context.Context, filter models.ListingFilter) ([]*models.Listing, error)
	UpdateListing(ctx context.Context, ownerUserID, listingID uuid.UUID, req models.UpdateListingRequest) (*models.Listing, error)
	UpdateListingStatus(ctx context.Context, ownerUserID, listingID uuid.UUID, status models.ListingStatus) (*models.Listing, error)
	DeleteListing(ctx context.Context, ownerUserID, listingID uuid.UUID) error
}
