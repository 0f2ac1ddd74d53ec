package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/peermart/peermart/internal/pkg/apperrors"
	"github.com/peermart/peermart/internal/pkg/models"
)

const listingColumns = `listing_id, seller_id, status, title, description, price, list_image, location, meta_tag, t_created, t_last_edit`

// ListingRepo implements listing persistence over Postgres
type ListingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewListingRepo creates a new listing repository
func NewListingRepo(cfg *models.Config, db *sqlx.DB) *ListingRepo {
	return &ListingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateListing inserts a new active listing, provisioning the seller role
// record in the same database transaction when the user has never sold
// before.
func (r *ListingRepo) CreateListing(ctx context.Context, sellerUserID uuid.UUID, req models.CreateListingRequest) (*models.Listing, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	defer tx.Rollback()

	if err := ensureSeller(ctx, tx, sellerUserID); err != nil {
		return nil, err
	}

	now := time.Now()
	listing := &models.Listing{
		ListingID:   uuid.New(),
		SellerID:    sellerUserID,
		Status:      models.ListingStatusActive,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ListImage:   req.ListImage,
		Location:    req.Location,
		MetaTag:     req.MetaTag,
		CreatedAt:   now,
		LastEditAt:  now,
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO listings (listing_id, seller_id, status, title, description, price, list_image, location, meta_tag, t_created, t_last_edit)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		listing.ListingID, listing.SellerID, listing.Status, listing.Title,
		listing.Description, listing.Price, listing.ListImage, listing.Location,
		listing.MetaTag, listing.CreatedAt, listing.LastEditAt,
	)
	if err != nil {
		return nil, apperrors.Store(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.Store(err)
	}
	return listing, nil
}

// ensureSeller provisions the seller role record and, when needed, a payment
// account seeded with the user's profile billing address.
func ensureSeller(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) error {
	var exists bool
	err := tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM sellers WHERE seller_id = $1)`, userID)
	if err != nil {
		return apperrors.Store(err)
	}
	if exists {
		return nil
	}

	var accountID uuid.UUID
	err = tx.GetContext(ctx, &accountID,
		`SELECT account_id FROM accounts WHERE user_id = $1 ORDER BY account_id LIMIT 1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		var address string
		err = tx.GetContext(ctx, &address,
			`SELECT address FROM users WHERE user_id = $1`, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NoBillingAddress()
			}
			return apperrors.Store(err)
		}

		accountID = uuid.New()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO accounts (account_id, user_id, account_type, billing_address)
			 VALUES ($1, $2, $3, $4)`,
			accountID, userID, models.AccountTypeBank, address,
		)
		if err != nil {
			return apperrors.Store(err)
		}
	} else if err != nil {
		return apperrors.Store(err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sellers (seller_id, account_id) VALUES ($1, $2)`,
		userID, accountID,
	)
	if err != nil {
		return apperrors.Store(err)
	}
	return nil
}

// GetListing retrieves a listing by ID
func (r *ListingRepo) GetListing(ctx context.Context, listingID uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.GetContext(ctx, &listing,
		`SELECT `+listingColumns+` FROM listings WHERE listing_id = $1`,
		listingID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("listing")
		}
		return nil, apperrors.Store(err)
	}
	return &listing, nil
}

// SearchListings returns listings matching all provided filters, newest
// edits first.
func (r *ListingRepo) SearchListings(ctx context.Context, filter models.ListingFilter) ([]*models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE 1=1`
	args := []interface{}{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.SellerID != nil {
		args = append(args, *filter.SellerID)
		query += fmt.Sprintf(" AND seller_id = $%d", len(args))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		query += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}
	if filter.Tag != "" {
		args = append(args, "%"+filter.Tag+"%")
		query += fmt.Sprintf(" AND meta_tag ILIKE $%d", len(args))
	}
	query += ` ORDER BY t_last_edit DESC`

	listings := []*models.Listing{}
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, apperrors.Store(err)
	}
	return listings, nil
}

// UpdateListing applies the provided fields; only the owning seller may edit
func (r *ListingRepo) UpdateListing(ctx context.Context, ownerUserID, listingID uuid.UUID, req models.UpdateListingRequest) (*models.Listing, error) {
	if err := r.checkOwner(ctx, ownerUserID, listingID); err != nil {
		return nil, err
	}

	set := "t_last_edit = $1"
	args := []interface{}{time.Now()}

	if req.Title != nil {
		args = append(args, *req.Title)
		set += fmt.Sprintf(", title = $%d", len(args))
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		set += fmt.Sprintf(", description = $%d", len(args))
	}
	if req.Price != nil {
		args = append(args, *req.Price)
		set += fmt.Sprintf(", price = $%d", len(args))
	}
	if req.ListImage != nil {
		args = append(args, *req.ListImage)
		set += fmt.Sprintf(", list_image = $%d", len(args))
	}
	if req.Location != nil {
		args = append(args, *req.Location)
		set += fmt.Sprintf(", location = $%d", len(args))
	}
	if req.MetaTag != nil {
		args = append(args, *req.MetaTag)
		set += fmt.Sprintf(", meta_tag = $%d", len(args))
	}

	args = append(args, listingID)
	query := fmt.Sprintf(
		`UPDATE listings SET %s WHERE listing_id = $%d RETURNING `+listingColumns,
		set, len(args),
	)

	var listing models.Listing
	if err := r.db.GetContext(ctx, &listing, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("listing")
		}
		return nil, apperrors.Store(err)
	}
	return &listing, nil
}

// UpdateListingStatus moves the listing to the given status; this is the
// seller-driven relist/close path, independent of transaction state.
func (r *ListingRepo) UpdateListingStatus(ctx context.Context, ownerUserID, listingID uuid.UUID, status models.ListingStatus) (*models.Listing, error) {
	if err := r.checkOwner(ctx, ownerUserID, listingID); err != nil {
		return nil, err
	}

	var listing models.Listing
	err := r.db.GetContext(ctx, &listing,
		`UPDATE listings SET status = $1, t_last_edit = $2 WHERE listing_id = $3 RETURNING `+listingColumns,
		status, time.Now(), listingID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("listing")
		}
		return nil, apperrors.Store(err)
	}
	return &listing, nil
}

// DeleteListing removes the listing; only the owning seller may delete
func (r *ListingRepo) DeleteListing(ctx context.Context, ownerUserID, listingID uuid.UUID) error {
	if err := r.checkOwner(ctx, ownerUserID, listingID); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM listings WHERE listing_id = $1`, listingID); err != nil {
		return apperrors.Store(err)
	}
	return nil
}

func (r *ListingRepo) checkOwner(ctx context.Context, ownerUserID, listingID uuid.UUID) error {
	var sellerID uuid.UUID
	err := r.db.GetContext(ctx, &sellerID,
		`SELECT seller_id FROM listings WHERE listing_id = $1`, listingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("listing")
		}
		return apperrors.Store(err)
	}
	if sellerID != ownerUserID {
		return apperrors.Unauthorized("listing belongs to another seller")
	}
	return nil
}
