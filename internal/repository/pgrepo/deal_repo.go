package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

type DealRepository struct {
	db uow.DBTX
}

func NewDealRepository(db uow.DBTX) *DealRepository {
	return &DealRepository{db: db}
}

const dealColumns = `id, created_at, updated_at, item_id, buyer_id, price, status, carrier, tracking_code`

// Create создает сделку по лоту в статусе PENDING. Уникальный индекс по
// item_id гарантирует не более одной сделки на лот: повторная попытка
// вернет domain.ErrDuplicateKey.
func (r *DealRepository) Create(ctx context.Context, args repoargs.DealCreate) (*domain.Deal, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO deals (item_id, buyer_id, price, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+dealColumns,
		args.ItemID, args.BuyerID, args.Price, string(domain.DealStatusPending),
	)
	deal, err := scanDeal(row)
	if err != nil {
		return nil, convertErr(err, "creating deal for item %d", args.ItemID)
	}
	return deal, nil
}

func (r *DealRepository) FindByItemID(ctx context.Context, itemID int64) (*domain.Deal, error) {
	row := r.db.QueryRow(ctx, `SELECT `+dealColumns+` FROM deals WHERE item_id = $1`, itemID)
	deal, err := scanDeal(row)
	if err != nil {
		return nil, convertErr(err, "finding deal for item %d", itemID)
	}
	return deal, nil
}

func scanDeal(row pgx.Row) (*domain.Deal, error) {
	var d domain.Deal
	var status string
	if err := row.Scan(
		&d.ID, &d.CreatedAt, &d.UpdatedAt, &d.ItemID, &d.BuyerID,
		&d.Price, &status, &d.Carrier, &d.TrackingCode,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	d.Status = domain.DealStatusType(status)
	return &d, nil
}
