package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

type BidRepository struct {
	db uow.DBTX
}

func NewBidRepository(db uow.DBTX) *BidRepository {
	return &BidRepository{db: db}
}

const bidColumns = `id, created_at, item_id, bidder_id, amount, highest`

// FindHighest возвращает текущую лидирующую ставку лота или
// domain.ErrRecordNotFound, если ставок нет. Отдельная блокировка не берется:
// вызывающая сторона уже держит блокировку строки лота, через которую
// сериализуются все операции над его ставками.
func (r *BidRepository) FindHighest(ctx context.Context, itemID int64) (*domain.BidRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bidColumns+` FROM bid_records WHERE item_id = $1 AND highest`, itemID)
	bid, err := scanBid(row)
	if err != nil {
		return nil, convertErr(err, "finding highest bid for item %d", itemID)
	}
	return bid, nil
}

// ClearHighest снимает флаг лидирующей ставки у перебитой ставки. Сама запись
// остается навсегда - это аудиторский след торгов.
func (r *BidRepository) ClearHighest(ctx context.Context, bidID int64) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE bid_records SET highest = FALSE WHERE id = $1`, bidID,
	); err != nil {
		return convertErr(err, "clearing highest flag for bid %d", bidID)
	}
	return nil
}

// Create вставляет новую лидирующую ставку. Частичный уникальный индекс по
// (item_id) WHERE highest гарантирует не более одной лидирующей ставки на лот.
func (r *BidRepository) Create(ctx context.Context, args repoargs.BidCreate) (*domain.BidRecord, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO bid_records (item_id, bidder_id, amount, highest)
		 VALUES ($1, $2, $3, TRUE)
		 RETURNING `+bidColumns,
		args.ItemID, args.BidderID, args.Amount,
	)
	bid, err := scanBid(row)
	if err != nil {
		return nil, convertErr(err, "creating bid for item %d", args.ItemID)
	}
	return bid, nil
}

// GetByItem возвращает историю ставок лота по убыванию суммы.
func (r *BidRepository) GetByItem(ctx context.Context, itemID int64) ([]domain.BidRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bidColumns+` FROM bid_records WHERE item_id = $1 ORDER BY amount DESC`, itemID)
	if err != nil {
		return nil, convertErr(err, "getting bids for item %d", itemID)
	}
	defer rows.Close()

	var bids []domain.BidRecord
	for rows.Next() {
		var b domain.BidRecord
		if scanErr := rows.Scan(&b.ID, &b.CreatedAt, &b.ItemID, &b.BidderID, &b.Amount, &b.Highest); scanErr != nil {
			return nil, convertErr(scanErr, "scanning bid for item %d", itemID)
		}
		bids = append(bids, b)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting bids for item %d", itemID)
	}
	return bids, nil
}

func scanBid(row pgx.Row) (*domain.BidRecord, error) {
	var b domain.BidRecord
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.ItemID, &b.BidderID, &b.Amount, &b.Highest); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &b, nil
}
