package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

type ItemRepository struct {
	db uow.DBTX
}

func NewItemRepository(db uow.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, created_at, updated_at, seller_id, title, start_price,
	current_price, buy_now_price, end_time, status, room_id`

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*domain.AuctionItem, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM auction_items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		return nil, convertErr(err, "finding item %d", id)
	}
	return item, nil
}

// FindByIDForUpdate берет эксклюзивную блокировку строки лота до конца
// транзакции. Все read-modify-write операции над лотом (ставка, выкуп,
// закрытие) обязаны читать лот именно через этот метод.
func (r *ItemRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.AuctionItem, error) {
	row := r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM auction_items WHERE id = $1 FOR UPDATE`, id)
	item, err := scanItem(row)
	if err != nil {
		return nil, convertErr(err, "locking item %d", id)
	}
	return item, nil
}

// Accept фиксирует принятую ставку или выкуп: новая текущая цена и статус лота.
func (r *ItemRepository) Accept(ctx context.Context, args repoargs.ItemAccept) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE auction_items SET current_price = $2, status = $3, updated_at = now() WHERE id = $1`,
		args.ItemID, args.Price, string(args.Status),
	); err != nil {
		return convertErr(err, "accepting price for item %d", args.ItemID)
	}
	return nil
}

func (r *ItemRepository) UpdateStatus(ctx context.Context, id int64, status domain.ItemStatusType) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE auction_items SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	); err != nil {
		return convertErr(err, "updating status for item %d", id)
	}
	return nil
}

// FindExpiredIDs возвращает id лотов, чье время окончания прошло, а статус
// все еще открытый. Список может устареть к моменту обработки - обработчик
// обязан перепроверить условие под блокировкой.
func (r *ItemRepository) FindExpiredIDs(ctx context.Context, limit uint) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM auction_items
		 WHERE status IN ($1, $2) AND end_time < now()
		 ORDER BY end_time LIMIT $3`,
		string(domain.ItemStatusBeforeBidding), string(domain.ItemStatusInProgress), int64(limit))
	if err != nil {
		return nil, convertErr(err, "finding expired items")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "scanning expired item id")
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "finding expired items")
	}
	return ids, nil
}

func scanItem(row pgx.Row) (*domain.AuctionItem, error) {
	var item domain.AuctionItem
	var status string
	if err := row.Scan(
		&item.ID, &item.CreatedAt, &item.UpdatedAt, &item.SellerID, &item.Title,
		&item.StartPrice, &item.CurrentPrice, &item.BuyNowPrice, &item.EndTime,
		&status, &item.RoomID,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	item.Status = domain.ItemStatusType(status)
	return &item, nil
}
