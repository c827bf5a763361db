package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
)

type RoomRepository struct {
	db uow.DBTX
}

func NewRoomRepository(db uow.DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = `id, created_at, updated_at, slot_time, room_index, room_status, auction_status`

// FindOpenBySlot ищет открытую комнату на слот. Если открытых комнат нет,
// возвращает domain.ErrRecordNotFound.
func (r *RoomRepository) FindOpenBySlot(ctx context.Context, slot time.Time) (*domain.AuctionRoom, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM auction_rooms
		 WHERE slot_time = $1 AND room_status = $2
		 ORDER BY room_index LIMIT 1`,
		slot, string(domain.RoomStatusOpen))
	room, err := scanRoom(row)
	if err != nil {
		return nil, convertErr(err, "finding open room for slot %s", slot)
	}
	return room, nil
}

func (r *RoomRepository) CountBySlot(ctx context.Context, slot time.Time) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM auction_rooms WHERE slot_time = $1`, slot,
	).Scan(&count); err != nil {
		return 0, convertErr(err, "counting rooms for slot %s", slot)
	}
	return count, nil
}

func (r *RoomRepository) Create(ctx context.Context, args repoargs.RoomCreate) (*domain.AuctionRoom, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO auction_rooms (slot_time, room_index, room_status, auction_status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+roomColumns,
		args.SlotTime, args.RoomIndex,
		string(domain.RoomStatusOpen), string(domain.RoomAuctionScheduled),
	)
	room, err := scanRoom(row)
	if err != nil {
		return nil, convertErr(err, "creating room for slot %s", args.SlotTime)
	}
	return room, nil
}

// FindByIDForUpdate берет блокировку строки комнаты до конца транзакции.
// Через нее сериализуются добавление/удаление лотов и смена статусов комнаты.
func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.AuctionRoom, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM auction_rooms WHERE id = $1 FOR UPDATE`, id)
	room, err := scanRoom(row)
	if err != nil {
		return nil, convertErr(err, "locking room %d", id)
	}
	return room, nil
}

func (r *RoomRepository) CountItems(ctx context.Context, roomID int64) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM auction_items WHERE room_id = $1`, roomID,
	).Scan(&count); err != nil {
		return 0, convertErr(err, "counting items in room %d", roomID)
	}
	return count, nil
}

func (r *RoomRepository) AttachItem(ctx context.Context, roomID, itemID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE auction_items SET room_id = $1, updated_at = now() WHERE id = $2`, roomID, itemID)
	if err != nil {
		return convertErr(err, "attaching item %d to room %d", itemID, roomID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "attaching item %d to room %d", itemID, roomID)
	}
	return nil
}

func (r *RoomRepository) DetachItem(ctx context.Context, roomID, itemID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE auction_items SET room_id = NULL, updated_at = now()
		 WHERE id = $2 AND room_id = $1`, roomID, itemID)
	if err != nil {
		return convertErr(err, "detaching item %d from room %d", itemID, roomID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "detaching item %d from room %d", itemID, roomID)
	}
	return nil
}

func (r *RoomRepository) UpdateRoomStatus(ctx context.Context, id int64, status domain.RoomStatusType) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE auction_rooms SET room_status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	); err != nil {
		return convertErr(err, "updating room status for room %d", id)
	}
	return nil
}

func (r *RoomRepository) UpdateAuctionStatus(ctx context.Context, id int64, status domain.RoomAuctionStatusType) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE auction_rooms SET auction_status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	); err != nil {
		return convertErr(err, "updating auction status for room %d", id)
	}
	return nil
}

// FindDueScheduledIDs возвращает id комнат в статусе SCHEDULED, чей слот
// наступает не позднее deadline. Кандидаты перепроверяются под блокировкой
// перед переводом в LIVE.
func (r *RoomRepository) FindDueScheduledIDs(ctx context.Context, deadline time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM auction_rooms
		 WHERE auction_status = $1 AND slot_time <= $2
		 ORDER BY slot_time`,
		string(domain.RoomAuctionScheduled), deadline)
	if err != nil {
		return nil, convertErr(err, "finding due scheduled rooms")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "scanning due room id")
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "finding due scheduled rooms")
	}
	return ids, nil
}

func scanRoom(row pgx.Row) (*domain.AuctionRoom, error) {
	var room domain.AuctionRoom
	var roomStatus, auctionStatus string
	if err := row.Scan(
		&room.ID, &room.CreatedAt, &room.UpdatedAt, &room.SlotTime,
		&room.RoomIndex, &roomStatus, &auctionStatus,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	room.RoomStatus = domain.RoomStatusType(roomStatus)
	room.AuctionStatus = domain.RoomAuctionStatusType(auctionStatus)
	return &room, nil
}
