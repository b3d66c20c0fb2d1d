package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l2j-emu/aegis/internal/model"
)

// ItemRepository управляет предметами в БД.
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository создаёт новый ItemRepository.
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// ItemRow is the flat row shape used for bulk save/load of a character's
// full item set (inventory + paperdoll) during SavePlayer/LoadPlayerData.
type ItemRow struct {
	ItemID     int64
	ItemTypeID int32
	OwnerID    int64
	Count      int32
	Enchant    int32
	Location   int32
	SlotID     int32
}

// LoadByOwner loads the full item set (all locations) for a character,
// used by PlayerPersistenceService.LoadPlayerData.
func (r *ItemRepository) LoadByOwner(ctx context.Context, ownerID int64) ([]ItemRow, error) {
	query := `
		SELECT item_id, owner_id, item_type, count, enchant, location, slot_id
		FROM items
		WHERE owner_id = $1
		ORDER BY item_id
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying items for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	items := make([]ItemRow, 0, 64)
	for rows.Next() {
		var row ItemRow
		if err := rows.Scan(&row.ItemID, &row.OwnerID, &row.ItemTypeID, &row.Count, &row.Enchant, &row.Location, &row.SlotID); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return items, nil
}

// SaveAll replaces the full item set for a character in its own
// transaction (delete-then-bulk-insert).
func (r *ItemRepository) SaveAll(ctx context.Context, charID int64, items []ItemRow) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for character %d items: %w", charID, err)
	}
	defer tx.Rollback(ctx)

	if err := saveAllItemsTx(ctx, tx, charID, items); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// SaveAllTx replaces the full item set for a character within a
// caller-managed transaction (used by PlayerPersistenceService.SavePlayer).
func (r *ItemRepository) SaveAllTx(ctx context.Context, tx pgx.Tx, charID int64, items []ItemRow) error {
	return saveAllItemsTx(ctx, tx, charID, items)
}

func saveAllItemsTx(ctx context.Context, tx pgx.Tx, charID int64, items []ItemRow) error {
	if _, err := tx.Exec(ctx, `DELETE FROM items WHERE owner_id = $1`, charID); err != nil {
		return fmt.Errorf("clearing items for character %d: %w", charID, err)
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(
			`INSERT INTO items (owner_id, item_type, count, enchant, location, slot_id)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			charID, item.ItemTypeID, item.Count, item.Enchant, item.Location, item.SlotID,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("inserting item for character %d: %w", charID, err)
		}
	}

	return nil
}

// LoadInventory загружает все предметы игрока из инвентаря.
func (r *ItemRepository) LoadInventory(ctx context.Context, ownerID int64) ([]*model.Item, error) {
	query := `
		SELECT item_id, owner_id, item_type, count, enchant, location, slot_id, created_at
		FROM items
		WHERE owner_id = $1 AND location = $2
		ORDER BY item_id
	`

	rows, err := r.db.Query(ctx, query, ownerID, int32(model.ItemLocationInventory))
	if err != nil {
		return nil, fmt.Errorf("querying inventory for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	// Pre-allocate для типичного инвентаря (20-100 items).
	// Capacity 50 покрывает 80% случаев без overallocation.
	items := make([]*model.Item, 0, 50)

	for rows.Next() {
		var itemID int64
		var ownerIDDB int64
		var itemType int32
		var count int32
		var enchant int32
		var location int32
		var slotID int32
		var createdAt time.Time

		err := rows.Scan(
			&itemID, &ownerIDDB, &itemType, &count, &enchant, &location, &slotID, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}

		// Создаём Item
		tmpl := ItemDefToTemplate(itemType)
		if tmpl == nil {
			return nil, fmt.Errorf("item template %d not found for owner %d", itemType, ownerIDDB)
		}
		item, err := model.NewItem(uint32(itemID), itemType, ownerIDDB, count, tmpl)
		if err != nil {
			return nil, fmt.Errorf("creating item model: %w", err)
		}

		// Устанавливаем остальные поля
		_ = item.SetEnchant(enchant)
		item.SetLocation(model.ItemLocation(location))
		item.SetSlot(slotID)
		item.SetCreatedAt(createdAt)

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return items, nil
}

// LoadPaperdoll загружает экипировку игрока (все equipped items).
func (r *ItemRepository) LoadPaperdoll(ctx context.Context, ownerID int64) ([]*model.Item, error) {
	query := `
		SELECT item_id, owner_id, item_type, count, enchant, location, slot_id, created_at
		FROM items
		WHERE owner_id = $1 AND location = $2
		ORDER BY slot_id
	`

	rows, err := r.db.Query(ctx, query, ownerID, int32(model.ItemLocationPaperdoll))
	if err != nil {
		return nil, fmt.Errorf("querying paperdoll for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	// Pre-allocate для paperdoll (14 equipment slots + weapons).
	// Capacity 20 покрывает все случаи.
	items := make([]*model.Item, 0, 20)

	for rows.Next() {
		var itemID int64
		var ownerIDDB int64
		var itemType int32
		var count int32
		var enchant int32
		var location int32
		var slotID int32
		var createdAt time.Time

		err := rows.Scan(
			&itemID, &ownerIDDB, &itemType, &count, &enchant, &location, &slotID, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}

		// Создаём Item
		tmpl := ItemDefToTemplate(itemType)
		if tmpl == nil {
			return nil, fmt.Errorf("item template %d not found for owner %d", itemType, ownerIDDB)
		}
		item, err := model.NewItem(uint32(itemID), itemType, ownerIDDB, count, tmpl)
		if err != nil {
			return nil, fmt.Errorf("creating item model: %w", err)
		}

		// Устанавливаем остальные поля
		_ = item.SetEnchant(enchant)
		item.SetLocation(model.ItemLocation(location))
		item.SetSlot(slotID)
		item.SetCreatedAt(createdAt)

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return items, nil
}

// Create создаёт новый предмет в БД.
func (r *ItemRepository) Create(ctx context.Context, item *model.Item) error {
	query := `
		INSERT INTO items (owner_id, item_type, count, enchant, location, slot_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING item_id, created_at
	`

	var itemID int64
	var createdAt time.Time

	err := r.db.QueryRow(ctx, query,
		item.OwnerID(), item.ItemID(), item.Count(), item.Enchant(), int32(item.Location()), item.Slot(),
	).Scan(&itemID, &createdAt)

	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}

	// Устанавливаем object ID и createdAt который вернула БД
	item.SetObjectID(uint32(itemID))
	item.SetCreatedAt(createdAt)

	return nil
}

// Update обновляет предмет в БД.
func (r *ItemRepository) Update(ctx context.Context, item *model.Item) error {
	query := `
		UPDATE items
		SET count = $2, enchant = $3, location = $4, slot_id = $5
		WHERE item_id = $1
	`

	_, err := r.db.Exec(ctx, query,
		item.ObjectID(), item.Count(), item.Enchant(), int32(item.Location()), item.Slot(),
	)

	if err != nil {
		return fmt.Errorf("updating item %d: %w", item.ObjectID(), err)
	}

	return nil
}

// Delete удаляет предмет из БД.
func (r *ItemRepository) Delete(ctx context.Context, itemID int64) error {
	query := `DELETE FROM items WHERE item_id = $1`

	result, err := r.db.Exec(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("deleting item %d: %w", itemID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("item %d not found", itemID)
	}

	return nil
}
