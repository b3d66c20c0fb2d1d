package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l2j-emu/aegis/internal/data"
	"github.com/l2j-emu/aegis/internal/model"
)

// PlayerPersistenceService atomically saves/loads a player's data.
// Sequential per-table saves (character → items → skills) within one transaction.
type PlayerPersistenceService struct {
	pool      *pgxpool.Pool
	charRepo  *CharacterRepository
	itemRepo  *ItemRepository
	skillRepo *SkillRepository
}

// NewPlayerPersistenceService creates a new persistence service.
func NewPlayerPersistenceService(
	pool *pgxpool.Pool,
	charRepo *CharacterRepository,
	itemRepo *ItemRepository,
	skillRepo *SkillRepository,
) *PlayerPersistenceService {
	return &PlayerPersistenceService{
		pool:      pool,
		charRepo:  charRepo,
		itemRepo:  itemRepo,
		skillRepo: skillRepo,
	}
}

// SavePlayer saves all player data (character, items, skills) in a single transaction.
// Ensures consistency: either all data is saved or none.
func (s *PlayerPersistenceService) SavePlayer(ctx context.Context, player *model.Player) error {
	charID := player.CharacterID()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for character %d: %w", charID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("rollback failed", "characterID", charID, "error", err)
		}
	}()

	// 1. Save character (location, stats, exp, sp, level)
	if err := s.charRepo.UpdateTx(ctx, tx, player); err != nil {
		return fmt.Errorf("saving character %d: %w", charID, err)
	}

	// 2. Save items
	items := player.Inventory().GetItems()
	itemRows := make([]ItemRow, 0, len(items))
	for _, item := range items {
		itemRows = append(itemRows, ItemRow{
			ItemID:     int64(item.ObjectID()),
			ItemTypeID: item.ItemID(),
			OwnerID:    charID,
			Count:      item.Count(),
			Enchant:    item.Enchant(),
			Location:   int32(item.Location()),
			SlotID:     item.Slot(),
		})
	}

	if err := s.itemRepo.SaveAllTx(ctx, tx, charID, itemRows); err != nil {
		return fmt.Errorf("saving items for character %d: %w", charID, err)
	}

	// 3. Save skills
	skills := player.Skills()
	if err := s.skillRepo.SaveTx(ctx, tx, charID, skills); err != nil {
		return fmt.Errorf("saving skills for character %d: %w", charID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction for character %d: %w", charID, err)
	}

	slog.Info("player data saved",
		"characterID", charID,
		"character", player.Name(),
		"items", len(itemRows),
		"skills", len(skills))

	return nil
}

// PlayerData holds all loaded data for a player.
type PlayerData struct {
	Items  []ItemRow
	Skills []*model.SkillInfo
}

// LoadPlayerData loads items and skills for an existing player.
func (s *PlayerPersistenceService) LoadPlayerData(ctx context.Context, charID int64) (*PlayerData, error) {
	itemRows, err := s.itemRepo.LoadByOwner(ctx, charID)
	if err != nil {
		return nil, fmt.Errorf("loading items for character %d: %w", charID, err)
	}

	skills, err := s.skillRepo.LoadByCharacterID(ctx, charID)
	if err != nil {
		return nil, fmt.Errorf("loading skills for character %d: %w", charID, err)
	}

	return &PlayerData{
		Items:  itemRows,
		Skills: skills,
	}, nil
}

// ItemDefToTemplate ищет item definition по ID и конвертирует в *model.ItemTemplate.
// Возвращает nil если item definition не найден.
func ItemDefToTemplate(itemID int32) *model.ItemTemplate {
	def := data.GetItemDef(itemID)
	if def == nil {
		return nil
	}
	itemType := itemTypeFromString(def.Type())
	// Quest items identified by questItem flag in XML data,
	// regardless of item type string.
	// Java reference: EtcItem constructor sets TYPE2_QUEST for quest items.
	if def.IsQuestItem() {
		itemType = model.ItemTypeQuestItem
	}

	bodyPartStr := def.BodyPart()
	bodyPartMask := model.BodyPartMaskFromString(bodyPartStr)
	type1, type2 := itemClientTypes(itemType, bodyPartMask)

	return &model.ItemTemplate{
		ItemID:       def.ID(),
		Name:         def.Name(),
		Type:         itemType,
		Type1:        type1,
		Type2:        type2,
		BodyPartMask: bodyPartMask,
		PAtk:         def.PAtk(),
		AttackRange:  def.AttackRange(),
		CritRate:     def.CritRate(),
		RandomDamage: def.RandomDamage(),
		PDef:         def.PDef(),
		Weight:       def.Weight(),
		Stackable:    def.IsStackable(),
		Tradeable:    def.IsTradeable(),
		CrystalType:  model.CrystalTypeFromString(def.CrystalType()),
		BodyPartStr:  bodyPartStr,
	}
}

// itemClientTypes computes type1/type2 for client packets based on item type and body part.
// Java reference: ItemTemplate.java TYPE1_*/TYPE2_*, Weapon.java, Armor.java, EtcItem.java constructors.
func itemClientTypes(itemType model.ItemType, bodyPartMask int32) (int16, int16) {
	switch itemType {
	case model.ItemTypeWeapon:
		return model.Type1WeaponRingEarringNecklace, model.Type2Weapon
	case model.ItemTypeArmor:
		// Accessories (neck, earring, ring) have Type1=0 (same as weapons), Type2=2
		isAccessory := bodyPartMask == model.BodyPartNeck ||
			bodyPartMask == model.BodyPartREar || bodyPartMask == model.BodyPartLEar ||
			bodyPartMask == model.BodyPartRFinger || bodyPartMask == model.BodyPartLFinger
		if isAccessory {
			return model.Type1WeaponRingEarringNecklace, model.Type2Accessory
		}
		return model.Type1ShieldArmor, model.Type2ShieldArmor
	case model.ItemTypeQuestItem:
		return model.Type1ItemQuestItemAdena, model.Type2Quest
	default:
		return model.Type1ItemQuestItemAdena, model.Type2Other
	}
}

// itemTypeFromString конвертирует строку типа в model.ItemType.
func itemTypeFromString(s string) model.ItemType {
	switch s {
	case "Weapon":
		return model.ItemTypeWeapon
	case "Armor":
		return model.ItemTypeArmor
	default:
		return model.ItemTypeEtcItem
	}
}
