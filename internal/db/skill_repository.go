package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l2j-emu/aegis/internal/model"
)

// SkillRepository управляет изученными скиллами персонажей в БД.
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository создаёт новый SkillRepository.
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// LoadByCharacterID loads all learned skills for a character.
func (r *SkillRepository) LoadByCharacterID(ctx context.Context, charID int64) ([]*model.SkillInfo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_id, level, passive FROM character_skills WHERE character_id = $1`,
		charID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying skills for character %d: %w", charID, err)
	}
	defer rows.Close()

	skills := make([]*model.SkillInfo, 0, 32)
	for rows.Next() {
		si := &model.SkillInfo{}
		if err := rows.Scan(&si.SkillID, &si.Level, &si.Passive); err != nil {
			return nil, fmt.Errorf("scanning skill row: %w", err)
		}
		skills = append(skills, si)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skill rows: %w", err)
	}

	return skills, nil
}

// Save replaces the full skill set for a character in its own
// transaction (delete-then-bulk-insert).
func (r *SkillRepository) Save(ctx context.Context, charID int64, skills []*model.SkillInfo) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for character %d skills: %w", charID, err)
	}
	defer tx.Rollback(ctx)

	if err := saveSkillsTx(ctx, tx, charID, skills); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// SaveTx replaces the full skill set for a character within a
// caller-managed transaction (used by PlayerPersistenceService.SavePlayer).
func (r *SkillRepository) SaveTx(ctx context.Context, tx pgx.Tx, charID int64, skills []*model.SkillInfo) error {
	return saveSkillsTx(ctx, tx, charID, skills)
}

func saveSkillsTx(ctx context.Context, tx pgx.Tx, charID int64, skills []*model.SkillInfo) error {
	if _, err := tx.Exec(ctx, `DELETE FROM character_skills WHERE character_id = $1`, charID); err != nil {
		return fmt.Errorf("clearing skills for character %d: %w", charID, err)
	}

	batch := &pgx.Batch{}
	for _, si := range skills {
		batch.Queue(
			`INSERT INTO character_skills (character_id, skill_id, level, passive)
			 VALUES ($1, $2, $3, $4)`,
			charID, si.SkillID, si.Level, si.Passive,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for range skills {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("inserting skill for character %d: %w", charID, err)
		}
	}

	return nil
}
