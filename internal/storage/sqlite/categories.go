package sqlite

import (
	"fmt"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

func (s *Store) AddCategory(category models.Category) error {
	return s.writeCategory(category)
}

func (s *Store) UpdateCategory(category models.Category) error {
	return s.writeCategory(category)
}

func (s *Store) writeCategory(category models.Category) error {
	_, err := s.db.Exec(`
		INSERT INTO categories (id, name, color, sort_order)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			color = excluded.color,
			sort_order = excluded.sort_order`,
		category.ID, category.Name, category.Color, category.Order)
	if err != nil {
		return fmt.Errorf("failed to write category: %w", err)
	}
	return nil
}

func (s *Store) GetAllCategories() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT id, name, color, sort_order FROM categories ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Order); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) DeleteCategory(id string) error {
	result, err := s.db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return nil
}
