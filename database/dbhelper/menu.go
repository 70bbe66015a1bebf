package dbhelper

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ristorante-africa/ristorante/database"
	"github.com/ristorante-africa/ristorante/models"
)

// ErrMenuItemNotFound is returned when no menu item exists for the given id.
var ErrMenuItemNotFound = errors.New("menu item not found")

const menuColumns = `id, name, description, price, category, image, tags, allergens, available, created_at`

// MenuStore is the postgres store behind the menu catalog handlers.
type MenuStore struct{}

func NewMenuStore() *MenuStore {
	return &MenuStore{}
}

func (s *MenuStore) ListMenuItems(all bool) ([]models.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items ORDER BY created_at ASC`
	if !all {
		query = `SELECT ` + menuColumns + ` FROM menu_items WHERE available = TRUE ORDER BY created_at ASC`
	}

	rows, err := database.Ristorante.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MenuStore) GetMenuItem(id uuid.UUID) (models.MenuItem, error) {
	row := database.Ristorante.QueryRow(`
		SELECT `+menuColumns+`
		FROM menu_items
		WHERE id = $1`, id)
	return scanMenuItem(row)
}

func (s *MenuStore) CreateMenuItem(item *models.MenuItem) error {
	return database.Ristorante.QueryRow(`
		INSERT INTO menu_items (name, description, price, category, image, tags, allergens, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		item.Name, item.Description, item.Price, item.Category, item.Image,
		pq.Array(item.Tags), pq.Array(item.Allergens), item.Available).
		Scan(&item.ID, &item.CreatedAt)
}

func (s *MenuStore) UpdateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	row := database.Ristorante.QueryRow(`
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, image = $5,
			tags = $6, allergens = $7, available = $8
		WHERE id = $9
		RETURNING `+menuColumns,
		item.Name, item.Description, item.Price, item.Category, item.Image,
		pq.Array(item.Tags), pq.Array(item.Allergens), item.Available, item.ID)
	return scanMenuItem(row)
}

func (s *MenuStore) DeleteMenuItem(id uuid.UUID) error {
	result, err := database.Ristorante.Exec(`DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// ReplaceMenu swaps the whole catalog for the given items in one transaction.
func (s *MenuStore) ReplaceMenu(items []models.MenuItem) error {
	return database.Tx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM menu_items`); err != nil {
			return err
		}
		for _, item := range items {
			_, err := tx.Exec(`
				INSERT INTO menu_items (name, description, price, category, image, tags, allergens, available)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				item.Name, item.Description, item.Price, item.Category, item.Image,
				pq.Array(item.Tags), pq.Array(item.Allergens), item.Available)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *MenuStore) ClearMenu() (int64, error) {
	result, err := database.Ristorante.Exec(`DELETE FROM menu_items`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanMenuItem(row rowScanner) (models.MenuItem, error) {
	var item models.MenuItem
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
		&item.Image, pq.Array(&item.Tags), pq.Array(&item.Allergens), &item.Available, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return models.MenuItem{}, ErrMenuItemNotFound
	}
	if err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}
