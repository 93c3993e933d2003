// internal/adapters/out/postgres/menu_repository_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	menudom "forkful/internal/domain/menu"
)

// MenuRepositoryPG implements menu.Repository on a PostgreSQL mirror of the
// catalog (environments that replicate Firestore into Cloud SQL for SQL
// reporting). Filter semantics must stay identical to the Firestore adapter.
//
// Schema:
//
//	categories(id, name, description)
//	menu(id, name, description, image_url, price, rating, calories, protein, category_id)
//	menu_customizations(menu_item_id, customization_id)
//	customizations(id, name, price, type)
type MenuRepositoryPG struct {
	DB *sql.DB
}

func NewMenuRepositoryPG(db *sql.DB) *MenuRepositoryPG {
	return &MenuRepositoryPG{DB: db}
}

func (r *MenuRepositoryPG) ListItems(ctx context.Context, f menudom.Filter) ([]menudom.Item, error) {
	if r == nil || r.DB == nil {
		return nil, errors.New("menu_repository_pg: db is nil")
	}

	where := []string{}
	args := []any{}

	if cid := strings.TrimSpace(f.CategoryID); cid != "" {
		args = append(args, cid)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if needle := strings.TrimSpace(f.Query); needle != "" {
		args = append(args, "%"+needle+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}
	limitSQL := ""
	if f.Limit > 0 {
		args = append(args, f.Limit)
		limitSQL = fmt.Sprintf("LIMIT $%d", len(args))
	}

	q := fmt.Sprintf(`
SELECT id, name, description, image_url, price, rating, calories, protein, category_id
FROM menu
%s
ORDER BY name, id
%s
`, whereSQL, limitSQL)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []menudom.Item{}
	for rows.Next() {
		it, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *MenuRepositoryPG) GetItem(ctx context.Context, id string) (menudom.Item, error) {
	if r == nil || r.DB == nil {
		return menudom.Item{}, errors.New("menu_repository_pg: db is nil")
	}

	const q = `
SELECT id, name, description, image_url, price, rating, calories, protein, category_id
FROM menu
WHERE id = $1
`
	row := r.DB.QueryRowContext(ctx, q, strings.TrimSpace(id))
	it, err := scanMenuItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return menudom.Item{}, menudom.ErrNotFound
		}
		return menudom.Item{}, err
	}
	return it, nil
}

func (r *MenuRepositoryPG) ListCategories(ctx context.Context) ([]menudom.Category, error) {
	if r == nil || r.DB == nil {
		return nil, errors.New("menu_repository_pg: db is nil")
	}

	const q = `SELECT id, name, description FROM categories ORDER BY name, id`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []menudom.Category{}
	for rows.Next() {
		var c menudom.Category
		var desc sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &desc); err != nil {
			return nil, err
		}
		c.Description = desc.String
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *MenuRepositoryPG) ListItemCustomizations(ctx context.Context, itemID string) ([]menudom.Customization, error) {
	if r == nil || r.DB == nil {
		return nil, errors.New("menu_repository_pg: db is nil")
	}

	mid := strings.TrimSpace(itemID)
	if mid == "" {
		return []menudom.Customization{}, nil
	}

	const q = `
SELECT c.id, c.name, c.price, c.type
FROM customizations c
JOIN menu_customizations mc ON mc.customization_id = c.id
WHERE mc.menu_item_id = $1
ORDER BY c.name, c.id
`
	rows, err := r.DB.QueryContext(ctx, q, mid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []menudom.Customization{}
	for rows.Next() {
		var c menudom.Customization
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.Type); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (menudom.Item, error) {
	var it menudom.Item
	var desc, img sql.NullString
	if err := row.Scan(&it.ID, &it.Name, &desc, &img, &it.Price, &it.Rating, &it.Calories, &it.Protein, &it.CategoryID); err != nil {
		return menudom.Item{}, err
	}
	it.Description = desc.String
	it.ImageURL = img.String
	return it, nil
}
