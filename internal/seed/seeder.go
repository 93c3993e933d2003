// internal/seed/seeder.go
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	gcsrepo "forkful/internal/adapters/out/gcs"
)

// Seeder resets and repopulates the catalog collections.
//
// Order matters: categories and customizations are written first so menu
// docs and the menuCustomizations join docs can reference their ids.
type Seeder struct {
	FS     *firestore.Client
	Images *gcsrepo.MenuImageRepositoryGCS
	HTTP   *http.Client
}

func NewSeeder(fs *firestore.Client, images *gcsrepo.MenuImageRepositoryGCS) *Seeder {
	return &Seeder{
		FS:     fs,
		Images: images,
		HTTP:   &http.Client{Timeout: 30 * time.Second},
	}
}

var catalogCollections = []string{"categories", "customizations", "menu", "menuCustomizations"}

// Run wipes the catalog and writes the full fixture set.
func (s *Seeder) Run(ctx context.Context) error {
	if s == nil || s.FS == nil {
		return errors.New("seed: firestore client is nil")
	}

	// 1) Clear all catalog collections
	for _, col := range catalogCollections {
		n, err := s.clearCollection(ctx, col)
		if err != nil {
			return fmt.Errorf("seed: clear %s: %w", col, err)
		}
		log.Printf("[seed] cleared %s (%d docs)", col, n)
	}

	// 2) Clear the image bucket (best-effort; bucket may be absent locally)
	if s.Images != nil {
		if err := s.Images.Clear(ctx); err != nil {
			log.Printf("[seed] WARN: image bucket clear failed: %v", err)
		} else {
			log.Printf("[seed] cleared image bucket")
		}
	}

	// 3) Categories
	categoryIDs := map[string]string{}
	for _, c := range Categories {
		ref := s.FS.Collection("categories").NewDoc()
		_, err := ref.Set(ctx, map[string]interface{}{
			"name":        c.Name,
			"description": c.Description,
		})
		if err != nil {
			return fmt.Errorf("seed: create category %q: %w", c.Name, err)
		}
		categoryIDs[c.Name] = ref.ID
	}
	log.Printf("[seed] created %d categories", len(categoryIDs))

	// 4) Customizations
	customizationIDs := map[string]string{}
	for _, c := range Customizations {
		ref := s.FS.Collection("customizations").NewDoc()
		_, err := ref.Set(ctx, map[string]interface{}{
			"name":  c.Name,
			"price": c.Price,
			"type":  c.Type,
		})
		if err != nil {
			return fmt.Errorf("seed: create customization %q: %w", c.Name, err)
		}
		customizationIDs[c.Name] = ref.ID
	}
	log.Printf("[seed] created %d customizations", len(customizationIDs))

	// 5) Menu items + join docs
	joins := 0
	for _, m := range MenuItems {
		catID, ok := categoryIDs[m.CategoryName]
		if !ok {
			return fmt.Errorf("seed: menu item %q references unknown category %q", m.Name, m.CategoryName)
		}

		imageURL := s.uploadImage(ctx, m)

		menuRef := s.FS.Collection("menu").NewDoc()
		_, err := menuRef.Set(ctx, map[string]interface{}{
			"name":        m.Name,
			"description": m.Description,
			"imageUrl":    imageURL,
			"price":       m.Price,
			"rating":      m.Rating,
			"calories":    m.Calories,
			"protein":     m.Protein,
			"categoryId":  catID,
		})
		if err != nil {
			return fmt.Errorf("seed: create menu item %q: %w", m.Name, err)
		}

		for _, cusName := range m.Customizations {
			cusID, ok := customizationIDs[cusName]
			if !ok {
				return fmt.Errorf("seed: menu item %q references unknown customization %q", m.Name, cusName)
			}
			_, err := s.FS.Collection("menuCustomizations").NewDoc().Set(ctx, map[string]interface{}{
				"menuItemId":      menuRef.ID,
				"customizationId": cusID,
			})
			if err != nil {
				return fmt.Errorf("seed: link %q -> %q: %w", m.Name, cusName, err)
			}
			joins++
		}
		log.Printf("[seed] created menu item %q (%d customizations)", m.Name, len(m.Customizations))
	}

	log.Printf("[seed] done: %d categories, %d customizations, %d menu items, %d links",
		len(categoryIDs), len(customizationIDs), len(MenuItems), joins)
	return nil
}

// uploadImage downloads the fixture photo and re-uploads it into the GCS
// bucket. On any failure it falls back to the source URL so seeding still
// completes without a bucket.
func (s *Seeder) uploadImage(ctx context.Context, m MenuItemSeed) string {
	src := strings.TrimSpace(m.ImageURL)
	if src == "" || s.Images == nil {
		return src
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		log.Printf("[seed] WARN: image request for %q failed: %v (keeping source url)", m.Name, err)
		return src
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		log.Printf("[seed] WARN: image download for %q failed: %v (keeping source url)", m.Name, err)
		return src
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("[seed] WARN: image download for %q returned %d (keeping source url)", m.Name, resp.StatusCode)
		return src
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	objectName := "menu/" + uuid.NewString() + ".jpg"
	url, err := s.Images.Upload(ctx, objectName, contentType, resp.Body)
	if err != nil {
		log.Printf("[seed] WARN: image upload for %q failed: %v (keeping source url)", m.Name, err)
		return src
	}
	return url
}

// clearCollection deletes every doc in a collection and reports the count.
func (s *Seeder) clearCollection(ctx context.Context, col string) (int, error) {
	it := s.FS.Collection(col).Documents(ctx)
	defer it.Stop()

	n := 0
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return n, err
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
