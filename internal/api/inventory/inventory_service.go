package inventory

import (
	"bytes"
	"cmp"
	"context"
	"encoding/csv"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/hsm-gustavo/smart-pantry/internal/common"
	"github.com/hsm-gustavo/smart-pantry/internal/db"
	"github.com/hsm-gustavo/smart-pantry/internal/logging"
)

// expiryLayout is fixed-width and always UTC, so string order matches
// chronological order.
const expiryLayout = "2006-01-02T15:04:05.000Z07:00"

const DefaultExpirySoonDays = 3

// Store is the item half of the data layer. Every call is scoped by owner.
type Store interface {
	SaveItem(ctx context.Context, it db.Item) (db.Item, error)
	GetItem(ctx context.Context, owner, id string) (db.Item, error)
	ListItems(ctx context.Context, owner string) ([]db.Item, error)
	DeleteItem(ctx context.Context, owner, id string) error
}

// Archiver uploads exported files to object storage.
type Archiver interface {
	Bucket() string
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}

type CreateInput struct {
	Name      string
	Quantity  int
	Unit      string
	Expiry    string
	Category  string
	Barcode   string
	Notes     string
	CreatedAt *time.Time
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Name     *string
	Quantity *int
	Expiry   *string
}

type Stats struct {
	Total           int            `json:"total" example:"3"`
	Expired         int            `json:"expired" example:"1"`
	ExpiringSoon    int            `json:"expiringSoon" example:"1"`
	CategoriesCount map[string]int `json:"categoriesCount"`
}

type InventoryService struct {
	store      Store
	archiver   Archiver
	soonWindow time.Duration
	logger     logging.Logger
	now        func() time.Time
}

// NewInventoryService builds the service. archiver may be nil, in which
// case archiving reports common.ErrArchiveDisabled.
func NewInventoryService(store Store, expirySoonDays int, archiver Archiver, l logging.Logger) *InventoryService {
	if expirySoonDays <= 0 {
		expirySoonDays = DefaultExpirySoonDays
	}
	return &InventoryService{
		store:      store,
		archiver:   archiver,
		soonWindow: time.Duration(expirySoonDays) * 24 * time.Hour,
		logger:     l.With("module", "inventory"),
		now:        time.Now,
	}
}

// NormalizeExpiry rewrites RFC 3339 timestamps, zone-less timestamps and
// plain dates into expiryLayout. Anything else is returned trimmed but
// otherwise untouched.
func NormalizeExpiry(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(expiryLayout)
		}
	}
	return s
}

// List returns the owner's items ordered by ascending expiry.
func (s *InventoryService) List(ctx context.Context, owner string) ([]db.Item, error) {
	items, err := s.store.ListItems(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	slices.SortStableFunc(items, func(a, b db.Item) int {
		if c := strings.Compare(a.Expiry, b.Expiry); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return items, nil
}

func (s *InventoryService) Create(ctx context.Context, owner string, in CreateInput) (db.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return db.Item{}, fmt.Errorf("missing name: %w", common.ErrValidation)
	}

	it := db.Item{
		ID:       uuid.NewString(),
		UserID:   owner,
		Name:     name,
		Quantity: in.Quantity,
		Unit:     in.Unit,
		Expiry:   NormalizeExpiry(in.Expiry),
		Category: in.Category,
		Barcode:  in.Barcode,
		Notes:    in.Notes,
	}
	if in.CreatedAt != nil {
		it.CreatedAt = in.CreatedAt.UTC()
	}

	saved, err := s.store.SaveItem(ctx, it)
	if err != nil {
		return db.Item{}, fmt.Errorf("error saving item: %w", err)
	}
	return saved, nil
}

// Update applies the supplied fields to the owner's item. Items of other
// owners are reported as common.ErrNotFound.
func (s *InventoryService) Update(ctx context.Context, owner, id string, in UpdateInput) (db.Item, error) {
	it, err := s.store.GetItem(ctx, owner, id)
	if err != nil {
		return db.Item{}, fmt.Errorf("item %s: %w", id, err)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return db.Item{}, fmt.Errorf("blank name: %w", common.ErrValidation)
		}
		it.Name = name
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.Expiry != nil {
		it.Expiry = NormalizeExpiry(*in.Expiry)
	}

	saved, err := s.store.SaveItem(ctx, it)
	if err != nil {
		return db.Item{}, fmt.Errorf("error saving item: %w", err)
	}
	return saved, nil
}

// Delete is idempotent.
func (s *InventoryService) Delete(ctx context.Context, owner, id string) error {
	return s.store.DeleteItem(ctx, owner, id)
}

// Stats counts the owner's items. An item whose expiry cannot be parsed is
// a data-integrity bug and fails the whole computation.
func (s *InventoryService) Stats(ctx context.Context, owner string) (*Stats, error) {
	items, err := s.store.ListItems(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}

	now := s.now()
	horizon := now.Add(s.soonWindow)
	st := &Stats{Total: len(items), CategoriesCount: map[string]int{}}

	for _, it := range items {
		exp, err := time.Parse(time.RFC3339, it.Expiry)
		if err != nil {
			return nil, fmt.Errorf("item %s has invalid expiry %q: %w", it.ID, it.Expiry, err)
		}
		if exp.Before(now) {
			st.Expired++
		} else if !exp.After(horizon) {
			st.ExpiringSoon++
		}
		st.CategoriesCount[it.Category]++
	}
	return st, nil
}

var csvHeader = []string{"id", "name", "quantity", "unit", "expiry", "category", "barcode", "notes", "createdAt", "updatedAt"}

// ExportCSV renders the owner's items, ordered by expiry, as CSV.
func (s *InventoryService) ExportCSV(ctx context.Context, owner string) ([]byte, error) {
	items, err := s.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, it := range items {
		row := []string{
			it.ID,
			it.Name,
			strconv.Itoa(it.Quantity),
			it.Unit,
			it.Expiry,
			it.Category,
			it.Barcode,
			it.Notes,
			it.CreatedAt.UTC().Format(expiryLayout),
			it.UpdatedAt.UTC().Format(expiryLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Archive uploads the CSV export to object storage and returns the
// bucket and object key.
func (s *InventoryService) Archive(ctx context.Context, owner, email string) (string, string, error) {
	if s.archiver == nil {
		return "", "", common.ErrArchiveDisabled
	}

	body, err := s.ExportCSV(ctx, owner)
	if err != nil {
		return "", "", err
	}

	prefix := slug.Make(email)
	if prefix == "" {
		prefix = owner
	}
	key := fmt.Sprintf("exports/%s/%s.csv", prefix, s.now().UTC().Format("20060102T150405Z"))

	if err := s.archiver.Upload(ctx, key, body, "text/csv"); err != nil {
		return "", "", fmt.Errorf("error uploading export: %w", err)
	}

	s.logger.Info(ctx, "inventory archived", "user_id", owner, "key", key)
	return s.archiver.Bucket(), key, nil
}
