package claimstore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	claimModel "osg-portal/models/claim"
	claimTypes "osg-portal/types/claim"
	"osg-portal/utils"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no claim exists for the requested claim ID
var ErrNotFound = errors.New("claim not found")

// Store is the persistence boundary for claims. Everything above it works in
// terms of claim IDs and merged rows, never raw SQL.
type Store interface {
	Get(claimID string) (claimModel.Claim, error)
	List() ([]claimModel.Claim, error)
	Create(c claimModel.Claim) (claimModel.Claim, error)
	Upsert(claimID string, req claimTypes.ClaimUpdateRequest) (claimModel.Claim, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(claimID string) (claimModel.Claim, error) {
	var c claimModel.Claim
	if err := s.db.Where("claim_id = ?", claimID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return claimModel.Claim{}, ErrNotFound
		}
		return claimModel.Claim{}, fmt.Errorf("load claim %s: %w", claimID, err)
	}
	return c, nil
}

func (s *GormStore) List() ([]claimModel.Claim, error) {
	var claims []claimModel.Claim
	if err := s.db.Order("created_at DESC").Find(&claims).Error; err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	return claims, nil
}

// Create inserts a new claim, assigning the next sequential claim ID when none
// was supplied. A claim ID collision is treated as an update of the existing
// row, never an overwrite.
func (s *GormStore) Create(c claimModel.Claim) (claimModel.Claim, error) {
	now := utils.NowIST()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if c.ClaimID == "" {
			c.ClaimID = nextClaimID(tx)
		}

		var existing claimModel.Claim
		lookupErr := tx.Where("claim_id = ?", c.ClaimID).First(&existing).Error
		if lookupErr == nil {
			c.ID = existing.ID
			c.LastUpdated = now
			if err := tx.Model(&existing).Updates(&c).Error; err != nil {
				return fmt.Errorf("update claim %s: %w", c.ClaimID, err)
			}
			if err := tx.Where("claim_id = ?", c.ClaimID).First(&c).Error; err != nil {
				return fmt.Errorf("reload claim %s: %w", c.ClaimID, err)
			}
			return appendStatusEvent(tx, c)
		}
		if !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check claim %s: %w", c.ClaimID, lookupErr)
		}

		c.LastUpdated = now
		if err := tx.Create(&c).Error; err != nil {
			return fmt.Errorf("create claim %s: %w", c.ClaimID, err)
		}
		return appendStatusEvent(tx, c)
	})
	if err != nil {
		return claimModel.Claim{}, err
	}
	return c, nil
}

// Upsert applies a partial save to the claim with the given ID, creating the
// row when it does not exist yet. Untouched columns keep their stored values.
func (s *GormStore) Upsert(claimID string, req claimTypes.ClaimUpdateRequest) (claimModel.Claim, error) {
	now := utils.NowIST()
	var merged claimModel.Claim
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing claimModel.Claim
		lookupErr := tx.Where("claim_id = ?", claimID).First(&existing).Error
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			base := claimModel.Claim{ClaimID: claimID}
			if base.ClaimID == "" {
				base.ClaimID = nextClaimID(tx)
			}
			merged = claimModel.ApplyUpdate(base, req, now)
			if err := tx.Create(&merged).Error; err != nil {
				return fmt.Errorf("create claim %s: %w", merged.ClaimID, err)
			}
		} else if lookupErr != nil {
			return fmt.Errorf("load claim %s: %w", claimID, lookupErr)
		} else {
			merged = claimModel.ApplyUpdate(existing, req, now)
			if err := tx.Save(&merged).Error; err != nil {
				return fmt.Errorf("save claim %s: %w", merged.ClaimID, err)
			}
		}

		if req.Status != nil {
			return appendStatusEvent(tx, merged)
		}
		return nil
	})
	if err != nil {
		return claimModel.Claim{}, err
	}
	return merged, nil
}

func appendStatusEvent(tx *gorm.DB, c claimModel.Claim) error {
	event := claimModel.ClaimStatusEvent{
		ClaimRef:  c.ID,
		Status:    c.Status,
		CreatedBy: c.AssignedStaff,
	}
	if err := tx.Create(&event).Error; err != nil {
		return fmt.Errorf("record status event for %s: %w", c.ClaimID, err)
	}
	return nil
}

// nextClaimID scans the stored claim IDs for the highest CLM-NNNN sequence
// number and returns the next one, zero padded to four digits. When the scan
// fails a timestamp based ID keeps intake working.
func nextClaimID(tx *gorm.DB) string {
	var ids []string
	if err := tx.Model(&claimModel.Claim{}).Pluck("claim_id", &ids).Error; err != nil {
		return fmt.Sprintf("CLM-%d", utils.NowIST().UnixMilli())
	}
	maxN := 0
	for _, id := range ids {
		parts := strings.SplitN(id, "-", 2)
		if len(parts) != 2 {
			continue
		}
		n, err := strconv.Atoi(parts[1])
		if err == nil && n > maxN {
			maxN = n
		}
	}
	return fmt.Sprintf("CLM-%04d", maxN+1)
}
