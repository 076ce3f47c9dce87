package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-emoji-ledger/internal/domain"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
	"github.com/feral-file/ff-emoji-ledger/internal/store/schema"
)

// unitPriorityOrder sorts a user's units from least to most prioritized:
// ungrouped units first, then groups from the last rank to the first.
const unitPriorityOrder = "g.sort_order DESC NULLS FIRST, i.id DESC"

type pgStore struct {
	db       *gorm.DB
	resolver EmojiResolver
}

// NewPGStore creates a new PostgreSQL store instance.
// The resolver maps stored glyphs back to catalog emojis.
func NewPGStore(db *gorm.DB, resolver EmojiResolver) Store {
	return &pgStore{db: db, resolver: resolver}
}

// NewGormConfig returns the gorm settings every program opening the ledger database uses.
// Driver errors are translated so unique violations surface as gorm.ErrDuplicatedKey.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, the defaults from NormalizeConnectionPoolSettings are used.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

type emojiCountRow struct {
	Emoji string
	Count int
}

type groupedCountRow struct {
	GroupID *int64
	Emoji   string
	Count   int
}

func dbUserID(u domain.UserID) int64 {
	return int64(u) //nolint:gosec,G115
}

func glyphs(counts domain.EmojiCounts) []string {
	out := make([]string, 0, len(counts))
	for _, c := range counts.Sorted() {
		out = append(out, c.Emoji.String())
	}
	return out
}

// resolve maps a stored glyph to a catalog emoji.
// Glyphs that left the catalog are logged and skipped.
func (s *pgStore) resolve(ctx context.Context, glyph string) (domain.Emoji, bool) {
	e, ok := s.resolver.Resolve(glyph)
	if !ok {
		logger.WarnCtx(ctx, "Stored emoji is not in the catalog", zap.String("emoji", glyph))
	}
	return e, ok
}

func (s *pgStore) countsFromRows(ctx context.Context, rows []emojiCountRow) domain.EmojiCounts {
	counts := make(domain.EmojiCounts, len(rows))
	for _, r := range rows {
		if e, ok := s.resolve(ctx, r.Emoji); ok {
			counts.Add(e, r.Count)
		}
	}
	return counts
}

// lockUsers serializes ledger mutations per user.
// Locks are taken in ascending ID order so two transactions over the same pair cannot deadlock.
func lockUsers(tx *gorm.DB, users ...domain.UserID) error {
	ids := slices.Clone(users)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	for _, id := range ids {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", dbUserID(id)).Error; err != nil {
			return fmt.Errorf("failed to lock user %s: %w", id, err)
		}
	}
	return nil
}

// ownedCounts returns how many units of each glyph the user owns.
// Callers hold the user's advisory lock, so the counts stay valid until commit.
func ownedCounts(tx *gorm.DB, userID domain.UserID, wanted []string) (map[string]int, error) {
	var rows []emojiCountRow
	err := tx.Raw(`SELECT emoji, COUNT(*) AS count FROM emoji_inventory
		WHERE user_id = ? AND emoji IN ? GROUP BY emoji`, dbUserID(userID), wanted).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count owned emojis: %w", err)
	}

	owned := make(map[string]int, len(rows))
	for _, r := range rows {
		owned[r.Emoji] = r.Count
	}
	return owned, nil
}

func hasEmojis(tx *gorm.DB, userID domain.UserID, counts domain.EmojiCounts) (bool, error) {
	if counts.IsEmpty() {
		return true, nil
	}

	owned, err := ownedCounts(tx, userID, glyphs(counts))
	if err != nil {
		return false, err
	}
	for e, n := range counts {
		if owned[e.String()] < n {
			return false, nil
		}
	}
	return true, nil
}

// selectUnits locks up to limit units of an emoji, least prioritized first.
// extra narrows the candidates and must reference the inventory as i.
func selectUnits(tx *gorm.DB, userID domain.UserID, emoji domain.Emoji, limit int, extra string, args ...any) ([]int64, error) {
	query := `SELECT i.id FROM emoji_inventory i
		LEFT JOIN emoji_groups g ON g.id = i.group_id
		WHERE i.user_id = ? AND i.emoji = ?`
	if extra != "" {
		query += " AND " + extra
	}
	query += " ORDER BY " + unitPriorityOrder + " LIMIT ? FOR UPDATE OF i"

	params := append([]any{dbUserID(userID), emoji.String()}, args...)
	params = append(params, limit)

	var ids []int64
	if err := tx.Raw(query, params...).Scan(&ids).Error; err != nil {
		return nil, fmt.Errorf("failed to select emoji units: %w", err)
	}
	return ids, nil
}

// transferUnits moves exact counts from one user to another and clears their group tags.
// Finding fewer units than requested is a ledger invariant violation.
func transferUnits(tx *gorm.DB, from, to domain.UserID, counts domain.EmojiCounts) error {
	for _, c := range counts.Sorted() {
		ids, err := selectUnits(tx, from, c.Emoji, c.Count, "")
		if err != nil {
			return err
		}
		if len(ids) < c.Count {
			return fmt.Errorf("%w: user %s holds %d of %s, transfer needs %d",
				domain.ErrLedgerInvariant, from, len(ids), c.Emoji, c.Count)
		}

		result := tx.Model(&schema.EmojiInventory{}).
			Where("id IN ?", ids).
			Updates(map[string]any{"user_id": dbUserID(to), "group_id": nil})
		if result.Error != nil {
			return fmt.Errorf("failed to transfer emoji units: %w", result.Error)
		}
		if result.RowsAffected != int64(len(ids)) {
			return fmt.Errorf("%w: transferred %d of %d units of %s",
				domain.ErrLedgerInvariant, result.RowsAffected, len(ids), c.Emoji)
		}
	}
	return nil
}

// consumeUnits deletes exact counts from a user's inventory, least prioritized first
func consumeUnits(tx *gorm.DB, userID domain.UserID, counts domain.EmojiCounts) error {
	for _, c := range counts.Sorted() {
		ids, err := selectUnits(tx, userID, c.Emoji, c.Count, "")
		if err != nil {
			return err
		}
		if len(ids) < c.Count {
			return fmt.Errorf("%w: user %s holds %d of %s, recycling needs %d",
				domain.ErrLedgerInvariant, userID, len(ids), c.Emoji, c.Count)
		}

		result := tx.Where("id IN ?", ids).Delete(&schema.EmojiInventory{})
		if result.Error != nil {
			return fmt.Errorf("failed to consume emoji units: %w", result.Error)
		}
		if result.RowsAffected != int64(len(ids)) {
			return fmt.Errorf("%w: consumed %d of %d units of %s",
				domain.ErrLedgerInvariant, result.RowsAffected, len(ids), c.Emoji)
		}
	}
	return nil
}

func insertUnits(tx *gorm.DB, userID domain.UserID, counts domain.EmojiCounts) error {
	units := make([]schema.EmojiInventory, 0, counts.Total())
	for _, e := range counts.Flatten() {
		units = append(units, schema.EmojiInventory{
			UserID: dbUserID(userID),
			Emoji:  e.String(),
		})
	}
	if len(units) == 0 {
		return nil
	}
	if err := tx.Create(&units).Error; err != nil {
		return fmt.Errorf("failed to insert emoji units: %w", err)
	}
	return nil
}

// pruneEmptyGroups deletes the user's groups without members and renumbers the rest from 0
func pruneEmptyGroups(tx *gorm.DB, userID domain.UserID) (int, error) {
	result := tx.Exec(`DELETE FROM emoji_groups g WHERE g.user_id = ?
		AND NOT EXISTS (SELECT 1 FROM emoji_inventory i WHERE i.group_id = g.id)`, dbUserID(userID))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete empty groups: %w", result.Error)
	}

	err := tx.Exec(`UPDATE emoji_groups g SET sort_order = r.rank
		FROM (SELECT id, ROW_NUMBER() OVER (ORDER BY sort_order, id) - 1 AS rank
			FROM emoji_groups WHERE user_id = ?) r
		WHERE g.id = r.id AND g.sort_order <> r.rank`, dbUserID(userID)).Error
	if err != nil {
		return 0, fmt.Errorf("failed to resequence groups: %w", err)
	}

	return int(result.RowsAffected), nil
}

// findGroup looks a group up by case-insensitive name and locks it. Returns nil when absent.
func findGroup(tx *gorm.DB, userID domain.UserID, name string) (*schema.EmojiGroup, error) {
	var group schema.EmojiGroup
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND lower(name) = lower(?)", dbUserID(userID), name).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return &group, nil
}

// GrantEmojis adds ungrouped units to a user's inventory
func (s *pgStore) GrantEmojis(ctx context.Context, userID domain.UserID, emojis domain.EmojiCounts) error {
	if emojis.IsEmpty() {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUsers(tx, userID); err != nil {
			return err
		}
		return insertUnits(tx, userID, emojis)
	})
}

// GetInventory returns every emoji the user owns with its count
func (s *pgStore) GetInventory(ctx context.Context, userID domain.UserID) (domain.EmojiCounts, error) {
	var rows []emojiCountRow
	err := s.db.WithContext(ctx).Raw(`SELECT emoji, COUNT(*) AS count FROM emoji_inventory
		WHERE user_id = ? GROUP BY emoji`, dbUserID(userID)).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return s.countsFromRows(ctx, rows), nil
}

// GetGroupedInventory returns the inventory split by group, groups in rank order
func (s *pgStore) GetGroupedInventory(ctx context.Context, userID domain.UserID) (*domain.GroupedInventory, error) {
	var groups []schema.EmojiGroup
	var rows []groupedCountRow

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", dbUserID(userID)).
			Order("sort_order ASC").
			Find(&groups).Error; err != nil {
			return fmt.Errorf("failed to get groups: %w", err)
		}

		if err := tx.Raw(`SELECT group_id, emoji, COUNT(*) AS count FROM emoji_inventory
			WHERE user_id = ? GROUP BY group_id, emoji`, dbUserID(userID)).
			Scan(&rows).Error; err != nil {
			return fmt.Errorf("failed to get inventory: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	byGroup := make(map[int64]domain.EmojiCounts, len(groups))
	inventory := &domain.GroupedInventory{Ungrouped: make(domain.EmojiCounts)}
	for _, r := range rows {
		e, ok := s.resolve(ctx, r.Emoji)
		if !ok {
			continue
		}
		if r.GroupID == nil {
			inventory.Ungrouped.Add(e, r.Count)
			continue
		}
		if byGroup[*r.GroupID] == nil {
			byGroup[*r.GroupID] = make(domain.EmojiCounts)
		}
		byGroup[*r.GroupID].Add(e, r.Count)
	}

	for _, g := range groups {
		counts := byGroup[g.ID]
		if counts.IsEmpty() {
			continue
		}
		inventory.Groups = append(inventory.Groups, domain.GroupContents{Name: g.Name, Emojis: counts})
	}

	return inventory, nil
}

// HasEmojis reports whether the user owns at least the given counts
func (s *pgStore) HasEmojis(ctx context.Context, userID domain.UserID, emojis domain.EmojiCounts) (bool, error) {
	return hasEmojis(s.db.WithContext(ctx), userID, emojis)
}

// GetEmojiOwners lists users owning the emoji, most units first
func (s *pgStore) GetEmojiOwners(ctx context.Context, emoji domain.Emoji, publicOnly bool) ([]EmojiOwner, error) {
	query := `SELECT i.user_id, COUNT(*) AS count FROM emoji_inventory i
		LEFT JOIN user_settings us ON us.user_id = i.user_id
		WHERE i.emoji = ?`
	if publicOnly {
		query += " AND COALESCE(us.private, FALSE) = FALSE"
	}
	query += " GROUP BY i.user_id ORDER BY count DESC, i.user_id ASC"

	var rows []struct {
		UserID int64
		Count  int
	}
	if err := s.db.WithContext(ctx).Raw(query, emoji.String()).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get emoji owners: %w", err)
	}

	owners := make([]EmojiOwner, 0, len(rows))
	for _, r := range rows {
		owners = append(owners, EmojiOwner{User: domain.UserID(r.UserID), Count: r.Count}) //nolint:gosec,G115
	}
	return owners, nil
}

// AddToGroup files up to the requested units under the named group, creating it at the last rank if needed.
// Units already in the group are not counted; units are taken from the least prioritized places first.
func (s *pgStore) AddToGroup(ctx context.Context, userID domain.UserID, name string, emojis domain.EmojiCounts) (*AddToGroupResult, error) {
	name, err := domain.NormalizeGroupName(name)
	if err != nil {
		return nil, err
	}

	result := &AddToGroupResult{Added: make(domain.EmojiCounts)}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUsers(tx, userID); err != nil {
			return err
		}

		group, err := findGroup(tx, userID, name)
		if err != nil {
			return err
		}
		if group == nil {
			var groupCount int64
			if err := tx.Model(&schema.EmojiGroup{}).
				Where("user_id = ?", dbUserID(userID)).
				Count(&groupCount).Error; err != nil {
				return fmt.Errorf("failed to count groups: %w", err)
			}

			group = &schema.EmojiGroup{
				UserID:    dbUserID(userID),
				Name:      name,
				SortOrder: int(groupCount),
			}
			if err := tx.Create(group).Error; err != nil {
				return fmt.Errorf("failed to create group: %w", err)
			}
			result.Created = true
		}
		result.Name = group.Name

		for _, c := range emojis.Sorted() {
			ids, err := selectUnits(tx, userID, c.Emoji, c.Count, "i.group_id IS DISTINCT FROM ?", group.ID)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				continue
			}

			if err := tx.Model(&schema.EmojiInventory{}).
				Where("id IN ?", ids).
				Update("group_id", group.ID).Error; err != nil {
				return fmt.Errorf("failed to add emojis to group: %w", err)
			}
			result.Added.Add(c.Emoji, len(ids))
		}

		// Units may have left other groups, and a new group may have received nothing
		_, err = pruneEmptyGroups(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RemoveFromGroup ungroups up to the requested units.
// With a name only that group is touched; without one, units leave the least prioritized groups first.
func (s *pgStore) RemoveFromGroup(ctx context.Context, userID domain.UserID, emojis domain.EmojiCounts, name *string) (domain.EmojiCounts, error) {
	removed := make(domain.EmojiCounts)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUsers(tx, userID); err != nil {
			return err
		}

		extra := "i.group_id IS NOT NULL"
		var args []any
		if name != nil {
			group, err := findGroup(tx, userID, strings.TrimSpace(*name))
			if err != nil {
				return err
			}
			if group == nil {
				return domain.ErrNoSuchGroup
			}
			extra = "i.group_id = ?"
			args = []any{group.ID}
		}

		for _, c := range emojis.Sorted() {
			ids, err := selectUnits(tx, userID, c.Emoji, c.Count, extra, args...)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				continue
			}

			if err := tx.Model(&schema.EmojiInventory{}).
				Where("id IN ?", ids).
				Update("group_id", nil).Error; err != nil {
				return fmt.Errorf("failed to remove emojis from group: %w", err)
			}
			removed.Add(c.Emoji, len(ids))
		}

		_, err := pruneEmptyGroups(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

// RenameGroup renames a group and returns its previous stored name.
// Renaming a group to a case variant of its own name is allowed.
func (s *pgStore) RenameGroup(ctx context.Context, userID domain.UserID, oldName, newName string) (string, error) {
	newName, err := domain.NormalizeGroupName(newName)
	if err != nil {
		return "", err
	}

	var previous string
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUsers(tx, userID); err != nil {
			return err
		}

		group, err := findGroup(tx, userID, strings.TrimSpace(oldName))
		if err != nil {
			return err
		}
		if group == nil {
			return domain.ErrNoSuchGroup
		}

		existing, err := findGroup(tx, userID, newName)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != group.ID {
			return &domain.NameTakenError{Name: existing.Name}
		}

		previous = group.Name
		if err := tx.Model(group).Update("name", newName).Error; err != nil {
			return fmt.Errorf("failed to rename group: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return previous, nil
}

// ListGroups returns groups in rank order with their unit counts
func (s *pgStore) ListGroups(ctx context.Context, userID domain.UserID) (*domain.GroupListing, error) {
	listing := &domain.GroupListing{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []struct {
			Name  string
			Count int
		}
		if err := tx.Raw(`SELECT g.name, COUNT(i.id) AS count FROM emoji_groups g
			LEFT JOIN emoji_inventory i ON i.group_id = g.id
			WHERE g.user_id = ?
			GROUP BY g.id, g.name, g.sort_order
			ORDER BY g.sort_order ASC`, dbUserID(userID)).Scan(&rows).Error; err != nil {
			return fmt.Errorf("failed to list groups: %w", err)
		}
		for _, r := range rows {
			listing.Groups = append(listing.Groups, domain.GroupSummary{Name: r.Name, Count: r.Count})
		}

		var ungrouped int64
		if err := tx.Model(&schema.EmojiInventory{}).
			Where("user_id = ? AND group_id IS NULL", dbUserID(userID)).
			Count(&ungrouped).Error; err != nil {
			return fmt.Errorf("failed to count ungrouped emojis: %w", err)
		}
		listing.UngroupedCount = int(ungrouped)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return listing, nil
}

// GetGroupContents returns the emojis in the named group
func (s *pgStore) GetGroupContents(ctx context.Context, userID domain.UserID, name string) (*domain.GroupContents, error) {
	db := s.db.WithContext(ctx)

	var group schema.EmojiGroup
	err := db.Where("user_id = ? AND lower(name) = lower(?)", dbUserID(userID), strings.TrimSpace(name)).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoSuchGroup
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	var rows []emojiCountRow
	if err := db.Raw(`SELECT emoji, COUNT(*) AS count FROM emoji_inventory
		WHERE group_id = ? GROUP BY emoji`, group.ID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get group contents: %w", err)
	}

	return &domain.GroupContents{Name: group.Name, Emojis: s.countsFromRows(ctx, rows)}, nil
}

// GetUngrouped returns the emojis not filed under any group
func (s *pgStore) GetUngrouped(ctx context.Context, userID domain.UserID) (domain.EmojiCounts, error) {
	var rows []emojiCountRow
	err := s.db.WithContext(ctx).Raw(`SELECT emoji, COUNT(*) AS count FROM emoji_inventory
		WHERE user_id = ? AND group_id IS NULL GROUP BY emoji`, dbUserID(userID)).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ungrouped emojis: %w", err)
	}
	return s.countsFromRows(ctx, rows), nil
}

// RepositionGroup moves a group to a 0-based rank, clamped to [0, count-1].
// Every group between the old and new rank shifts by exactly one.
func (s *pgStore) RepositionGroup(ctx context.Context, userID domain.UserID, name string, position int) (*domain.RepositionResult, error) {
	var result *domain.RepositionResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUsers(tx, userID); err != nil {
			return err
		}

		var groups []schema.EmojiGroup
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", dbUserID(userID)).
			Order("sort_order ASC").
			Find(&groups).Error; err != nil {
			return fmt.Errorf("failed to get groups: %w", err)
		}

		name = strings.TrimSpace(name)
		oldPos := slices.IndexFunc(groups, func(g schema.EmojiGroup) bool {
			return strings.EqualFold(g.Name, name)
		})
		if oldPos < 0 {
			return domain.ErrNoSuchGroup
		}

		newPos := min(max(position, 0), len(groups)-1)
		order := make([]string, 0, len(groups))
		for _, g := range groups {
			order = append(order, g.Name)
		}
		order = domain.MoveName(order, oldPos, newPos)
		kind, neighbours := domain.ClassifyReposition(order, oldPos, newPos)

		result = &domain.RepositionResult{
			Name:              groups[oldPos].Name,
			Kind:              kind,
			Neighbours:        neighbours,
			OldPosition:       oldPos,
			RequestedPosition: position,
			GroupCount:        len(groups),
		}
		if oldPos == newPos {
			return nil
		}

		shift := tx.Model(&schema.EmojiGroup{}).Where("user_id = ?", dbUserID(userID))
		if newPos < oldPos {
			shift = shift.Where("sort_order >= ? AND sort_order < ?", newPos, oldPos).
				Update("sort_order", gorm.Expr("sort_order + 1"))
		} else {
			shift = shift.Where("sort_order > ? AND sort_order <= ?", oldPos, newPos).
				Update("sort_order", gorm.Expr("sort_order - 1"))
		}
		if shift.Error != nil {
			return fmt.Errorf("failed to shift groups: %w", shift.Error)
		}

		if err := tx.Model(&groups[oldPos]).Update("sort_order", newPos).Error; err != nil {
			return fmt.Errorf("failed to move group: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// PruneEmptyGroups deletes the user's empty groups and closes rank gaps
func (s *pgStore) PruneEmptyGroups(ctx context.Context, userID domain.UserID) (int, error) {
	var pruned int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUsers(tx, userID); err != nil {
			return err
		}
		var err error
		pruned, err = pruneEmptyGroups(tx, userID)
		return err
	})
	return pruned, err
}

// ListUsersWithGroups returns users owning at least one group, in ID order, after the given user
func (s *pgStore) ListUsersWithGroups(ctx context.Context, afterUser domain.UserID, limit int) ([]domain.UserID, error) {
	var ids []int64
	err := s.db.WithContext(ctx).Model(&schema.EmojiGroup{}).
		Distinct("user_id").
		Where("user_id > ?", dbUserID(afterUser)).
		Order("user_id ASC").
		Limit(limit).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users with groups: %w", err)
	}

	users := make([]domain.UserID, 0, len(ids))
	for _, id := range ids {
		users = append(users, domain.UserID(id)) //nolint:gosec,G115
	}
	return users, nil
}

// loadOffer fetches the stored offer between two users, optionally locking it. Returns nil when absent.
func loadOffer(tx *gorm.DB, offerer, target domain.UserID, lock bool) (*schema.TradeOffer, error) {
	query := tx
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var offer schema.TradeOffer
	err := query.Where("user_id = ? AND target_user_id = ?", dbUserID(offerer), dbUserID(target)).
		First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trade offer: %w", err)
	}

	if err := tx.Where("trade_offer_id = ?", offer.ID).Find(&offer.Contents).Error; err != nil {
		return nil, fmt.Errorf("failed to get trade offer contents: %w", err)
	}
	return &offer, nil
}

func (s *pgStore) toDomainOffer(ctx context.Context, offer schema.TradeOffer) domain.TradeOffer {
	signed := make(map[domain.Emoji]int, len(offer.Contents))
	for _, c := range offer.Contents {
		if e, ok := s.resolve(ctx, c.Emoji); ok {
			signed[e] += c.Count
		}
	}
	offered, requested := domain.SplitSignedContents(signed)

	return domain.TradeOffer{
		Offerer:   domain.UserID(offer.UserID),       //nolint:gosec,G115
		Target:    domain.UserID(offer.TargetUserID), //nolint:gosec,G115
		Offered:   offered,
		Requested: requested,
		CreatedAt: offer.CreatedAt,
	}
}

func signedContents[T any](signed map[domain.Emoji]int, build func(glyph string, count int) T) []T {
	contents := make([]T, 0, len(signed))
	for e, n := range signed {
		if n != 0 {
			contents = append(contents, build(e.String(), n))
		}
	}
	return contents
}

// CreateTradeOffer stores a new offer after checking existence and ownership under lock
func (s *pgStore) CreateTradeOffer(ctx context.Context, offer domain.TradeOffer) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUsers(tx, offer.Offerer); err != nil {
			return err
		}

		existing, err := loadOffer(tx, offer.Offerer, offer.Target, false)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrOfferExists
		}

		owns, err := hasEmojis(tx, offer.Offerer, offer.Offered)
		if err != nil {
			return err
		}
		if !owns {
			return domain.ErrOffererLacksEmojis
		}

		row := schema.TradeOffer{
			UserID:       dbUserID(offer.Offerer),
			TargetUserID: dbUserID(offer.Target),
			Contents: signedContents(offer.SignedContents(), func(glyph string, count int) schema.TradeOfferContent {
				return schema.TradeOfferContent{Emoji: glyph, Count: count}
			}),
		}
		if err := tx.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrOfferExists
			}
			return fmt.Errorf("failed to create trade offer: %w", err)
		}
		return nil
	})
}

// GetTradeOffer returns the offer between the two users, or nil when there is none
func (s *pgStore) GetTradeOffer(ctx context.Context, offerer, target domain.UserID) (*domain.TradeOffer, error) {
	row, err := loadOffer(s.db.WithContext(ctx), offerer, target, false)
	if err != nil || row == nil {
		return nil, err
	}
	offer := s.toDomainOffer(ctx, *row)
	return &offer, nil
}

// DeleteTradeOffer removes the offer between the two users
func (s *pgStore) DeleteTradeOffer(ctx context.Context, offerer, target domain.UserID) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND target_user_id = ?", dbUserID(offerer), dbUserID(target)).
		Delete(&schema.TradeOffer{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete trade offer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNoSuchOffer
	}
	return nil
}

// GetUserTradeOffers returns a user's outgoing and incoming offers, oldest first
func (s *pgStore) GetUserTradeOffers(ctx context.Context, userID domain.UserID) (*domain.UserOffers, error) {
	db := s.db.WithContext(ctx)

	var outgoing, incoming []schema.TradeOffer
	if err := db.Preload("Contents").
		Where("user_id = ?", dbUserID(userID)).
		Order("created_at ASC, id ASC").
		Find(&outgoing).Error; err != nil {
		return nil, fmt.Errorf("failed to get outgoing trade offers: %w", err)
	}
	if err := db.Preload("Contents").
		Where("target_user_id = ?", dbUserID(userID)).
		Order("created_at ASC, id ASC").
		Find(&incoming).Error; err != nil {
		return nil, fmt.Errorf("failed to get incoming trade offers: %w", err)
	}

	offers := &domain.UserOffers{}
	for _, o := range outgoing {
		offers.Outgoing = append(offers.Outgoing, s.toDomainOffer(ctx, o))
	}
	for _, o := range incoming {
		offers.Incoming = append(offers.Incoming, s.toDomainOffer(ctx, o))
	}
	return offers, nil
}

// SettleTradeOffer executes the stored offer in one transaction.
// Checks run in order: offer still exists, target owns the requested emojis,
// offerer owns the offered emojis, stored offer equals expected.
// After the transfer, both users' other outgoing offers that can no longer be fulfilled are deleted.
func (s *pgStore) SettleTradeOffer(ctx context.Context, expected domain.TradeOffer, eventID string) (*domain.SettlementResult, error) {
	var result *domain.SettlementResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUsers(tx, expected.Offerer, expected.Target); err != nil {
			return err
		}

		row, err := loadOffer(tx, expected.Offerer, expected.Target, true)
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrNoSuchOffer
		}
		stored := s.toDomainOffer(ctx, *row)

		ok, err := hasEmojis(tx, stored.Target, stored.Requested)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrTargetLacksEmojis
		}
		ok, err = hasEmojis(tx, stored.Offerer, stored.Offered)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrOffererLacksEmojis
		}
		if !stored.Equal(expected) {
			return domain.ErrOfferChanged
		}

		target := dbUserID(stored.Target)
		entry := schema.TradeLog{
			EventID:         eventID,
			Kind:            schema.TradeLogKindTrade,
			SenderUserID:    dbUserID(stored.Offerer),
			RecipientUserID: &target,
			Contents: signedContents(stored.SignedContents(), func(glyph string, count int) schema.TradeLogContent {
				return schema.TradeLogContent{Emoji: glyph, Count: count}
			}),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to log trade: %w", err)
		}

		if err := tx.Delete(row).Error; err != nil {
			return fmt.Errorf("failed to delete trade offer: %w", err)
		}

		if err := transferUnits(tx, stored.Offerer, stored.Target, stored.Offered); err != nil {
			return err
		}
		if err := transferUnits(tx, stored.Target, stored.Offerer, stored.Requested); err != nil {
			return err
		}

		for _, u := range []domain.UserID{stored.Offerer, stored.Target} {
			if _, err := pruneEmptyGroups(tx, u); err != nil {
				return err
			}
		}

		invalidated, err := s.invalidateOutgoingOffers(ctx, tx, stored.Offerer, stored.Target)
		if err != nil {
			return err
		}

		result = &domain.SettlementResult{
			Offer:       stored,
			EventID:     eventID,
			Invalidated: invalidated,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrLedgerInvariant) {
			logger.ErrorCtx(ctx, err, logger.Offer(expected)...)
		}
		return nil, err
	}

	return result, nil
}

// invalidateOutgoingOffers deletes the users' outgoing offers whose offered emojis are no longer owned.
// The caller holds the advisory locks of every given user.
func (s *pgStore) invalidateOutgoingOffers(ctx context.Context, tx *gorm.DB, users ...domain.UserID) ([]domain.TradeOffer, error) {
	var invalidated []domain.TradeOffer
	for _, u := range users {
		var offers []schema.TradeOffer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", dbUserID(u)).
			Order("id ASC").
			Find(&offers).Error; err != nil {
			return nil, fmt.Errorf("failed to get outgoing trade offers: %w", err)
		}

		for i := range offers {
			if err := tx.Where("trade_offer_id = ?", offers[i].ID).Find(&offers[i].Contents).Error; err != nil {
				return nil, fmt.Errorf("failed to get trade offer contents: %w", err)
			}
			offer := s.toDomainOffer(ctx, offers[i])

			ok, err := hasEmojis(tx, u, offer.Offered)
			if err != nil {
				return nil, err
			}
			if ok {
				continue
			}

			if err := tx.Delete(&offers[i]).Error; err != nil {
				return nil, fmt.Errorf("failed to delete invalidated trade offer: %w", err)
			}
			invalidated = append(invalidated, offer)
		}
	}
	return invalidated, nil
}

// ListTradeOffers returns offers with row ID greater than afterID, in ID order
func (s *pgStore) ListTradeOffers(ctx context.Context, afterID int64, limit int) ([]TradeOfferRecord, error) {
	var rows []schema.TradeOffer
	if err := s.db.WithContext(ctx).Preload("Contents").
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list trade offers: %w", err)
	}

	records := make([]TradeOfferRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, TradeOfferRecord{ID: r.ID, Offer: s.toDomainOffer(ctx, r)})
	}
	return records, nil
}

// InvalidateTradeOfferIfUnfulfillable deletes the offer when the offerer no longer owns what was offered
func (s *pgStore) InvalidateTradeOfferIfUnfulfillable(ctx context.Context, offerer, target domain.UserID) (bool, error) {
	var invalidated bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUsers(tx, offerer); err != nil {
			return err
		}

		row, err := loadOffer(tx, offerer, target, true)
		if err != nil || row == nil {
			return err
		}

		ok, err := hasEmojis(tx, offerer, s.toDomainOffer(ctx, *row).Offered)
		if err != nil || ok {
			return err
		}

		if err := tx.Delete(row).Error; err != nil {
			return fmt.Errorf("failed to delete invalidated trade offer: %w", err)
		}
		invalidated = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return invalidated, nil
}

// Recycle consumes exactly RecycleInputCount emojis and grants the payout ungrouped.
// The recycling user's own offers that can no longer be fulfilled are deleted.
func (s *pgStore) Recycle(ctx context.Context, input RecycleInput) (*domain.RecycleResult, error) {
	if input.Consumed.Total() != domain.RecycleInputCount {
		return nil, domain.ErrRecycleArity
	}

	var result *domain.RecycleResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUsers(tx, input.User); err != nil {
			return err
		}

		ok, err := hasEmojis(tx, input.User, input.Consumed)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInsufficientEmojis
		}

		signed := make(map[domain.Emoji]int, len(input.Consumed)+1)
		for e, n := range input.Consumed {
			signed[e] -= n
		}
		signed[input.Payout]++

		entry := schema.TradeLog{
			EventID:      input.EventID,
			Kind:         schema.TradeLogKindRecycle,
			SenderUserID: dbUserID(input.User),
			Contents: signedContents(signed, func(glyph string, count int) schema.TradeLogContent {
				return schema.TradeLogContent{Emoji: glyph, Count: count}
			}),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to log recycle: %w", err)
		}

		if err := consumeUnits(tx, input.User, input.Consumed); err != nil {
			return err
		}
		if err := insertUnits(tx, input.User, domain.NewEmojiCounts(input.Payout)); err != nil {
			return err
		}
		if _, err := pruneEmptyGroups(tx, input.User); err != nil {
			return err
		}

		invalidated, err := s.invalidateOutgoingOffers(ctx, tx, input.User)
		if err != nil {
			return err
		}

		result = &domain.RecycleResult{
			User:        input.User,
			Consumed:    input.Consumed.Clone(),
			Payout:      input.Payout,
			EventID:     input.EventID,
			Invalidated: invalidated,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrLedgerInvariant) {
			logger.ErrorCtx(ctx, err, logger.User("user_id", input.User), logger.Emojis("consumed", input.Consumed))
		}
		return nil, err
	}

	return result, nil
}

// GetTradeLog returns the user's most recent trade log entries, newest first
func (s *pgStore) GetTradeLog(ctx context.Context, userID domain.UserID, limit int) ([]domain.TradeLogEntry, error) {
	var rows []schema.TradeLog
	if err := s.db.WithContext(ctx).Preload("Contents").
		Where("sender_user_id = ? OR recipient_user_id = ?", dbUserID(userID), dbUserID(userID)).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get trade log: %w", err)
	}

	entries := make([]domain.TradeLogEntry, 0, len(rows))
	for _, r := range rows {
		signed := make(map[domain.Emoji]int, len(r.Contents))
		for _, c := range r.Contents {
			if e, ok := s.resolve(ctx, c.Emoji); ok {
				signed[e] += c.Count
			}
		}
		sent, received := domain.SplitSignedContents(signed)

		recipient := domain.SystemCounterparty
		if r.RecipientUserID != nil {
			recipient = domain.UserCounterparty(domain.UserID(*r.RecipientUserID)) //nolint:gosec,G115
		}

		entries = append(entries, domain.TradeLogEntry{
			EventID:   r.EventID,
			Sender:    domain.UserID(r.SenderUserID), //nolint:gosec,G115
			Recipient: recipient,
			Sent:      sent,
			Received:  received,
			Timestamp: r.CreatedAt,
		})
	}
	return entries, nil
}

// IsPrivate reports whether the user's inventory is hidden from others
func (s *pgStore) IsPrivate(ctx context.Context, userID domain.UserID) (bool, error) {
	var settings schema.UserSettings
	err := s.db.WithContext(ctx).Where("user_id = ?", dbUserID(userID)).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get user settings: %w", err)
	}
	return settings.Private, nil
}

// TogglePrivacy flips the privacy flag and returns the new value
func (s *pgStore) TogglePrivacy(ctx context.Context, userID domain.UserID) (bool, error) {
	var private bool
	err := s.db.WithContext(ctx).Raw(`INSERT INTO user_settings (user_id, private, updated_at)
		VALUES (?, TRUE, now())
		ON CONFLICT (user_id) DO UPDATE SET private = NOT user_settings.private, updated_at = now()
		RETURNING private`, dbUserID(userID)).Scan(&private).Error
	if err != nil {
		return false, fmt.Errorf("failed to toggle privacy: %w", err)
	}
	return private, nil
}

// TouchLastSeen records activity at now and returns the previous timestamp, nil on first activity
func (s *pgStore) TouchLastSeen(ctx context.Context, userID domain.UserID, now time.Time) (*time.Time, error) {
	var previous *time.Time
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUsers(tx, userID); err != nil {
			return err
		}

		var seen schema.LastSeen
		err := tx.Where("user_id = ?", dbUserID(userID)).First(&seen).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return fmt.Errorf("failed to get last seen: %w", err)
		default:
			at := seen.SeenAt
			previous = &at
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"seen_at"}),
		}).Create(&schema.LastSeen{UserID: dbUserID(userID), SeenAt: now}).Error; err != nil {
			return fmt.Errorf("failed to update last seen: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return previous, nil
}

// UpsertMember creates or replaces a member directory entry
func (s *pgStore) UpsertMember(ctx context.Context, input UpsertMemberInput) error {
	roles := input.Roles
	if roles == nil {
		roles = []string{}
	}

	member := schema.Member{
		UserID:      dbUserID(input.UserID),
		DisplayName: input.DisplayName,
		Nickname:    input.Nickname,
		Roles:       roles,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "nickname", "roles", "updated_at"}),
	}).Create(&member).Error
	if err != nil {
		return fmt.Errorf("failed to upsert member: %w", err)
	}
	return nil
}

// GetMember returns the member directory entry, or nil when unknown
func (s *pgStore) GetMember(ctx context.Context, userID domain.UserID) (*schema.Member, error) {
	var member schema.Member
	err := s.db.WithContext(ctx).Where("user_id = ?", dbUserID(userID)).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &member, nil
}
