package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryRecorder captures the SQL gorm generates so query shape can be
// asserted without a database.
type queryRecorder struct {
	queries []string
}

func (r *queryRecorder) LogMode(logger.LogLevel) logger.Interface { return r }
func (r *queryRecorder) Info(context.Context, string, ...any)     {}
func (r *queryRecorder) Warn(context.Context, string, ...any)     {}
func (r *queryRecorder) Error(context.Context, string, ...any)    {}

func (r *queryRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.queries = append(r.queries, sql)
}

func (r *queryRecorder) last() string {
	if len(r.queries) == 0 {
		return ""
	}
	return r.queries[len(r.queries)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *queryRecorder) {
	t.Helper()
	rec := &queryRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=dryrun dbname=dryrun",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 rec,
	})
	require.NoError(t, err)
	return db, rec
}

func TestPositionListOrdersBySortKeyThenID(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewPositionRepository(db)

	_, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Contains(t, rec.last(), "ORDER BY display_order asc, id asc")
}

func TestCaseStudyListOrdersBySortKeyThenID(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewCaseStudyRepository(db)

	_, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Contains(t, rec.last(), "ORDER BY display_order asc, id asc")
}

func TestCaseStudyListPublishedFilterShape(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewCaseStudyRepository(db)

	_, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Contains(t, rec.last(), "is_published = true")
	require.Contains(t, rec.last(), "ORDER BY display_order asc, id asc")
}

func TestContactInfoListOrdersBySortKeyThenID(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewContactInfoRepository(db)

	_, err := repo.ListByType(context.Background(), "benefit", false)
	require.NoError(t, err)
	require.Contains(t, rec.last(), "ORDER BY display_order asc, id asc")
}

func TestStatItemListOrdersBySortKeyThenID(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewStatItemRepository(db)

	_, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Contains(t, rec.last(), "ORDER BY display_order asc, id asc")
}

func TestLogoListOrdersBySortKeyThenID(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewLogoRepository(db)

	_, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Contains(t, rec.last(), "ORDER BY display_order asc, id asc")
}

// Deleting a solution type issues a single DELETE against the parent table;
// the steps go with it through the foreign key, never through application SQL.
func TestSolutionDeleteTouchesOnlyParentTable(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewSolutionRepository(db)

	_, err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	require.Contains(t, rec.last(), `DELETE FROM "solution_types"`)
	require.NotContains(t, rec.last(), "solution_steps")
}
