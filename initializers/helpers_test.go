package initializers

import (
	"testing"

	"github.com/Kariqs/foodgram-api/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.OpenDB(t)
	require.NoError(t, Migrate(db))
	return db
}
