package postgre

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-todo/config"
	"smart-todo/migrations"
)

func TestConnectEmptyDSN(t *testing.T) {
	_, err := Connect(context.Background(), config.PostgresConfig{})
	assert.Error(t, err)
}

func TestDisconnectNil(t *testing.T) {
	assert.NoError(t, Disconnect(nil))
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".up.sql"):
			ups[strings.TrimSuffix(f, ".up.sql")] = true
		case strings.HasSuffix(f, ".down.sql"):
			downs[strings.TrimSuffix(f, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %s", f)
		}
	}
	assert.Equal(t, ups, downs)
}
