package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	"github.com/darkkaiser/shop-compare-server/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shop-compare-server", config.AppName)
	assert.NotContains(t, config.AppName, " ")
	assert.Equal(t, "shop-compare-server.json", config.DefaultFilename)
}

// TestBanner 서버 시작 시 출력되는 배너 템플릿을 검증합니다.
func TestBanner(t *testing.T) {
	t.Parallel()

	assert.Contains(t, banner, "%s", "배너 템플릿에는 버전 포맷팅을 위한 '%s'가 포함되어야 합니다")
	assert.Contains(t, banner, "DarkKaiser")

	output := fmt.Sprintf(banner, "v1.0.0")
	assert.Contains(t, output, "v1.0.0")
	assert.NotContains(t, output, "%!", "배너에 잘못된 포맷 지정자가 있으면 안 됩니다")
}

func TestOpenStore(t *testing.T) {
	t.Parallel()

	t.Run("메모리 저장소", func(t *testing.T) {
		t.Parallel()

		store, err := openStore(context.Background(), config.StorageConfig{Driver: config.StorageDriverMemory})
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &memory.Store{}, store)
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("잘못된 PostgreSQL URL", func(t *testing.T) {
		t.Parallel()

		store, err := openStore(context.Background(), config.StorageConfig{
			Driver:   config.StorageDriverPostgres,
			Postgres: config.PostgresConfig{URL: "postgres://%zz", MaxConns: 1},
		})
		assert.Error(t, err)
		assert.Nil(t, store, "실패 시 typed nil이 아닌 nil 인터페이스를 반환해야 합니다")
	})
}

func TestOpenShopNameCache_비활성화(t *testing.T) {
	t.Parallel()

	cache, closeFn, err := openShopNameCache(context.Background(), config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, cache)
	require.NotNil(t, closeFn)
	assert.NotPanics(t, closeFn)
}

func TestLoadConfig_메모리저장소(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	content := `{
		"storage": {"driver": "memory"},
		"auth": {"jwt_secret": "0123456789abcdef0123"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	appConfig, err := config.LoadWithFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.StorageDriverMemory, appConfig.Storage.Driver)

	store, err := openStore(context.Background(), appConfig.Storage)
	require.NoError(t, err)
	store.Close()
}
