package configs

import (
	"testing"

	"github.com/RubensDuarte2025/Julius-rmd/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSettings(t *testing.T) {
	ConnectionDB("file:seed_settings_test?mode=memory&cache=shared")
	SetupDatabase()

	require.NoError(t, SeedSettings())

	var s entity.Setting
	require.NoError(t, DB().Where("key = ?", "NOME_PIZZARIA").First(&s).Error)
	assert.Equal(t, "Pizzaria Julius", s.Value)

	// rerunning must not clobber an operator-edited value
	require.NoError(t, DB().Model(&s).Update("value", "Pizzaria do Julião").Error)
	require.NoError(t, SeedSettings())
	require.NoError(t, DB().Where("key = ?", "NOME_PIZZARIA").First(&s).Error)
	assert.Equal(t, "Pizzaria do Julião", s.Value)
}
